package models

// ErrorResponse is the error envelope shared by every endpoint
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the plain success envelope
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthCheckResponse returns the health check structure
type HealthCheckResponse struct {
	Alive bool `json:"alive"`
}
