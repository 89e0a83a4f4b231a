package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Officer holds the structure for the police collection in mongo. The
// password field carries the bcrypt digest, never the plaintext, and is
// excluded from any JSON response.
type Officer struct {
	ID            primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	PoliceID      string             `json:"policeId" bson:"policeId"`
	PoliceName    string             `json:"policeName" bson:"policeName"`
	Department    string             `json:"department" bson:"department"`
	PoliceAddress string             `json:"policeAddress" bson:"policeAddress"`
	Designation   string             `json:"designation" bson:"designation"`
	Password      []byte             `json:"-" bson:"password"`
	CreatedAt     primitive.DateTime `json:"createdAt" bson:"createdAt"`
}

// RegisterRequest is the expected body for the register endpoint
type RegisterRequest struct {
	PoliceID      string `json:"policeId"`
	PoliceName    string `json:"policeName"`
	Department    string `json:"department"`
	PoliceAddress string `json:"policeAddress"`
	Designation   string `json:"designation"`
	Password      string `json:"password"`
}

// LoginRequest is the expected body for the login endpoint
type LoginRequest struct {
	PoliceName string `json:"policeName"`
	Password   string `json:"password"`
}

// LoginResponse is returned on a successful login
type LoginResponse struct {
	Message  string `json:"message"`
	PoliceID string `json:"policeId"`
}
