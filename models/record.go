package models

// AddRecordRequest is the expected body for the addRecord endpoint. The
// create flag decides between an insert and an update-by-key; data is the
// caller-supplied free-form record document keyed by c_id.
type AddRecordRequest struct {
	Create bool                   `json:"create"`
	Data   map[string]interface{} `json:"data"`
}

// StatusResponse mirrors the record endpoints' success envelope
type StatusResponse struct {
	Status int `json:"status"`
}
