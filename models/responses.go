package models

// MessageResponse is the JSON payload used for confirmations and errors:
//
//	{"message": "User not found!"}
type MessageResponse struct {
	Message string `json:"message"`
}
