package model

// ErrorResponse is the gateway's error shape for every endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
}
