package dto

// APIResponse is the envelope for every JSON response. Exactly one of Data
// and Error is set.
type APIResponse struct {
	Data  interface{}  `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

// MessageResponse carries a human-readable confirmation for operations that
// return no resource body
type MessageResponse struct {
	Message string `json:"message" example:"Operation completed successfully"`
}
