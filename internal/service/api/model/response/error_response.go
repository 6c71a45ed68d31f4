package response

// ErrorResponse is the standard error payload of the API.
type ErrorResponse struct {
	// ResultCode mirrors the HTTP status code (400, 404, 500, ...).
	ResultCode int `json:"result_code"`

	// Message is the human-readable error description.
	Message string `json:"message"`
}
