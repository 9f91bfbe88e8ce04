package errors

// MessageResponse is the success body of the auth and update endpoints.
type MessageResponse struct {
	Message string `json:"message"`
	Token   string `json:"token,omitempty"`
}

// ErrorResponse is returned for conflicts, auth failures and missing documents.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse itemizes every input problem at once.
type ValidationErrorResponse struct {
	Errors []string `json:"errors"`
}

// FailureResponse is returned for server-side failures. Details holds the
// business error code and request id, never the internal error text.
type FailureResponse struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}
