package errors

// ErrorResponse is the body written for every failed request.
type ErrorResponse struct {
	Message string `json:"message"`           // User-facing error message
	Code    string `json:"code,omitempty"`    // Business error code, e.g. "NOT_FOUND"
	Details string `json:"details,omitempty"` // Detailed error information (optional)
}

// NewErrorResponse shapes an AppError into the response body.
func NewErrorResponse(err AppError) *ErrorResponse {
	return &ErrorResponse{
		Message: err.Message(),
		Code:    err.ErrorCode(),
		Details: err.Details(),
	}
}
