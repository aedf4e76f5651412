package errors

import (
	"net/http"

	"scoop/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-facing error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// Is matches any BaseError sharing the same error code, so copies derived
// with WithMessage, WithStatus or WithDetails still match their template.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-facing error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// WithMessage returns a copy carrying a different user-facing message.
func (e *BaseError) WithMessage(message string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   message,
		details:   e.details,
	}
}

// WithStatus returns a copy answered with a different HTTP status. Some
// endpoints report the same failure with a different code.
func (e *BaseError) WithStatus(httpCode int) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   e.details,
	}
}

// Predefined error types
var (
	// Request shape
	ErrValidationFailed = NewBaseError(
		http.StatusUnprocessableEntity,
		"VALIDATION_FAILED",
		"Invalid request",
		"",
	)

	ErrUnknownFilterField = NewBaseError(
		http.StatusUnprocessableEntity,
		"UNKNOWN_FIELD",
		"Unknown field(s)",
		"",
	)

	ErrInvalidFilterOperator = NewBaseError(
		http.StatusUnprocessableEntity,
		"INVALID_FILTER_OPERATOR",
		"Invalid filter operator",
		"",
	)

	ErrBadRequest = NewBaseError(
		http.StatusBadRequest,
		"BAD_REQUEST",
		"Bad request",
		"",
	)

	ErrInvalidID = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ID",
		"Invalid id",
		"",
	)

	ErrEmptyPatch = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_PATCH",
		"At least one field must be provided",
		"",
	)

	ErrMissingIDs = NewBaseError(
		http.StatusBadRequest,
		"MISSING_IDS",
		"ids query parameter is required",
		"",
	)

	// Authentication
	ErrNoAccessToken = NewBaseError(
		http.StatusUnauthorized,
		"NO_ACCESS_TOKEN",
		"Unauthorized: No access token provided",
		"",
	)

	ErrInvalidAccessToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_ACCESS_TOKEN",
		"Unauthorized: Invalid access token",
		"",
	)

	ErrRefreshTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_INVALID",
		"Unauthorized: Invalid refresh token",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid credentials",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Password processing failed",
		"",
	)

	// Authorization
	ErrForbidden = NewBaseError(
		http.StatusUnauthorized,
		"INSUFFICIENT_PERMISSIONS",
		"Unauthorized: Insufficient permissions",
		"",
	)

	ErrClientMismatch = NewBaseError(
		http.StatusBadRequest,
		"CLIENT_ID_MISMATCH",
		"Client id mismatch",
		"",
	)

	// Lookup
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrAddressNotFound = NewBaseError(
		http.StatusNotFound,
		"ADDRESS_NOT_FOUND",
		"Address not found",
		"",
	)

	ErrRoleNotFound = NewBaseError(
		http.StatusNotFound,
		"ROLE_NOT_FOUND",
		"Role not found",
		"",
	)

	// Conflicts
	ErrConflict = NewBaseError(
		http.StatusUnprocessableEntity,
		"CONFLICT",
		"Resource already exists",
		"",
	)

	ErrNameTaken = NewBaseError(
		http.StatusUnprocessableEntity,
		"NAME_TAKEN",
		"Name already in use",
		"",
	)

	ErrAddressExists = NewBaseError(
		http.StatusBadRequest,
		"ADDRESS_EXISTS",
		"Address already exists",
		"",
	)

	ErrMemberNotOfClient = NewBaseError(
		http.StatusBadRequest,
		"MEMBER_CLIENT_MISMATCH",
		"Member not belongs to this client.",
		"",
	)

	// Catalog
	ErrItemUnavailable = NewBaseError(
		http.StatusUnprocessableEntity,
		"ITEM_UNAVAILABLE",
		"Item is not available",
		"",
	)

	ErrPhotoUploadFailed = NewBaseError(
		http.StatusInternalServerError,
		"PHOTO_UPLOAD_FAILED",
		"Photo upload failed",
		"",
	)

	// Orders
	ErrOrderPublishFailed = NewBaseError(
		http.StatusInternalServerError,
		"ORDER_PUBLISH_FAILED",
		"Service order could not be placed",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-facing error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
