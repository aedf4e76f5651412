// Package response writes the API's JSON envelopes.
package response

import (
	"net/http"

	domainerrors "scoop/internal/domain/errors"
	"scoop/internal/domain/listing"

	"github.com/labstack/echo/v4"
)

// DataResponse wraps a single resource.
type DataResponse struct {
	Data any `json:"data"`
}

// MessageResponse wraps a resource with a confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// Data writes {"data": ...} with status 200.
func Data(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, DataResponse{Data: data})
}

// Message writes {"message": ..., "data": ...} with status 200.
func Message(c echo.Context, message string, data any) error {
	return c.JSON(http.StatusOK, MessageResponse{Message: message, Data: data})
}

// Page writes a list page as {data, page, totalPages, hasNextPage}.
func Page[T any](c echo.Context, page listing.Page[T]) error {
	return c.JSON(http.StatusOK, page)
}

// NoContent answers 204.
func NoContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

// Error writes {"message": ..., "code": ...}.
func Error(c echo.Context, statusCode int, errorCode string, message string) error {
	return c.JSON(statusCode, domainerrors.ErrorResponse{
		Message: message,
		Code:    errorCode,
	})
}

// AppError renders a domain error with its own status.
func AppError(c echo.Context, err domainerrors.AppError) error {
	return Error(c, err.HTTPCode(), err.ErrorCode(), err.Message())
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message)
}
