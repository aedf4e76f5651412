package errors

import (
	"net/http"
	"testing"

	"scoop/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithMessageKeepsIdentity(t *testing.T) {
	err := ErrValidationFailed.WithMessage("amount must be a number and not empty")

	assert.Equal(t, "amount must be a number and not empty", err.Message())
	assert.Equal(t, http.StatusUnprocessableEntity, err.HTTPCode())
	assert.True(t, errors.Is(err, ErrValidationFailed))
	assert.False(t, errors.Is(err, ErrConflict))
}

func TestBaseError_WithStatus(t *testing.T) {
	err := ErrNotFound.WithStatus(http.StatusBadRequest)

	assert.Equal(t, http.StatusBadRequest, err.HTTPCode())
	assert.Equal(t, ErrNotFound.Message(), err.Message())
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestBaseError_WrapMessage(t *testing.T) {
	wrapped := ErrAddressExists.WrapMessage("change address")

	var appErr AppError
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, "Address already exists", appErr.Message())
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
}

func TestNewErrorResponse(t *testing.T) {
	resp := NewErrorResponse(ErrNoAccessToken)

	assert.Equal(t, "Unauthorized: No access token provided", resp.Message)
	assert.Equal(t, "NO_ACCESS_TOKEN", resp.Code)
}
