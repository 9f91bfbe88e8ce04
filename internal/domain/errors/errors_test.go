package errors

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestBaseError_WrapKeepsIdentity(t *testing.T) {
	err := ErrUsernameTaken.WrapMessage("unique index on credentials.username")

	assert.True(t, errors.Is(err, ErrUsernameTaken))

	var appErr AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, "Account with username already registered", appErr.Message())
}

func TestBaseError_WithDetailsStillMatches(t *testing.T) {
	err := errors.Wrap(ErrDocumentNotFound.WithDetails("plants"), "load plants")

	assert.True(t, errors.Is(err, ErrDocumentNotFound))
	assert.False(t, errors.Is(err, ErrAccountNotFound))
}

func TestValidationError(t *testing.T) {
	assert.Nil(t, NewValidationError())

	err := NewValidationError("Username is required", "Password is required")
	wrapped := errors.Wrap(err, "register")

	assert.True(t, errors.Is(wrapped, ErrValidationFailed))

	var vErr *ValidationError
	assert.True(t, errors.As(wrapped, &vErr))
	assert.Equal(t, []string{"Username is required", "Password is required"}, vErr.Items)
	assert.Equal(t, http.StatusBadRequest, vErr.HTTPCode())
}

func TestDatabaseExecuteError_Unwraps(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "failed to create shop")

	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "failed to create shop", err.Details())
	assert.Equal(t, "Internal server error", err.Message())
}
