package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFound(t *testing.T) {
	err := NotFound("product", "p-1")

	assert.Equal(t, "NOT_FOUND", err.Code)
	assert.Equal(t, http.StatusNotFound, err.Status)
	assert.Contains(t, err.Message, "product")
	assert.Contains(t, err.Message, "p-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestValidation(t *testing.T) {
	err := Validation("rating must be between 1 and 5")

	assert.Equal(t, "VALIDATION_ERROR", err.Code)
	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestInvalidInput(t *testing.T) {
	err := InvalidInput("session id is required")

	assert.Equal(t, "INVALID_INPUT", err.Code)
	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestInternal(t *testing.T) {
	cause := errors.New("connection reset")
	err := Internal(cause)

	assert.Equal(t, http.StatusInternalServerError, err.Status)
	assert.ErrorIs(t, err, cause)
}

func TestWrapPreservesMatching(t *testing.T) {
	err := Wrap(NotFound("category", "c-1"), "load category")

	assert.ErrorIs(t, err, ErrNotFound)
	var appErr *AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Contains(t, err.Error(), "load category")
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "app error carries its own status",
			err:      AlreadyExists("category", "name", "Phones"),
			expected: http.StatusConflict,
		},
		{
			name:     "wrapped app error",
			err:      fmt.Errorf("outer: %w", NotFound("product", "p-1")),
			expected: http.StatusNotFound,
		},
		{
			name:     "bare sentinel",
			err:      ErrInvalidInput,
			expected: http.StatusBadRequest,
		},
		{
			name:     "unavailable sentinel",
			err:      ErrUnavailable,
			expected: http.StatusServiceUnavailable,
		},
		{
			name:     "unknown error is internal",
			err:      errors.New("boom"),
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.err))
		})
	}
}
