package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProviderErrorKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewProviderError("Failed to generate text response", cause)

	assert.Equal(t, "Failed to generate text response: connection refused", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrProvider)
	assert.NotErrorIs(t, err, ErrConfiguration)
}

func TestAsThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", NewValidationError("Query cannot be empty"))

	appErr, ok := As(wrapped)
	assert.True(t, ok)
	assert.Equal(t, ValidationError, appErr.Type)
	assert.Equal(t, "Query cannot be empty", appErr.Message)

	_, ok = As(errors.New("plain"))
	assert.False(t, ok)
}

func TestStatusCode(t *testing.T) {
	tests := []struct {
		err  *AppError
		want int
	}{
		{NewValidationError("x"), http.StatusBadRequest},
		{NewNotFoundError("x"), http.StatusNotFound},
		{NewConfigurationError("x"), http.StatusServiceUnavailable},
		{NewEmptyResponseError("x"), http.StatusBadGateway},
		{NewProviderError("x", nil), http.StatusBadGateway},
		{New("OTHER", "x"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.err.Type), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.StatusCode())
		})
	}
}
