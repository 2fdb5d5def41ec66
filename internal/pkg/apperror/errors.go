package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType represents the category of an application error
type ErrorType string

const (
	// ConfigurationError indicates a missing credential or setting
	ConfigurationError ErrorType = "CONFIGURATION_ERROR"

	// ValidationError indicates input validation failure
	ValidationError ErrorType = "VALIDATION_ERROR"

	// EmptyResponseError indicates the LLM provider returned no text
	EmptyResponseError ErrorType = "EMPTY_RESPONSE_ERROR"

	// ProviderError indicates a transport or parse failure talking to the provider
	ProviderError ErrorType = "PROVIDER_ERROR"

	// NotFoundError indicates a resource was not found
	NotFoundError ErrorType = "NOT_FOUND"
)

// AppError carries a user-visible message plus the underlying cause.
type AppError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Cause   error     `json:"-"`
}

func New(errorType ErrorType, message string) *AppError {
	return &AppError{Type: errorType, Message: message}
}

// Error returns the user-visible message.
func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is matches any *AppError of the same type.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// StatusCode maps the error type to an HTTP status.
func (e *AppError) StatusCode() int {
	switch e.Type {
	case ValidationError:
		return http.StatusBadRequest
	case NotFoundError:
		return http.StatusNotFound
	case ConfigurationError:
		return http.StatusServiceUnavailable
	case EmptyResponseError, ProviderError:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Sentinels for errors.Is checks.
var (
	ErrConfiguration = New(ConfigurationError, "")
	ErrValidation    = New(ValidationError, "")
	ErrEmptyResponse = New(EmptyResponseError, "")
	ErrProvider      = New(ProviderError, "")
	ErrNotFound      = New(NotFoundError, "")
)

func NewConfigurationError(message string) *AppError {
	return New(ConfigurationError, message)
}

func NewValidationError(message string) *AppError {
	return New(ValidationError, message)
}

func NewEmptyResponseError(message string) *AppError {
	return New(EmptyResponseError, message)
}

func NewNotFoundError(message string) *AppError {
	return New(NotFoundError, message)
}

// NewProviderError wraps cause and appends its message to prefix.
func NewProviderError(prefix string, cause error) *AppError {
	msg := prefix
	if cause != nil {
		msg = fmt.Sprintf("%s: %s", prefix, cause.Error())
	}
	return &AppError{Type: ProviderError, Message: msg, Cause: cause}
}

// As extracts an *AppError from err's chain.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
