package errs

import (
	"fmt"
	"net/http"
)

const (
	// CodeConfiguration marks a request that cannot be served because a
	// server-side secret or setting is missing.
	CodeConfiguration = "CONFIGURATION_ERROR"

	// CodeUpstream marks a failure reported by a third-party API.
	CodeUpstream = "UPSTREAM_ERROR"
)

// NewUnauthorizedError creates a 401 Unauthorized HTTPError.
func NewUnauthorizedError(message string, override bool) *HTTPError {
	return &HTTPError{
		Code:     MakeUpperCaseWithUnderscores(http.StatusText(http.StatusUnauthorized)),
		Message:  message,
		Status:   http.StatusUnauthorized,
		Override: override,
	}
}

// NewBadRequestError creates a 400 Bad Request HTTPError.
//
// code overrides the default "BAD_REQUEST" code when not nil. errors and
// action are optional.
func NewBadRequestError(message string, override bool, code *string, errors []FieldError, action *Action) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusBadRequest))

	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:     formattedCode,
		Message:  message,
		Status:   http.StatusBadRequest,
		Override: override,
		Errors:   errors,
		Action:   action,
	}
}

// NewNotFoundError creates a 404 Not Found HTTPError.
func NewNotFoundError(message string, override bool, code *string) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound))

	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:     formattedCode,
		Message:  message,
		Status:   http.StatusNotFound,
		Override: override,
	}
}

// NewTooManyRequestsError creates a 429 Too Many Requests HTTPError.
func NewTooManyRequestsError(message string) *HTTPError {
	return &HTTPError{
		Code:     MakeUpperCaseWithUnderscores(http.StatusText(http.StatusTooManyRequests)),
		Message:  message,
		Status:   http.StatusTooManyRequests,
		Override: true,
	}
}

// NewInternalServerError creates a generic 500 that hides internal details.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Code:     MakeUpperCaseWithUnderscores(http.StatusText(http.StatusInternalServerError)),
		Message:  http.StatusText(http.StatusInternalServerError),
		Status:   http.StatusInternalServerError,
		Override: false,
	}
}

// NewConfigurationError creates a 500 telling the caller which server
// setting is missing, e.g. "Resend API key is not configured".
func NewConfigurationError(message string) *HTTPError {
	return &HTTPError{
		Code:     CodeConfiguration,
		Message:  message,
		Status:   http.StatusInternalServerError,
		Override: true,
	}
}

// NewUpstreamError creates a 500 carrying the downstream error message.
func NewUpstreamError(provider string, err error) *HTTPError {
	return &HTTPError{
		Code:     CodeUpstream,
		Message:  fmt.Sprintf("%s request failed: %v", provider, err),
		Status:   http.StatusInternalServerError,
		Override: true,
	}
}
