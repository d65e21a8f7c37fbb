// Package errs defines custom error types and utilities.
//
// Its purpose is to create specific error structures (FieldErrors for
// forms, HTTPError for API responses) so clients receive meaningful,
// actionable and consistent error messages.
//
//   - Return consistent error shapes to API clients (JSON).
//   - Support field-level validation errors.
//   - Support "action hints" (like redirect) that frontends can interpret.
//   - Play nicely with Go's standard errors package.
package errs

import "strings"

// FieldError represents a field-level validation error.
//
//	{ "field": "to", "error": "is required" }
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// ActionType is a string-based enum describing what the client should do.
type ActionType string

const (
	// ActionTypeRedirect tells the client it should redirect to Value.
	ActionTypeRedirect ActionType = "redirect"
)

// Action describes an optional "what the client should do next" instruction.
type Action struct {
	Type    ActionType `json:"type"`
	Message string     `json:"message"`
	Value   string     `json:"value"`
}

// HTTPError is the main custom error type for API responses.
//
// Fields:
//   - Code: machine-friendly error code (e.g. "BAD_REQUEST").
//   - Message: human-friendly message.
//   - Status: HTTP status code.
//   - Override: the message is safe to show to end users as is.
//   - Errors: list of per-field errors (validation).
//   - Action: client instruction (optional).
type HTTPError struct {
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Status   int          `json:"status"`
	Override bool         `json:"override"`
	Errors   []FieldError `json:"errors"`
	Action   *Action      `json:"action"`
}

// Error makes *HTTPError satisfy the built-in error interface.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is an *HTTPError. Only the type is compared.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// FunctionErrorResponse is the error envelope returned by the
// /.netlify/functions/* endpoints:
//
//	{ "success": false, "error": "Missing required fields", "code": "BAD_REQUEST" }
type FunctionErrorResponse struct {
	Success bool         `json:"success"`
	Error   string       `json:"error"`
	Code    string       `json:"code"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// ToFunctionResponse converts the error into the function envelope.
func (e *HTTPError) ToFunctionResponse() FunctionErrorResponse {
	return FunctionErrorResponse{
		Success: false,
		Error:   e.Message,
		Code:    e.Code,
		Errors:  e.Errors,
	}
}

// MakeUpperCaseWithUnderscores converts "Bad Request" into "BAD_REQUEST".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
