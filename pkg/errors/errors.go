// Package errors provides the HTTP-facing error type used by delivery layers.
// Domain packages keep plain sentinel errors; delivery maps them to HTTPError
// so the response layer can render a status code plus a machine-readable code.
package errors

import "fmt"

// HTTPError carries an HTTP status, a stable machine-readable code and a
// human-readable message.
type HTTPError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.Status, e.Code, e.Message)
}

// NewHTTPError creates an HTTPError without a machine-readable code.
func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{Status: status, Message: message}
}

// NewCodedHTTPError creates an HTTPError with a machine-readable code.
func NewCodedHTTPError(status int, code, message string) *HTTPError {
	return &HTTPError{Status: status, Code: code, Message: message}
}
