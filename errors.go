package rosu

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure scenarios
var (
	// ErrNoToken is returned when a request is sent while no access token is
	// held, i.e. in the window between token expiry and renewal completing.
	ErrNoToken = errors.New("rosu: no access token")

	// ErrNotFound is returned for 404 responses.
	ErrNotFound = errors.New("rosu: not found")

	// ErrRequestTimeout is returned once every retry attempt timed out.
	ErrRequestTimeout = errors.New("rosu: request timed out")
)

// ErrorPayload is the structured error body the API returns on most non-2xx
// responses.
type ErrorPayload struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
	Hint             string `json:"hint"`
	Message          string `json:"message"`
}

// APIError is a non-2xx response whose body parsed as an ErrorPayload.
// Body always retains the raw response text.
type APIError struct {
	StatusCode int
	Body       string
	Payload    ErrorPayload
}

func (e *APIError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Payload.Error != "" {
		return fmt.Sprintf("rosu: api responded with status %d: %s", e.StatusCode, e.Payload.Error)
	}
	return fmt.Sprintf("rosu: api responded with status %d", e.StatusCode)
}

// UnexpectedStatusError is a non-2xx response whose body did not match the
// expected error shape. The raw body and the parse failure are retained.
type UnexpectedStatusError struct {
	StatusCode int
	Body       string
	Cause      error
}

func (e *UnexpectedStatusError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("rosu: status %d with undecodable error body %q", e.StatusCode, e.Body)
}

// Unwrap returns the JSON decoding failure.
func (e *UnexpectedStatusError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// ServiceUnavailableError is a 503 response. The provider uses this status
// for maintenance messages, so the body text is carried verbatim.
type ServiceUnavailableError struct {
	Body string
}

func (e *ServiceUnavailableError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("rosu: service unavailable: %s", e.Body)
}

// ParseError is a 200 response whose body did not match the expected success
// shape. The raw body is retained so the provider's message is never lost.
type ParseError struct {
	Body  string
	Cause error
}

func (e *ParseError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("rosu: decoding response body: %v", e.Cause)
}

// Unwrap returns the JSON decoding failure.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// TransportError is a non-timeout network failure (connection refused, TLS
// handshake, ...). These are not retried.
type TransportError struct {
	Cause error
}

func (e *TransportError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("rosu: sending request: %v", e.Cause)
}

// Unwrap returns the underlying network failure.
func (e *TransportError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}
