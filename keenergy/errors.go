package keenergy

import (
	"fmt"
	"net/http"
)

// TransportError reports a network-level failure (connection refused,
// timeout, cancelled context) before any HTTP status was received.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// AuthenticationError reports an HTTP 401 from the controller.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string { return e.Message }

// APIError reports any other non-2xx response from the controller. Message
// carries the developerMessage field verbatim when the controller sent one,
// otherwise the raw body text.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return e.Message
	}
	if e.Message == "" {
		return fmt.Sprintf("%d %s", e.StatusCode, longStatusText(e.StatusCode))
	}
	return fmt.Sprintf("%d %s - %s", e.StatusCode, longStatusText(e.StatusCode), e.Message)
}

// ValidationError reports caller-side input problems: unknown enumeration
// symbols, unknown heating curve names, malformed write values.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// longStatusText mirrors the verbose reason phrases the controller firmware
// emits for the two statuses it actually produces; everything else falls back
// to the standard phrase.
func longStatusText(code int) string {
	switch code {
	case http.StatusUnauthorized:
		return "Unauthorized: No permission -- see authorization schemes"
	case http.StatusInternalServerError:
		return "Internal Server Error: Server got itself in trouble"
	}
	return http.StatusText(code)
}

func newAuthenticationError() *AuthenticationError {
	return &AuthenticationError{
		Message: fmt.Sprintf("%d %s", http.StatusUnauthorized, longStatusText(http.StatusUnauthorized)),
	}
}
