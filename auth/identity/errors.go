package identity

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnauthorized is returned when the identity service rejects the credential.
	ErrUnauthorized = errors.New("identity: unauthorized")
	// ErrMalformedResponse is returned when a success response cannot be decoded.
	ErrMalformedResponse = errors.New("identity: malformed response")
	// ErrMissingToken is returned when an authenticated call is attempted without a token.
	ErrMissingToken = errors.New("identity: missing bearer token")
)

// StatusError reports an unexpected response status
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("identity: %v %v: unexpected status %d %s", e.Method, e.URL, e.StatusCode, http.StatusText(e.StatusCode))
}
