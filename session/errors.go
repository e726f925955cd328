package session

import "errors"

// ErrEmptyToken is returned when Establish is called without a token.
var ErrEmptyToken = errors.New("session: empty token")
