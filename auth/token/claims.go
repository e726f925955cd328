// Package token inspects bearer tokens without verifying them.
//
// The session store treats tokens as opaque; inspection only serves status
// reporting, the identity service stays the authority on validity.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrOpaque is returned when a token is not a JWT
var ErrOpaque = errors.New("token is not a JWT")

// Claims represents inspected token claims
type Claims struct {
	ID        string
	Subject   string
	Issuer    string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Expired returns true if token carries an expiry in the past
func (c *Claims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && now.After(c.ExpiresAt)
}

// Inspect decodes JWT registered claims without signature verification
func Inspect(raw string) (*Claims, error) {
	registered := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, registered); err != nil {
		return nil, errors.Join(ErrOpaque, err)
	}
	ret := &Claims{
		ID:      registered.ID,
		Subject: registered.Subject,
		Issuer:  registered.Issuer,
	}
	if registered.IssuedAt != nil {
		ret.IssuedAt = registered.IssuedAt.Time
	}
	if registered.ExpiresAt != nil {
		ret.ExpiresAt = registered.ExpiresAt.Time
	}
	return ret, nil
}
