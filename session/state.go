package session

import "github.com/viant/authsession/auth/identity"

// Phase represents session state machine position
type Phase int

const (
	// Unauthenticated means no token is held
	Unauthenticated Phase = iota
	// Unverified means a token is held but the identity service has not confirmed it yet
	Unverified
	// Verified means the identity service confirmed the token and returned a user
	Verified
)

func (p Phase) String() string {
	switch p {
	case Unverified:
		return "authenticated-unverified"
	case Verified:
		return "authenticated-verified"
	}
	return "unauthenticated"
}

// State is a point in time snapshot of the session
type State struct {
	Token         string        `json:"token,omitempty" yaml:"token,omitempty"`
	Authenticated bool          `json:"isAuthenticated" yaml:"isAuthenticated"`
	User          identity.User `json:"user,omitempty" yaml:"user,omitempty"`
	Phase         Phase         `json:"-" yaml:"-"`
}

func phaseOf(token string, authenticated bool, user identity.User) Phase {
	switch {
	case token == "" || !authenticated:
		return Unauthenticated
	case user == nil:
		return Unverified
	}
	return Verified
}
