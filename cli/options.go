package cli

import (
	"github.com/viant/authsession"
)

// Options represents command line options
type Options struct {
	Login     *LoginCommand     `command:"login" description:"exchange credentials for a token and establish the session"`
	Establish *EstablishCommand `command:"establish" description:"establish the session with an existing token"`
	Verify    *VerifyCommand    `command:"verify" description:"verify the session with the identity service"`
	Logout    *LogoutCommand    `command:"logout" description:"terminate the session"`
	Status    *StatusCommand    `command:"status" description:"print local session state"`
	Serve     *ServeCommand     `command:"serve" description:"run a local stand-in identity service"`
}

// SessionOptions are shared by session commands
type SessionOptions struct {
	ConfigURL string `short:"c" long:"config" env:"AUTHSESSION_CONFIG" description:"YAML options URL"`
	authsession.Options
}

// LoginCommand represents login options
type LoginCommand struct {
	SessionOptions
	Email    string `short:"e" long:"email" description:"account email" required:"true"`
	Password string `short:"p" long:"password" env:"AUTHSESSION_PASSWORD" description:"account password" required:"true"`
	runner   *Runner
}

// EstablishCommand represents establish options
type EstablishCommand struct {
	SessionOptions
	Args struct {
		Token string `positional-arg-name:"token" description:"bearer token"`
	} `positional-args:"yes" required:"yes"`
	runner *Runner
}

// VerifyCommand represents verify options
type VerifyCommand struct {
	SessionOptions
	runner *Runner
}

// LogoutCommand represents logout options
type LogoutCommand struct {
	SessionOptions
	runner *Runner
}

// StatusCommand represents status options
type StatusCommand struct {
	SessionOptions
	runner *Runner
}

// ServeCommand represents serve options
type ServeCommand struct {
	authsession.ServerOptions
	runner *Runner
}
