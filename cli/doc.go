// Package cli implements the authsession command line.
//
// Commands: login, establish, verify, logout, status and serve. Session options
// come from flags, AUTHSESSION_* environment variables or a YAML file passed
// with --config.
package cli
