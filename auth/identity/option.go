package identity

import (
	"net/http"
	"time"
)

// Option represents client option
type Option func(c *Client)

// WithTransport sets base round tripper
func WithTransport(transport http.RoundTripper) Option {
	return func(c *Client) {
		c.transport = transport
	}
}

// WithTimeout sets per call timeout
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithPaths overrides service endpoint paths
func WithPaths(paths Paths) Option {
	return func(c *Client) {
		if paths.Me != "" {
			c.paths.Me = paths.Me
		}
		if paths.Logout != "" {
			c.paths.Logout = paths.Logout
		}
		if paths.Login != "" {
			c.paths.Login = paths.Login
		}
	}
}
