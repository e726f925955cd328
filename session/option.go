package session

import "log/slog"

// DefaultLandingRoute is the route the store navigates to after logout
const DefaultLandingRoute = "/"

// Option represents store option
type Option func(s *Store)

// WithLogger sets logger
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// WithLandingRoute sets the route visited after Terminate
func WithLandingRoute(route string) Option {
	return func(s *Store) {
		s.landingRoute = route
	}
}

// WithMetrics sets metrics
func WithMetrics(metrics *Metrics) Option {
	return func(s *Store) {
		s.metrics = metrics
	}
}
