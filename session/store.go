package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/viant/authsession/auth/identity"
	"github.com/viant/authsession/auth/store"
	"github.com/viant/authsession/navigation"
)

// Identity is the remote identity service
type Identity interface {
	// Me returns the user owning token
	Me(ctx context.Context, token string) (identity.User, error)
	// Logout terminates the remote session bound to token
	Logout(ctx context.Context, token string) error
}

// Store holds authentication state of the running client
type Store struct {
	holder       store.Holder
	identity     Identity
	navigator    navigation.Navigator
	logger       *slog.Logger
	metrics      *Metrics
	landingRoute string

	mux           sync.Mutex
	token         string
	authenticated bool
	user          identity.User
	generation    uint64
}

// New creates a store, restoring the token persisted by holder
func New(ctx context.Context, holder store.Holder, identity Identity, navigator navigation.Navigator, options ...Option) (*Store, error) {
	ret := &Store{
		holder:       holder,
		identity:     identity,
		navigator:    navigator,
		landingRoute: DefaultLandingRoute,
	}
	for _, opt := range options {
		opt(ret)
	}
	if ret.logger == nil {
		ret.logger = slog.Default()
	}
	if ret.navigator == nil {
		ret.navigator = navigation.Nop
	}
	token, ok, err := holder.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to restore session token: %w", err)
	}
	if ok {
		ret.token = token
		ret.authenticated = true
	}
	ret.metrics.authenticated(ret.authenticated)
	return ret, nil
}

// Establish sets and persists a new bearer token
func (s *Store) Establish(ctx context.Context, token string) error {
	if token == "" {
		return ErrEmptyToken
	}
	s.mux.Lock()
	defer s.mux.Unlock()
	if err := s.holder.Set(ctx, token); err != nil {
		return fmt.Errorf("failed to persist session token: %w", err)
	}
	s.generation++
	s.token = token
	s.authenticated = true
	s.user = nil
	s.metrics.established()
	return nil
}

// Verify confirms the token with the identity service. Any failure terminates the session.
func (s *Store) Verify(ctx context.Context) bool {
	s.mux.Lock()
	token, generation := s.token, s.generation
	if token == "" {
		s.authenticated = false
		s.mux.Unlock()
		s.metrics.verified(resultNoToken)
		return false
	}
	s.mux.Unlock()

	user, err := s.identity.Me(ctx, token)

	s.mux.Lock()
	if s.generation != generation {
		s.mux.Unlock()
		s.logger.Debug("session verification superseded", "generation", generation)
		s.metrics.verified(resultStale)
		return false
	}
	if err == nil {
		s.authenticated = true
		s.user = user
		s.mux.Unlock()
		s.metrics.verified(resultSuccess)
		s.metrics.authenticated(true)
		return true
	}
	s.generation++
	claimed := s.generation
	s.mux.Unlock()
	s.metrics.verified(resultFailure)
	s.logger.Info("session verification failed, logging out", "error", err)
	if rErr := s.terminate(ctx, token, &claimed); rErr != nil {
		s.logger.Error("failed to clear session", "error", rErr)
	}
	return false
}

// Terminate logs out: it notifies the identity service on a best-effort basis, then
// always clears the persisted and in-memory session and navigates to the landing route.
// The returned error reports only a failure to remove the persisted token.
func (s *Store) Terminate(ctx context.Context) error {
	s.mux.Lock()
	s.generation++
	token := s.token
	s.mux.Unlock()
	return s.terminate(ctx, token, nil)
}

// terminate clears the session; when claimed is set, cleanup is skipped if a later
// Establish or Terminate advanced the generation during the remote logout.
func (s *Store) terminate(ctx context.Context, token string, claimed *uint64) error {
	if token != "" {
		if err := s.identity.Logout(ctx, token); err != nil {
			s.metrics.remoteLogoutFailed()
			s.logger.Warn("remote logout failed", "error", err)
		}
	}
	local := context.WithoutCancel(ctx)
	s.mux.Lock()
	if claimed != nil && s.generation != *claimed {
		s.mux.Unlock()
		s.logger.Debug("session logout superseded", "generation", *claimed)
		return nil
	}
	s.generation++
	s.token = ""
	s.authenticated = false
	s.user = nil
	err := s.holder.Remove(local)
	s.mux.Unlock()
	s.metrics.terminated()
	s.navigator.Navigate(local, s.landingRoute)
	if err != nil {
		return fmt.Errorf("failed to remove session token: %w", err)
	}
	return nil
}

// State returns session snapshot
func (s *Store) State() State {
	s.mux.Lock()
	defer s.mux.Unlock()
	return State{
		Token:         s.token,
		Authenticated: s.authenticated,
		User:          s.user.Clone(),
		Phase:         phaseOf(s.token, s.authenticated, s.user),
	}
}

// Token returns current bearer token
func (s *Store) Token() string {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.token
}

// Authenticated returns true if session is authenticated
func (s *Store) Authenticated() bool {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.authenticated
}

// User returns verified user or nil
func (s *Store) User() identity.User {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.user.Clone()
}

// LandingRoute returns route visited after logout
func (s *Store) LandingRoute() string {
	return s.landingRoute
}
