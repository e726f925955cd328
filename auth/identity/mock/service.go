package mock

import (
	"crypto/rand"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/viant/authsession/internal/collection"
)

// Account represents a user known to the mock identity service
type Account struct {
	ID       int
	Name     string
	Email    string
	Password string
}

// IdentityService is a test server that simulates the remote identity service
type IdentityService struct {
	Secret    []byte
	Issuer    string
	TokenTTL  time.Duration
	Accounts  []*Account
	MeHandler func(w http.ResponseWriter, r *http.Request)
	// LogoutHandler handles session termination requests
	LogoutHandler func(w http.ResponseWriter, r *http.Request)
	LoginHandler  func(w http.ResponseWriter, r *http.Request)

	revoked     *collection.SyncMap[string, time.Time]
	meCalls     atomic.Int64
	logoutCalls atomic.Int64
	loginCalls  atomic.Int64
}

// Option represents service option
type Option func(s *IdentityService)

// WithAccount registers an account
func WithAccount(account *Account) Option {
	return func(s *IdentityService) {
		s.Accounts = append(s.Accounts, account)
	}
}

// WithTokenTTL sets issued token lifetime
func WithTokenTTL(ttl time.Duration) Option {
	return func(s *IdentityService) {
		s.TokenTTL = ttl
	}
}

// NewIdentityService creates a new mock identity service
func NewIdentityService(opts ...Option) (*IdentityService, error) {
	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("failed to generate secret: %v", err)
	}
	service := &IdentityService{
		Secret:   secret,
		TokenTTL: time.Hour,
		revoked:  collection.NewSyncMap[string, time.Time](),
	}
	for _, opt := range opts {
		opt(service)
	}
	if len(service.Accounts) == 0 {
		service.Accounts = []*Account{{ID: 1, Name: "A", Email: "a@example.com", Password: "secret"}}
	}
	return service, nil
}

// Register registers HTTP handlers for all mock endpoints onto the given ServeMux.
func (s *IdentityService) Register(mux *http.ServeMux) {
	mux.Handle("/", &Handler{Service: s})
}

// Handler returns an http.Handler for all mock endpoints, suitable for any HTTP server.
func (s *IdentityService) Handler() http.Handler {
	mux := http.NewServeMux()
	s.Register(mux)
	return mux
}

// MeCalls returns number of "who am I" requests received
func (s *IdentityService) MeCalls() int {
	return int(s.meCalls.Load())
}

// LogoutCalls returns number of logout requests received
func (s *IdentityService) LogoutCalls() int {
	return int(s.logoutCalls.Load())
}

// LoginCalls returns number of login requests received
func (s *IdentityService) LoginCalls() int {
	return int(s.loginCalls.Load())
}

// Revoked returns true if token id was revoked by logout
func (s *IdentityService) Revoked(tokenID string) bool {
	_, ok := s.revoked.Get(tokenID)
	return ok
}

// RevokedCount returns number of revoked tokens
func (s *IdentityService) RevokedCount() int {
	return s.revoked.Len()
}

// revoke records tokenID and prunes entries revoked more than TokenTTL ago;
// their tokens have expired and fail validation anyway.
func (s *IdentityService) revoke(tokenID string) {
	now := time.Now()
	if s.TokenTTL > 0 {
		cutoff := now.Add(-s.TokenTTL)
		s.revoked.Range(func(key string, revokedAt time.Time) bool {
			if revokedAt.Before(cutoff) {
				s.revoked.Delete(key)
			}
			return true
		})
	}
	s.revoked.Put(tokenID, now)
}

func (s *IdentityService) account(email string) *Account {
	for _, candidate := range s.Accounts {
		if candidate.Email == email {
			return candidate
		}
	}
	return nil
}

func (s *IdentityService) accountByID(id int) *Account {
	for _, candidate := range s.Accounts {
		if candidate.ID == id {
			return candidate
		}
	}
	return nil
}

func (a *Account) user() map[string]interface{} {
	return map[string]interface{}{"id": a.ID, "name": a.Name, "email": a.Email}
}
