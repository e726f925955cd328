package authsession

import (
	"context"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
	"github.com/viant/authsession/auth/identity"
	"github.com/viant/authsession/auth/store"
	"github.com/viant/authsession/session"
)

// Client bundles a session store with the identity service it verifies against.
type Client struct {
	Sessions *session.Store
	Identity *identity.Client
	Holder   store.Holder
	closer   func() error
}

// New creates a session client configured via Options.
func New(ctx context.Context, options *Options) (*Client, error) {
	options.Init()
	holder, closer, err := options.holder()
	if err != nil {
		return nil, err
	}
	identityClient := identity.New(options.ServiceURL, identity.WithTimeout(options.Timeout()))
	storeOptions := []session.Option{session.WithLogger(options.Logger)}
	if options.LandingRoute != "" {
		storeOptions = append(storeOptions, session.WithLandingRoute(options.LandingRoute))
	}
	if options.Registerer != nil {
		metrics, err := session.NewMetrics(options.Registerer)
		if err != nil {
			_ = closer()
			return nil, fmt.Errorf("failed to register metrics: %w", err)
		}
		storeOptions = append(storeOptions, session.WithMetrics(metrics))
	}
	sessions, err := session.New(ctx, holder, identityClient, options.Navigator, storeOptions...)
	if err != nil {
		_ = closer()
		return nil, err
	}
	return &Client{Sessions: sessions, Identity: identityClient, Holder: holder, closer: closer}, nil
}

// Login exchanges credentials for a token and establishes the session with it.
func (c *Client) Login(ctx context.Context, email, password string) error {
	result, err := c.Identity.Login(ctx, &identity.Credentials{Email: email, Password: password})
	if err != nil {
		return fmt.Errorf("failed to login: %w", err)
	}
	return c.Sessions.Establish(ctx, result.Token)
}

// Close releases store resources
func (c *Client) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer()
}

// holder creates the persistent token holder selected by StoreURL
func (o *Options) holder() (store.Holder, func() error, error) {
	nop := func() error { return nil }
	switch {
	case o.StoreURL == MemoryStore:
		return store.NewMemory(), nop, nil
	case strings.HasPrefix(o.StoreURL, "redis://"), strings.HasPrefix(o.StoreURL, "rediss://"):
		redisOptions, err := redis.ParseURL(o.StoreURL)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid redis store URL: %w", err)
		}
		client := redis.NewClient(redisOptions)
		return store.NewRedis(client, o.RedisPrefix), client.Close, nil
	}
	return store.NewFile(o.StoreURL), nop, nil
}
