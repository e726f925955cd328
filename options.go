package authsession

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/viant/afs"
	"github.com/viant/authsession/navigation"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultServiceURL is the identity service used when none is configured
	DefaultServiceURL = "http://localhost:8000"
	defaultStoreDir   = ".authsession"
	// MemoryStore keeps the token in process only
	MemoryStore = "mem"
)

// Options defines options for configuring a session client.
type Options struct {
	ServiceURL     string `yaml:"serviceURL,omitempty" json:"serviceURL,omitempty" short:"s" long:"service" env:"AUTHSESSION_SERVICE_URL" description:"identity service base URL"`
	StoreURL       string `yaml:"storeURL,omitempty" json:"storeURL,omitempty" short:"S" long:"store" env:"AUTHSESSION_STORE_URL" description:"token store: mem, redis://host:port/db or a directory URL"`
	RedisPrefix    string `yaml:"redisPrefix,omitempty" json:"redisPrefix,omitempty" long:"redis-prefix" env:"AUTHSESSION_REDIS_PREFIX" description:"redis key prefix"`
	LandingRoute   string `yaml:"landingRoute,omitempty" json:"landingRoute,omitempty" short:"l" long:"landing" env:"AUTHSESSION_LANDING_ROUTE" description:"route visited after logout"`
	TimeoutSeconds int    `yaml:"timeoutSeconds,omitempty" json:"timeoutSeconds,omitempty" short:"t" long:"timeout" env:"AUTHSESSION_TIMEOUT" description:"identity service call timeout in seconds"`
	Debug          bool   `yaml:"debug,omitempty" json:"debug,omitempty" short:"d" long:"debug" description:"debug logging"`

	// Logger, Navigator and Registerer are wired programmatically.
	Logger     *slog.Logger          `yaml:"-" json:"-" no-flag:"true"`
	Navigator  navigation.Navigator  `yaml:"-" json:"-" no-flag:"true"`
	Registerer prometheus.Registerer `yaml:"-" json:"-" no-flag:"true"`
}

// Init sets defaults
func (o *Options) Init() {
	if o.ServiceURL == "" {
		o.ServiceURL = DefaultServiceURL
	}
	if o.StoreURL == "" {
		o.StoreURL = MemoryStore
		if home, err := os.UserHomeDir(); err == nil {
			o.StoreURL = filepath.Join(home, defaultStoreDir)
		}
	}
	if o.TimeoutSeconds <= 0 {
		o.TimeoutSeconds = 30
	}
	if o.Logger == nil {
		level := slog.LevelInfo
		if o.Debug {
			level = slog.LevelDebug
		}
		o.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	}
}

// Timeout returns identity call timeout
func (o *Options) Timeout() time.Duration {
	return time.Duration(o.TimeoutSeconds) * time.Second
}

// Merge fills empty fields from other
func (o *Options) Merge(other *Options) {
	if other == nil {
		return
	}
	if o.ServiceURL == "" {
		o.ServiceURL = other.ServiceURL
	}
	if o.StoreURL == "" {
		o.StoreURL = other.StoreURL
	}
	if o.RedisPrefix == "" {
		o.RedisPrefix = other.RedisPrefix
	}
	if o.LandingRoute == "" {
		o.LandingRoute = other.LandingRoute
	}
	if o.TimeoutSeconds == 0 {
		o.TimeoutSeconds = other.TimeoutSeconds
	}
	if !o.Debug {
		o.Debug = other.Debug
	}
}

// LoadOptions loads YAML options from any afs supported URL
func LoadOptions(ctx context.Context, URL string) (*Options, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load options %v: %w", URL, err)
	}
	ret := &Options{}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err = decoder.Decode(ret); err != nil {
		return nil, fmt.Errorf("failed to decode options %v: %w", URL, err)
	}
	return ret, nil
}
