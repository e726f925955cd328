package authsession

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOptions(t *testing.T) {
	dir := t.TempDir()
	URL := filepath.Join(dir, "options.yaml")
	require.NoError(t, os.WriteFile(URL, []byte(`serviceURL: http://localhost:9000
storeURL: mem
landingRoute: /auth/login
timeoutSeconds: 5
`), 0o600))

	options, err := LoadOptions(context.Background(), URL)
	require.NoError(t, err)
	assert.Equal(t, &Options{
		ServiceURL:     "http://localhost:9000",
		StoreURL:       MemoryStore,
		LandingRoute:   "/auth/login",
		TimeoutSeconds: 5,
	}, options)

	require.NoError(t, os.WriteFile(URL, []byte("unknown: true\n"), 0o600))
	_, err = LoadOptions(context.Background(), URL)
	assert.Error(t, err)

	_, err = LoadOptions(context.Background(), filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestOptions_MergeAndInit(t *testing.T) {
	options := &Options{ServiceURL: "http://flag"}
	options.Merge(&Options{ServiceURL: "http://file", StoreURL: MemoryStore, TimeoutSeconds: 3, LandingRoute: "/home"})
	assert.Equal(t, "http://flag", options.ServiceURL)
	assert.Equal(t, MemoryStore, options.StoreURL)
	assert.Equal(t, "/home", options.LandingRoute)

	options.Init()
	assert.Equal(t, 3*time.Second, options.Timeout())
	assert.NotNil(t, options.Logger)

	defaults := &Options{}
	defaults.Init()
	assert.Equal(t, DefaultServiceURL, defaults.ServiceURL)
	assert.NotEmpty(t, defaults.StoreURL)
	assert.Equal(t, 30*time.Second, defaults.Timeout())
}

func TestNewServer(t *testing.T) {
	server, err := NewServer(&ServerOptions{Port: 18000})
	require.NoError(t, err)
	assert.Equal(t, ":18000", server.Addr)
	assert.NotNil(t, server.Handler)
}
