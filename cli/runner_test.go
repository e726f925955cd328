package cli

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/authsession/auth/identity/mock"
	"github.com/viant/authsession/auth/store"
)

func newTestRunner(output *bytes.Buffer) *Runner {
	return New(context.Background(), output).WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestRunner_SessionLifecycle(t *testing.T) {
	service, err := mock.NewHTTPTestIdentityService()
	require.NoError(t, err)
	defer service.Close()
	storeDir := t.TempDir()
	common := []string{"-s", service.URL, "-S", storeDir}

	output := &bytes.Buffer{}
	err = newTestRunner(output).Run(append([]string{"login", "-e", "a@example.com", "-p", "secret"}, common...))
	require.NoError(t, err)
	assert.Contains(t, output.String(), `"isAuthenticated": true`)
	assert.Contains(t, output.String(), `"name": "A"`)

	persisted, ok, err := store.NewFile(storeDir).Get(context.Background())
	require.NoError(t, err)
	require.True(t, ok)

	output.Reset()
	require.NoError(t, newTestRunner(output).Run(append([]string{"verify"}, common...)))
	assert.Contains(t, output.String(), persisted)

	output.Reset()
	require.NoError(t, newTestRunner(output).Run(append([]string{"status"}, common...)))
	assert.Contains(t, output.String(), "state: authenticated-unverified")
	assert.Contains(t, output.String(), "subject: 1")

	output.Reset()
	require.NoError(t, newTestRunner(output).Run(append([]string{"logout"}, common...)))
	assert.Equal(t, "navigate: /\n", output.String())
	assert.Equal(t, 1, service.LogoutCalls())

	output.Reset()
	err = newTestRunner(output).Run(append([]string{"verify"}, common...))
	assert.ErrorIs(t, err, ErrNotAuthenticated)
	assert.Contains(t, output.String(), `"isAuthenticated": false`)
	assert.Equal(t, 2, service.MeCalls(), "no remote call without token")
}

func TestRunner_EstablishRejectedToken(t *testing.T) {
	service, err := mock.NewHTTPTestIdentityService()
	require.NoError(t, err)
	defer service.Close()
	storeDir := t.TempDir()
	common := []string{"-s", service.URL, "-S", storeDir}

	output := &bytes.Buffer{}
	require.NoError(t, newTestRunner(output).Run(append([]string{"establish", "abc123"}, common...)))
	assert.Contains(t, output.String(), `"token": "abc123"`)

	output.Reset()
	require.NoError(t, newTestRunner(output).Run(append([]string{"status"}, common...)))
	assert.Contains(t, output.String(), "token: opaque")

	output.Reset()
	err = newTestRunner(output).Run(append([]string{"verify"}, common...))
	assert.ErrorIs(t, err, ErrNotAuthenticated)
	assert.Contains(t, output.String(), "navigate: /")
	_, ok, err := store.NewFile(storeDir).Get(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRunner_ConfigFile(t *testing.T) {
	service, err := mock.NewHTTPTestIdentityService()
	require.NoError(t, err)
	defer service.Close()
	dir := t.TempDir()
	configURL := filepath.Join(dir, "authsession.yaml")
	require.NoError(t, os.WriteFile(configURL, []byte("serviceURL: "+service.URL+"\nstoreURL: "+dir+"\nlandingRoute: /auth/login\n"), 0o600))

	output := &bytes.Buffer{}
	require.NoError(t, newTestRunner(output).Run([]string{"login", "-c", configURL, "-e", "a@example.com", "-p", "secret"}))
	output.Reset()
	require.NoError(t, newTestRunner(output).Run([]string{"logout", "-c", configURL}))
	assert.Equal(t, "navigate: /auth/login\n", output.String())
}

func TestRunner_Serve(t *testing.T) {
	output := &bytes.Buffer{}
	runner := newTestRunner(output)
	var served *http.Server
	runner.serve = func(server *http.Server) error {
		served = server
		return nil
	}
	require.NoError(t, runner.Run([]string{"serve", "-p", "18080"}))
	require.NotNil(t, served)
	assert.Equal(t, ":18080", served.Addr)
	assert.Contains(t, output.String(), "listening on :18080")
}

func TestRunner_MissingCommand(t *testing.T) {
	assert.Error(t, newTestRunner(&bytes.Buffer{}).Run([]string{}))
}
