package authsession

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/authsession/auth/identity/mock"
	"github.com/viant/authsession/auth/store"
	"github.com/viant/authsession/navigation"
	"github.com/viant/authsession/session"
)

func TestNew(t *testing.T) {
	service, err := mock.NewHTTPTestIdentityService()
	require.NoError(t, err)
	defer service.Close()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	var testCases = []struct {
		description string
		storeURL    string
		holderType  interface{}
	}{
		{description: "memory", storeURL: MemoryStore},
		{description: "file", storeURL: t.TempDir(), holderType: &store.FileHolder{}},
		{description: "redis", storeURL: "redis://" + mr.Addr() + "/0", holderType: &store.RedisHolder{}},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			ctx := context.Background()
			recorder := &navigation.Recorder{}
			client, err := New(ctx, &Options{
				ServiceURL:   service.URL,
				StoreURL:     testCase.storeURL,
				LandingRoute: "/auth/login",
				Navigator:    recorder,
				Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
				Registerer:   prometheus.NewRegistry(),
			})
			require.NoError(t, err)
			defer client.Close()
			if testCase.holderType != nil {
				assert.IsType(t, testCase.holderType, client.Holder)
			}

			assert.Equal(t, session.Unauthenticated, client.Sessions.State().Phase)
			assert.Error(t, client.Login(ctx, "a@example.com", "wrong"))
			require.NoError(t, client.Login(ctx, "a@example.com", "secret"))
			require.True(t, client.Sessions.Verify(ctx))
			assert.Equal(t, "A", client.Sessions.User().Name())

			persisted, ok, err := client.Holder.Get(ctx)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, client.Sessions.Token(), persisted)

			require.NoError(t, client.Sessions.Terminate(ctx))
			assert.Equal(t, session.Unauthenticated, client.Sessions.State().Phase)
			assert.Equal(t, []string{"/auth/login"}, recorder.History())
		})
	}
}

func TestNew_InvalidRedisURL(t *testing.T) {
	_, err := New(context.Background(), &Options{StoreURL: "redis://host:port:bad/x", Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})
	assert.Error(t, err)
}
