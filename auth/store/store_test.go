package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisClient(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = rdb.Close()
		mr.Close()
	})
	return mr, rdb
}

func TestHolder_Lifecycle(t *testing.T) {
	ctx := context.Background()
	_, rdb := newRedisClient(t)

	var testCases = []struct {
		description string
		holder      Holder
	}{
		{description: "memory", holder: NewMemory()},
		{description: "file", holder: NewFile(t.TempDir())},
		{description: "redis", holder: NewRedis(rdb, "test:")},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			holder := testCase.holder
			_, ok, err := holder.Get(ctx)
			require.NoError(t, err)
			assert.False(t, ok, "empty holder")

			require.NoError(t, holder.Set(ctx, "abc123"))
			token, ok, err := holder.Get(ctx)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "abc123", token)

			require.NoError(t, holder.Set(ctx, "def456"))
			token, _, err = holder.Get(ctx)
			require.NoError(t, err)
			assert.Equal(t, "def456", token)

			require.NoError(t, holder.Remove(ctx))
			_, ok, err = holder.Get(ctx)
			require.NoError(t, err)
			assert.False(t, ok, "removed token")

			assert.NoError(t, holder.Remove(ctx), "removing absent token")
		})
	}
}

func TestNewMemory_WithToken(t *testing.T) {
	holder := NewMemory(WithToken("seed"))
	token, ok, err := holder.Get(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "seed", token)
}

func TestFileHolder_SurvivesRestart(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	require.NoError(t, NewFile(dir).Set(ctx, "persisted"))

	data, err := os.ReadFile(filepath.Join(dir, TokenKey))
	require.NoError(t, err)
	assert.Equal(t, "persisted", string(data))

	token, ok, err := NewFile(dir).Get(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "persisted", token)
}

func TestFileHolder_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, TokenKey), []byte{}, 0o600))
	_, ok, err := NewFile(dir).Get(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileHolder_PreservesTokenBytes(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	require.NoError(t, NewFile(dir).Set(ctx, " abc123\n"))
	token, ok, err := NewFile(dir).Get(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, " abc123\n", token)
}

func TestRedisHolder(t *testing.T) {
	ctx := context.Background()
	mr, rdb := newRedisClient(t)

	holder := NewRedis(rdb, "app:")
	assert.Equal(t, "app:auth_token", holder.Key())
	require.NoError(t, holder.Set(ctx, "shared"))
	value, err := mr.Get("app:auth_token")
	require.NoError(t, err)
	assert.Equal(t, "shared", value)

	token, ok, err := NewRedis(rdb, "app:").Get(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "shared", token)

	mr.Close()
	_, _, err = holder.Get(ctx)
	assert.ErrorIs(t, err, ErrRedisUnavailable)
}
