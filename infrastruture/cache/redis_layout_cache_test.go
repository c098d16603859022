package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisLayoutCache(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	cache := NewRedisLayoutCache(client)

	m, err := maze.New(3, 3, 42)
	require.NoError(t, err)
	layout, err := m.Layout(true)
	require.NoError(t, err)

	t.Run("Miss returns nil", func(t *testing.T) {
		got, err := cache.Get(ctx, "maze:layout:3x3:42")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Set then Get", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, "maze:layout:3x3:42", layout, time.Minute))

		got, err := cache.Get(ctx, "maze:layout:3x3:42")
		require.NoError(t, err)
		assert.Equal(t, layout, got)
		assert.Equal(t, time.Minute, mr.TTL("maze:layout:3x3:42"))
	})

	t.Run("Entry expires", func(t *testing.T) {
		mr.FastForward(2 * time.Minute)
		got, err := cache.Get(ctx, "maze:layout:3x3:42")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Corrupt entry is an error", func(t *testing.T) {
		require.NoError(t, mr.Set("maze:layout:1x1:1", "not json"))
		_, err := cache.Get(ctx, "maze:layout:1x1:1")
		assert.Error(t, err)
	})
}
