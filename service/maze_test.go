package service

import (
	"context"
	"errors"
	"testing"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMazeService(t *testing.T) {
	ctx := context.Background()

	t.Run("Requires a logger", func(t *testing.T) {
		_, err := NewMazeService(&MazeConfig{})
		assert.ErrorIs(t, err, ErrMissingLogger)
	})

	t.Run("Generates and caches", func(t *testing.T) {
		cache := newMemCache()
		svc, err := NewMazeService(&MazeConfig{Cache: cache, Logger: &memLogger{}})
		require.NoError(t, err)

		layout, err := svc.Generate(ctx, 3, 3, 42, true)
		require.NoError(t, err)
		assert.Equal(t, []int{9, 1, 7, 10, 12, 3, 12, 7, 14}, layout.Walls)
		assert.Equal(t, []maze.CellPosition{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}}, layout.Path)
		assert.Equal(t, 1, cache.sets)
		assert.Contains(t, cache.layouts, "maze:layout:3x3:42")

		again, err := svc.Generate(ctx, 3, 3, 42, false)
		require.NoError(t, err)
		assert.Equal(t, 1, cache.sets, "second call must be served from cache")
		assert.Nil(t, again.Path)
		assert.Equal(t, layout.Walls, again.Walls)
		assert.NotNil(t, cache.layouts["maze:layout:3x3:42"].Path, "cached copy keeps the path")
	})

	t.Run("Cache failure falls back to generation", func(t *testing.T) {
		cache := newMemCache()
		cache.getErr = errors.New("connection refused")
		log := &memLogger{}
		svc, err := NewMazeService(&MazeConfig{Cache: cache, Logger: log})
		require.NoError(t, err)

		layout, err := svc.Generate(ctx, 5, 5, 42, false)
		require.NoError(t, err)
		assert.Len(t, layout.Walls, 25)
		assert.NotEmpty(t, log.warnings)
	})

	t.Run("Works without cache", func(t *testing.T) {
		svc, err := NewMazeService(&MazeConfig{Logger: &memLogger{}})
		require.NoError(t, err)
		_, err = svc.Generate(ctx, 10, 10, 7, true)
		assert.NoError(t, err)
	})

	t.Run("Invalid input", func(t *testing.T) {
		svc, err := NewMazeService(&MazeConfig{Cache: newMemCache(), Logger: &memLogger{}})
		require.NoError(t, err)
		_, err = svc.Generate(ctx, 0, 10, 7, false)
		assert.ErrorIs(t, err, maze.ErrInvalidDimensions)
		_, err = svc.Generate(ctx, 10, 10, -3, false)
		assert.ErrorIs(t, err, maze.ErrInvalidSeed)
	})
}
