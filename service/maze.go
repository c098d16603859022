package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service/i"
)

const (
	layoutKeyFmt    = "maze:layout:%dx%d:%d"
	defaultCacheTTL = time.Hour
)

var ErrMissingLogger = errors.New("logger is required")

// MazeService generates maze layouts, caching them by dimensions and seed.
type MazeService struct {
	cache  i.LayoutCache
	ttl    time.Duration
	logger i.Logger
}

// MazeConfig configures a MazeService. Cache may be nil to disable caching.
type MazeConfig struct {
	Cache    i.LayoutCache
	CacheTTL time.Duration
	Logger   i.Logger
}

// NewMazeService creates a MazeService.
func NewMazeService(c *MazeConfig) (*MazeService, error) {
	if c.Logger == nil {
		return nil, ErrMissingLogger
	}

	ttl := c.CacheTTL
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}

	return &MazeService{
		cache:  c.Cache,
		ttl:    ttl,
		logger: c.Logger,
	}, nil
}

// Generate returns the layout for (cols, rows, seed). The solution path is
// included only when withPath is set.
func (s *MazeService) Generate(ctx context.Context, cols, rows, seed int, withPath bool) (*maze.Layout, error) {
	key := fmt.Sprintf(layoutKeyFmt, cols, rows, seed)

	if s.cache != nil {
		layout, err := s.cache.Get(ctx, key)
		if err != nil {
			s.logger.Warning(fmt.Sprintf("reading cached layout %s: %s", key, err))
		} else if layout != nil {
			return view(layout, withPath), nil
		}
	}

	m, err := maze.New(cols, rows, seed)
	if err != nil {
		return nil, err
	}

	layout, err := m.Layout(true)
	if err != nil {
		s.logger.Error(fmt.Sprintf("solving maze %s: %s", key, err))
		return nil, err
	}
	s.logger.Info(fmt.Sprintf("generated maze %s", key))

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, layout, s.ttl); err != nil {
			s.logger.Warning(fmt.Sprintf("caching layout %s: %s", key, err))
		}
	}

	return view(layout, withPath), nil
}

// view drops the path from a copy of layout unless withPath is set.
func view(layout *maze.Layout, withPath bool) *maze.Layout {
	if withPath {
		return layout
	}
	stripped := *layout
	stripped.Path = nil
	return &stripped
}
