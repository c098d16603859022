package i

import (
	"context"
	"time"

	"github.com/beka-birhanu/vinom-maze/maze"
)

// LayoutCache stores generated maze layouts.
type LayoutCache interface {
	// Get returns the cached layout, or (nil, nil) on a miss.
	Get(ctx context.Context, key string) (*maze.Layout, error)
	Set(ctx context.Context, key string, layout *maze.Layout, ttl time.Duration) error
}

// ScoredMember is a member of a sorted set with its score.
type ScoredMember struct {
	Member string
	Score  float64
}

// Leaderboard keeps the lowest score per member in named boards.
type Leaderboard interface {
	// RecordBest stores score for member unless a lower one is already
	// recorded, and returns the member's best score afterwards.
	RecordBest(ctx context.Context, board, member string, score float64) (float64, error)
	// Rank returns the 0-based position of member, lowest score first.
	Rank(ctx context.Context, board, member string) (int64, error)
	// Top returns up to n members, lowest score first.
	Top(ctx context.Context, board string, n int64) ([]ScoredMember, error)
}
