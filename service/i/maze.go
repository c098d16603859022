package i

import (
	"context"
	"time"

	"github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/google/uuid"
)

// MazeGenerator produces maze layouts from a seed.
type MazeGenerator interface {
	Generate(ctx context.Context, cols, rows, seed int, withPath bool) (*maze.Layout, error)
}

// ChallengeManager publishes challenges and scores runs through them.
type ChallengeManager interface {
	Create(ctx context.Context, authorID uuid.UUID, title string, cols, rows, seed int) (*domain.Challenge, error)
	ByID(ctx context.Context, id uuid.UUID) (*domain.Challenge, error)
	ByAuthor(ctx context.Context, authorID uuid.UUID) ([]*domain.Challenge, error)
	SubmitRun(ctx context.Context, challengeID, userID uuid.UUID, route []maze.CellPosition, elapsed time.Duration) (*domain.RunResult, error)
	Leaderboard(ctx context.Context, challengeID uuid.UUID, n int64) ([]domain.LeaderboardEntry, error)
}
