package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/google/uuid"
)

const (
	leaderboardKeyFmt  = "leaderboard:challenge:%s"
	defaultBoardLength = 10
	maxBoardLength     = 100
	unknownUsername    = "unknown"
)

// Challenge errors.
var (
	ErrInvalidRoute       = errors.New("invalid route")
	ErrNonPositiveElapsed = errors.New("elapsed time must be positive")
)

// ChallengeService publishes challenges and keeps their leaderboards.
type ChallengeService struct {
	challenges i.ChallengeRepo
	users      i.UserRepo
	board      i.Leaderboard
	logger     i.Logger
}

// ChallengeConfig wires the dependencies of a ChallengeService.
type ChallengeConfig struct {
	Challenges  i.ChallengeRepo
	Users       i.UserRepo
	Leaderboard i.Leaderboard
	Logger      i.Logger
}

// NewChallengeService creates a ChallengeService.
func NewChallengeService(c *ChallengeConfig) (*ChallengeService, error) {
	if c.Logger == nil {
		return nil, ErrMissingLogger
	}
	if c.Challenges == nil || c.Users == nil || c.Leaderboard == nil {
		return nil, errors.New("challenge service needs challenge, user and leaderboard stores")
	}

	return &ChallengeService{
		challenges: c.Challenges,
		users:      c.Users,
		board:      c.Leaderboard,
		logger:     c.Logger,
	}, nil
}

// Create validates and stores a new challenge.
func (s *ChallengeService) Create(ctx context.Context, authorID uuid.UUID, title string, cols, rows, seed int) (*domain.Challenge, error) {
	challenge, err := domain.NewChallenge(domain.ChallengeConfig{
		ID:       uuid.New(),
		Title:    title,
		Cols:     cols,
		Rows:     rows,
		Seed:     seed,
		AuthorID: authorID,
	})
	if err != nil {
		return nil, err
	}

	if err := s.challenges.Save(ctx, challenge); err != nil {
		s.logger.Error(fmt.Sprintf("saving challenge %s: %s", challenge.ID, err))
		return nil, err
	}

	s.logger.Info(fmt.Sprintf("challenge %s created by %s: %dx%d seed %d", challenge.ID, authorID, cols, rows, seed))
	return challenge, nil
}

// ByID returns a stored challenge.
func (s *ChallengeService) ByID(ctx context.Context, id uuid.UUID) (*domain.Challenge, error) {
	return s.challenges.ByID(ctx, id)
}

// ByAuthor lists the challenges published by authorID, newest first.
func (s *ChallengeService) ByAuthor(ctx context.Context, authorID uuid.UUID) ([]*domain.Challenge, error) {
	return s.challenges.ByAuthor(ctx, authorID)
}

// SubmitRun checks a player's route against the challenge maze and records
// the elapsed time, keeping each player's best.
func (s *ChallengeService) SubmitRun(ctx context.Context, challengeID, userID uuid.UUID, route []maze.CellPosition, elapsed time.Duration) (*domain.RunResult, error) {
	if elapsed <= 0 {
		return nil, ErrNonPositiveElapsed
	}

	challenge, err := s.challenges.ByID(ctx, challengeID)
	if err != nil {
		return nil, err
	}

	m, err := challenge.Maze()
	if err != nil {
		s.logger.Error(fmt.Sprintf("rebuilding maze for challenge %s: %s", challengeID, err))
		return nil, err
	}

	if err := m.ValidateRoute(route); err != nil {
		s.logger.Warning(fmt.Sprintf("rejected run by %s on %s: %s", userID, challengeID, err))
		return nil, fmt.Errorf("%w: %w", ErrInvalidRoute, err)
	}

	solution, err := m.Solution()
	if err != nil {
		s.logger.Error(fmt.Sprintf("solving challenge %s: %s", challengeID, err))
		return nil, err
	}

	boardKey := fmt.Sprintf(leaderboardKeyFmt, challengeID)
	elapsedMs := elapsed.Milliseconds()
	if elapsedMs == 0 {
		elapsedMs = 1
	}

	best, err := s.board.RecordBest(ctx, boardKey, userID.String(), float64(elapsedMs))
	if err != nil {
		s.logger.Error(fmt.Sprintf("recording run for %s on %s: %s", userID, challengeID, err))
		return nil, err
	}

	rank, err := s.board.Rank(ctx, boardKey, userID.String())
	if err != nil {
		s.logger.Error(fmt.Sprintf("ranking %s on %s: %s", userID, challengeID, err))
		return nil, err
	}

	s.logger.Info(fmt.Sprintf("run by %s on %s: %d steps in %dms", userID, challengeID, len(route), elapsedMs))
	return &domain.RunResult{
		ChallengeID:    challengeID,
		UserID:         userID,
		Steps:          len(route),
		SolutionLength: len(solution),
		Efficiency:     float64(len(solution)) / float64(len(route)),
		ElapsedMs:      elapsedMs,
		BestMs:         int64(best),
		Rank:           rank + 1,
	}, nil
}

// Leaderboard returns the n fastest players of a challenge. n is clamped to
// [1, 100] and defaults to 10.
func (s *ChallengeService) Leaderboard(ctx context.Context, challengeID uuid.UUID, n int64) ([]domain.LeaderboardEntry, error) {
	if _, err := s.challenges.ByID(ctx, challengeID); err != nil {
		return nil, err
	}

	if n <= 0 {
		n = defaultBoardLength
	}
	n = min(n, maxBoardLength)

	top, err := s.board.Top(ctx, fmt.Sprintf(leaderboardKeyFmt, challengeID), n)
	if err != nil {
		s.logger.Error(fmt.Sprintf("reading leaderboard of %s: %s", challengeID, err))
		return nil, err
	}

	entries := make([]domain.LeaderboardEntry, 0, len(top))
	for idx, member := range top {
		id, err := uuid.Parse(member.Member)
		if err != nil {
			s.logger.Warning(fmt.Sprintf("Non-UUID value in leaderboard: %s", member.Member))
			continue
		}

		username := unknownUsername
		if user, err := s.users.ByID(id); err == nil {
			username = user.Username
		} else {
			s.logger.Warning(fmt.Sprintf("resolving leaderboard user %s: %s", id, err))
		}

		entries = append(entries, domain.LeaderboardEntry{
			Rank:      int64(idx) + 1,
			UserID:    id,
			Username:  username,
			ElapsedMs: int64(member.Score),
		})
	}

	return entries, nil
}
