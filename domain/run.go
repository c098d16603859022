package domain

import "github.com/google/uuid"

// RunResult is the outcome of a validated run through a challenge.
type RunResult struct {
	ChallengeID    uuid.UUID `json:"challenge_id"`
	UserID         uuid.UUID `json:"user_id"`
	Steps          int       `json:"steps"`           // cells in the submitted route
	SolutionLength int       `json:"solution_length"` // cells in the shortest route
	Efficiency     float64   `json:"efficiency"`      // SolutionLength / Steps, 1 for a perfect run
	ElapsedMs      int64     `json:"elapsed_ms"`
	BestMs         int64     `json:"best_ms"`
	Rank           int64     `json:"rank"` // 1-based
}

// LeaderboardEntry is one row of a challenge leaderboard.
type LeaderboardEntry struct {
	Rank      int64     `json:"rank"`
	UserID    uuid.UUID `json:"user_id"`
	Username  string    `json:"username"`
	ElapsedMs int64     `json:"elapsed_ms"`
}
