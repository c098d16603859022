// Package mazeapi exposes maze generation, seed sharing and challenges over HTTP.
package mazeapi

import (
	"time"

	"github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/maze"
)

// MazeQuery selects a maze by its dimensions and seed.
type MazeQuery struct {
	Cols int  `form:"cols"`
	Rows int  `form:"rows"`
	Seed int  `form:"seed" binding:"required"`
	Path bool `form:"path"`
}

// ShareQuery selects the dimensions of a shared maze; the seed is in the path.
type ShareQuery struct {
	Cols int `form:"cols"`
	Rows int `form:"rows"`
}

// CreateChallengeRequest publishes a maze as a challenge.
type CreateChallengeRequest struct {
	Title string `json:"title" binding:"required"`
	Cols  int    `json:"cols" binding:"required"`
	Rows  int    `json:"rows" binding:"required"`
	Seed  int    `json:"seed" binding:"required"`
}

// ChallengeResponse describes a published challenge.
type ChallengeResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Cols      int       `json:"cols"`
	Rows      int       `json:"rows"`
	Seed      int       `json:"seed"`
	AuthorID  string    `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
	ShareURL  string    `json:"share_url"`
}

// SubmitRunRequest carries the route a player walked and how long it took.
type SubmitRunRequest struct {
	Route     []maze.CellPosition `json:"route" binding:"required"`
	ElapsedMs int64               `json:"elapsed_ms" binding:"required"`
}

// LeaderboardQuery limits the number of leaderboard rows.
type LeaderboardQuery struct {
	Limit int64 `form:"limit"`
}

// LeaderboardResponse lists the fastest runs of a challenge.
type LeaderboardResponse struct {
	ChallengeID string                    `json:"challenge_id"`
	Entries     []domain.LeaderboardEntry `json:"entries"`
}

func toChallengeResponse(c *domain.Challenge, publicURL string) *ChallengeResponse {
	return &ChallengeResponse{
		ID:        c.ID.String(),
		Title:     c.Title,
		Cols:      c.Cols,
		Rows:      c.Rows,
		Seed:      c.Seed,
		AuthorID:  c.AuthorID.String(),
		CreatedAt: c.CreatedAt,
		ShareURL:  shareURL(publicURL, c.Cols, c.Rows, c.Seed),
	}
}
