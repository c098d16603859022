// Package domain holds the entities persisted by the maze service.
package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/google/uuid"
)

const (
	minTitleLength = 3
	maxTitleLength = 60
)

// Challenge errors.
var (
	ErrInvalidTitle = errors.New("challenge title must be 3 to 60 characters")
	ErrInvalidMaze  = errors.New("challenge maze cannot be built")
)

// Challenge is a published maze that students race through. The seed and
// dimensions are enough to rebuild the exact layout.
type Challenge struct {
	ID        uuid.UUID `bson:"_id"`
	Title     string    `bson:"title"`
	Cols      int       `bson:"cols"`
	Rows      int       `bson:"rows"`
	Seed      int       `bson:"seed"`
	AuthorID  uuid.UUID `bson:"authorId"`
	CreatedAt time.Time `bson:"createdAt"`
}

// ChallengeConfig holds the parameters for a new Challenge.
type ChallengeConfig struct {
	ID       uuid.UUID
	Title    string
	Cols     int
	Rows     int
	Seed     int
	AuthorID uuid.UUID
}

// NewChallenge validates the title and checks that the maze can be built.
func NewChallenge(config ChallengeConfig) (*Challenge, error) {
	title := strings.TrimSpace(config.Title)
	if n := utf8.RuneCountInString(title); n < minTitleLength || n > maxTitleLength {
		return nil, ErrInvalidTitle
	}

	if _, err := maze.New(config.Cols, config.Rows, config.Seed); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMaze, err)
	}

	return &Challenge{
		ID:        config.ID,
		Title:     title,
		Cols:      config.Cols,
		Rows:      config.Rows,
		Seed:      config.Seed,
		AuthorID:  config.AuthorID,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// Maze rebuilds the challenge maze.
func (c *Challenge) Maze() (*maze.Maze, error) {
	return maze.New(c.Cols, c.Rows, c.Seed)
}

// ErrChallengeNotFound is returned by repositories when no challenge matches.
var ErrChallengeNotFound = errors.New("challenge not found")
