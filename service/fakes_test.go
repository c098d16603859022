package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/google/uuid"
)

type memLogger struct {
	sync.Mutex
	infos, warnings, errors []string
}

func (l *memLogger) Info(msg string)    { l.Lock(); l.infos = append(l.infos, msg); l.Unlock() }
func (l *memLogger) Warning(msg string) { l.Lock(); l.warnings = append(l.warnings, msg); l.Unlock() }
func (l *memLogger) Error(msg string)   { l.Lock(); l.errors = append(l.errors, msg); l.Unlock() }

type memUserRepo struct {
	users   map[uuid.UUID]*domain.User
	saveErr error
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[uuid.UUID]*domain.User)}
}

func (r *memUserRepo) Save(u *domain.User) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.users[u.ID] = u
	return nil
}

func (r *memUserRepo) ByID(id uuid.UUID) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUserRepo) ByUsername(username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

type memChallengeRepo struct {
	challenges map[uuid.UUID]*domain.Challenge
	saveErr    error
}

func newMemChallengeRepo() *memChallengeRepo {
	return &memChallengeRepo{challenges: make(map[uuid.UUID]*domain.Challenge)}
}

func (r *memChallengeRepo) Save(_ context.Context, c *domain.Challenge) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.challenges[c.ID] = c
	return nil
}

func (r *memChallengeRepo) ByID(_ context.Context, id uuid.UUID) (*domain.Challenge, error) {
	if c, ok := r.challenges[id]; ok {
		return c, nil
	}
	return nil, domain.ErrChallengeNotFound
}

func (r *memChallengeRepo) ByAuthor(_ context.Context, authorID uuid.UUID) ([]*domain.Challenge, error) {
	var result []*domain.Challenge
	for _, c := range r.challenges {
		if c.AuthorID == authorID {
			result = append(result, c)
		}
	}
	return result, nil
}

type memCache struct {
	layouts map[string]*maze.Layout
	gets    int
	sets    int
	getErr  error
}

func newMemCache() *memCache {
	return &memCache{layouts: make(map[string]*maze.Layout)}
}

func (c *memCache) Get(_ context.Context, key string) (*maze.Layout, error) {
	c.gets++
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.layouts[key], nil
}

func (c *memCache) Set(_ context.Context, key string, layout *maze.Layout, _ time.Duration) error {
	c.sets++
	c.layouts[key] = layout
	return nil
}

type memLeaderboard struct {
	boards map[string]map[string]float64
}

func newMemLeaderboard() *memLeaderboard {
	return &memLeaderboard{boards: make(map[string]map[string]float64)}
}

func (b *memLeaderboard) RecordBest(_ context.Context, board, member string, score float64) (float64, error) {
	if b.boards[board] == nil {
		b.boards[board] = make(map[string]float64)
	}
	if cur, ok := b.boards[board][member]; ok && cur <= score {
		return cur, nil
	}
	b.boards[board][member] = score
	return score, nil
}

func (b *memLeaderboard) sorted(board string) []i.ScoredMember {
	var members []i.ScoredMember
	for m, s := range b.boards[board] {
		members = append(members, i.ScoredMember{Member: m, Score: s})
	}
	sort.Slice(members, func(x, y int) bool {
		if members[x].Score == members[y].Score {
			return members[x].Member < members[y].Member
		}
		return members[x].Score < members[y].Score
	})
	return members
}

func (b *memLeaderboard) Rank(_ context.Context, board, member string) (int64, error) {
	for idx, m := range b.sorted(board) {
		if m.Member == member {
			return int64(idx), nil
		}
	}
	return 0, errors.New("member not ranked")
}

func (b *memLeaderboard) Top(_ context.Context, board string, n int64) ([]i.ScoredMember, error) {
	members := b.sorted(board)
	if int64(len(members)) > n {
		members = members[:n]
	}
	return members, nil
}

type staticTokenizer struct {
	claims map[string]interface{}
}

func (t *staticTokenizer) Generate(claims map[string]interface{}, _ time.Duration) (string, error) {
	t.claims = claims
	return "signed-token", nil
}

func (t *staticTokenizer) Decode(string) (map[string]interface{}, error) {
	return t.claims, nil
}
