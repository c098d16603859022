package sortedstorage

import (
	"context"
	"errors"
	"time"

	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

var ErrNotRanked = errors.New("member is not on the leaderboard")

// RedisLeaderboard keeps the lowest score per member in Redis sorted sets.
type RedisLeaderboard struct {
	client *redis.Client
	locker *redsync.Redsync
	ttl    time.Duration
}

// NewRedisLeaderboard initializes a RedisLeaderboard. Boards expire after
// ttlSeconds of inactivity; zero disables expiry.
func NewRedisLeaderboard(client *redis.Client, ttlSeconds int) *RedisLeaderboard {
	board := &RedisLeaderboard{
		client: client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
	pool := goredis.NewPool(client)
	board.locker = redsync.New(pool)
	return board
}

// RecordBest stores score for member unless a lower score is already on the
// board. The compare and write run under a per-member lock.
func (rl *RedisLeaderboard) RecordBest(ctx context.Context, board, member string, score float64) (float64, error) {
	mutex := rl.locker.NewMutex(board + ":" + member + ":lock")
	if err := mutex.LockContext(ctx); err != nil {
		return 0, err
	}
	defer func() {
		// Released even when the request is gone.
		_, _ = mutex.UnlockContext(context.Background())
	}()

	current, err := rl.client.ZScore(ctx, board, member).Result()
	switch {
	case err == nil && current <= score:
		return current, nil
	case err != nil && !errors.Is(err, redis.Nil):
		return 0, err
	}

	if err := rl.client.ZAdd(ctx, board, redis.Z{Score: score, Member: member}).Err(); err != nil {
		return 0, err
	}

	if rl.ttl > 0 {
		_ = rl.client.Expire(ctx, board, rl.ttl).Err()
	}

	return score, nil
}

// Rank returns the 0-based position of member, lowest score first.
func (rl *RedisLeaderboard) Rank(ctx context.Context, board, member string) (int64, error) {
	rank, err := rl.client.ZRank(ctx, board, member).Result()
	if errors.Is(err, redis.Nil) {
		return 0, ErrNotRanked
	}
	return rank, err
}

// Top returns up to n members with the lowest scores.
func (rl *RedisLeaderboard) Top(ctx context.Context, board string, n int64) ([]i.ScoredMember, error) {
	if n <= 0 {
		return nil, nil
	}

	zs, err := rl.client.ZRangeWithScores(ctx, board, 0, n-1).Result()
	if err != nil {
		return nil, err
	}

	members := make([]i.ScoredMember, 0, len(zs))
	for _, z := range zs {
		member, ok := z.Member.(string)
		if !ok {
			continue
		}
		members = append(members, i.ScoredMember{Member: member, Score: z.Score})
	}
	return members, nil
}
