package leaderboard

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/robalobadob/wordle-tracker/internal/profile"
)

const (
	keyPrefix = "leaderboard:"
	namesKey  = "leaderboard:names"
)

// Redis keeps one sorted set per Kind (member = player id) and a hash of
// player id → username for display.
type Redis struct {
	client *redis.Client
}

// NewRedis connects and pings the server.
func NewRedis(ctx context.Context, addr, password string, db int) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return &Redis{client: client}, nil
}

func boardKey(kind Kind) string { return keyPrefix + string(kind) }

// Record writes p's current standings to every board in one transaction.
func (r *Redis) Record(ctx context.Context, p *profile.Profile) error {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, k := range Kinds {
			pipe.ZAdd(ctx, boardKey(k), &redis.Z{Score: score(p, k), Member: p.User.ID})
		}
		pipe.HSet(ctx, namesKey, p.User.ID, p.User.Username)
		return nil
	})
	if err != nil {
		return fmt.Errorf("record leaderboard for %s: %w", p.User.ID, err)
	}
	return nil
}

// Top returns the best limit players on kind, highest score first.
func (r *Redis) Top(ctx context.Context, kind Kind, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	members, err := r.client.ZRevRangeWithScores(ctx, boardKey(kind), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("read leaderboard %s: %w", kind, err)
	}
	out := make([]Entry, 0, len(members))
	if len(members) == 0 {
		return out, nil
	}

	ids := make([]string, len(members))
	for i, m := range members {
		ids[i], _ = m.Member.(string)
	}
	names, err := r.client.HMGet(ctx, namesKey, ids...).Result()
	if err != nil {
		return nil, fmt.Errorf("read leaderboard names: %w", err)
	}
	for i, m := range members {
		name, _ := names[i].(string)
		out = append(out, Entry{PlayerID: ids[i], Username: name, Score: m.Score, Rank: i + 1})
	}
	return out, nil
}

func (r *Redis) Close() error { return r.client.Close() }
