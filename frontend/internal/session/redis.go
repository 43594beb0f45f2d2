package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gamefeed/gamefeed/shared/domain"
)

const redisKeyPrefix = "gamefeed:session:"

// RedisSnapshots stores session state as JSON under a per-session key
// that expires after ttl without writes.
type RedisSnapshots struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewRedisSnapshots(client redis.Cmdable, ttl time.Duration) *RedisSnapshots {
	return &RedisSnapshots{client: client, ttl: ttl}
}

// NewRedisClient connects to addr and checks the connection.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return rdb, nil
}

func (r *RedisSnapshots) Load(ctx context.Context, id string) (domain.RootState, bool, error) {
	data, err := r.client.Get(ctx, redisKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.RootState{}, false, nil
	}
	if err != nil {
		return domain.RootState{}, false, fmt.Errorf("load session %s: %w", id, err)
	}

	var state domain.RootState
	if err := json.Unmarshal(data, &state); err != nil {
		return domain.RootState{}, false, fmt.Errorf("decode session %s: %w", id, err)
	}
	return state, true, nil
}

func (r *RedisSnapshots) Save(ctx context.Context, id string, state domain.RootState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", id, err)
	}
	if err := r.client.Set(ctx, redisKeyPrefix+id, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("save session %s: %w", id, err)
	}
	return nil
}
