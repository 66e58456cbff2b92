package snapcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gemarathon/backend/xlsxstore"
	"github.com/go-redis/redis/v8"
)

const boardKey = "gemarathon:board:last_good"

// Redis keeps the snapshot in Redis so a restart (or a second replica)
// still has a last-known-good board to serve.
type Redis struct {
	client *redis.Client
}

func NewRedis(addr string) (*Redis, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}
	return &Redis{client: client}, nil
}

func (r *Redis) Put(ctx context.Context, board *xlsxstore.Board) error {
	payload, err := json.Marshal(board)
	if err != nil {
		return fmt.Errorf("failed to marshal board snapshot: %w", err)
	}
	if err := r.client.Set(ctx, boardKey, payload, 0).Err(); err != nil {
		return fmt.Errorf("failed to store board snapshot: %w", err)
	}
	return nil
}

func (r *Redis) Get(ctx context.Context) (*xlsxstore.Board, error) {
	payload, err := r.client.Get(ctx, boardKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read board snapshot: %w", err)
	}
	board := &xlsxstore.Board{}
	if err := json.Unmarshal(payload, board); err != nil {
		return nil, fmt.Errorf("failed to unmarshal board snapshot: %w", err)
	}
	return board, nil
}
