package throttle

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/uwm-cs361-dev/course-staffing/backend/internal/config"
)

// Limiter gates repeated failed logins per username.
type Limiter interface {
	Allow(username string) (bool, error)
	RecordFailure(username string) error
	Reset(username string) error
}

// Redis counts failed attempts in a rolling window. Keys expire on their own,
// so a quiet account costs nothing.
type Redis struct {
	cfg    *config.Config
	client *redis.Client
}

func NewRedis(cfg *config.Config, client *redis.Client) *Redis {
	return &Redis{
		cfg:    cfg,
		client: client,
	}
}

func (r *Redis) key(username string) string {
	return fmt.Sprintf("login_attempts_%s", username)
}

func (r *Redis) operationContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), time.Duration(r.cfg.Redis.OperationTimeout)*time.Second)
}

func (r *Redis) Allow(username string) (bool, error) {
	ctx, cancel := r.operationContext()
	defer cancel()

	attempts, err := r.client.Get(ctx, r.key(username)).Int()
	if err != nil {
		if err == redis.Nil {
			return true, nil
		}
		return false, err
	}

	return attempts < r.cfg.Login.MaxAttempts, nil
}

func (r *Redis) RecordFailure(username string) error {
	ctx, cancel := r.operationContext()
	defer cancel()

	attempts, err := r.client.Incr(ctx, r.key(username)).Result()
	if err != nil {
		return err
	}
	if attempts == 1 {
		return r.client.Expire(ctx, r.key(username), time.Duration(r.cfg.Login.AttemptWindow)*time.Second).Err()
	}
	return nil
}

func (r *Redis) Reset(username string) error {
	ctx, cancel := r.operationContext()
	defer cancel()

	return r.client.Del(ctx, r.key(username)).Err()
}
