package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RunLock guards sync task runs so that only one process executes a given
// task at a time. Backed by Redis SETNX with a TTL so a crashed holder
// cannot leave the task locked forever.
type RunLock struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// NewRunLock creates a Redis-backed run lock
func NewRunLock(cfg RedisConfig, ttl time.Duration) (*RunLock, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RunLock{
		client:    client,
		keyPrefix: "sync:runlock:",
		ttl:       ttl,
	}, nil
}

// NewRunLockWithClient creates a run lock with an existing Redis client.
// Useful for testing or when sharing a client across components.
func NewRunLockWithClient(client *redis.Client, keyPrefix string, ttl time.Duration) *RunLock {
	if keyPrefix == "" {
		keyPrefix = "sync:runlock:"
	}
	return &RunLock{
		client:    client,
		keyPrefix: keyPrefix,
		ttl:       ttl,
	}
}

// Acquire attempts to take the lock for the named task.
// Returns true if this caller now holds the lock, false if another
// holder already has it.
func (l *RunLock) Acquire(ctx context.Context, taskName string) (bool, error) {
	key := l.keyPrefix + taskName

	ok, err := l.client.SetNX(ctx, key, "1", l.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire run lock for %s: %w", taskName, err)
	}

	return ok, nil
}

// Release frees the lock for the named task.
// Releasing a lock that is not held is not an error.
func (l *RunLock) Release(ctx context.Context, taskName string) error {
	key := l.keyPrefix + taskName

	if err := l.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to release run lock for %s: %w", taskName, err)
	}

	return nil
}

// Close closes the Redis client
func (l *RunLock) Close() error {
	return l.client.Close()
}
