package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const userTokenPrefix = "session:user"

var ErrRedisUnavailable = errors.New("redis unavailable")

// RedisStore keeps one token per user; logging in elsewhere replaces it.
type RedisStore struct {
	Client *redis.Client
}

func NewRedisStore(addr, password string, db int) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", addr, err)
	}
	return &RedisStore{Client: client}, nil
}

func userKey(userID int) string {
	return fmt.Sprintf("%s:%d", userTokenPrefix, userID)
}

func (s *RedisStore) Save(ctx context.Context, userID int, token string, ttl time.Duration) error {
	if err := s.Client.Set(ctx, userKey(userID), token, ttl).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	return nil
}

func (s *RedisStore) Active(ctx context.Context, userID int, token string) (bool, error) {
	stored, err := s.Client.Get(ctx, userKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	return stored == token, nil
}

func (s *RedisStore) Revoke(ctx context.Context, userID int) error {
	if err := s.Client.Del(ctx, userKey(userID)).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	if s == nil || s.Client == nil {
		return nil
	}
	return s.Client.Close()
}
