package tokenstore

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

type redisKV interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RedisStore guarda el token bajo una clave de sesion con TTL igual a la vida del token.
type RedisStore struct {
	client  redisKV
	key     string
	maxAge  time.Duration
	timeout time.Duration
}

func NewRedisStore(client *redis.Client, sessionKey string, maxAge time.Duration) *RedisStore {
	if client == nil {
		return nil
	}
	return newRedisStore(client, sessionKey, maxAge)
}

func newRedisStore(client redisKV, sessionKey string, maxAge time.Duration) *RedisStore {
	if maxAge <= 0 {
		maxAge = DefaultMaxAge
	}
	sessionKey = strings.TrimSpace(sessionKey)
	if sessionKey == "" {
		sessionKey = "default"
	}
	return &RedisStore{
		client:  client,
		key:     "storefront:auth_token:" + sessionKey,
		maxAge:  maxAge,
		timeout: 500 * time.Millisecond,
	}
}

func (s *RedisStore) Token(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	val, err := s.client.Get(ctx, s.key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (s *RedisStore) SetToken(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return s.ClearToken(ctx)
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.client.Set(ctx, s.key, token, s.maxAge).Err()
}

func (s *RedisStore) ClearToken(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.client.Del(ctx, s.key).Err()
}
