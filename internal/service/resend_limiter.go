package service

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// ResendLimiter limita cuantos emails de verificacion se piden por direccion.
type ResendLimiter interface {
	Allow(ctx context.Context, email string) bool
}

const redisResendAllowScript = `
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("EXPIRE", KEYS[1], ARGV[1])
end
return current
`

type redisEvaler interface {
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
}

type redisResendLimiter struct {
	client redisEvaler
	window time.Duration
	max    int
	prefix string
}

// NewRedisResendLimiter devuelve nil sin cliente; el handler lo trata como "sin limite".
func NewRedisResendLimiter(client *redis.Client, window time.Duration, max int) ResendLimiter {
	if client == nil {
		return nil
	}
	return newRedisResendLimiter(client, window, max)
}

func newRedisResendLimiter(client redisEvaler, window time.Duration, max int) *redisResendLimiter {
	if window <= 0 {
		window = time.Minute
	}
	if max <= 0 {
		max = 1
	}
	return &redisResendLimiter{
		client: client,
		window: window,
		max:    max,
		prefix: "storefront:resend:",
	}
}

// Allow falla abierto si redis no responde: el backend sigue siendo quien decide.
func (l *redisResendLimiter) Allow(ctx context.Context, email string) bool {
	if l == nil || l.client == nil {
		return true
	}
	key := strings.ToLower(strings.TrimSpace(email))
	if key == "" {
		return false
	}
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()

	seconds := int(l.window.Seconds())
	if seconds <= 0 {
		seconds = 60
	}
	count, err := l.client.Eval(ctx, redisResendAllowScript, []string{l.prefix + key}, seconds).Int()
	if err != nil {
		return true
	}
	return count <= l.max
}
