package ratelimit

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// incrWindowScript atomically counts a request in a fixed window and
// returns the count. The key expires with the window.
var incrWindowScript = redis.NewScript(`
	local current = redis.call('INCR', KEYS[1])
	if current == 1 then
		redis.call('EXPIRE', KEYS[1], ARGV[1])
	end
	return current
`)

// RedisLimiter is a fixed-window per-IP limiter backed by redis, shared
// across processes.
type RedisLimiter struct {
	client  *redis.Client
	window  time.Duration
	maxReqs int
	prefix  string
}

// NewRedisLimiter creates a limiter allowing maxReqs requests per window
// per IP.
func NewRedisLimiter(client *redis.Client, window time.Duration, maxReqs int) *RedisLimiter {
	return &RedisLimiter{
		client:  client,
		window:  window,
		maxReqs: maxReqs,
		prefix:  "ratelimit:",
	}
}

// Allow counts a request for the IP and reports whether it is within the
// limit. Redis errors fail open so an unavailable redis cannot take down
// login.
func (l *RedisLimiter) Allow(ip string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	seconds := int(l.window.Seconds())
	result, err := incrWindowScript.Run(ctx, l.client, []string{l.prefix + ip}, seconds).Int()
	if err != nil {
		zap.L().Warn("rate limit check failed, allowing request", zap.Error(err))
		return true
	}

	return result <= l.maxReqs
}
