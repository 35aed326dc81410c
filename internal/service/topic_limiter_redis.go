package service

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisTopicAllowScript = `
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("EXPIRE", KEYS[1], ARGV[1])
end
return current
`

type redisTopicRateLimiter struct {
	client redisEvaler
	window time.Duration
	max    int
	prefix string
}

type redisEvaler interface {
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
}

// NewRedisTopicRateLimiter reparte el limite entre instancias usando un
// contador con expiracion en redis. Si redis no esta disponible en el
// arranque se devuelve nil y el servicio cae al limiter en memoria.
func NewRedisTopicRateLimiter(client *redis.Client, window time.Duration, max int) TopicRateLimiter {
	if client == nil {
		return nil
	}
	if window <= 0 {
		window = time.Minute
	}
	if max <= 0 {
		max = 1
	}
	return &redisTopicRateLimiter{
		client: client,
		window: window,
		max:    max,
		prefix: "topic:rl:",
	}
}

func (l *redisTopicRateLimiter) Allow(key string) bool {
	if l == nil || l.client == nil {
		return true
	}
	normalizedKey := strings.TrimSpace(key)
	if normalizedKey == "" {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	redisKey := l.prefix + normalizedKey
	seconds := int(l.window.Seconds())
	if seconds <= 0 {
		seconds = 60
	}
	count, err := l.client.Eval(ctx, redisTopicAllowScript, []string{redisKey}, seconds).Int()
	if err != nil {
		// Ante un fallo de redis se deja pasar: el limite protege cuota,
		// no seguridad.
		return true
	}
	return count <= l.max
}
