package service

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

type mockRedisEvaler struct {
	lastScript string
	lastKeys   []string
	lastArgs   []interface{}
	result     int64
	err        error
}

func (m *mockRedisEvaler) Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd {
	m.lastScript = script
	m.lastKeys = keys
	m.lastArgs = args
	cmd := redis.NewCmd(ctx)
	if m.err != nil {
		cmd.SetErr(m.err)
		return cmd
	}
	cmd.SetVal(m.result)
	return cmd
}

func TestRedisTopicRateLimiterAllow(t *testing.T) {
	t.Run("nil receiver fail-open", func(t *testing.T) {
		var l *redisTopicRateLimiter
		if !l.Allow("conv-1") {
			t.Fatalf("expected fail-open for nil limiter")
		}
	})

	t.Run("empty key denied", func(t *testing.T) {
		evaler := &mockRedisEvaler{result: 1}
		l := &redisTopicRateLimiter{client: evaler, window: time.Minute, max: 3, prefix: "topic:rl:"}
		if l.Allow("   ") {
			t.Fatalf("expected empty key denied")
		}
	})

	t.Run("under limit allowed", func(t *testing.T) {
		evaler := &mockRedisEvaler{result: 2}
		l := &redisTopicRateLimiter{client: evaler, window: time.Minute, max: 3, prefix: "topic:rl:"}
		if !l.Allow("conv-1") {
			t.Fatalf("expected allow under limit")
		}
		if len(evaler.lastKeys) != 1 || evaler.lastKeys[0] != "topic:rl:conv-1" {
			t.Fatalf("unexpected redis key %v", evaler.lastKeys)
		}
		if len(evaler.lastArgs) != 1 || evaler.lastArgs[0] != 60 {
			t.Fatalf("expected window seconds as arg, got %v", evaler.lastArgs)
		}
	})

	t.Run("over limit blocked", func(t *testing.T) {
		evaler := &mockRedisEvaler{result: 4}
		l := &redisTopicRateLimiter{client: evaler, window: time.Minute, max: 3, prefix: "topic:rl:"}
		if l.Allow("conv-1") {
			t.Fatalf("expected block over limit")
		}
	})

	t.Run("redis error fail-open", func(t *testing.T) {
		evaler := &mockRedisEvaler{err: errBoom}
		l := &redisTopicRateLimiter{client: evaler, window: time.Minute, max: 3, prefix: "topic:rl:"}
		if !l.Allow("conv-1") {
			t.Fatalf("expected fail-open on redis error")
		}
	})
}

func TestNewRedisTopicRateLimiterNilClient(t *testing.T) {
	if l := NewRedisTopicRateLimiter(nil, time.Minute, 3); l != nil {
		t.Fatalf("expected nil limiter without redis client")
	}
}
