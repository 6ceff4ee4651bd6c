package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ClassifyLimiter limita cuantas clasificaciones puede pedir un cliente por ventana.
type ClassifyLimiter interface {
	Allow(key string) bool
}

type memoryClassifyLimiter struct {
	mu     sync.Mutex
	window time.Duration
	max    int
	hits   map[string][]time.Time
}

// NewClassifyLimiter crea un rate limiter en memoria.
func NewClassifyLimiter(window time.Duration, max int) ClassifyLimiter {
	if max <= 0 {
		max = 1
	}
	if window <= 0 {
		window = time.Minute
	}
	return &memoryClassifyLimiter{
		window: window,
		max:    max,
		hits:   make(map[string][]time.Time),
	}
}

func (l *memoryClassifyLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := time.Now().UTC()
	cutoff := now.Add(-l.window)
	entries := l.hits[key]
	kept := entries[:0]
	for _, ts := range entries {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}
	if len(kept) >= l.max {
		l.hits[key] = kept
		return false
	}
	l.hits[key] = append(kept, now)
	return true
}

// redisClassifyWindowScript mantiene una ventana deslizante en un ZSET por
// cliente, igual que el limiter en memoria. Devuelve 1 si la pedida entra.
const redisClassifyWindowScript = `
local key = KEYS[1]
local now = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
local limit = tonumber(ARGV[3])
redis.call("ZREMRANGEBYSCORE", key, "-inf", now - window)
if redis.call("ZCARD", key) >= limit then
  return 0
end
redis.call("ZADD", key, now, ARGV[4])
redis.call("PEXPIRE", key, window)
return 1
`

type redisEvaler interface {
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
}

type redisClassifyLimiter struct {
	client redisEvaler
	window time.Duration
	max    int
	prefix string
	now    func() time.Time
}

// NewRedisClassifyLimiter comparte la ventana entre instancias via redis.
func NewRedisClassifyLimiter(client *redis.Client, window time.Duration, max int) ClassifyLimiter {
	if client == nil {
		return nil
	}
	if window <= 0 {
		window = time.Minute
	}
	if max <= 0 {
		max = 1
	}
	return &redisClassifyLimiter{
		client: client,
		window: window,
		max:    max,
		prefix: "fitstart:classify:window:",
		now:    time.Now,
	}
}

func (l *redisClassifyLimiter) Allow(clientIP string) bool {
	if l == nil || l.client == nil {
		return true
	}
	ip := strings.TrimSpace(clientIP)
	if ip == "" {
		return false
	}
	now := time.Now
	if l.now != nil {
		now = l.now
	}
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	allowed, err := l.client.Eval(ctx, redisClassifyWindowScript,
		[]string{l.prefix + ip},
		now().UnixMilli(), l.window.Milliseconds(), l.max, uuid.NewString(),
	).Int()
	if err != nil {
		// fail-open ante errores de redis.
		return true
	}
	return allowed == 1
}
