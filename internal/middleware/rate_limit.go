package middleware

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"genefit/internal/platform/logger"
	"genefit/internal/platform/respond"

	"github.com/redis/go-redis/v9"
)

// WindowCounter increments key and returns the count within the current window.
type WindowCounter interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

// RedisCounter is a fixed-window counter: INCR + EXPIRE in one MULTI.
type RedisCounter struct {
	client redis.Cmdable
}

func NewRedisCounter(client redis.Cmdable) *RedisCounter {
	return &RedisCounter{client: client}
}

func (c *RedisCounter) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	pipe := c.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return incr.Val(), nil
}

type RateLimitConfig struct {
	Limit     int
	Window    time.Duration
	KeyPrefix string
}

type RateLimiter struct {
	counter WindowCounter
	cfg     RateLimitConfig
	log     logger.Logger
	now     func() time.Time
}

func NewRateLimiter(counter WindowCounter, cfg RateLimitConfig, log logger.Logger) *RateLimiter {
	if cfg.Window <= 0 {
		cfg.Window = time.Minute
	}
	if cfg.Limit <= 0 {
		cfg.Limit = 120
	}
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = "ratelimit"
	}
	if log == nil {
		log = logger.Nop()
	}
	return &RateLimiter{counter: counter, cfg: cfg, log: log, now: time.Now}
}

// Handler limits per authenticated user, falling back to the client IP.
// A counter failure lets the request through.
func (rl *RateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		windowStart := rl.now().Truncate(rl.cfg.Window)
		reset := windowStart.Add(rl.cfg.Window)
		key := fmt.Sprintf("%s:%s:%d", rl.cfg.KeyPrefix, rl.subject(r), windowStart.Unix())

		count, err := rl.counter.Incr(r.Context(), key, rl.cfg.Window)
		if err != nil {
			rl.log.Warn("rate limit check failed", map[string]any{"err": err})
			next.ServeHTTP(w, r)
			return
		}

		remaining := rl.cfg.Limit - int(count)
		if remaining < 0 {
			remaining = 0
		}
		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rl.cfg.Limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(reset.Unix(), 10))

		if int(count) > rl.cfg.Limit {
			w.Header().Set("Retry-After", strconv.Itoa(int(reset.Sub(rl.now()).Seconds())+1))
			respond.Error(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) subject(r *http.Request) string {
	if uid, ok := UserID(r.Context()); ok {
		return "user:" + uid
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "ip:" + host
}
