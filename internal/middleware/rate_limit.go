package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sinding/booking-api/internal/pkg/logger"
	"github.com/sinding/booking-api/internal/pkg/response"
)

// RateLimitStore is the part of the redis client the limiter needs
type RateLimitStore interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
}

// RateLimiter is a fixed window per-IP limiter backed by redis
type RateLimiter struct {
	store  RateLimitStore
	prefix string
	limit  int
	window time.Duration
	now    func() time.Time
}

// NewRateLimiter allows limit requests per window for every client IP.
// A nil store or a non-positive limit disables limiting.
func NewRateLimiter(store RateLimitStore, prefix string, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		store:  store,
		prefix: prefix,
		limit:  limit,
		window: window,
		now:    time.Now,
	}
}

// Allow counts a request from ip and reports whether it is within the limit.
// Redis errors fail open.
func (rl *RateLimiter) Allow(ctx context.Context, ip string) (bool, time.Duration) {
	if rl == nil || rl.store == nil || rl.limit <= 0 {
		return true, 0
	}

	now := rl.now()
	windowStart := now.Truncate(rl.window)
	key := fmt.Sprintf("ratelimit:%s:%s:%d", rl.prefix, ip, windowStart.Unix())

	count, err := rl.store.Incr(ctx, key).Result()
	if err != nil {
		logger.LogWarn(ctx, "Rate limiter unavailable", "error", err.Error())
		return true, 0
	}
	if count == 1 {
		if err := rl.store.Expire(ctx, key, rl.window).Err(); err != nil {
			logger.LogWarn(ctx, "Rate limiter expire failed", "error", err.Error(), "key", key)
		}
	}

	if count > int64(rl.limit) {
		return false, windowStart.Add(rl.window).Sub(now)
	}
	return true, 0
}

// RateLimit returns middleware that limits requests per IP
func RateLimit(limiter *RateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := ClientIP(r)
			allowed, retryAfter := limiter.Allow(r.Context(), ip)
			if !allowed {
				logger.LogWarn(r.Context(), "Rate limit exceeded", "ip", ip, "path", r.URL.Path)
				secs := int(retryAfter.Seconds()) + 1
				w.Header().Set("Retry-After", strconv.Itoa(secs))
				response.TooManyRequests(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
