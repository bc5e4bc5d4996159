package middleware

import (
	"context"
	"fmt"
	"time"

	"github.com/ariebrainware/tiny-erm/config"
	"github.com/ariebrainware/tiny-erm/util"
	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

const (
	defaultRateLimit  = 30
	defaultRateWindow = time.Minute
)

// RateLimitConfig holds configuration for rate limiting
type RateLimitConfig struct {
	Limit  int
	Window time.Duration
}

// RateLimiter allows Limit requests per Window for each client and route.
// With a Redis client configured the window is shared between instances;
// otherwise every client gets an in-process token bucket.
func RateLimiter(cfg RateLimitConfig) gin.HandlerFunc {
	if cfg.Limit <= 0 {
		cfg.Limit = defaultRateLimit
	}
	if cfg.Window <= 0 {
		cfg.Window = defaultRateWindow
	}
	local := newLocalLimiters(cfg)

	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		key := rateLimitKey(clientIP, c.Request.URL.Path)

		allowed, err := checkRateLimit(c.Request.Context(), key, cfg)
		if err != nil {
			log.Warn().Err(err).Str("ip", clientIP).Msg("rate limit check failed, using local limiter")
			allowed = local.allow(key)
		} else if config.GetRedisClient() == nil {
			allowed = local.allow(key)
		}

		if !allowed {
			log.Warn().Str("ip", clientIP).Str("path", c.Request.URL.Path).Msg("rate limit exceeded")
			util.CallTooManyRequests(c, util.APIErrorParams{
				Msg: "Too many requests. Please try again later.",
				Err: fmt.Errorf("rate limit exceeded"),
			})
			return
		}

		c.Next()
	}
}

func rateLimitKey(clientIP, path string) string {
	return fmt.Sprintf("ratelimit:%s:%s", path, clientIP)
}

// checkRateLimit counts the request in a fixed Redis window. Without Redis it
// allows everything and leaves the decision to the local limiter.
func checkRateLimit(ctx context.Context, key string, cfg RateLimitConfig) (bool, error) {
	rdb := config.GetRedisClient()
	if rdb == nil {
		return true, nil
	}

	count, err := rdb.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check rate limit: %w", err)
	}
	if count == 1 {
		if err := rdb.Expire(ctx, key, cfg.Window).Err(); err != nil {
			return false, fmt.Errorf("failed to set rate limit window: %w", err)
		}
	}
	return count <= int64(cfg.Limit), nil
}

// ResetRateLimit clears the Redis window of one client and route.
func ResetRateLimit(ctx context.Context, clientIP, path string) error {
	rdb := config.GetRedisClient()
	if rdb == nil {
		return fmt.Errorf("redis not available")
	}
	return rdb.Del(ctx, rateLimitKey(clientIP, path)).Err()
}

// localLimiters keeps one token bucket per key; idle buckets expire.
type localLimiters struct {
	buckets *cache.Cache
	every   rate.Limit
	burst   int
}

func newLocalLimiters(cfg RateLimitConfig) *localLimiters {
	return &localLimiters{
		buckets: cache.New(2*cfg.Window, 4*cfg.Window),
		every:   rate.Every(cfg.Window / time.Duration(cfg.Limit)),
		burst:   cfg.Limit,
	}
}

func (l *localLimiters) allow(key string) bool {
	if v, ok := l.buckets.Get(key); ok {
		limiter := v.(*rate.Limiter)
		l.buckets.SetDefault(key, limiter)
		return limiter.Allow()
	}
	limiter := rate.NewLimiter(l.every, l.burst)
	if err := l.buckets.Add(key, limiter, cache.DefaultExpiration); err != nil {
		// Another request created the bucket first.
		if v, ok := l.buckets.Get(key); ok {
			limiter = v.(*rate.Limiter)
		}
	}
	return limiter.Allow()
}
