package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const aiKeyPrefix = "rate_limit:ai"

// Quota is the outcome of one rate limit check.
type Quota struct {
	Allowed   bool
	Limit     int
	Remaining int
	Reset     time.Time
}

// RateLimiter counts calls per caller in fixed redis windows.
type RateLimiter struct {
	redis  *redis.Client
	prefix string
	limit  int
	window time.Duration
	now    func() time.Time
}

// NewAIRateLimiter allows limit calls per minute to the generative routes.
func NewAIRateLimiter(redisClient *redis.Client, limit int) *RateLimiter {
	return &RateLimiter{
		redis:  redisClient,
		prefix: aiKeyPrefix,
		limit:  limit,
		window: time.Minute,
		now:    time.Now,
	}
}

// rateLimitKey identifies the caller: the authenticated user, else the client IP.
func rateLimitKey(c *gin.Context) string {
	if id, ok := UserID(c); ok {
		return "user:" + id.String()
	}
	return "ip:" + c.ClientIP()
}

// RateLimitMiddleware rejects callers over their quota with 429. Requests
// pass unchecked when redis cannot be reached.
func (rl *RateLimiter) RateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		q, err := rl.Check(c.Request.Context(), rateLimitKey(c))
		if err != nil {
			log.Warn().Err(err).Str("path", c.FullPath()).Msg("rate limit check failed")
			c.Header("X-RateLimit-Error", "rate limit check failed")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(q.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(q.Remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(q.Reset.Unix(), 10))
		if q.Allowed {
			c.Next()
			return
		}

		retryAfter := int(q.Reset.Sub(rl.now()).Seconds()) + 1
		c.Header("Retry-After", strconv.Itoa(retryAfter))
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
			"error":       "Too many requests, please try again later",
			"retry_after": retryAfter,
		})
	}
}

// Check counts one call for caller in the current window.
func (rl *RateLimiter) Check(ctx context.Context, caller string) (Quota, error) {
	start := rl.now().Truncate(rl.window)
	key := rl.prefix + ":" + caller + ":" + strconv.FormatInt(start.Unix(), 10)

	var incr *redis.IntCmd
	_, err := rl.redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, rl.window)
		return nil
	})
	if err != nil {
		return Quota{}, err
	}

	count := int(incr.Val())
	return Quota{
		Allowed:   count <= rl.limit,
		Limit:     rl.limit,
		Remaining: max(rl.limit-count, 0),
		Reset:     start.Add(rl.window),
	}, nil
}
