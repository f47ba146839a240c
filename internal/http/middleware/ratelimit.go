package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/you/fitbyte/internal/observability"
)

// RateLimiter is a Redis fixed-window counter per client IP, shared by
// every instance pointing at the same Redis.
type RateLimiter struct {
	redisClient *redis.Client
	limit       int
	window      time.Duration
	log         *slog.Logger
	now         func() time.Time
}

// NewRateLimiter allows limit requests per window. A limit of zero or less disables it.
func NewRateLimiter(redisClient *redis.Client, limit int, window time.Duration, log *slog.Logger) *RateLimiter {
	if window <= 0 {
		window = time.Minute
	}
	return &RateLimiter{
		redisClient: redisClient,
		limit:       limit,
		window:      window,
		log:         log,
		now:         time.Now,
	}
}

// Limit returns a Gin middleware enforcing the limit under scope
func (rl *RateLimiter) Limit(scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.limit <= 0 || rl.redisClient == nil {
			c.Next()
			return
		}

		bucket := rl.now().UnixNano() / int64(rl.window)
		key := fmt.Sprintf("ratelimit:%s:%s:%d", scope, c.ClientIP(), bucket)
		ctx := c.Request.Context()

		count, err := rl.redisClient.Incr(ctx, key).Result()
		if err != nil {
			// fail open
			rl.log.Warn("rate limiter unavailable", "error", err)
			c.Next()
			return
		}
		if count == 1 {
			rl.redisClient.Expire(ctx, key, rl.window+time.Second)
		}

		if count > int64(rl.limit) {
			observability.RecordRateLimited()
			c.Header("Retry-After", fmt.Sprintf("%d", int(rl.window.Seconds())))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded, please try again later"})
			return
		}

		c.Next()
	}
}
