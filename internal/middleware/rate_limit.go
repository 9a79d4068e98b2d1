// internal/middleware/rate_limit.go
package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type rateLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.RWMutex
	rate     rate.Limit
	burst    int
}

func newRateLimiter(r rate.Limit, burst int) *rateLimiter {
	return &rateLimiter{
		limiters: make(map[string]*rate.Limiter),
		rate:     r,
		burst:    burst,
	}
}

func (rl *rateLimiter) getLimiter(key string) *rate.Limiter {
	rl.mu.RLock()
	limiter, exists := rl.limiters[key]
	rl.mu.RUnlock()

	if !exists {
		rl.mu.Lock()
		limiter, exists = rl.limiters[key]
		if !exists {
			limiter = rate.NewLimiter(rl.rate, rl.burst)
			rl.limiters[key] = limiter
		}
		rl.mu.Unlock()
	}

	return limiter
}

// cleanupLimiters drops idle per-IP limiters so the map does not grow
// unbounded.
func (rl *rateLimiter) cleanupLimiters() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		for key, limiter := range rl.limiters {
			if limiter.Tokens() == float64(rl.burst) {
				delete(rl.limiters, key)
			}
		}
		rl.mu.Unlock()
	}
}

func rateLimitMiddleware(rl *rateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		limiter := rl.getLimiter(key)

		if !limiter.Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "Rate limit exceeded. Please try again later.",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// GeneralRateLimit allows 100 requests per minute per IP.
func GeneralRateLimit() gin.HandlerFunc {
	rl := newRateLimiter(rate.Every(time.Minute/100), 100)
	go rl.cleanupLimiters()
	return rateLimitMiddleware(rl)
}

// AuthRateLimit keeps brute force attempts against the token endpoints
// down to 5 per minute per IP.
func AuthRateLimit() gin.HandlerFunc {
	rl := newRateLimiter(rate.Every(time.Minute/5), 5)
	go rl.cleanupLimiters()
	return rateLimitMiddleware(rl)
}

// UploadRateLimit allows 10 uploads per minute per IP.
func UploadRateLimit() gin.HandlerFunc {
	rl := newRateLimiter(rate.Every(time.Minute/10), 10)
	go rl.cleanupLimiters()
	return rateLimitMiddleware(rl)
}
