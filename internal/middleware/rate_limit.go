package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"asha-assistant/pkg/response"
)

// RateLimit sheds load with a per-client token bucket, keyed by the
// caller's IP. Buckets live in an LRU so idle clients age out.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		client := c.ClientIP()
		if !m.limiterFor(client).Allow() {
			m.l.Warnf(c.Request.Context(), "rate limit exceeded for %s: %s %s", client, c.Request.Method, c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, response.Resp{
				ErrorCode: http.StatusTooManyRequests,
				Message:   "Too many requests. Please slow down.",
			})
			return
		}
		c.Next()
	}
}

func (m Middleware) limiterFor(client string) *rate.Limiter {
	if lim, ok := m.limiters.Get(client); ok {
		return lim
	}
	lim := rate.NewLimiter(RateLimitPerSecond, RateLimitBurst)
	// Concurrent first requests from one client can race here; keep
	// whichever bucket landed first.
	if prev, ok, _ := m.limiters.PeekOrAdd(client, lim); ok {
		return prev
	}
	return lim
}
