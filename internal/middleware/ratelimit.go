package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"campus-assistant/pkg/response"
)

// RateLimit enforces a per-user request budget. Unauthenticated requests are
// keyed by client IP. Runs after Auth so the scope is already set.
func (m Middleware) RateLimit() gin.HandlerFunc {
	perMin := m.config.Chat.RateLimitPerMin
	if perMin <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		key := c.ClientIP()
		if sc, ok := ScopeFromContext(c); ok {
			key = sc.UserID
		}

		limiter, ok := m.limiters.Get(key)
		if !ok {
			limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMin)), perMin)
			m.limiters.Add(key, limiter)
		}

		if !limiter.Allow() {
			response.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
