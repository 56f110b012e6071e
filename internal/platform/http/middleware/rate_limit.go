package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"stock_input/internal/shared/ratelimiter"
)

// RateLimit はクライアントIP単位でリクエストを制限し、超過時は429を返します。
func RateLimit(l ratelimiter.RateLimiterInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.Allow(c.ClientIP()) {
			slog.Warn("rate limit exceeded", "remote_addr", c.ClientIP(), "path", c.FullPath())
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
