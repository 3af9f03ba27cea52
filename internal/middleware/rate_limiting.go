package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// RateLimitMiddleware limits request rate per client IP.
func RateLimitMiddleware(manager *RateLimitManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if manager == nil || shouldBypassRateLimit(c.Request) {
			c.Next()
			return
		}

		limiter := manager.GetVisitor(c.ClientIP())
		if limiter == nil {
			c.Next()
			return
		}

		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "too many requests, please try again later",
			})
			return
		}
		c.Next()
	}
}

func shouldBypassRateLimit(r *http.Request) bool {
	if r == nil || r.URL == nil {
		return false
	}

	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		return false
	}

	path := r.URL.Path
	if strings.HasPrefix(path, "/static/") {
		return true
	}

	switch path {
	case "/health", "/metrics", "/favicon.ico":
		return true
	}

	return false
}
