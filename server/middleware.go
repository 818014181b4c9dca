package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/colbertgate/colbertgate/logger"
	"github.com/colbertgate/colbertgate/metrics"
	"github.com/colbertgate/colbertgate/tracer"
)

// apiKeyHeader is the fixed-name request header carrying the internal-route
// secret.
const apiKeyHeader = "X-API-Key"

// APIKeyAuth guards the internal routes. The caller-supplied key is compared
// for exact equality against the configured secret; mismatch or absence
// rejects the request with 403 before any further processing.
func APIKeyAuth(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader(apiKeyHeader) != key {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"detail": "Invalid or missing API key",
			})
			return
		}
		c.Next()
	}
}

// BearerAuth guards the OpenAI-compatible route. The Authorization header
// must carry exactly "Bearer <token>" with the configured token; a missing
// header, wrong scheme or token mismatch rejects with 401.
func BearerAuth(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		supplied, ok := strings.CutPrefix(auth, "Bearer ")
		if !ok || supplied != token {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"detail": "Invalid or missing bearer token",
			})
			return
		}
		c.Next()
	}
}

// RequestObserver logs each handled request and records it in Prometheus.
func RequestObserver(log *logger.Logger, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}
		status := c.Writer.Status()

		m.ObserveRequest(start, route, status)
		log.Info("request handled", nil, map[string]interface{}{
			"method":     c.Request.Method,
			"route":      route,
			"status":     status,
			"latency_ms": time.Since(start).Milliseconds(),
		})
	}
}

// TraceRequests opens one span per request and attaches it to the request
// context so the adapters' spans nest under it.
func TraceRequests(trc *tracer.Tracer) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := trc.StartSpan(c.Request.Context(), c.Request.Method+" "+c.FullPath())
		defer span.End()

		trc.SetAttributes(span, map[string]interface{}{
			"http.method": c.Request.Method,
			"http.target": c.Request.URL.Path,
		})

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		trc.SetAttributes(span, map[string]interface{}{
			"http.status_code": c.Writer.Status(),
		})
	}
}
