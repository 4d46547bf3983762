package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/moodpulse/internal/domain/dto"
	"github.com/guttosm/moodpulse/internal/logger"
)

// RequestLogger is a Gin middleware that logs method, path, status code,
// request latency, and request ID (if available).
//
// Behavior:
//   - Captures start time before request handling.
//   - After request is processed, calculates latency.
//   - Logs method, path, status, latency in ms, and request_id (if injected by RequestID()).
//
// Usage:
//
//	router := gin.New()
//	router.Use(middleware.RequestID(), middleware.RequestLogger())
//
// Example log output:
//
//	request_id=123e4567-e89b-12d3-a456-426614174000 method=POST path=/api/mood status=200 latency_ms=4
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Start timer
		start := time.Now()
		method := c.Request.Method
		path := c.Request.URL.Path

		// Process request
		c.Next()

		// Compute latency and get status
		latency := time.Since(start)
		status := c.Writer.Status()

		// Get request_id if available
		rid, _ := c.Get(RequestIDKey)

		// Structured JSON log; server errors at error level
		event := logger.L().Info()
		if status >= http.StatusInternalServerError {
			event = logger.L().Error()
		}
		event.
			Str("request_id", toString(rid)).
			Str("method", method).
			Str("path", path).
			Int("status", status).
			Int64("latency_ms", latency.Milliseconds()).
			Str("client_ip", c.ClientIP()).
			Msg("http_request")
	}
}

func toString(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

// client represents a rate-limited client with request count and last seen timestamp.
type client struct {
	lastSeen time.Time
	count    int
}

// Rate limiter state, guarded by rateLimiterLock.
var (
	clients         = make(map[string]*client)
	window          = time.Minute
	limit           = 60
	rateLimiterLock sync.Mutex
)

const maxTrackedClients = 4096

// evictStale drops clients idle for longer than the window. Caller holds rateLimiterLock.
func evictStale(now time.Time) {
	for ip, cl := range clients {
		if now.Sub(cl.lastSeen) > window {
			delete(clients, ip)
		}
	}
}

// SetRateLimit configures how many requests a client IP may make per minute.
// Non-positive values keep the current limit.
func SetRateLimit(perMinute int) {
	if perMinute <= 0 {
		return
	}
	rateLimiterLock.Lock()
	limit = perMinute
	window = time.Minute
	rateLimiterLock.Unlock()
}

// RateLimiter caps requests per client IP to the configured limit per window
// (SetRateLimit, default 60 per minute). Excess requests get 429 with a
// dto.ErrorResponse body.
//
// State is per process; replicas each count separately.
func RateLimiter() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		now := time.Now()

		rateLimiterLock.Lock()
		if len(clients) > maxTrackedClients {
			evictStale(now)
		}
		cl, ok := clients[ip]
		if !ok || now.Sub(cl.lastSeen) > window {
			cl = &client{lastSeen: now, count: 1}
			clients[ip] = cl
		} else {
			cl.count++
			cl.lastSeen = now
		}
		exceeded := cl.count > limit
		rateLimiterLock.Unlock()

		if exceeded {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.NewErrorResponse("rate limit exceeded", nil))
			return
		}

		c.Next()
	}
}
