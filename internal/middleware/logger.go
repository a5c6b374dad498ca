package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDKey is the gin context key the request id is stored under.
// Handlers reference it when correlating error logs with a request.
const RequestIDKey = "request_id"

// RequestIDHeader is the header the id is read from and echoed back on.
const RequestIDHeader = "X-Request-ID"

// Health checks poll every few seconds; logging them drowns out the
// requests that matter.
var unloggedPaths = map[string]bool{
	"/healthz": true,
	"/readyz":  true,
}

// RequestID attaches an id to the request, minting one when the client did
// not send its own.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set(RequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}

// Logger logs each request with method, path, status and latency, tagged
// with the request id so handler error logs line up with access logs.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		if unloggedPaths[c.Request.URL.Path] {
			return
		}

		requestID := c.GetString(RequestIDKey)
		log.Printf("middleware.Logger: %s %s %d (%s) request_id=%s",
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			time.Since(start),
			requestID,
		)
	}
}

// Recovery recovers from panics and returns a 500 error.
func Recovery() gin.HandlerFunc {
	return gin.Recovery()
}
