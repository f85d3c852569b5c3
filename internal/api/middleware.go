package api

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// RequestLoggingMiddleware tags each request with an id and logs it.
// Bodies are not logged since they carry the user's product text.
func RequestLoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Header(requestIDHeader, requestID)

		started := time.Now()
		log.Printf("=== INCOMING REQUEST [%s] %s %s (%d bytes) ===",
			requestID, c.Request.Method, c.Request.URL.Path, c.Request.ContentLength)

		c.Next()

		log.Printf("=== RESPONSE [%s] Status: %d in %s ===",
			requestID, c.Writer.Status(), time.Since(started).Round(time.Millisecond))
	}
}
