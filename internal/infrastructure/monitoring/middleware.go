package monitoring

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// Middleware creates a Gin middleware for metrics collection
func Middleware(metrics *Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		method := c.Request.Method

		reqSize := c.Request.ContentLength
		if reqSize < 0 {
			reqSize = 0
		}

		c.Next()

		// Route template keeps label cardinality bounded
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		duration := time.Since(start)
		status := strconv.Itoa(c.Writer.Status())
		respSize := int64(c.Writer.Size())
		if respSize < 0 {
			respSize = 0
		}

		metrics.RecordHTTPRequest(method, path, status, duration, reqSize, respSize)
	}
}

// Timer measures command duration
type Timer struct {
	start   time.Time
	metrics *Metrics
	service string
	command string
}

// NewTimer creates a new timer
func NewTimer(metrics *Metrics, service, command string) *Timer {
	return &Timer{
		start:   time.Now(),
		metrics: metrics,
		service: service,
		command: command,
	}
}

// Stop stops the timer and records the duration. A nil metrics collector
// makes it a no-op.
func (t *Timer) Stop(status string) {
	if t.metrics == nil {
		return
	}
	t.metrics.RecordCommand(t.service, t.command, status, time.Since(t.start))
}
