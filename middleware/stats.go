package middleware

import (
	"strconv"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/seo-metapilot/backend/logging"
)

var requestCounter int64

// StatsMiddleware tracks clients and pipeline timings per request.
func StatsMiddleware(stats *logging.Statistics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		stats.TrackClient(c.ClientIP())

		c.Next()

		durationMs := float64(time.Since(start).Milliseconds())
		hasError := c.Writer.Status() >= 400

		switch {
		case c.FullPath() == "/api/generate" && c.Request.Method == "POST":
			usedFallback, _ := strconv.ParseBool(c.Writer.Header().Get("X-Used-Fallback"))
			stats.TrackGeneration(durationMs, usedFallback, hasError)
		case c.FullPath() == "/api/analyze" && c.Request.Method == "POST":
			stats.TrackAnalysis(durationMs, hasError)
		}

		// Persist every 100 requests; the save is asynchronous so the
		// request is not blocked.
		if atomic.AddInt64(&requestCounter, 1)%100 == 0 {
			go stats.Save()
		}
	}
}
