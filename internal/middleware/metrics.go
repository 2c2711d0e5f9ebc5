package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/notably-dev/notably/internal/metrics"
)

// Metrics records prometheus counters for every request. The route template
// (ctx.FullPath) is used as the path label so note ids do not explode the
// label cardinality.
func Metrics() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		path := ctx.FullPath()
		if path == "" {
			path = "unmatched"
		}

		metrics.RequestsTotal.WithLabelValues(
			ctx.Request.Method,
			path,
			strconv.Itoa(ctx.Writer.Status()),
		).Inc()
		metrics.RequestDuration.Observe(time.Since(start).Seconds())
	}
}
