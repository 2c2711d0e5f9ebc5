package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RequestLogger records method, path, status and duration for requests
// touching the notes resource. Logging is observation only: it never
// changes the outcome of a request, and nothing should depend on whether
// a log line was written before or after the auth gate ran.
func RequestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if !strings.Contains(ctx.Request.URL.Path, "/api/notes") {
			ctx.Next()
			return
		}

		start := time.Now()
		ctx.Next()

		logger.Info().
			Str("method", ctx.Request.Method).
			Str("path", ctx.Request.URL.Path).
			Int("status", ctx.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	}
}
