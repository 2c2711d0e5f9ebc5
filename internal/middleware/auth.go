package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/notably-dev/notably/internal/auth"
)

// AuthGate rejects any request that does not carry an acceptable bearer
// credential. It runs once per request, before any handler; on denial the
// handler chain is aborted with a 401 and never executes.
func AuthGate(validator auth.TokenValidator) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		credential := extractCredential(ctx.GetHeader("Authorization"))

		if credential == "" || !validator.Validate(credential) {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		ctx.Next()
	}
}

// extractCredential pulls the token out of "<scheme> <token>". A missing
// header or a header without a second part yields the empty credential.
func extractCredential(header string) string {
	parts := strings.Fields(header)
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}
