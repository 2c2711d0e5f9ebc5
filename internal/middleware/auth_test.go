package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/notably-dev/notably/internal/auth"
	"github.com/notably-dev/notably/internal/middleware"
)

func gatedEngine(validator auth.TokenValidator) (*gin.Engine, *bool) {
	gin.SetMode(gin.TestMode)

	invoked := false
	r := gin.New()
	r.GET("/guarded", middleware.AuthGate(validator), func(ctx *gin.Context) {
		invoked = true
		ctx.Status(http.StatusOK)
	})

	return r, &invoked
}

func TestAuthGateCredentialExtraction(t *testing.T) {
	for _, tc := range []struct {
		name   string
		header string
		allow  bool
	}{
		{"bearer token", "Bearer abc123", true},
		{"any scheme works", "Token abc123", true},
		{"extra whitespace", "Bearer   abc123", true},
		{"missing header", "", false},
		{"scheme only", "Bearer", false},
		{"bare token without scheme", "abc123", false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			r, invoked := gatedEngine(auth.AllowAny{})

			req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}

			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if tc.allow {
				assert.Equal(t, http.StatusOK, w.Code)
				assert.True(t, *invoked)
			} else {
				assert.Equal(t, http.StatusUnauthorized, w.Code)
				assert.False(t, *invoked, "denied requests must not reach the handler")
				assert.JSONEq(t, `{"message":"Unauthorized"}`, w.Body.String())
			}
		})
	}
}

type denyAll struct{}

func (denyAll) Validate(string) bool { return false }

func TestAuthGateConsultsValidator(t *testing.T) {
	r, invoked := gatedEngine(denyAll{})

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer abc123")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, *invoked)
}
