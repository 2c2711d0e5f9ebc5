package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func (h *Handler) HealthCheck(ctx *gin.Context) {
	status := "ok"
	storeStatus := "ok"

	if h.pinger != nil {
		if err := h.pinger.Ping(ctx.Request.Context()); err != nil {
			status = "degraded"
			storeStatus = err.Error()
		}
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":    status,
		"store":     storeStatus,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
