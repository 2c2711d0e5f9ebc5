package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/notably-dev/notably/internal/auth"
	"github.com/notably-dev/notably/internal/handlers"
	"github.com/notably-dev/notably/internal/middleware"
)

func New(h *handlers.Handler, validator auth.TokenValidator, allowedOrigins []string, logger zerolog.Logger) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.Metrics())
	r.Use(middleware.RequestLogger(logger))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.GET("/health", h.HealthCheck)

		users := api.Group("/users", middleware.AuthGate(validator))
		{
			users.GET("", h.ListUsers)
			users.POST("", h.CreateUser)
			users.PATCH("", h.UpdateUser)
			users.DELETE("", h.DeleteUser)
		}

		notes := api.Group("/notes", middleware.AuthGate(validator))
		{
			notes.GET("", h.ListNotes)
			notes.POST("", h.CreateNote)
			notes.PATCH("", h.UpdateNote)
			notes.DELETE("", h.DeleteNote)
			notes.GET("/:note", h.GetNote)
		}
	}

	return r
}
