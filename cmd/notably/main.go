package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/notably-dev/notably/db"
	"github.com/notably-dev/notably/internal/auth"
	"github.com/notably-dev/notably/internal/config"
	"github.com/notably-dev/notably/internal/handlers"
	"github.com/notably-dev/notably/internal/metrics"
	"github.com/notably-dev/notably/internal/router"
	"github.com/notably-dev/notably/internal/store/mongostore"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mongo, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to the document store")
	}

	metrics.Init()

	var validator auth.TokenValidator
	switch cfg.AuthMode {
	case config.AuthModeJWT:
		validator = auth.NewJWT(cfg.JWTSecret)
	default:
		validator = auth.AllowAny{}
	}

	h := handlers.New(
		mongostore.NewUsers(mongo.Users),
		mongostore.NewNotes(mongo.Notes),
		mongo,
		logger,
	)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router.New(h, validator, cfg.AllowedOrigins, logger),
	}

	go func() {
		logger.Info().Str("port", cfg.Port).Str("auth_mode", cfg.AuthMode).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("server shutdown failed")
	}

	if err := mongo.Disconnect(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("store disconnect failed")
	}
}
