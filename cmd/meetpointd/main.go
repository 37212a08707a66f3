// Command meetpointd runs the MeetPoint development server: an in-memory
// implementation of the backend REST contract for local development and
// end-to-end testing of the client.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/meetpoint/meetpoint-client/internal/api"
	"github.com/meetpoint/meetpoint-client/internal/api/store"
	"github.com/meetpoint/meetpoint-client/internal/infrastructure/config"
	"github.com/meetpoint/meetpoint-client/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.LoadServer()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	e := api.NewRouter(api.Options{
		Store:     store.NewMemory(),
		JWTSecret: cfg.JWTSecret,
		BasePath:  cfg.BasePath,
		Log:       log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("dev server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server stopped")
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		os.Exit(1)
	}
	log.Info().Msg("dev server stopped")
}
