package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/croftbar/authd/internal/bootstrap"
	"github.com/croftbar/authd/internal/logger"
)

func main() {
	// Load .env if present; real environments set vars directly.
	_ = godotenv.Load()

	logger.Init()

	srv, cleanup, err := bootstrap.NewServer()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("bootstrap failed")
	}
	defer cleanup()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	serverErrors := make(chan error, 1)
	go func() {
		logger.Logger.Info().Str("addr", srv.Addr).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	select {
	case err := <-serverErrors:
		logger.Logger.Fatal().Err(err).Msg("server error")
	case sig := <-quit:
		logger.Logger.Info().Str("signal", sig.String()).Msg("starting graceful shutdown")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("server forced to shutdown")
		return
	}

	logger.Logger.Info().Msg("server stopped")
}
