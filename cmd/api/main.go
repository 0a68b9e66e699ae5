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
	"github.com/rs/zerolog/log"

	"healthcube/internal/config"
	"healthcube/internal/database"
	"healthcube/internal/fooddata"
	"healthcube/internal/llmservice"
	"healthcube/internal/planner"
	"healthcube/internal/server"
)

func gracefulShutdown(apiServer *http.Server, done chan bool) {
	// Create context that listens for the interrupt signal from the OS.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	log.Info().Msg("shutting down gracefully, press Ctrl+C again to force")
	stop() // Allow Ctrl+C to force shutdown

	// The server has 5 seconds to finish the request it is currently handling.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := apiServer.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exiting")

	done <- true
}

func setupLogger(cfg config.Config) {
	zerolog.SetGlobalLevel(cfg.LogLevel)
	zerolog.TimeFieldFormat = time.RFC3339

	if cfg.LogFormat == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
	zerolog.DefaultContextLogger = &log.Logger
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	setupLogger(cfg)

	gateway, err := llmservice.NewGateway(cfg.LLM)
	if err != nil {
		log.Fatal().Err(err).Msg("could not initialize the model gateway")
	}

	matcher, err := fooddata.NewMatcher(0)
	if err != nil {
		log.Fatal().Err(err).Msg("could not initialize the food matcher")
	}

	store := database.NewService(cfg.BodyDataFile)
	defer store.Close()

	apiServer := server.NewServer(cfg, store, planner.NewService(gateway, matcher))

	done := make(chan bool, 1)
	go gracefulShutdown(apiServer, done)

	log.Info().
		Str("addr", apiServer.Addr).
		Str("provider", cfg.LLM.Provider).
		Str("model", cfg.LLM.Model).
		Str("body_data_file", cfg.BodyDataFile).
		Msg("Health Cube API listening")

	err = apiServer.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("http server error")
	}

	<-done
	log.Info().Msg("Graceful shutdown complete.")
}
