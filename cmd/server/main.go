package main

import (
	"context"
	"errors"
	"log/slog"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/vncsmyrnk/nominate/internal/adapters/handler/http"
	"github.com/vncsmyrnk/nominate/internal/adapters/repository"
	"github.com/vncsmyrnk/nominate/internal/config"
	"github.com/vncsmyrnk/nominate/internal/core/services"
	"github.com/vncsmyrnk/nominate/internal/logging"
)

// @title        Nominate API
// @version      1.0
// @description  Polls with nominations, 1-10 scored voting and ranked results.
// @BasePath     /api
func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found")
	}

	cfg, err := config.Load("server", os.Args[1:])
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logger := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := repository.Open(ctx, cfg)
	if err != nil {
		slog.Error("database connection failed", "driver", cfg.Driver, "error", err)
		os.Exit(1)
	}
	defer store.Close()

	pollService := services.NewPollService(store.Polls, store.Nominations, store.Votes)
	voteService := services.NewVoteService(store.Votes)

	handler := http.NewHandler(
		http.NewPollHandler(pollService),
		http.NewVoteHandler(voteService),
		cfg.AllowedOrigins,
	)
	server := &stdhttp.Server{Addr: cfg.Addr, Handler: handler}

	go func() {
		slog.Info("listening", "addr", cfg.Addr, "driver", cfg.Driver)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("gracefully shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown failed", "error", err)
	}
}
