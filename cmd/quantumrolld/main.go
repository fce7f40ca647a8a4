package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "github.com/randomtoy/quantum-roll/internal/adapters/http"
	"github.com/randomtoy/quantum-roll/internal/adapters/rng"
	"github.com/randomtoy/quantum-roll/internal/adapters/screens"
	"github.com/randomtoy/quantum-roll/internal/app"
	"github.com/randomtoy/quantum-roll/internal/config"
	"github.com/randomtoy/quantum-roll/internal/domain"
)

const shutdownTimeout = 10 * time.Second

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func main() {
	if err := run(); err != nil {
		slog.Error("quantumrolld exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	svc := app.NewRollService(
		screens.NewMemoryStore(),
		randomSource(cfg, logger),
		systemClock{},
		cfg.Range(),
		cfg.Timeline(),
		logger,
	)
	srv := httpadapter.NewServer(httpadapter.NewHandler(svc), logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", cfg.HTTPAddr, "range", cfg.Range(), "confetti", cfg.ConfettiCount)
		errc <- srv.Start(cfg.HTTPAddr)
	}()

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("draining connections", "timeout", shutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// randomSource is reproducible when a seed is configured.
func randomSource(cfg config.Config, logger *slog.Logger) domain.RNG {
	if cfg.RNGSeed == 0 {
		return rng.Std{}
	}
	logger.Info("using seeded random source", "seed", cfg.RNGSeed)
	return rng.NewSeeded(cfg.RNGSeed)
}
