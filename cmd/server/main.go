// cmd/server/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/pucklab/rinkside/internal/config"
	"github.com/pucklab/rinkside/internal/nhl"
	"github.com/pucklab/rinkside/internal/prefs"
	"github.com/pucklab/rinkside/internal/scheduler"
	"github.com/pucklab/rinkside/internal/selection"
)

const shutdownTimeout = 30 * time.Second

func loadConfig() (*config.Config, error) {
	configPath := flag.String("config", "configs/config.yaml", "path to config file")
	flag.Parse()

	if _, err := os.Stat(*configPath); os.IsNotExist(err) {
		log.Warn().Str("path", *configPath).Msg("No config file found, using defaults")
		return config.Default(), nil
	}
	return config.Load(*configPath)
}

func setupLogger(environment string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	setupLogger(cfg.App.Environment)

	store, err := prefs.Open(cfg.Store.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open preference store")
	}
	defer store.Close()

	nhlClient := newNHLClient(cfg)

	sel := selection.New(store)
	sel.Subscribe(func(snap selection.Snapshot) {
		log.Info().
			Str("team", snap.Team.Abbreviation).
			Str("scheme", string(snap.Scheme)).
			Msg("Selection updated")
	})
	sel.Restore(context.Background())

	if err := scheduler.Init(); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize scheduler")
	}
	if err := scheduler.RegisterStandingsWarmJob(nhlClient); err != nil {
		log.Fatal().Err(err).Msg("Failed to register standings warm job")
	}
	if err := scheduler.Start(); err != nil {
		log.Fatal().Err(err).Msg("Failed to start scheduler")
	}

	server := newServer(cfg, nhlClient, sel)

	// Setup graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Int("port", cfg.App.Port).Msg("Starting server")
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		log.Info().Msg("Shutting down server")
		if err := scheduler.Stop(); err != nil {
			log.Error().Err(err).Msg("Scheduler shutdown failed")
		}
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown error: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("Server terminated with error")
		os.Exit(1)
	}
}

func newNHLClient(cfg *config.Config) *nhl.Client {
	opts := []nhl.Option{}
	if cfg.Upstream.BaseURL != "" {
		opts = append(opts, nhl.WithBaseURL(cfg.Upstream.BaseURL))
	}
	if ttl := cfg.CacheTTL(); ttl > 0 {
		opts = append(opts, nhl.WithCacheTTL(ttl))
	}
	if timeout := cfg.UpstreamTimeout(); timeout > 0 {
		opts = append(opts, nhl.WithHTTPClient(&http.Client{Timeout: timeout}))
	}
	return nhl.NewClient(opts...)
}
