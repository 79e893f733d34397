package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/neonauction/auction-server/internal/api"
	"github.com/neonauction/auction-server/internal/archive"
	"github.com/neonauction/auction-server/internal/auction"
	"github.com/neonauction/auction-server/internal/config"
	"github.com/neonauction/auction-server/internal/ws"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := zerolog.New(os.Stderr)
		bootLog.Fatal().Err(err).Msg("failed to load config")
	}

	log := newLogger(cfg.Environment)

	// Optional result archive
	var onCompleted func(auction.FinalResult)
	if cfg.DatabaseURL != "" {
		archiver, err := archive.Open(cfg.DatabaseURL, log)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to open archive database")
		}
		onCompleted = archiver.Archive
		log.Info().Msg("result archiving enabled")
	}

	hub := ws.NewHub(log)

	opts := auction.DefaultOptions()
	opts.DefaultTimerSeconds = cfg.DefaultTimerSeconds
	opts.BidIncrementLakhs = cfg.BidIncrementLakhs
	opts.BudgetLakhs = cfg.BudgetLakhs
	opts.ResolveDelay = cfg.ResolveDelay
	opts.SelectionTimeout = cfg.SelectionTimeout
	opts.IdleTTL = cfg.RoomIdleTTL

	store := auction.NewStore(opts, clockwork.NewRealClock(), hub, onCompleted, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	store.StartJanitor(ctx, cfg.JanitorInterval)

	router := api.NewRouter(store, hub, cfg, log)

	srv := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}
	log.Info().Msg("server stopped")
}

func newLogger(environment string) zerolog.Logger {
	if environment == "development" {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
			Level(zerolog.DebugLevel).
			With().Timestamp().Logger()
	}
	return zerolog.New(os.Stderr).Level(zerolog.InfoLevel).With().Timestamp().Logger()
}
