package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookgen/internal/book"
	"bookgen/internal/generator"
	"bookgen/internal/httpx"
	"bookgen/internal/logging"
	"bookgen/internal/store"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	loadEnvFiles()
	cfg := loadConfig()
	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gen := generator.NewGenerator(generator.NewSynthesizer(), cfg.Workers)
	bookService := book.NewService(gen)

	deps := routerDeps{
		books:   book.NewHTTPHandler(bookService, cfg.MaxLimit),
		limiter: httpx.NewRateLimitMiddleware(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst, cfg.TrustedProxies...),
		cfg:     cfg,
	}
	if cfg.DBDSN != "" {
		dbPool := mustOpenDB(cfg.DBDSN)
		defer dbPool.Close()
		deps.db = dbPool
		deps.snapshots = book.NewSnapshotHandler(store.NewSnapshotPG(dbPool))
	}

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      newRouter(deps),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logging.Info().Str("addr", cfg.Addr).Strs("regions", gen.Regions()).Msg("starting server")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	logging.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("graceful shutdown failed")
	}
}

func mustOpenDB(dsn string) *pgxpool.Pool {
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		logging.Fatal().Err(err).Msg("cannot create db pool")
	}
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		logging.Fatal().Err(err).Str("dsn", redactDSN(dsn)).Msg("cannot ping database")
	}
	logging.Info().Msg("database connection OK")
	return pool
}
