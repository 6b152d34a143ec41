package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"perf-bi/internal/adapter/demo"
	httpadapter "perf-bi/internal/adapter/http"
	"perf-bi/internal/adapter/memory"
	"perf-bi/internal/adapter/postgres"
	"perf-bi/internal/adapter/sheets"
	"perf-bi/internal/adapter/sqlite"
	"perf-bi/internal/adapter/usecase"
	"perf-bi/internal/config"
	"perf-bi/internal/config/configs"
	"perf-bi/internal/core/analytics"
	"perf-bi/internal/core/port"
	"perf-bi/internal/db"
	"perf-bi/internal/metrics"
)

// main loads configuration, wires the data source, the notes store and the
// dashboard use case, then serves HTTP until SIGINT/SIGTERM.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		}
		os.Exit(exitCode)
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}
	logger := cfg.Log.New(os.Stdout).With(slog.String("env", cfg.Env))
	slog.SetDefault(logger)

	loc, err := cfg.Report.Location()
	if err != nil {
		logger.Error("invalid report timezone", slog.Any("error", err))
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	m := metrics.New()

	source, err := newDataSource(cfg.Sheets, loc, logger, m)
	if err != nil {
		logger.Error("data source error", slog.Any("error", err))
		return
	}

	store, ready, closeStore, err := newStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("store error", slog.Any("error", err))
		return
	}
	defer closeStore()

	aliases := analytics.NewAliasTable(cfg.Report.OfferAliases, cfg.Report.OfferSuffixes, cfg.Report.FuzzyDistance).
		Known(cfg.Report.KnownOffers...)
	svc := usecase.NewDashboardUseCase(source, store, usecase.Options{
		Location: loc,
		Horizon:  cfg.Report.Horizon(),
		Aliases:  aliases,
		Strict:   cfg.Report.Strict,
		Cache:    cfg.Report.CacheResults,
		Logger:   logger,
		Metrics:  m,
	})

	handler := httpadapter.NewHandler(svc, logger, httpadapter.Options{
		Metrics:  m,
		Location: loc,
		Ready:    ready,
	})
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening",
			slog.Int("port", int(cfg.HTTP.Port)),
			slog.String("timezone", loc.String()),
			slog.String("store", cfg.Store.Kind()),
			slog.Int("aliases", aliases.Len()),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err = <-errCh:
		logger.Error("server error", slog.Any("error", err))
		return
	case <-ctx.Done():
	}

	shutdownCtx, stop := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer stop()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		return
	}
	logger.Info("server gracefully stopped")
	exitCode = 0
}

// newDataSource returns the sheets client, or the generated demo dataset
// when no base URL is configured.
func newDataSource(cfg configs.Sheets, loc *time.Location, logger *slog.Logger, m *metrics.Metrics) (port.DataSource, error) {
	if cfg.BaseURL == "" {
		logger.Warn("SHEETS_BASE_URL not set, serving demo data", slog.Int64("seed", cfg.DemoSeed))
		return demo.NewRolling(cfg.DemoSeed, func() time.Time { return time.Now().In(loc) }, 45), nil
	}
	return sheets.New(cfg, nil, logger, m)
}

// newStore opens the configured notes/flags backend. It returns the store,
// a readiness probe and a close func.
func newStore(ctx context.Context, cfg config.Config, logger *slog.Logger) (port.KVStore, func(context.Context) error, func(), error) {
	switch cfg.Store.Kind() {
	case configs.StorePostgres:
		if cfg.Psql.RunMigrations {
			if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
				return nil, nil, nil, fmt.Errorf("migrate postgres: %w", err)
			}
			logger.Info("migrations applied successfully")
		}
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("database connection: %w", err)
		}
		return postgres.NewKVRepository(pool), pool.Ping, pool.Close, nil
	case configs.StoreSQLite:
		conn, err := db.OpenSQLite(cfg.SQLite)
		if err != nil {
			return nil, nil, nil, err
		}
		return sqlite.NewKVStore(conn), conn.PingContext, closeDB(conn, logger), nil
	default:
		return memory.NewKVStore(), nil, func() {}, nil
	}
}

func closeDB(conn *sql.DB, logger *slog.Logger) func() {
	return func() {
		if err := conn.Close(); err != nil {
			logger.Error("close sqlite", slog.Any("error", err))
		}
	}
}
