package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/adlamlearn/adlam-api/internal/catalog"
	"github.com/adlamlearn/adlam-api/internal/config"
	"github.com/adlamlearn/adlam-api/internal/domain/srs"
	"github.com/adlamlearn/adlam-api/internal/events"
	"github.com/adlamlearn/adlam-api/internal/platform/logger"
	"github.com/adlamlearn/adlam-api/internal/platform/postgres"
	"github.com/adlamlearn/adlam-api/internal/service/alphabet"
	"github.com/adlamlearn/adlam-api/internal/service/review"
	"github.com/adlamlearn/adlam-api/internal/store"
)

// application bundles the wired dependencies of the running server.
type application struct {
	cfg    *config.Config
	logger *slog.Logger
	pool   *pgxpool.Pool

	engine    *alphabet.Engine
	scheduler *review.Scheduler
}

// newApplication wires the full dependency graph: config, logger, preference
// store (postgres when a database URL is configured, in-memory otherwise),
// event emitter, and the two learning engines loaded with the built-in
// catalogs.
func newApplication(ctx context.Context, cfg *config.Config) (*application, error) {
	log := logger.Setup(cfg.Server)
	log.Info("configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"database_configured", cfg.Database.URL != "")

	app := &application{cfg: cfg, logger: log}

	var prefs store.PrefStore
	if cfg.Database.URL != "" {
		if err := postgres.Migrate(ctx, cfg.Database.URL, log); err != nil {
			return nil, err
		}

		pool, err := pgxpool.New(ctx, cfg.Database.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to create connection pool: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to ping database: %w", err)
		}
		app.pool = pool
		prefs = postgres.NewPrefStore(pool, log)
	} else {
		log.Warn("no database configured, learner state is in-memory only")
		prefs = store.NewMemoryPrefStore()
	}

	emitter := events.NewInMemoryEmitter(log)

	app.engine = alphabet.NewEngine(catalog.Alphabet(), prefs, emitter, log)

	app.scheduler = review.NewScheduler(srs.NewDefaultService(), prefs, emitter, log)
	if err := app.scheduler.InitializeCards(ctx, catalog.Vocabulary()); err != nil {
		app.close()
		return nil, fmt.Errorf("failed to initialize vocabulary cards: %w", err)
	}

	return app, nil
}

// close releases held resources.
func (app *application) close() {
	if app.pool != nil {
		app.pool.Close()
	}
}
