// Package migration applies the embedded goose migrations.
package migration

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/pressly/goose/v3"
)

//go:embed sql/*.sql
var embedded embed.FS

func newProvider(db *sql.DB) (*goose.Provider, error) {
	if db == nil {
		return nil, errors.New("nil database")
	}
	fsys, err := fs.Sub(embedded, "sql")
	if err != nil {
		return nil, fmt.Errorf("open migrations: %w", err)
	}
	p, err := goose.NewProvider(goose.DialectPostgres, db, fsys)
	if err != nil {
		return nil, fmt.Errorf("configure goose: %w", err)
	}
	return p, nil
}

// Ensure applies pending migrations. The provider is not closed because it
// would close db.
func Ensure(ctx context.Context, db *sql.DB, log *slog.Logger, dbHost string) error {
	if log == nil {
		log = slog.Default()
	}
	log = log.With("component", "database", "db_host", dbHost)
	start := time.Now()

	p, err := newProvider(db)
	if err != nil {
		log.Error("db migration failed", "event", "db_migration_failed", "error", err)
		return err
	}

	runCtx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	log.Info("applying migrations", "event", "db_migration_start", "sources", len(p.ListSources()))
	results, err := p.Up(runCtx)
	for _, r := range results {
		log.Info("migration applied",
			"event", "db_migration_step",
			"version", r.Source.Version,
			"path", r.Source.Path,
			"step_duration_ms", r.Duration.Milliseconds(),
		)
	}
	if err != nil {
		log.Error("db migration failed",
			"event", "db_migration_failed",
			"error", err,
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return fmt.Errorf("apply migrations: %w", err)
	}

	if len(results) == 0 {
		log.Info("schema up to date", "event", "db_migration_skip", "duration_ms", time.Since(start).Milliseconds())
		return nil
	}
	log.Info("migrations applied", "event", "db_migration_success", "applied", len(results),
		"duration_ms", time.Since(start).Milliseconds())
	return nil
}

// Versions returns the versions of the embedded migrations in order.
func Versions(db *sql.DB) ([]int64, error) {
	p, err := newProvider(db)
	if err != nil {
		return nil, err
	}
	sources := p.ListSources()
	out := make([]int64, 0, len(sources))
	for _, s := range sources {
		out = append(out, s.Version)
	}
	return out, nil
}
