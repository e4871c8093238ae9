package migrations

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"freightdesk/pkg/logger"
)

//go:embed sql/*.sql
var embedded embed.FS

// Status is one row of the migration status report.
type Status struct {
	Version   int64
	Path      string
	Applied   bool
	AppliedAt time.Time
}

type Migrator struct {
	provider *goose.Provider
	log      logger.Logger
}

func New(pool *pgxpool.Pool, log logger.Logger) (*Migrator, error) {
	fsys, err := fs.Sub(embedded, "sql")
	if err != nil {
		return nil, fmt.Errorf("migrations fs: %w", err)
	}

	db := stdlib.OpenDBFromPool(pool)

	provider, err := goose.NewProvider(goose.DialectPostgres, db, fsys)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("goose provider: %w", err)
	}

	return &Migrator{
		provider: provider,
		log:      log,
	}, nil
}

func (m *Migrator) Up(ctx context.Context) error {
	results, err := m.provider.Up(ctx)
	for _, r := range results {
		m.logResult(r)
	}
	if err != nil {
		return fmt.Errorf("migrate up: %w", err)
	}

	if len(results) == 0 {
		m.log.Info("schema is up to date")
	}
	return nil
}

// Down rolls back the most recent migration only.
func (m *Migrator) Down(ctx context.Context) error {
	result, err := m.provider.Down(ctx)
	if result != nil {
		m.logResult(result)
	}
	if err != nil {
		return fmt.Errorf("migrate down: %w", err)
	}
	return nil
}

func (m *Migrator) Status(ctx context.Context) ([]Status, error) {
	statuses, err := m.provider.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("migrate status: %w", err)
	}

	result := make([]Status, 0, len(statuses))
	for _, s := range statuses {
		result = append(result, Status{
			Version:   s.Source.Version,
			Path:      s.Source.Path,
			Applied:   s.State == goose.StateApplied,
			AppliedAt: s.AppliedAt,
		})
	}
	return result, nil
}

// Close also closes the database handle opened over the pool.
func (m *Migrator) Close() error {
	if err := m.provider.Close(); err != nil {
		return fmt.Errorf("close goose provider: %w", err)
	}
	return nil
}

func (m *Migrator) logResult(r *goose.MigrationResult) {
	fields := []logger.Field{
		logger.NewField("version", r.Source.Version),
		logger.NewField("direction", r.Direction),
		logger.NewField("duration", r.Duration),
	}
	if r.Error != nil {
		m.log.Error("migration failed", append(fields, logger.NewField("error", r.Error))...)
		return
	}
	m.log.Info("migration applied", fields...)
}
