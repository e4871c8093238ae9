package querier

import (
	"context"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"freightdesk/pkg/logger"
)

// Querier runs statements on the transaction found in ctx, or on the pool outside one.
type Querier struct {
	pool   *pgxpool.Pool
	getter *pgxv5.CtxGetter

	log           logger.Logger
	slowThreshold time.Duration
}

type Option func(*Querier)

// WithSlowQueryLog warns about statements slower than threshold. For Query only the time
// to the first response is measured, not the row iteration.
func WithSlowQueryLog(log logger.Logger, threshold time.Duration) Option {
	return func(q *Querier) {
		q.log = log
		q.slowThreshold = threshold
	}
}

func New(pool *pgxpool.Pool, getter *pgxv5.CtxGetter, opts ...Option) *Querier {
	q := &Querier{
		pool:   pool,
		getter: getter,
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

func (q *Querier) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	defer q.observe(sql, time.Now())
	return q.get(ctx).Exec(ctx, sql, args...)
}

func (q *Querier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	defer q.observe(sql, time.Now())
	return q.get(ctx).Query(ctx, sql, args...)
}

func (q *Querier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return &timedRow{
		row:     q.get(ctx).QueryRow(ctx, sql, args...),
		started: time.Now(),
		done:    func(started time.Time) { q.observe(sql, started) },
	}
}

func (q *Querier) get(ctx context.Context) pgxv5.Tr {
	return q.getter.DefaultTrOrDB(ctx, q.pool)
}

func (q *Querier) observe(sql string, started time.Time) {
	if q.log == nil || q.slowThreshold <= 0 {
		return
	}
	if elapsed := time.Since(started); elapsed >= q.slowThreshold {
		q.log.Warn("slow query",
			logger.NewField("sql", sql),
			logger.NewField("duration", elapsed.String()),
		)
	}
}

// timedRow defers the measure to Scan, where pgx actually waits for the server.
type timedRow struct {
	row     pgx.Row
	started time.Time
	done    func(time.Time)
}

func (r *timedRow) Scan(dest ...any) error {
	defer r.done(r.started)
	return r.row.Scan(dest...)
}
