package tx

import (
	"context"
	"errors"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/avito-tech/go-transaction-manager/trm/manager"
	"github.com/avito-tech/go-transaction-manager/trm/settings"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"freightdesk/pkg/retrier"
	"freightdesk/pkg/retrier/backoff_adapter"
)

const (
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
)

// Manager runs callbacks inside a pgx transaction carried by the context.
// Serializable conflicts are retried with backoff since the whole callback is replayed.
type Manager struct {
	internal *manager.Manager
	retrier  retrier.Retrier
}

func New(db pgxv5.Transactional) *Manager {
	return &Manager{
		internal: manager.Must(pgxv5.NewDefaultFactory(db)),
		retrier: backoff_adapter.New(retrier.Config{
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     200 * time.Millisecond,
			MaxElapsedTime:  2 * time.Second,
			Randomization:   0.5,
			Multiplier:      2,
			ShouldRetry:     IsRetryable,
		}),
	}
}

func (m *Manager) execWithIsoLevel(
	ctx context.Context,
	level pgx.TxIsoLevel,
	fn func(ctx context.Context) error,
) error {
	txSettings := pgxv5.MustSettings(
		settings.Must(),
		pgxv5.WithTxOptions(pgx.TxOptions{IsoLevel: level}),
	)
	return m.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		return m.internal.DoWithSettings(ctx, txSettings, fn)
	})
}

// Do runs fn in a serializable transaction. A nested call joins the outer transaction.
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.execWithIsoLevel(ctx, pgx.Serializable, fn)
}

// IsRetryable reports whether err is a serialization failure or deadlock that a fresh
// transaction may not hit again.
func IsRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == codeSerializationFailure || pgErr.Code == codeDeadlockDetected
}
