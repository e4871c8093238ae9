package integration_test

import (
	"context"
	"log"
	"sync"
	"testing"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/stretchr/testify/require"

	"freightdesk/internal/pkg/config"
	"freightdesk/internal/pkg/migrations"
	"freightdesk/internal/pkg/postgres"
	"freightdesk/pkg/logger/zap_adapter"
	"freightdesk/pkg/querier"
	"freightdesk/pkg/tx"
)

const truncateAll = `TRUNCATE TABLE orders, courses, deliveries, products, users RESTART IDENTITY CASCADE;`

var (
	querierInstance   *querier.Querier
	txManagerInstance *tx.Manager
	suiteOnce         sync.Once
)

func setup() {
	cfg, err := config.LoadDatabase()
	if err != nil {
		log.Fatalf("integration tests need POSTGRES_* env: %v", err)
	}

	ctx := context.Background()

	zapLogger := zap_adapter.NewNop()

	connPool, err := postgres.NewConnPool(ctx, zapLogger, &cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}

	migrator, err := migrations.New(connPool, zapLogger)
	if err != nil {
		log.Fatalf("failed to init migrations: %v", err)
	}
	if err := migrator.Up(ctx); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	if _, err := connPool.Exec(ctx, truncateAll); err != nil {
		log.Fatalf("failed to clear demo seed: %v", err)
	}

	querierInstance = querier.New(connPool, pgxv5.DefaultCtxGetter)
	txManagerInstance = tx.New(connPool)
}

func GetQuerier() *querier.Querier {
	suiteOnce.Do(setup)
	return querierInstance
}

func GetTxManager() *tx.Manager {
	suiteOnce.Do(setup)
	return txManagerInstance
}

func SetupDB(t *testing.T, setupSql string) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if setupSql == "" {
		GetQuerier()
		return
	}

	_, err := GetQuerier().Exec(ctx, setupSql)
	require.NoError(t, err)
}

func TeardownDB(t *testing.T) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, truncateAll)
	require.NoError(t, err)
}
