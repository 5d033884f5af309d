package integration_test

import (
	"context"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"invoicer/internal/pkg/postgres"
	"invoicer/pkg/logger/zap_adapter"
	"invoicer/pkg/querier"
)

var (
	querierInstance *querier.Querier
	querierOnce     sync.Once
)

// GetQuerier подключается к тестовому стору из STORE_TEST_DSN.
// Makefile подгружает .env.test, здесь godotenv не вызываем.
func GetQuerier() *querier.Querier {
	querierOnce.Do(func() {
		dsn := os.Getenv("STORE_TEST_DSN")

		ctx := context.Background()

		zapLogger, err := zap_adapter.NewZapAdapter()
		if err != nil {
			log.Fatalf("failed to initialize logger: %v", err)
		}
		defer func() {
			if err := zapLogger.Sync(); err != nil {
				log.Printf("failed to sync logger: %v", err)
			}
		}()

		connPool, err := postgres.NewConnPool(ctx, zapLogger, "test", dsn)
		if err != nil {
			panic(err)
		}

		querierInstance = querier.New(connPool)
	})

	return querierInstance
}

func SetupDB(t *testing.T, setupSql string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, `
		CREATE TABLE IF NOT EXISTS users (
			user_id   BIGSERIAL PRIMARY KEY,
			full_name TEXT,
			email     TEXT
		);
		CREATE TABLE IF NOT EXISTS shipments (
			id              BIGSERIAL PRIMARY KEY,
			user_id         BIGINT REFERENCES users (user_id),
			tracking_number TEXT NOT NULL
		);
	`)
	require.NoError(t, err)

	if setupSql == "" {
		return
	}

	_, err = GetQuerier().Exec(ctx, setupSql)
	require.NoError(t, err)
}

func TeardownDB(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, `
		TRUNCATE TABLE shipments, users RESTART IDENTITY CASCADE;
	`)
	require.NoError(t, err)
}
