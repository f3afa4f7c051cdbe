package testutil

import (
	"context"
	"testing"
	"time"

	"nft-ticket-ledger/config"
	"nft-ticket-ledger/internal/database"
	"nft-ticket-ledger/migrations"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// NewTestPool 連到測試 DB 並套用 migration，連不上時略過測試
func NewTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	cfg := config.LoadTestConfig()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pool, err := database.InitDatabase(ctx, &cfg.Database)
	if err != nil {
		t.Skipf("skipping Postgres integration tests: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := migrations.Apply(ctx, pool); err != nil {
		t.Fatalf("failed to apply migrations: %v", err)
	}

	ResetLedger(t, pool)
	return pool
}

// ResetLedger 清空帳本資料並將計數器歸零，保留 schema；instance id 一併清除，等同重建帳本
func ResetLedger(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	ctx := context.Background()

	if _, err := pool.Exec(ctx, "TRUNCATE owner_tickets, tickets, events, ledger_instance CASCADE"); err != nil {
		t.Fatalf("Failed to truncate tables: %v", err)
	}
	if _, err := pool.Exec(ctx, "UPDATE ledger_counters SET value = 0"); err != nil {
		t.Fatalf("Failed to reset counters: %v", err)
	}
}

// NewTestRedis 連到測試 Redis 並清空，連不上時略過測試
func NewTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	cfg := config.LoadTestConfig()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	rdb, err := database.InitRedis(ctx, &cfg.Redis)
	if err != nil {
		t.Skipf("skipping Redis integration tests: %v", err)
	}
	t.Cleanup(func() { _ = rdb.Close() })

	if err := rdb.FlushDB(ctx).Err(); err != nil {
		t.Fatalf("failed to flush redis: %v", err)
	}
	return rdb
}
