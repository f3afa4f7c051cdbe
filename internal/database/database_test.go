package database

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"nft-ticket-ledger/config"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestDSN(t *testing.T) {
	cfg := config.LoadTestConfig()

	dsn := DSN(&cfg.Database)

	assert.Equal(t, "host=localhost port=5433 user=postgres password=postgres dbname=test_db sslmode=disable timezone=UTC", dsn)
}

func TestTxFromContext_Empty(t *testing.T) {
	assert.Nil(t, TxFromContext(context.Background()))
}

func TestPgErrorClassifiers(t *testing.T) {
	wrap := func(code string) error {
		return fmt.Errorf("insert: %w", &pgconn.PgError{Code: code})
	}

	assert.True(t, IsUniqueViolation(wrap("23505")))
	assert.True(t, IsForeignKeyViolation(wrap("23503")))
	assert.True(t, IsCheckViolation(wrap("23514")))
	assert.False(t, IsUniqueViolation(wrap("23503")))
	assert.False(t, IsCheckViolation(errors.New("plain")))
}
