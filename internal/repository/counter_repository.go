package repository

import (
	"context"
	"fmt"

	"nft-ticket-ledger/internal/database"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CounterRepository interface {
	// Transaction methods
	Next(ctx context.Context, name string) (int64, error)
}

type CounterRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewCounterRepository(pool *pgxpool.Pool) CounterRepository {
	return &CounterRepositoryImpl{
		pool: pool,
	}
}

// Next 遞增並回傳計數器；UPDATE 會鎖住該列直到 transaction 結束
func (r *CounterRepositoryImpl) Next(ctx context.Context, name string) (int64, error) {
	query := `
		UPDATE ledger_counters
		SET value = value + 1
		WHERE name = $1
		RETURNING value
	`

	var value int64
	err := database.Conn(ctx, r.pool).QueryRow(ctx, query, name).Scan(&value)
	if err != nil {
		if err == pgx.ErrNoRows {
			return 0, fmt.Errorf("counter %q not seeded", name)
		}
		return 0, fmt.Errorf("failed to advance counter %s: %w", name, err)
	}

	return value, nil
}
