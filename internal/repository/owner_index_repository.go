package repository

import (
	"context"
	"fmt"

	"nft-ticket-ledger/internal/database"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// OwnerIndexRepository 持有者 → 票券 id 的索引，隨每次訂票遞增維護
type OwnerIndexRepository interface {
	ListTicketIDs(ctx context.Context, owner string) ([]int64, error)

	// Transaction methods
	Add(ctx context.Context, owner string, ticketID int64) error
}

type OwnerIndexRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewOwnerIndexRepository(pool *pgxpool.Pool) OwnerIndexRepository {
	return &OwnerIndexRepositoryImpl{
		pool: pool,
	}
}

func (r *OwnerIndexRepositoryImpl) Add(ctx context.Context, owner string, ticketID int64) error {
	query := `INSERT INTO owner_tickets (owner, ticket_id) VALUES ($1, $2)`

	if _, err := database.Conn(ctx, r.pool).Exec(ctx, query, owner, ticketID); err != nil {
		return fmt.Errorf("failed to index ticket %d: %w", ticketID, err)
	}
	return nil
}

func (r *OwnerIndexRepositoryImpl) ListTicketIDs(ctx context.Context, owner string) ([]int64, error) {
	query := `
		SELECT ticket_id
		FROM owner_tickets
		WHERE owner = $1
		ORDER BY ticket_id ASC
	`

	rows, err := database.Conn(ctx, r.pool).Query(ctx, query, owner)
	if err != nil {
		return nil, err
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []int64{}
	}
	return ids, nil
}
