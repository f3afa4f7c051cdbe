package repository

import (
	"context"
	"fmt"

	"nft-ticket-ledger/internal/database"
	"nft-ticket-ledger/internal/model"
	apperrors "nft-ticket-ledger/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TicketRepository interface {
	FindByID(ctx context.Context, id int64) (*model.Ticket, error)
	// ListIDsByOwner 直接掃描票券紀錄，作為持有者索引的比對基準
	ListIDsByOwner(ctx context.Context, owner string) ([]int64, error)

	// Transaction methods
	Create(ctx context.Context, ticket *model.Ticket) (*model.Ticket, error)
}

type TicketRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewTicketRepository(pool *pgxpool.Pool) TicketRepository {
	return &TicketRepositoryImpl{
		pool: pool,
	}
}

func (r *TicketRepositoryImpl) Create(ctx context.Context, ticket *model.Ticket) (*model.Ticket, error) {
	query := `
		INSERT INTO tickets (id, event_id, owner)
		VALUES ($1, $2, $3)
		RETURNING id, event_id, owner, created_at
	`

	var created model.Ticket
	err := database.Conn(ctx, r.pool).QueryRow(ctx, query,
		ticket.ID, ticket.EventID, ticket.Owner,
	).Scan(
		&created.ID,
		&created.EventID,
		&created.Owner,
		&created.CreatedAt,
	)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to create ticket: %w", err)
	}

	return &created, nil
}

func (r *TicketRepositoryImpl) FindByID(ctx context.Context, id int64) (*model.Ticket, error) {
	query := `
		SELECT id, event_id, owner, created_at
		FROM tickets
		WHERE id = $1
	`

	var ticket model.Ticket
	err := database.Conn(ctx, r.pool).QueryRow(ctx, query, id).Scan(
		&ticket.ID,
		&ticket.EventID,
		&ticket.Owner,
		&ticket.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrTicketNotFound
		}
		return nil, err
	}

	return &ticket, nil
}

func (r *TicketRepositoryImpl) ListIDsByOwner(ctx context.Context, owner string) ([]int64, error) {
	query := `SELECT id FROM tickets WHERE owner = $1 ORDER BY id ASC`

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
