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

type EventRepository interface {
	Create(ctx context.Context, event *model.Event) (*model.Event, error)
	List(ctx context.Context) ([]*model.Event, error)
	FindByID(ctx context.Context, id int64) (*model.Event, error)

	// Transaction methods
	FindByIDWithLock(ctx context.Context, id int64) (*model.Event, error)
	IncrementIssued(ctx context.Context, id int64) (int64, error)
}

type EventRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) EventRepository {
	return &EventRepositoryImpl{
		pool: pool,
	}
}

const eventColumns = `id, name, date, capacity, issued, created_at`

func scanEvent(row pgx.Row) (*model.Event, error) {
	var event model.Event
	err := row.Scan(
		&event.ID,
		&event.Name,
		&event.Date,
		&event.Capacity,
		&event.Issued,
		&event.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *EventRepositoryImpl) Create(ctx context.Context, event *model.Event) (*model.Event, error) {
	query := `
		INSERT INTO events (id, name, date, capacity, issued)
		VALUES ($1, $2, $3, $4, 0)
		RETURNING ` + eventColumns

	created, err := scanEvent(database.Conn(ctx, r.pool).QueryRow(ctx, query,
		event.ID, event.Name, event.Date, event.Capacity,
	))
	if err != nil {
		if database.IsCheckViolation(err) {
			return nil, apperrors.ErrInvalidArgument
		}
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return created, nil
}

func (r *EventRepositoryImpl) List(ctx context.Context) ([]*model.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY id ASC`

	rows, err := database.Conn(ctx, r.pool).Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]*model.Event, 0)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

func (r *EventRepositoryImpl) FindByID(ctx context.Context, id int64) (*model.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	event, err := scanEvent(database.Conn(ctx, r.pool).QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}

	return event, nil
}

func (r *EventRepositoryImpl) FindByIDWithLock(ctx context.Context, id int64) (*model.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1 FOR UPDATE`

	event, err := scanEvent(database.Conn(ctx, r.pool).QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}

	return event, nil
}

// IncrementIssued 發行數加一並回傳新值，已達上限時回傳 ErrCapacityExceeded
func (r *EventRepositoryImpl) IncrementIssued(ctx context.Context, id int64) (int64, error) {
	query := `
		UPDATE events
		SET issued = issued + 1
		WHERE id = $1 AND issued < capacity
		RETURNING issued
	`

	var issued int64
	err := database.Conn(ctx, r.pool).QueryRow(ctx, query, id).Scan(&issued)
	if err != nil {
		if err == pgx.ErrNoRows {
			return 0, apperrors.ErrCapacityExceeded
		}
		return 0, err
	}

	return issued, nil
}
