package service_test

import (
	"context"
	"sync"
	"testing"

	"nft-ticket-ledger/internal/database"
	"nft-ticket-ledger/internal/model"
	"nft-ticket-ledger/internal/repository"
	"nft-ticket-ledger/internal/service"
	"nft-ticket-ledger/internal/testutil"
	apperrors "nft-ticket-ledger/pkg/app_errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postgresRepos(pool *pgxpool.Pool) service.Repositories {
	return service.Repositories{
		Tx:         database.NewTxManager(pool),
		Counters:   repository.NewCounterRepository(pool),
		Events:     repository.NewEventRepository(pool),
		Tickets:    repository.NewTicketRepository(pool),
		OwnerIndex: repository.NewOwnerIndexRepository(pool),
	}
}

func TestLedgerService_Postgres_Scenario(t *testing.T) {
	pool := testutil.NewTestPool(t)
	ctx := context.Background()
	ledger := service.NewLedgerService(postgresRepos(pool), nil, nil)

	event, err := ledger.CreateEvent(ctx, model.CreateEventParams{Name: "Concert", Date: "2025-01-01", Capacity: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(1), event.ID)

	_, err = ledger.BookTicket(ctx, 42, "A")
	assert.ErrorIs(t, err, apperrors.ErrEventNotFound)

	for _, want := range []int64{1, 2} {
		ticket, err := ledger.BookTicket(ctx, event.ID, "A")
		require.NoError(t, err)
		assert.Equal(t, want, ticket.ID)
	}

	_, err = ledger.BookTicket(ctx, event.ID, "B")
	assert.ErrorIs(t, err, apperrors.ErrCapacityExceeded)

	mine, err := ledger.GetMyTickets(ctx, "A")
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, mine)

	theirs, err := ledger.GetMyTickets(ctx, "B")
	require.NoError(t, err)
	assert.Equal(t, []int64{}, theirs)

	assert.NoError(t, ledger.AuditOwnerIndex(ctx, "A"))
}

func TestLedgerService_Postgres_ConcurrentBookings(t *testing.T) {
	pool := testutil.NewTestPool(t)
	ctx := context.Background()
	ledger := service.NewLedgerService(postgresRepos(pool), nil, nil)

	event, err := ledger.CreateEvent(ctx, model.CreateEventParams{Name: "Talk", Date: "2025-03-03", Capacity: 5})
	require.NoError(t, err)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		booked   []int64
		rejected int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ticket, err := ledger.BookTicket(ctx, event.ID, "A")
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				assert.ErrorIs(t, err, apperrors.ErrCapacityExceeded)
				rejected++
				return
			}
			booked = append(booked, ticket.ID)
		}()
	}
	wg.Wait()

	assert.Len(t, booked, 5)
	assert.Equal(t, 15, rejected)

	stored, err := ledger.GetEvent(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(5), stored.Issued)

	mine, err := ledger.GetMyTickets(ctx, "A")
	require.NoError(t, err)
	assert.ElementsMatch(t, booked, mine)
	assert.NoError(t, ledger.AuditOwnerIndex(ctx, "A"))
}
