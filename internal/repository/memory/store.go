// Package memory 以記憶體實作帳本的 repository 介面。
// 單一 Store 內的所有轉換以 mutex 序列化，transaction 失敗時還原快照。
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"nft-ticket-ledger/internal/model"
	"nft-ticket-ledger/internal/repository"
	apperrors "nft-ticket-ledger/pkg/app_errors"
)

type txKey struct{}

type state struct {
	counters   map[string]int64
	events     map[int64]model.Event
	tickets    map[int64]model.Ticket
	ownerIndex map[string][]int64
}

func (s *state) clone() *state {
	c := &state{
		counters:   make(map[string]int64, len(s.counters)),
		events:     make(map[int64]model.Event, len(s.events)),
		tickets:    make(map[int64]model.Ticket, len(s.tickets)),
		ownerIndex: make(map[string][]int64, len(s.ownerIndex)),
	}
	for k, v := range s.counters {
		c.counters[k] = v
	}
	for k, v := range s.events {
		c.events[k] = v
	}
	for k, v := range s.tickets {
		c.tickets[k] = v
	}
	for k, v := range s.ownerIndex {
		c.ownerIndex[k] = append([]int64(nil), v...)
	}
	return c
}

type Store struct {
	mu  sync.Mutex
	st  *state
	now func() time.Time
}

func NewStore() *Store {
	return &Store{
		st: &state{
			counters:   map[string]int64{model.CounterEvent: 0, model.CounterTicket: 0},
			events:     make(map[int64]model.Event),
			tickets:    make(map[int64]model.Ticket),
			ownerIndex: make(map[string][]int64),
		},
		now: func() time.Time { return time.Now().UTC() },
	}
}

// WithTx 持有鎖執行 fn，fn 回傳錯誤或 panic 時將狀態還原為執行前的快照
func (s *Store) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.st.clone()
	committed := false
	// 在 Unlock 之前執行，其他 transaction 看不到半套狀態
	defer func() {
		if !committed {
			s.st = snapshot
		}
	}()

	if err := fn(context.WithValue(ctx, txKey{}, s)); err != nil {
		return err
	}
	committed = true
	return nil
}

// view 在 transaction 外呼叫時自行加鎖
func (s *Store) view(ctx context.Context, fn func(st *state) error) error {
	if ctx.Value(txKey{}) == nil {
		s.mu.Lock()
		defer s.mu.Unlock()
	}
	return fn(s.st)
}

func (s *Store) Counters() repository.CounterRepository { return counterRepo{s} }
func (s *Store) Events() repository.EventRepository { return eventRepo{s} }
func (s *Store) Tickets() repository.TicketRepository { return ticketRepo{s} }
func (s *Store) OwnerIndex() repository.OwnerIndexRepository { return ownerIndexRepo{s} }

type counterRepo struct{ s *Store }

func (r counterRepo) Next(ctx context.Context, name string) (int64, error) {
	var value int64
	err := r.s.view(ctx, func(st *state) error {
		current, ok := st.counters[name]
		if !ok {
			return fmt.Errorf("counter %q not seeded", name)
		}
		value = current + 1
		st.counters[name] = value
		return nil
	})
	return value, err
}

type eventRepo struct{ s *Store }

func (r eventRepo) Create(ctx context.Context, event *model.Event) (*model.Event, error) {
	var created model.Event
	err := r.s.view(ctx, func(st *state) error {
		if _, ok := st.events[event.ID]; ok {
			return fmt.Errorf("failed to create event: duplicate id %d", event.ID)
		}
		created = model.Event{
			ID:        event.ID,
			Name:      event.Name,
			Date:      event.Date,
			Capacity:  event.Capacity,
			CreatedAt: r.s.now(),
		}
		st.events[created.ID] = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r eventRepo) List(ctx context.Context) ([]*model.Event, error) {
	events := make([]*model.Event, 0)
	_ = r.s.view(ctx, func(st *state) error {
		for _, e := range st.events {
			e := e
			events = append(events, &e)
		}
		return nil
	})
	sort.Slice(events, func(i, j int) bool { return events[i].ID < events[j].ID })
	return events, nil
}

func (r eventRepo) FindByID(ctx context.Context, id int64) (*model.Event, error) {
	var event model.Event
	err := r.s.view(ctx, func(st *state) error {
		e, ok := st.events[id]
		if !ok {
			return apperrors.ErrEventNotFound
		}
		event = e
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// FindByIDWithLock 的鎖由 WithTx 的 mutex 提供
func (r eventRepo) FindByIDWithLock(ctx context.Context, id int64) (*model.Event, error) {
	return r.FindByID(ctx, id)
}

func (r eventRepo) IncrementIssued(ctx context.Context, id int64) (int64, error) {
	var issued int64
	err := r.s.view(ctx, func(st *state) error {
		e, ok := st.events[id]
		if !ok {
			return apperrors.ErrEventNotFound
		}
		if e.Issued >= e.Capacity {
			return apperrors.ErrCapacityExceeded
		}
		e.Issued++
		st.events[id] = e
		issued = e.Issued
		return nil
	})
	return issued, err
}

type ticketRepo struct{ s *Store }

func (r ticketRepo) Create(ctx context.Context, ticket *model.Ticket) (*model.Ticket, error) {
	var created model.Ticket
	err := r.s.view(ctx, func(st *state) error {
		if _, ok := st.events[ticket.EventID]; !ok {
			return apperrors.ErrEventNotFound
		}
		if _, ok := st.tickets[ticket.ID]; ok {
			return fmt.Errorf("failed to create ticket: duplicate id %d", ticket.ID)
		}
		created = model.Ticket{
			ID:        ticket.ID,
			EventID:   ticket.EventID,
			Owner:     ticket.Owner,
			CreatedAt: r.s.now(),
		}
		st.tickets[created.ID] = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r ticketRepo) FindByID(ctx context.Context, id int64) (*model.Ticket, error) {
	var ticket model.Ticket
	err := r.s.view(ctx, func(st *state) error {
		t, ok := st.tickets[id]
		if !ok {
			return apperrors.ErrTicketNotFound
		}
		ticket = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r ticketRepo) ListIDsByOwner(ctx context.Context, owner string) ([]int64, error) {
	ids := make([]int64, 0)
	_ = r.s.view(ctx, func(st *state) error {
		for id, t := range st.tickets {
			if t.Owner == owner {
				ids = append(ids, id)
			}
		}
		return nil
	})
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

type ownerIndexRepo struct{ s *Store }

func (r ownerIndexRepo) Add(ctx context.Context, owner string, ticketID int64) error {
	return r.s.view(ctx, func(st *state) error {
		if _, ok := st.tickets[ticketID]; !ok {
			return apperrors.ErrTicketNotFound
		}
		for _, id := range st.ownerIndex[owner] {
			if id == ticketID {
				return fmt.Errorf("failed to index ticket %d: already indexed", ticketID)
			}
		}
		st.ownerIndex[owner] = append(st.ownerIndex[owner], ticketID)
		return nil
	})
}

func (r ownerIndexRepo) ListTicketIDs(ctx context.Context, owner string) ([]int64, error) {
	var ids []int64
	_ = r.s.view(ctx, func(st *state) error {
		ids = append(make([]int64, 0, len(st.ownerIndex[owner])), st.ownerIndex[owner]...)
		return nil
	})
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}
