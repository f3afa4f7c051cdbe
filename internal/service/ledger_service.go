package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"nft-ticket-ledger/internal/cache"
	"nft-ticket-ledger/internal/model"
	"nft-ticket-ledger/internal/queue"
	"nft-ticket-ledger/internal/repository"
	apperrors "nft-ticket-ledger/pkg/app_errors"
	"nft-ticket-ledger/pkg/logger"

	"go.uber.org/zap"
)

type LedgerService interface {
	Hello(name string) string
	// 建立活動並配發新的活動 id
	CreateEvent(ctx context.Context, params model.CreateEventParams) (*model.Event, error)
	GetEvent(ctx context.Context, id int64) (*model.Event, error)
	ListEvents(ctx context.Context) ([]*model.Event, error)
	// 訂票：發行數、票券、持有者索引在同一個 transaction 內寫入
	BookTicket(ctx context.Context, eventID int64, caller string) (*model.Ticket, error)
	GetTicket(ctx context.Context, id int64) (*model.Ticket, error)
	// 依票券 id 遞增排序回傳呼叫者持有的票券
	GetMyTickets(ctx context.Context, caller string) ([]int64, error)
	// 比對持有者索引與票券紀錄，不一致時回傳 ErrIndexDrift
	AuditOwnerIndex(ctx context.Context, owner string) error
	// 啟動時將已售完活動補寫進售完快取
	WarmSoldOut(ctx context.Context) (int, error)
	// 售完快取標記，供 worker 消費帳本事件時使用
	MarkSoldOut(ctx context.Context, eventID int64) error
}

// Repositories 帳本使用的四個儲存區與 transaction 管理
type Repositories struct {
	Tx         repository.TxManager
	Counters   repository.CounterRepository
	Events     repository.EventRepository
	Tickets    repository.TicketRepository
	OwnerIndex repository.OwnerIndexRepository
}

const publishTimeout = 2 * time.Second

type LedgerServiceImpl struct {
	repos   Repositories
	soldOut cache.SoldOutCache
	queue   queue.LedgerQueue
	now     func() time.Time
}

// NewLedgerService soldOut 與 ledgerQueue 可為 nil，此時略過快取與事件發佈
func NewLedgerService(repos Repositories, soldOut cache.SoldOutCache, ledgerQueue queue.LedgerQueue) LedgerService {
	return &LedgerServiceImpl{
		repos:   repos,
		soldOut: soldOut,
		queue:   ledgerQueue,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (s *LedgerServiceImpl) Hello(name string) string {
	return "Hello, " + name
}

func (s *LedgerServiceImpl) CreateEvent(ctx context.Context, params model.CreateEventParams) (*model.Event, error) {
	if strings.TrimSpace(params.Name) == "" || strings.TrimSpace(params.Date) == "" || params.Capacity <= 0 {
		return nil, apperrors.ErrInvalidArgument
	}

	var created *model.Event
	err := s.repos.Tx.WithTx(ctx, func(ctx context.Context) error {
		id, err := s.repos.Counters.Next(ctx, model.CounterEvent)
		if err != nil {
			return err
		}
		created, err = s.repos.Events.Create(ctx, &model.Event{
			ID:       id,
			Name:     params.Name,
			Date:     params.Date,
			Capacity: params.Capacity,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, &model.LedgerEvent{
		Type:       model.LedgerEventCreated,
		EventID:    created.ID,
		Capacity:   created.Capacity,
		OccurredAt: s.now(),
	})
	return created, nil
}

func (s *LedgerServiceImpl) GetEvent(ctx context.Context, id int64) (*model.Event, error) {
	return s.repos.Events.FindByID(ctx, id)
}

func (s *LedgerServiceImpl) ListEvents(ctx context.Context) ([]*model.Event, error) {
	return s.repos.Events.List(ctx)
}

func (s *LedgerServiceImpl) BookTicket(ctx context.Context, eventID int64, caller string) (*model.Ticket, error) {
	if strings.TrimSpace(caller) == "" {
		return nil, apperrors.ErrInvalidArgument
	}

	// 售完旗標是永久事實，命中時不必開 transaction
	if s.isSoldOut(ctx, eventID) {
		return nil, apperrors.ErrCapacityExceeded
	}

	var (
		ticket *model.Ticket
		event  *model.Event
	)
	err := s.repos.Tx.WithTx(ctx, func(ctx context.Context) error {
		var err error
		event, err = s.repos.Events.FindByIDWithLock(ctx, eventID)
		if err != nil {
			return err
		}
		if event.IsSoldOut() {
			return apperrors.ErrCapacityExceeded
		}

		event.Issued, err = s.repos.Events.IncrementIssued(ctx, event.ID)
		if err != nil {
			return err
		}

		ticketID, err := s.repos.Counters.Next(ctx, model.CounterTicket)
		if err != nil {
			return err
		}

		ticket, err = s.repos.Tickets.Create(ctx, &model.Ticket{
			ID:      ticketID,
			EventID: event.ID,
			Owner:   caller,
		})
		if err != nil {
			return err
		}

		return s.repos.OwnerIndex.Add(ctx, caller, ticket.ID)
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrCapacityExceeded) {
			s.markSoldOut(ctx, eventID)
		}
		return nil, err
	}

	if event.IsSoldOut() {
		s.markSoldOut(ctx, event.ID)
	}
	s.publish(ctx, &model.LedgerEvent{
		Type:       model.LedgerEventTicketBooked,
		EventID:    event.ID,
		TicketID:   ticket.ID,
		Owner:      ticket.Owner,
		Issued:     event.Issued,
		Capacity:   event.Capacity,
		OccurredAt: s.now(),
	})

	ticket.Event = event
	return ticket, nil
}

func (s *LedgerServiceImpl) GetTicket(ctx context.Context, id int64) (*model.Ticket, error) {
	ticket, err := s.repos.Tickets.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	event, err := s.repos.Events.FindByID(ctx, ticket.EventID)
	if err != nil {
		return nil, fmt.Errorf("ticket %d references event %d: %w", ticket.ID, ticket.EventID, err)
	}
	ticket.Event = event
	return ticket, nil
}

func (s *LedgerServiceImpl) GetMyTickets(ctx context.Context, caller string) ([]int64, error) {
	if strings.TrimSpace(caller) == "" {
		return nil, apperrors.ErrInvalidArgument
	}

	ids, err := s.repos.OwnerIndex.ListTicketIDs(ctx, caller)
	if err != nil {
		return nil, err
	}
	if ids == nil {
		return []int64{}, nil
	}
	slices.Sort(ids)
	return ids, nil
}

func (s *LedgerServiceImpl) AuditOwnerIndex(ctx context.Context, owner string) error {
	if strings.TrimSpace(owner) == "" {
		return apperrors.ErrInvalidArgument
	}

	indexed, err := s.repos.OwnerIndex.ListTicketIDs(ctx, owner)
	if err != nil {
		return err
	}
	scanned, err := s.repos.Tickets.ListIDsByOwner(ctx, owner)
	if err != nil {
		return err
	}

	slices.Sort(indexed)
	slices.Sort(scanned)
	if !slices.Equal(indexed, scanned) {
		logger.WithComponent("service").Error("owner index drift",
			zap.String("owner", owner),
			zap.Int64s("indexed", indexed),
			zap.Int64s("tickets", scanned),
		)
		return apperrors.ErrIndexDrift
	}
	return nil
}

func (s *LedgerServiceImpl) WarmSoldOut(ctx context.Context) (int, error) {
	if s.soldOut == nil {
		return 0, nil
	}

	events, err := s.repos.Events.List(ctx)
	if err != nil {
		return 0, err
	}

	ids := make([]int64, 0)
	for _, e := range events {
		if e.IsSoldOut() {
			ids = append(ids, e.ID)
		}
	}

	flagged, err := s.soldOut.SoldOutAmong(ctx, ids)
	if err != nil {
		return 0, err
	}

	warmed := 0
	for _, id := range ids {
		if flagged[id] {
			continue
		}
		if err := s.soldOut.MarkSoldOut(ctx, id); err != nil {
			return warmed, err
		}
		warmed++
	}
	return warmed, nil
}

func (s *LedgerServiceImpl) MarkSoldOut(ctx context.Context, eventID int64) error {
	if s.soldOut == nil {
		return nil
	}
	return s.soldOut.MarkSoldOut(ctx, eventID)
}

// isSoldOut 快取讀取失敗時視為未售完，交由資料庫判斷
func (s *LedgerServiceImpl) isSoldOut(ctx context.Context, eventID int64) bool {
	if s.soldOut == nil {
		return false
	}
	soldOut, err := s.soldOut.IsSoldOut(ctx, eventID)
	if err != nil {
		logger.WithComponent("service").Warn("sold-out cache read failed", zap.Int64("event_id", eventID), zap.Error(err))
		return false
	}
	return soldOut
}

func (s *LedgerServiceImpl) markSoldOut(ctx context.Context, eventID int64) {
	if err := s.MarkSoldOut(ctx, eventID); err != nil {
		logger.WithComponent("service").Warn("sold-out cache write failed", zap.Int64("event_id", eventID), zap.Error(err))
	}
}

// publish 在狀態已提交後執行，發佈失敗不影響帳本結果
func (s *LedgerServiceImpl) publish(ctx context.Context, event *model.LedgerEvent) {
	if s.queue == nil {
		return
	}
	// 請求已結束也要送出，但不能無限期卡住回應
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()
	if err := s.queue.Publish(ctx, event); err != nil {
		logger.WithComponent("service").Error("failed to publish ledger event",
			zap.String("type", string(event.Type)),
			zap.Int64("event_id", event.EventID),
			zap.Int64("ticket_id", event.TicketID),
			zap.Error(err),
		)
	}
}
