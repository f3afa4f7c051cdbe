package worker

import (
	"context"

	"nft-ticket-ledger/internal/queue"
	"nft-ticket-ledger/internal/service"
	"nft-ticket-ledger/pkg/logger"

	"go.uber.org/zap"
)

type LedgerWorker interface {
	// 訂閱帳本事件隊列
	Start(ctx context.Context) error
}

type LedgerWorkerImpl struct {
	service service.LedgerService
	queue   queue.LedgerQueue
}

func NewLedgerWorker(service service.LedgerService, queue queue.LedgerQueue) LedgerWorker {
	return &LedgerWorkerImpl{
		service: service,
		queue:   queue,
	}
}

// Start 訂閱後立即返回，消費迴圈在 ctx 結束時停止
func (w *LedgerWorkerImpl) Start(ctx context.Context) error {
	msgs, err := w.queue.Subscribe(ctx)
	if err != nil {
		return err
	}

	log := logger.WithComponent("worker")
	go func() {
		for msg := range msgs {
			event := msg.Data
			if event == nil || !event.SoldOut() {
				msg.Ack()
				continue
			}

			// 售完旗標寫入失敗時重回隊列，下次再試
			if err := w.service.MarkSoldOut(ctx, event.EventID); err != nil {
				log.Warn("failed to mark event sold out",
					zap.Int64("event_id", event.EventID),
					zap.Error(err),
				)
				msg.Nack(true)
				continue
			}
			log.Info("event sold out", zap.Int64("event_id", event.EventID), zap.Int64("capacity", event.Capacity))
			msg.Ack()
		}
	}()
	return nil
}
