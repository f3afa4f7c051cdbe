package queue

import (
	"context"
	"nft-ticket-ledger/internal/model"
)

type Delivery struct {
	Data *model.LedgerEvent
	Ack  func()
	Nack func(requeue bool)
}

type LedgerQueue interface {
	// 發送帳本事件到隊列
	Publish(ctx context.Context, event *model.LedgerEvent) error
	// 訂閱帳本事件隊列
	Subscribe(ctx context.Context) (<-chan Delivery, error)
}

type LedgerQueueImpl struct {
	// 使用 Go channel 來模擬 MQ 隊列
	ch chan *model.LedgerEvent
}

func NewLedgerQueue(bufferSize int) LedgerQueue {
	return &LedgerQueueImpl{
		ch: make(chan *model.LedgerEvent, bufferSize),
	}
}

func (q *LedgerQueueImpl) Publish(ctx context.Context, event *model.LedgerEvent) error {
	select {
	case q.ch <- event:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (q *LedgerQueueImpl) Subscribe(ctx context.Context) (<-chan Delivery, error) {
	out := make(chan Delivery)

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-q.ch:
				if !ok {
					return
				}

				d := Delivery{
					Data: event,
					Ack:  func() { /* 記憶體版不用做特別動作 */ },
					Nack: func(requeue bool) {
						if requeue {
							// 重回隊列；隊列已滿時丟棄，避免卡住消費端
							select {
							case q.ch <- event:
							default:
							}
						}
					},
				}
				select {
				case out <- d:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}
