package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"nft-ticket-ledger/internal/model"
	"nft-ticket-ledger/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	StreamKey          = "ledger:events"
	ConsumerGroupName  = "ledger-workers"
	ConsumerNamePrefix = "ledger"

	// stream 欄位：payload 為完整 JSON，type/event_id 方便以 XRANGE 直接檢視
	fieldPayload = "payload"
	fieldType    = "type"
	fieldEventID = "event_id"

	batchSize = 10
)

// RedisStreamLedgerQueueConfig 零值欄位使用預設值
type RedisStreamLedgerQueueConfig struct {
	ClaimMinIdleTime   time.Duration // 待確認超過此時間才會被重新領取
	MaxRetryCount      int           // 投遞次數達上限即丟棄
	ReadGroupBlockTime time.Duration
	MaxLen             int64 // 近似裁剪長度
}

func (c RedisStreamLedgerQueueConfig) withDefaults() RedisStreamLedgerQueueConfig {
	if c.ClaimMinIdleTime <= 0 {
		c.ClaimMinIdleTime = 5 * time.Second
	}
	if c.MaxRetryCount <= 0 {
		c.MaxRetryCount = 5
	}
	if c.ReadGroupBlockTime <= 0 {
		c.ReadGroupBlockTime = 2 * time.Second
	}
	if c.MaxLen <= 0 {
		c.MaxLen = 100000
	}
	return c
}

type RedisStreamLedgerQueueImpl struct {
	client   *redis.Client
	consumer string
	cfg      RedisStreamLedgerQueueConfig
	log      *zap.Logger
}

// NewRedisStreamLedgerQueue consumerID 為空時產生隨機名稱；config 可為 nil
func NewRedisStreamLedgerQueue(ctx context.Context, client *redis.Client, consumerID string, config *RedisStreamLedgerQueueConfig) (LedgerQueue, error) {
	if consumerID == "" {
		consumerID = uuid.NewString()
	}
	var cfg RedisStreamLedgerQueueConfig
	if config != nil {
		cfg = *config
	}

	q := &RedisStreamLedgerQueueImpl{
		client:   client,
		consumer: ConsumerNamePrefix + ":" + consumerID,
		cfg:      cfg.withDefaults(),
		log:      logger.WithComponent("mq").With(zap.String("stream", StreamKey)),
	}

	err := client.XGroupCreateMkStream(ctx, StreamKey, ConsumerGroupName, "0").Err()
	if err != nil && !strings.HasPrefix(err.Error(), "BUSYGROUP") {
		return nil, fmt.Errorf("create consumer group: %w", err)
	}
	return q, nil
}

func (q *RedisStreamLedgerQueueImpl) Publish(ctx context.Context, event *model.LedgerEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal ledger event: %w", err)
	}

	err = q.client.XAdd(ctx, &redis.XAddArgs{
		Stream: StreamKey,
		MaxLen: q.cfg.MaxLen,
		Approx: true,
		Values: []interface{}{
			fieldType, string(event.Type),
			fieldEventID, event.EventID,
			fieldPayload, string(payload),
		},
	}).Err()
	if err != nil {
		return fmt.Errorf("xadd ledger event: %w", err)
	}
	return nil
}

// Subscribe 新訊息以 XREADGROUP 讀取，逾時未確認的以 XAUTOCLAIM 領回重投
func (q *RedisStreamLedgerQueueImpl) Subscribe(ctx context.Context) (<-chan Delivery, error) {
	out := make(chan Delivery)

	go func() {
		defer close(out)

		reclaimed := make(chan struct{})
		go func() {
			defer close(reclaimed)
			q.reclaimLoop(ctx, out)
		}()

		for ctx.Err() == nil {
			msgs, err := q.readNew(ctx)
			if err != nil {
				q.log.Error("read ledger events failed", zap.Error(err))
				sleep(ctx, time.Second)
				continue
			}
			if !q.deliver(ctx, out, msgs) {
				break
			}
		}
		<-reclaimed
	}()

	return out, nil
}

func (q *RedisStreamLedgerQueueImpl) readNew(ctx context.Context) ([]redis.XMessage, error) {
	streams, err := q.client.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    ConsumerGroupName,
		Consumer: q.consumer,
		Streams:  []string{StreamKey, ">"},
		Count:    batchSize,
		Block:    q.cfg.ReadGroupBlockTime,
	}).Result()
	if errors.Is(err, redis.Nil) || ctx.Err() != nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var msgs []redis.XMessage
	for _, s := range streams {
		msgs = append(msgs, s.Messages...)
	}
	return msgs, nil
}

func (q *RedisStreamLedgerQueueImpl) reclaimLoop(ctx context.Context, out chan<- Delivery) {
	ticker := time.NewTicker(q.cfg.ClaimMinIdleTime)
	defer ticker.Stop()

	cursor := "0-0"
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		msgs, next, err := q.client.XAutoClaim(ctx, &redis.XAutoClaimArgs{
			Stream:   StreamKey,
			Group:    ConsumerGroupName,
			Consumer: q.consumer,
			MinIdle:  q.cfg.ClaimMinIdleTime,
			Start:    cursor,
			Count:    batchSize,
		}).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			if ctx.Err() == nil {
				q.log.Error("reclaim ledger events failed", zap.Error(err))
			}
			continue
		}
		// 掃到尾端時 next 為 0-0，下一輪從頭開始
		cursor = next
		if cursor == "" {
			cursor = "0-0"
		}

		if !q.deliver(ctx, out, q.dropExhausted(ctx, msgs)) {
			return
		}
	}
}

// dropExhausted 以一次 XPENDING 取得投遞次數，達上限的訊息直接確認丟棄
func (q *RedisStreamLedgerQueueImpl) dropExhausted(ctx context.Context, msgs []redis.XMessage) []redis.XMessage {
	if len(msgs) == 0 {
		return nil
	}

	pending, err := q.client.XPendingExt(ctx, &redis.XPendingExtArgs{
		Stream:   StreamKey,
		Group:    ConsumerGroupName,
		Start:    msgs[0].ID,
		End:      msgs[len(msgs)-1].ID,
		Count:    int64(len(msgs)),
		Consumer: q.consumer,
	}).Result()
	if err != nil {
		q.log.Warn("pending lookup failed, redelivering", zap.Error(err))
		return msgs
	}

	retries := make(map[string]int64, len(pending))
	for _, p := range pending {
		retries[p.ID] = p.RetryCount
	}

	kept := make([]redis.XMessage, 0, len(msgs))
	var exhausted []string
	for _, msg := range msgs {
		if retries[msg.ID] >= int64(q.cfg.MaxRetryCount) {
			exhausted = append(exhausted, msg.ID)
			continue
		}
		kept = append(kept, msg)
	}
	if len(exhausted) > 0 {
		q.log.Warn("discarding ledger events after max retries",
			zap.Strings("message_ids", exhausted),
			zap.Int("max_retries", q.cfg.MaxRetryCount),
		)
		q.ack(ctx, exhausted...)
	}
	return kept
}

// deliver 逐筆送出，ctx 結束時回傳 false
func (q *RedisStreamLedgerQueueImpl) deliver(ctx context.Context, out chan<- Delivery, msgs []redis.XMessage) bool {
	for _, msg := range msgs {
		event, err := decodeLedgerEvent(msg)
		if err != nil {
			// 無法解析的訊息重試也不會成功
			q.log.Warn("dropping malformed ledger event", zap.String("message_id", msg.ID), zap.Error(err))
			q.ack(ctx, msg.ID)
			continue
		}

		id := msg.ID
		d := Delivery{
			Data: event,
			Ack:  func() { q.ack(ctx, id) },
			Nack: func(requeue bool) {
				if requeue {
					// 留在待確認清單，由 reclaimLoop 延遲重投
					q.log.Info("ledger event will be retried", zap.String("message_id", id))
					return
				}
				q.ack(ctx, id)
			},
		}

		select {
		case out <- d:
		case <-ctx.Done():
			return false
		}
	}
	return true
}

func (q *RedisStreamLedgerQueueImpl) ack(ctx context.Context, ids ...string) {
	if err := q.client.XAck(ctx, StreamKey, ConsumerGroupName, ids...).Err(); err != nil {
		q.log.Error("ack ledger events failed", zap.Strings("message_ids", ids), zap.Error(err))
	}
}

func decodeLedgerEvent(msg redis.XMessage) (*model.LedgerEvent, error) {
	raw, ok := msg.Values[fieldPayload].(string)
	if !ok {
		return nil, fmt.Errorf("missing %q field", fieldPayload)
	}
	var event model.LedgerEvent
	if err := json.Unmarshal([]byte(raw), &event); err != nil {
		return nil, err
	}
	return &event, nil
}

func sleep(ctx context.Context, d time.Duration) {
	select {
	case <-time.After(d):
	case <-ctx.Done():
	}
}
