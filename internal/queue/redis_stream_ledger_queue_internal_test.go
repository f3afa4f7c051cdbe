package queue

import (
	"context"
	"errors"
	"testing"

	"nft-ticket-ledger/pkg/logger"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockStreamQueue(t *testing.T) (*RedisStreamLedgerQueueImpl, redismock.ClientMock) {
	t.Helper()
	db, mockRedis := redismock.NewClientMock()
	t.Cleanup(func() { _ = db.Close() })

	return &RedisStreamLedgerQueueImpl{
		client:   db,
		consumer: ConsumerNamePrefix + ":unit",
		cfg:      RedisStreamLedgerQueueConfig{MaxRetryCount: 3}.withDefaults(),
		log:      logger.WithComponent("mq"),
	}, mockRedis
}

func TestDropExhausted(t *testing.T) {
	ctx := context.Background()
	msgs := []redis.XMessage{{ID: "1-0"}, {ID: "2-0"}, {ID: "3-0"}}
	pendingArgs := &redis.XPendingExtArgs{
		Stream:   StreamKey,
		Group:    ConsumerGroupName,
		Start:    "1-0",
		End:      "3-0",
		Count:    3,
		Consumer: ConsumerNamePrefix + ":unit",
	}

	t.Run("Acks messages at the retry limit", func(t *testing.T) {
		q, mockRedis := newMockStreamQueue(t)

		mockRedis.ExpectXPendingExt(pendingArgs).SetVal([]redis.XPendingExt{
			{ID: "1-0", Consumer: q.consumer, RetryCount: 3},
			{ID: "2-0", Consumer: q.consumer, RetryCount: 1},
			{ID: "3-0", Consumer: q.consumer, RetryCount: 7},
		})
		mockRedis.ExpectXAck(StreamKey, ConsumerGroupName, "1-0", "3-0").SetVal(2)

		kept := q.dropExhausted(ctx, msgs)

		require.Len(t, kept, 1)
		assert.Equal(t, "2-0", kept[0].ID)
		assert.NoError(t, mockRedis.ExpectationsWereMet())
	})

	t.Run("Below the limit nothing is acked", func(t *testing.T) {
		q, mockRedis := newMockStreamQueue(t)

		mockRedis.ExpectXPendingExt(pendingArgs).SetVal([]redis.XPendingExt{
			{ID: "1-0", RetryCount: 1},
			{ID: "2-0", RetryCount: 2},
			{ID: "3-0", RetryCount: 0},
		})

		kept := q.dropExhausted(ctx, msgs)

		assert.Len(t, kept, 3)
		assert.NoError(t, mockRedis.ExpectationsWereMet())
	})

	t.Run("Pending lookup failure redelivers everything", func(t *testing.T) {
		q, mockRedis := newMockStreamQueue(t)

		mockRedis.ExpectXPendingExt(pendingArgs).SetErr(errors.New("redis down"))

		kept := q.dropExhausted(ctx, msgs)

		assert.Len(t, kept, 3)
		assert.NoError(t, mockRedis.ExpectationsWereMet())
	})

	t.Run("Empty batch skips the lookup", func(t *testing.T) {
		q, mockRedis := newMockStreamQueue(t)

		assert.Empty(t, q.dropExhausted(ctx, nil))
		assert.NoError(t, mockRedis.ExpectationsWereMet())
	})
}

func TestDeliver_AcksMalformedMessages(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	q, mockRedis := newMockStreamQueue(t)

	mockRedis.ExpectXAck(StreamKey, ConsumerGroupName, "9-0").SetVal(1)

	out := make(chan Delivery, 1)
	ok := q.deliver(ctx, out, []redis.XMessage{
		{ID: "9-0", Values: map[string]interface{}{fieldPayload: "{broken"}},
		{ID: "10-0", Values: map[string]interface{}{fieldPayload: `{"type":"event_created","event_id":4,"capacity":2}`}},
	})

	require.True(t, ok)
	require.Len(t, out, 1)
	d := <-out
	assert.Equal(t, int64(4), d.Data.EventID)
	assert.NoError(t, mockRedis.ExpectationsWereMet())
}
