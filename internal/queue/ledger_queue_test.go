package queue_test

import (
	"context"
	"testing"
	"time"

	"nft-ticket-ledger/internal/model"
	"nft-ticket-ledger/internal/queue"
	"nft-ticket-ledger/internal/testutil"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive(t *testing.T, ch <-chan queue.Delivery, timeout time.Duration) queue.Delivery {
	t.Helper()
	select {
	case d, ok := <-ch:
		require.True(t, ok, "delivery channel closed")
		return d
	case <-time.After(timeout):
		t.Fatal("timed out waiting for delivery")
	}
	return queue.Delivery{}
}

func TestLedgerQueue_PublishSubscribe(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	q := queue.NewLedgerQueue(4)
	msgs, err := q.Subscribe(ctx)
	require.NoError(t, err)

	ev := &model.LedgerEvent{Type: model.LedgerEventTicketBooked, EventID: 1, TicketID: 2, Owner: "A", Issued: 1, Capacity: 2}
	require.NoError(t, q.Publish(ctx, ev))

	d := receive(t, msgs, time.Second)
	assert.Equal(t, ev, d.Data)
	d.Ack()
}

func TestLedgerQueue_NackRequeue(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	q := queue.NewLedgerQueue(4)
	msgs, err := q.Subscribe(ctx)
	require.NoError(t, err)

	ev := &model.LedgerEvent{Type: model.LedgerEventCreated, EventID: 9, Capacity: 3}
	require.NoError(t, q.Publish(ctx, ev))

	first := receive(t, msgs, time.Second)
	first.Nack(true)

	again := receive(t, msgs, time.Second)
	assert.Equal(t, int64(9), again.Data.EventID)
}

func TestLedgerQueue_PublishRespectsContext(t *testing.T) {
	q := queue.NewLedgerQueue(0)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := q.Publish(ctx, &model.LedgerEvent{Type: model.LedgerEventCreated, EventID: 1})

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestLedgerQueue_SubscribeClosesOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	q := queue.NewLedgerQueue(1)
	msgs, err := q.Subscribe(ctx)
	require.NoError(t, err)

	cancel()

	select {
	case _, ok := <-msgs:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("channel not closed after cancel")
	}
}

func TestRedisStreamLedgerQueue_DeliversPublishedEvent(t *testing.T) {
	rdb := testutil.NewTestRedis(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	q, err := queue.NewRedisStreamLedgerQueue(ctx, rdb, "deliver-test", &queue.RedisStreamLedgerQueueConfig{
		ClaimMinIdleTime:   200 * time.Millisecond,
		ReadGroupBlockTime: 100 * time.Millisecond,
	})
	require.NoError(t, err)

	// 同一個 group 重複建立不應出錯
	_, err = queue.NewRedisStreamLedgerQueue(ctx, rdb, "", nil)
	require.NoError(t, err)

	ev := &model.LedgerEvent{
		Type:       model.LedgerEventTicketBooked,
		EventID:    1,
		TicketID:   5,
		Owner:      "ALGO-ADDR",
		Issued:     2,
		Capacity:   2,
		OccurredAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, q.Publish(ctx, ev))

	msgs, err := q.Subscribe(ctx)
	require.NoError(t, err)

	d := receive(t, msgs, 3*time.Second)
	assert.Equal(t, ev.TicketID, d.Data.TicketID)
	assert.Equal(t, ev.Owner, d.Data.Owner)
	assert.True(t, d.Data.SoldOut())
	assert.True(t, ev.OccurredAt.Equal(d.Data.OccurredAt))
	d.Ack()

	pending, err := rdb.XPending(ctx, queue.StreamKey, queue.ConsumerGroupName).Result()
	require.NoError(t, err)
	assert.Equal(t, int64(0), pending.Count)
}

func TestRedisStreamLedgerQueue_DropsMalformedEvents(t *testing.T) {
	rdb := testutil.NewTestRedis(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	q, err := queue.NewRedisStreamLedgerQueue(ctx, rdb, "malformed-test", &queue.RedisStreamLedgerQueueConfig{
		ReadGroupBlockTime: 100 * time.Millisecond,
	})
	require.NoError(t, err)

	require.NoError(t, rdb.XAdd(ctx, &redis.XAddArgs{
		Stream: queue.StreamKey,
		Values: map[string]interface{}{"payload": "{not json"},
	}).Err())
	require.NoError(t, q.Publish(ctx, &model.LedgerEvent{Type: model.LedgerEventCreated, EventID: 3, Capacity: 1}))

	msgs, err := q.Subscribe(ctx)
	require.NoError(t, err)

	d := receive(t, msgs, 3*time.Second)
	assert.Equal(t, int64(3), d.Data.EventID)
	d.Ack()

	pending, err := rdb.XPending(ctx, queue.StreamKey, queue.ConsumerGroupName).Result()
	require.NoError(t, err)
	assert.Equal(t, int64(0), pending.Count)
}

func TestRedisStreamLedgerQueue_RedeliversAfterNack(t *testing.T) {
	rdb := testutil.NewTestRedis(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	q, err := queue.NewRedisStreamLedgerQueue(ctx, rdb, "retry-test", &queue.RedisStreamLedgerQueueConfig{
		ClaimMinIdleTime:   200 * time.Millisecond,
		ReadGroupBlockTime: 100 * time.Millisecond,
	})
	require.NoError(t, err)

	msgs, err := q.Subscribe(ctx)
	require.NoError(t, err)
	require.NoError(t, q.Publish(ctx, &model.LedgerEvent{Type: model.LedgerEventTicketBooked, EventID: 4, TicketID: 1, Issued: 1, Capacity: 1}))

	first := receive(t, msgs, 3*time.Second)
	first.Nack(true)

	again := receive(t, msgs, 3*time.Second)
	assert.Equal(t, first.Data.TicketID, again.Data.TicketID)
	again.Ack()
}
