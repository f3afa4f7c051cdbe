package cache_test

import (
	"context"
	"errors"
	"testing"

	"nft-ticket-ledger/internal/cache"
	"nft-ticket-ledger/internal/testutil"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSoldOutCache_MarkSoldOut(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mockRedis := redismock.NewClientMock()
		soldOut := cache.NewRedisSoldOutCache(db, "L1")

		mockRedis.ExpectSet("ledger:L1:event:1:sold_out", "1", 0).SetVal("OK")

		err := soldOut.MarkSoldOut(ctx, 1)

		assert.NoError(t, err)
		assert.NoError(t, mockRedis.ExpectationsWereMet())
	})

	t.Run("Failed - redis error", func(t *testing.T) {
		db, mockRedis := redismock.NewClientMock()
		soldOut := cache.NewRedisSoldOutCache(db, "L1")

		mockRedis.ExpectSet("ledger:L1:event:1:sold_out", "1", 0).SetErr(errors.New("redis down"))

		err := soldOut.MarkSoldOut(ctx, 1)

		assert.EqualError(t, err, "redis down")
		assert.NoError(t, mockRedis.ExpectationsWereMet())
	})
}

func TestSoldOutCache_IsSoldOut(t *testing.T) {
	ctx := context.Background()

	t.Run("Flag set", func(t *testing.T) {
		db, mockRedis := redismock.NewClientMock()
		soldOut := cache.NewRedisSoldOutCache(db, "L1")

		mockRedis.ExpectExists("ledger:L1:event:2:sold_out").SetVal(1)

		ok, err := soldOut.IsSoldOut(ctx, 2)

		require.NoError(t, err)
		assert.True(t, ok)
		assert.NoError(t, mockRedis.ExpectationsWereMet())
	})

	t.Run("Flag missing", func(t *testing.T) {
		db, mockRedis := redismock.NewClientMock()
		soldOut := cache.NewRedisSoldOutCache(db, "L1")

		mockRedis.ExpectExists("ledger:L1:event:2:sold_out").SetVal(0)

		ok, err := soldOut.IsSoldOut(ctx, 2)

		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Other namespace uses its own key", func(t *testing.T) {
		db, mockRedis := redismock.NewClientMock()
		soldOut := cache.NewRedisSoldOutCache(db, "L2")

		mockRedis.ExpectExists("ledger:L2:event:2:sold_out").SetVal(0)

		ok, err := soldOut.IsSoldOut(ctx, 2)

		require.NoError(t, err)
		assert.False(t, ok)
		assert.NoError(t, mockRedis.ExpectationsWereMet())
	})

	t.Run("Failed - redis error", func(t *testing.T) {
		db, mockRedis := redismock.NewClientMock()
		soldOut := cache.NewRedisSoldOutCache(db, "L1")

		mockRedis.ExpectExists("ledger:L1:event:2:sold_out").SetErr(errors.New("redis down"))

		ok, err := soldOut.IsSoldOut(ctx, 2)

		assert.Error(t, err)
		assert.False(t, ok)
	})
}

func TestSoldOutCache_SoldOutAmong(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty input skips redis", func(t *testing.T) {
		db, mockRedis := redismock.NewClientMock()
		soldOut := cache.NewRedisSoldOutCache(db, "L1")

		result, err := soldOut.SoldOutAmong(ctx, nil)

		require.NoError(t, err)
		assert.Empty(t, result)
		assert.NoError(t, mockRedis.ExpectationsWereMet())
	})

	t.Run("Integration", func(t *testing.T) {
		rdb := testutil.NewTestRedis(t)
		soldOut := cache.NewRedisSoldOutCache(rdb, "L1")

		require.NoError(t, soldOut.MarkSoldOut(ctx, 1))
		require.NoError(t, soldOut.MarkSoldOut(ctx, 3))

		result, err := soldOut.SoldOutAmong(ctx, []int64{1, 2, 3})

		require.NoError(t, err)
		assert.Equal(t, map[int64]bool{1: true, 3: true}, result)
	})
}

func TestSoldOutCache_NamespaceIsolation(t *testing.T) {
	ctx := context.Background()
	rdb := testutil.NewTestRedis(t)

	before := cache.NewRedisSoldOutCache(rdb, "ledger-before-rebuild")
	after := cache.NewRedisSoldOutCache(rdb, "ledger-after-rebuild")

	require.NoError(t, before.MarkSoldOut(ctx, 1))

	// 重建後的帳本重新配發 id 1，不應被舊旗標擋下
	ok, err := after.IsSoldOut(ctx, 1)
	require.NoError(t, err)
	assert.False(t, ok)

	flagged, err := after.SoldOutAmong(ctx, []int64{1})
	require.NoError(t, err)
	assert.Empty(t, flagged)

	ok, err = before.IsSoldOut(ctx, 1)
	require.NoError(t, err)
	assert.True(t, ok)
}
