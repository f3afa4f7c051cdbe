package cache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// SoldOutCache 記錄已售完的活動。
// 容量固定且發行數只增不減，售完是永久成立的事實，不需要失效處理。
type SoldOutCache interface {
	// 標記：將活動標記為售完
	MarkSoldOut(ctx context.Context, eventID int64) error
	// 查詢：活動是否已被標記售完
	IsSoldOut(ctx context.Context, eventID int64) (bool, error)
	// 批次查詢：回傳已售完的活動 id 集合 (使用Lua腳本一次查完)
	SoldOutAmong(ctx context.Context, eventIDs []int64) (map[int64]bool, error)
}

type RedisSoldOutCacheImpl struct {
	client    redis.Cmdable
	namespace string
}

// NewRedisSoldOutCache namespace 通常為帳本資料庫的 instance id，
// 帳本重建後舊旗標因 key 不同而失效
func NewRedisSoldOutCache(client redis.Cmdable, namespace string) SoldOutCache {
	return &RedisSoldOutCacheImpl{
		client:    client,
		namespace: namespace,
	}
}

// 售完旗標 key
func (c *RedisSoldOutCacheImpl) soldOutKey(eventID int64) string {
	return fmt.Sprintf("ledger:%s:event:%d:sold_out", c.namespace, eventID)
}

func (c *RedisSoldOutCacheImpl) MarkSoldOut(ctx context.Context, eventID int64) error {
	return c.client.Set(ctx, c.soldOutKey(eventID), "1", 0).Err()
}

func (c *RedisSoldOutCacheImpl) IsSoldOut(ctx context.Context, eventID int64) (bool, error) {
	n, err := c.client.Exists(ctx, c.soldOutKey(eventID)).Result()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

var soldOutAmongScript = redis.NewScript(`
	-- 逐一檢查每個活動的售完旗標，回傳對應的 0/1 陣列
	local result = {}
	for i, key in ipairs(KEYS) do
		result[i] = redis.call('EXISTS', key)
	end
	return result
`)

func (c *RedisSoldOutCacheImpl) SoldOutAmong(ctx context.Context, eventIDs []int64) (map[int64]bool, error) {
	soldOut := make(map[int64]bool, len(eventIDs))
	if len(eventIDs) == 0 {
		return soldOut, nil
	}

	keys := make([]string, len(eventIDs))
	for i, id := range eventIDs {
		keys[i] = c.soldOutKey(id)
	}

	flags, err := soldOutAmongScript.Run(ctx, c.client, keys).Int64Slice()
	if err != nil {
		return nil, err
	}
	if len(flags) != len(eventIDs) {
		return nil, fmt.Errorf("unexpected result: %d flags for %d events", len(flags), len(eventIDs))
	}

	for i, id := range eventIDs {
		if flags[i] == 1 {
			soldOut[id] = true
		}
	}
	return soldOut, nil
}
