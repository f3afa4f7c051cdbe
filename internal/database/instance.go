package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// LedgerInstanceID 回傳此帳本資料庫的識別碼，第一次呼叫時建立。
// 資料庫重建後會得到新的值，舊的 Redis 旗標因此不再被讀到。
func LedgerInstanceID(ctx context.Context, pool *pgxpool.Pool) (string, error) {
	// 分兩個語句：SELECT 需要新的 snapshot 才看得到其他實例剛寫入的列
	if _, err := pool.Exec(ctx, `
		INSERT INTO ledger_instance (id, instance_id)
		VALUES (1, $1)
		ON CONFLICT (id) DO NOTHING
	`, uuid.NewString()); err != nil {
		return "", fmt.Errorf("create ledger instance id: %w", err)
	}

	var instanceID string
	if err := pool.QueryRow(ctx, `SELECT instance_id FROM ledger_instance WHERE id = 1`).Scan(&instanceID); err != nil {
		return "", fmt.Errorf("load ledger instance id: %w", err)
	}
	return instanceID, nil
}
