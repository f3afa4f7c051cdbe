package repository

import "context"

// TxManager 將多個 repository 呼叫包成單一原子轉換。
// fn 內的 ctx 帶有 transaction，repository 以它取得連線。
type TxManager interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}
