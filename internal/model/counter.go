package model

// 帳本計數器名稱，對應 ledger_counters 的資料列
const (
	CounterEvent  = "event"
	CounterTicket = "ticket"
)
