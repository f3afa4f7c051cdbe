package model

import "time"

type LedgerEventType string

const (
	LedgerEventCreated      LedgerEventType = "event_created"
	LedgerEventTicketBooked LedgerEventType = "ticket_booked"
)

// LedgerEvent 帳本狀態轉換後對外發佈的紀錄
type LedgerEvent struct {
	Type       LedgerEventType `json:"type"`
	EventID    int64           `json:"event_id"`
	TicketID   int64           `json:"ticket_id,omitempty"`
	Owner      string          `json:"owner,omitempty"`
	Issued     int64           `json:"issued"`
	Capacity   int64           `json:"capacity"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// SoldOut 此紀錄是否代表活動剛好售完
func (e *LedgerEvent) SoldOut() bool {
	return e.Type == LedgerEventTicketBooked && e.Capacity > 0 && e.Issued >= e.Capacity
}
