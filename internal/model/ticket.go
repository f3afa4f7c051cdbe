package model

import "time"

// Ticket 票券模型，建立後不可變更
type Ticket struct {
	ID        int64     `json:"id" db:"id"`
	EventID   int64     `json:"event_id" db:"event_id"`
	Owner     string    `json:"owner" db:"owner"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	Event *Event `json:"event,omitempty" db:"-"`
}
