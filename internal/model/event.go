package model

import "time"

// Event 活動模型，建立後只有 Issued 會隨訂票成長
type Event struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Date      string    `json:"date" db:"date"`
	Capacity  int64     `json:"capacity" db:"capacity"`
	Issued    int64     `json:"issued" db:"issued"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Remaining 剩餘可發行的票數
func (e *Event) Remaining() int64 {
	return e.Capacity - e.Issued
}

// IsSoldOut 檢查活動是否已售完
func (e *Event) IsSoldOut() bool {
	return e.Issued >= e.Capacity
}

// CreateEventParams 建立活動的輸入
type CreateEventParams struct {
	Name     string
	Date     string
	Capacity int64
}
