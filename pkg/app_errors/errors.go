package apperrors

import "errors"

var (
	// ErrInvalidArgument 建立活動或訂票的輸入不合法
	ErrInvalidArgument = errors.New("invalid argument")
	ErrEventNotFound   = errors.New("event not found")
	ErrTicketNotFound  = errors.New("ticket not found")
	// ErrCapacityExceeded 活動票券已全數售出
	ErrCapacityExceeded = errors.New("capacity exceeded")
	ErrMissingCaller    = errors.New("missing caller identity")
	// ErrIndexDrift 持有者索引與票券紀錄不一致
	ErrIndexDrift          = errors.New("owner index drift")
	ErrInternalServerError = errors.New("internal server error")
)
