package resolve_calendar

import "errors"

var (
	// ErrInvalidInput возвращается, когда не задан ни один UID владельца
	ErrInvalidInput = errors.New("resolve_calendar: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("resolve_calendar: internal error")
)
