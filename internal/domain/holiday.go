package domain

import "github.com/m04kA/SMC-CalendarService/pkg/types"

// Holiday represents a date range excluded from work-time accrual,
// regardless of the calendar's business-hour rules
type Holiday struct {
	ID          int64
	CalendarID  int64
	CalendarUID string
	Name        string
	StartDate   types.DateString
	EndDate     types.DateString
}

// Contains returns true if the given date falls inside the holiday range (inclusive)
func (h *Holiday) Contains(date types.DateString) bool {
	return !date.IsBefore(h.StartDate) && !h.EndDate.IsBefore(date)
}
