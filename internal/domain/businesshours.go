package domain

import "github.com/m04kA/SMC-CalendarService/pkg/types"

// DayAllDays is the sentinel day code meaning the rule applies to every
// day of the week, satisfying coverage for all work days at once
const DayAllDays = 7

// BusinessHourRule represents a wall-clock time window applicable
// to a single weekday or to all days
type BusinessHourRule struct {
	ID          int64
	CalendarID  int64
	CalendarUID string
	Day         int // 1-7, where DayAllDays means "every day"
	StartTime   types.TimeString
	EndTime     types.TimeString
}

// AppliesToAllDays returns true if the rule uses the all-days sentinel
func (r *BusinessHourRule) AppliesToAllDays() bool {
	return r.Day == DayAllDays
}

// Covers returns true if the rule provides business hours for the given day code
func (r *BusinessHourRule) Covers(day int) bool {
	return r.AppliesToAllDays() || r.Day == day
}
