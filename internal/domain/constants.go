package domain

import "github.com/m04kA/SMC-CalendarService/pkg/types"

// DefaultCalendarUID is the well-known identifier of the system default calendar
const DefaultCalendarUID = "00000000000000000000000000000001"

// MinWorkDays is the minimum number of distinct work days a valid calendar must define
const MinWorkDays = 3

// Canonical content of the system default calendar: Monday-Friday work days
// with a single 09:00-17:00 rule applied to all days
var (
	DefaultWorkDays = WorkDays{1, 2, 3, 4, 5}

	DefaultBusinessStart = types.TimeString("09:00")
	DefaultBusinessEnd   = types.TimeString("17:00")
)
