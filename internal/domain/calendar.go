package domain

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// CalendarStatus represents the status of a calendar definition
type CalendarStatus string

const (
	StatusActive   CalendarStatus = "ACTIVE"
	StatusInactive CalendarStatus = "INACTIVE"
)

// Calendar represents a named weekly work-time template
type Calendar struct {
	ID          int64
	UID         string // 32-character hyphen-free identifier, stable across re-saves
	Name        string
	Description string
	Status      CalendarStatus
	WorkDays    WorkDays
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsActive returns true if the calendar is in the active state
func (c *Calendar) IsActive() bool {
	return c.Status == StatusActive
}

// IsDefault returns true if this is the system default calendar
func (c *Calendar) IsDefault() bool {
	return c.UID == DefaultCalendarUID
}

// CalendarInformation is a calendar definition assembled with its child records
type CalendarInformation struct {
	Calendar
	BusinessHours []BusinessHourRule
	Holidays      []Holiday
}

// WorkDays is an ordered set of weekday codes (1-7)
type WorkDays []int

// ParseWorkDays parses the pipe-separated storage form ("1|2|3|4|5")
// into an ordered, de-duplicated set of day codes
func ParseWorkDays(s string) (WorkDays, error) {
	if strings.TrimSpace(s) == "" {
		return WorkDays{}, nil
	}

	seen := make(map[int]bool)
	days := WorkDays{}
	for _, part := range strings.Split(s, "|") {
		day, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid work day %q: %w", part, err)
		}
		if day < 1 || day > 7 {
			return nil, fmt.Errorf("work day %d out of range 1-7", day)
		}
		if !seen[day] {
			seen[day] = true
			days = append(days, day)
		}
	}
	sort.Ints(days)
	return days, nil
}

// String renders the pipe-separated storage form
func (w WorkDays) String() string {
	parts := make([]string, len(w))
	for i, day := range w {
		parts[i] = strconv.Itoa(day)
	}
	return strings.Join(parts, "|")
}

// Contains returns true if the set includes the given day code
func (w WorkDays) Contains(day int) bool {
	for _, d := range w {
		if d == day {
			return true
		}
	}
	return false
}
