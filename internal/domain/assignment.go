package domain

import "time"

// OwnerKind identifies which kind of owner a calendar resolution pertains to
type OwnerKind string

const (
	OwnerUser    OwnerKind = "USER"
	OwnerProcess OwnerKind = "PROCESS"
	OwnerTask    OwnerKind = "TASK"
	OwnerDefault OwnerKind = "DEFAULT"
)

// Assignment binds an owner (user, process or task) to the calendar
// that governs its scheduling. Assignments are append-only: precedence
// between them is entirely a resolve-time concern
type Assignment struct {
	ID          int64
	OwnerUID    string
	CalendarUID string
	CreatedAt   time.Time
}

// ResolvedCalendar is the result of calendar resolution for an owner chain
type ResolvedCalendar struct {
	CalendarInformation
	Owner OwnerKind
}
