package validate_calendar

import (
	"errors"

	"github.com/m04kA/SMC-CalendarService/internal/service/calendars"
)

// Response результат проверки кандидата
type Response struct {
	Valid  bool   `json:"valid"`
	Code   string `json:"code,omitempty"`
	Reason string `json:"reason,omitempty"`
}

// Коды причин отклонения кандидата
const (
	CodeTooFewWorkDays  = "TOO_FEW_WORK_DAYS"
	CodeNoBusinessHours = "NO_BUSINESS_HOURS"
	CodeIncompleteCover = "INCOMPLETE_WORK_DAY_COVERAGE"
)

// FromValidationError строит ответ по ошибке валидатора
func FromValidationError(err error) *Response {
	resp := &Response{Valid: false, Reason: err.Error()}

	switch {
	case errors.Is(err, calendars.ErrTooFewWorkDays):
		resp.Code = CodeTooFewWorkDays
	case errors.Is(err, calendars.ErrNoBusinessHours):
		resp.Code = CodeNoBusinessHours
	case errors.Is(err, calendars.ErrIncompleteWorkDayCoverage):
		resp.Code = CodeIncompleteCover
	}

	return resp
}
