package validate_calendar

import "github.com/m04kA/SMC-CalendarService/internal/service/calendars/models"

type CalendarService interface {
	ValidateInformation(req *models.SaveCalendarRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
