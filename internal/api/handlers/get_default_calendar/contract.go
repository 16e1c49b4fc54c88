package get_default_calendar

import (
	"context"

	"github.com/m04kA/SMC-CalendarService/internal/service/calendars/models"
)

type CalendarService interface {
	GetDefault(ctx context.Context) (*models.CalendarResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
