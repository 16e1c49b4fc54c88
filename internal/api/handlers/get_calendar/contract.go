package get_calendar

import (
	"context"

	"github.com/m04kA/SMC-CalendarService/internal/service/calendars/models"
)

type CalendarService interface {
	GetDefinition(ctx context.Context, uid string, fallbackToDefault bool) (*models.CalendarResponse, error)
	GetFullInformation(ctx context.Context, uid string, validate bool) (*models.CalendarResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
