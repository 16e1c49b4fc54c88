package get_calendars

import (
	"context"

	"github.com/m04kA/SMC-CalendarService/internal/service/calendars/models"
)

type CalendarService interface {
	List(ctx context.Context) (*models.CalendarListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
