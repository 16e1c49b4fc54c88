package resolve_calendar

import (
	"context"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/internal/service/calendars/models"
)

// AssignmentRepository интерфейс репозитория назначений
type AssignmentRepository interface {
	FindLatestByOwner(ctx context.Context, ownerUID string) (*domain.Assignment, error)
}

// CalendarService интерфейс сервиса календарей
type CalendarService interface {
	GetFullInformation(ctx context.Context, uid string, validate bool) (*models.CalendarResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
