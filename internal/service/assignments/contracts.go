package assignments

import (
	"context"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// AssignmentRepository интерфейс репозитория назначений
type AssignmentRepository interface {
	Create(ctx context.Context, a *domain.Assignment) (*domain.Assignment, error)
}

// CalendarRepository интерфейс репозитория определений календарей
// Используется только для диагностики назначений на несуществующие календари
type CalendarRepository interface {
	GetByUID(ctx context.Context, uid string) (*domain.Calendar, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
