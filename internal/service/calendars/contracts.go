package calendars

import (
	"context"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// CalendarRepository интерфейс репозитория определений календарей
type CalendarRepository interface {
	Create(ctx context.Context, calendar *domain.Calendar) (*domain.Calendar, error)
	GetByUID(ctx context.Context, uid string) (*domain.Calendar, error)
	List(ctx context.Context) ([]*domain.Calendar, error)
}

// BusinessHoursRepository интерфейс репозитория правил рабочих часов
type BusinessHoursRepository interface {
	Create(ctx context.Context, rule *domain.BusinessHourRule) (*domain.BusinessHourRule, error)
	GetByCalendarID(ctx context.Context, calendarID int64) ([]domain.BusinessHourRule, error)
}

// HolidayRepository интерфейс репозитория праздничных дней
type HolidayRepository interface {
	Create(ctx context.Context, h *domain.Holiday) (*domain.Holiday, error)
	GetByCalendarID(ctx context.Context, calendarID int64) ([]domain.Holiday, error)
}

// TransactionManager интерфейс для выполнения операций в одной транзакции
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// UIDGenerator генератор идентификаторов для новых календарей
type UIDGenerator interface {
	Generate() string
}

// Translator каталог локализованных сообщений
type Translator interface {
	Translate(key string) string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
