package resolve_calendar

import (
	"context"

	resolveUC "github.com/m04kA/SMC-CalendarService/internal/usecase/resolve_calendar"
)

type ResolveCalendarUseCase interface {
	Execute(ctx context.Context, req *resolveUC.Request) (*resolveUC.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
