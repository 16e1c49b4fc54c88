package resolve_calendar

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	assignmentRepo "github.com/m04kA/SMC-CalendarService/internal/infra/storage/assignment"
)

// UseCase use case резолва календаря для цепочки владельцев (задача, процесс, пользователь)
//
// Поиск ранжированный: кандидаты опрашиваются в фиксированном порядке
// задача -> процесс -> пользователь, для каждого берется последнее
// сохранённое назначение, побеждает первое совпадение. Если назначений
// нет, управляет календарь по умолчанию
type UseCase struct {
	assignmentRepo  AssignmentRepository
	calendarService CalendarService
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	assignmentRepo AssignmentRepository,
	calendarService CalendarService,
	logger Logger,
) *UseCase {
	return &UseCase{
		assignmentRepo:  assignmentRepo,
		calendarService: calendarService,
		logger:          logger,
	}
}

// Execute определяет календарь, управляющий цепочкой владельцев
// Вызывающий всегда получает пригодный календарь: отсутствующий или
// несогласованный календарь заменяется календарём по умолчанию
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.UserUID == "" && req.ProcessUID == "" && req.TaskUID == "" {
		return nil, fmt.Errorf("%w: at least one owner UID is required", ErrInvalidInput)
	}

	uc.logger.Info("ResolveCalendar: user=%s, process=%s, task=%s, validate=%t",
		req.UserUID, req.ProcessUID, req.TaskUID, req.Validate)

	calendarUID := domain.DefaultCalendarUID
	owner := domain.OwnerDefault

	candidates := []struct {
		uid  string
		kind domain.OwnerKind
	}{
		{req.TaskUID, domain.OwnerTask},
		{req.ProcessUID, domain.OwnerProcess},
		{req.UserUID, domain.OwnerUser},
	}

	for _, candidate := range candidates {
		if candidate.uid == "" {
			continue
		}

		assignment, err := uc.assignmentRepo.FindLatestByOwner(ctx, candidate.uid)
		if err != nil {
			if errors.Is(err, assignmentRepo.ErrAssignmentNotFound) {
				continue
			}
			uc.logger.Error("ResolveCalendar: failed to look up assignment for owner uid=%s: %v",
				candidate.uid, err)
			return nil, fmt.Errorf("%w: assignment lookup: %v", ErrInternal, err)
		}

		calendarUID = assignment.CalendarUID
		owner = candidate.kind
		break
	}

	calendar, err := uc.calendarService.GetFullInformation(ctx, calendarUID, req.Validate)
	if err != nil {
		uc.logger.Error("ResolveCalendar: failed to load calendar uid=%s: %v", calendarUID, err)
		return nil, fmt.Errorf("%w: load calendar: %v", ErrInternal, err)
	}

	uc.logger.Info("ResolveCalendar: resolved calendar uid=%s, owner=%s", calendar.UID, owner)

	return &Response{
		Calendar: calendar,
		Owner:    owner,
	}, nil
}
