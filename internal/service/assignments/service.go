package assignments

import (
	"context"
	"errors"
	"fmt"

	calendarRepo "github.com/m04kA/SMC-CalendarService/internal/infra/storage/calendar"
	"github.com/m04kA/SMC-CalendarService/internal/service/assignments/models"
)

// Service сервис назначений календарей владельцам
type Service struct {
	assignmentRepo AssignmentRepository
	calendarRepo   CalendarRepository
	logger         Logger
}

// NewService создает новый экземпляр сервиса назначений
func NewService(assignmentRepo AssignmentRepository, calendarRepo CalendarRepository, logger Logger) *Service {
	return &Service{
		assignmentRepo: assignmentRepo,
		calendarRepo:   calendarRepo,
		logger:         logger,
	}
}

// Save сохраняет одно назначение безусловно: без дедупликации и без
// проверки приоритетов. Приоритет между назначениями определяется
// исключительно при резолве календаря
func (s *Service) Save(ctx context.Context, req *models.SaveAssignmentRequest) (*models.AssignmentResponse, error) {
	if req.OwnerUID == "" {
		return nil, fmt.Errorf("%w: ownerUid is required", ErrInvalidInput)
	}
	if req.CalendarUID == "" {
		return nil, fmt.Errorf("%w: calendarUid is required", ErrInvalidInput)
	}

	s.logger.Info("Save: assigning calendar uid=%s to owner uid=%s", req.CalendarUID, req.OwnerUID)

	// Назначение на несуществующий календарь легально (резолв деградирует
	// к календарю по умолчанию), но почти наверняка ошибка оператора
	if _, err := s.calendarRepo.GetByUID(ctx, req.CalendarUID); err != nil {
		if errors.Is(err, calendarRepo.ErrCalendarNotFound) {
			s.logger.Warn("Save: calendar uid=%s does not exist, resolution will fall back to default", req.CalendarUID)
		} else {
			s.logger.Error("Save: failed to check calendar uid=%s: %v", req.CalendarUID, err)
		}
	}

	created, err := s.assignmentRepo.Create(ctx, req.ToDomainAssignment())
	if err != nil {
		s.logger.Error("Save: repository error: %v", err)
		return nil, fmt.Errorf("%w: Save - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Save: successfully saved assignment id=%d", created.ID)
	return models.FromDomainAssignment(created), nil
}
