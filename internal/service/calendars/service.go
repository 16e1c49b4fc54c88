package calendars

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	calendarRepo "github.com/m04kA/SMC-CalendarService/internal/infra/storage/calendar"
	"github.com/m04kA/SMC-CalendarService/internal/service/calendars/models"
	"github.com/m04kA/SMC-CalendarService/pkg/i18n"
)

// Service сервис управления календарями: бутстрап календаря по умолчанию,
// сборка определения с дочерними записями и сохранение
type Service struct {
	calendarRepo      CalendarRepository
	businessHoursRepo BusinessHoursRepository
	holidayRepo       HolidayRepository
	txManager         TransactionManager
	uidGen            UIDGenerator
	translator        Translator
	logger            Logger

	// defaultMu сериализует ленивый бутстрап календаря по умолчанию,
	// чтобы конкурентные первые обращения не создали две строки
	defaultMu sync.Mutex
}

// NewService создает новый экземпляр сервиса календарей
func NewService(
	calendarRepo CalendarRepository,
	businessHoursRepo BusinessHoursRepository,
	holidayRepo HolidayRepository,
	txManager TransactionManager,
	uidGen UIDGenerator,
	translator Translator,
	logger Logger,
) *Service {
	return &Service{
		calendarRepo:      calendarRepo,
		businessHoursRepo: businessHoursRepo,
		holidayRepo:       holidayRepo,
		txManager:         txManager,
		uidGen:            uidGen,
		translator:        translator,
		logger:            logger,
	}
}

// EnsureDefault гарантирует существование календаря по умолчанию
// Вызывается один раз при старте приложения; повторные вызовы идемпотентны
func (s *Service) EnsureDefault(ctx context.Context) error {
	_, err := s.ensureDefault(ctx)
	return err
}

// GetDefault возвращает календарь по умолчанию с дочерними записями,
// лениво создавая его при первом обращении
func (s *Service) GetDefault(ctx context.Context) (*models.CalendarResponse, error) {
	calendar, err := s.ensureDefault(ctx)
	if err != nil {
		return nil, err
	}

	info, err := s.assemble(ctx, calendar)
	if err != nil {
		return nil, err
	}

	return models.FromDomainInformation(info), nil
}

// GetDefinition возвращает определение календаря без дочерних записей
// При fallbackToDefault=true отсутствующий календарь заменяется календарём по умолчанию
func (s *Service) GetDefinition(ctx context.Context, uid string, fallbackToDefault bool) (*models.CalendarResponse, error) {
	calendar, err := s.getDefinition(ctx, uid, fallbackToDefault)
	if err != nil {
		return nil, err
	}
	return models.FromDomainCalendar(calendar), nil
}

// GetFullInformation возвращает календарь с правилами рабочих часов и праздниками
// При validate=true несогласованный календарь заменяется календарём по умолчанию:
// вызывающий всегда получает пригодный календарь, а не ошибку
func (s *Service) GetFullInformation(ctx context.Context, uid string, validate bool) (*models.CalendarResponse, error) {
	info, err := s.fullInformation(ctx, uid, validate)
	if err != nil {
		return nil, err
	}
	return models.FromDomainInformation(info), nil
}

// List возвращает последние версии всех определений календарей
func (s *Service) List(ctx context.Context) (*models.CalendarListResponse, error) {
	s.logger.Info("List: fetching calendars")

	calendars, err := s.calendarRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d calendars", len(calendars))
	return models.FromDomainCalendarList(calendars), nil
}

// ValidateInformation проверяет кандидата без сохранения
// В отличие от GetFullInformation, ошибка валидации возвращается вызывающему
func (s *Service) ValidateInformation(req *models.SaveCalendarRequest) error {
	info := req.ToDomainInformation()
	if err := validatePayload(info); err != nil {
		return err
	}
	return Validate(info)
}

// SaveInformation сохраняет определение календаря вместе с дочерними записями
// в одной сериализуемой транзакции и возвращает свежепрочитанную полную информацию
// UID генерируется, если вызывающий его не указал
func (s *Service) SaveInformation(ctx context.Context, req *models.SaveCalendarRequest) (*models.CalendarResponse, error) {
	info := req.ToDomainInformation()
	if err := validatePayload(info); err != nil {
		s.logger.Warn("SaveInformation: payload validation failed: %v", err)
		return nil, err
	}

	uid := req.UID
	if uid == "" {
		uid = s.uidGen.Generate()
	}
	info.UID = uid

	s.logger.Info("SaveInformation: saving calendar uid=%s with %d business hour rules and %d holidays",
		uid, len(info.BusinessHours), len(info.Holidays))

	if err := s.persistInformation(ctx, info); err != nil {
		s.logger.Error("SaveInformation: failed to persist calendar uid=%s: %v", uid, err)
		return nil, err
	}

	full, err := s.fullInformation(ctx, uid, false)
	if err != nil {
		return nil, err
	}

	s.logger.Info("SaveInformation: successfully saved calendar uid=%s", uid)
	return models.FromDomainInformation(full), nil
}

// Вспомогательные методы

// persistInformation пишет определение и дочерние записи в одной транзакции,
// чтобы конкурентные чтения не увидели календарь без части правил
func (s *Service) persistInformation(ctx context.Context, info *domain.CalendarInformation) error {
	return s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		definition := info.Calendar
		created, err := s.calendarRepo.Create(txCtx, &definition)
		if err != nil {
			return fmt.Errorf("%w: persist definition: %v", ErrInternal, err)
		}

		for i := range info.BusinessHours {
			rule := info.BusinessHours[i]
			rule.CalendarID = created.ID
			rule.CalendarUID = created.UID
			if _, err := s.businessHoursRepo.Create(txCtx, &rule); err != nil {
				return fmt.Errorf("%w: persist business hours rule day=%d: %v", ErrInternal, rule.Day, err)
			}
		}

		for i := range info.Holidays {
			h := info.Holidays[i]
			h.CalendarID = created.ID
			h.CalendarUID = created.UID
			if _, err := s.holidayRepo.Create(txCtx, &h); err != nil {
				return fmt.Errorf("%w: persist holiday %q: %v", ErrInternal, h.Name, err)
			}
		}

		return nil
	})
}

// ensureDefault возвращает определение календаря по умолчанию,
// создавая его с каноническим наполнением при первом обращении
func (s *Service) ensureDefault(ctx context.Context) (*domain.Calendar, error) {
	s.defaultMu.Lock()
	defer s.defaultMu.Unlock()

	calendar, err := s.calendarRepo.GetByUID(ctx, domain.DefaultCalendarUID)
	if err == nil {
		return calendar, nil
	}
	if !errors.Is(err, calendarRepo.ErrCalendarNotFound) {
		s.logger.Error("ensureDefault: repository error: %v", err)
		return nil, fmt.Errorf("%w: ensureDefault - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ensureDefault: default calendar missing, bootstrapping uid=%s", domain.DefaultCalendarUID)

	info := &domain.CalendarInformation{
		Calendar: domain.Calendar{
			UID:         domain.DefaultCalendarUID,
			Name:        s.translator.Translate(i18n.MsgDefaultCalendarName),
			Description: s.translator.Translate(i18n.MsgDefaultCalendarDescription),
			Status:      domain.StatusActive,
			WorkDays:    domain.DefaultWorkDays,
		},
		BusinessHours: []domain.BusinessHourRule{
			{
				Day:       domain.DayAllDays,
				StartTime: domain.DefaultBusinessStart,
				EndTime:   domain.DefaultBusinessEnd,
			},
		},
	}

	if err := s.persistInformation(ctx, info); err != nil {
		return nil, err
	}

	calendar, err = s.calendarRepo.GetByUID(ctx, domain.DefaultCalendarUID)
	if err != nil {
		s.logger.Error("ensureDefault: re-read after bootstrap failed: %v", err)
		return nil, fmt.Errorf("%w: ensureDefault - re-read after bootstrap: %v", ErrInternal, err)
	}

	s.logger.Info("ensureDefault: default calendar created")
	return calendar, nil
}

// getDefinition загружает определение календаря по UID
func (s *Service) getDefinition(ctx context.Context, uid string, fallbackToDefault bool) (*domain.Calendar, error) {
	calendar, err := s.calendarRepo.GetByUID(ctx, uid)
	if err == nil {
		return calendar, nil
	}
	if !errors.Is(err, calendarRepo.ErrCalendarNotFound) {
		s.logger.Error("getDefinition: repository error for uid=%s: %v", uid, err)
		return nil, fmt.Errorf("%w: getDefinition - repository error: %v", ErrInternal, err)
	}

	if !fallbackToDefault {
		s.logger.Warn("getDefinition: calendar uid=%s not found", uid)
		return nil, ErrCalendarNotFound
	}

	s.logger.Warn("getDefinition: calendar uid=%s not found, falling back to default", uid)
	return s.ensureDefault(ctx)
}

// assemble прикрепляет к определению его правила рабочих часов и праздники
func (s *Service) assemble(ctx context.Context, calendar *domain.Calendar) (*domain.CalendarInformation, error) {
	rules, err := s.businessHoursRepo.GetByCalendarID(ctx, calendar.ID)
	if err != nil {
		s.logger.Error("assemble: failed to load business hours for uid=%s: %v", calendar.UID, err)
		return nil, fmt.Errorf("%w: assemble - load business hours: %v", ErrInternal, err)
	}

	holidays, err := s.holidayRepo.GetByCalendarID(ctx, calendar.ID)
	if err != nil {
		s.logger.Error("assemble: failed to load holidays for uid=%s: %v", calendar.UID, err)
		return nil, fmt.Errorf("%w: assemble - load holidays: %v", ErrInternal, err)
	}

	return &domain.CalendarInformation{
		Calendar:      *calendar,
		BusinessHours: rules,
		Holidays:      holidays,
	}, nil
}

// fullInformation собирает календарь с дочерними записями и при validate=true
// деградирует к календарю по умолчанию вместо возврата ошибки валидации
func (s *Service) fullInformation(ctx context.Context, uid string, validate bool) (*domain.CalendarInformation, error) {
	calendar, err := s.getDefinition(ctx, uid, true)
	if err != nil {
		return nil, err
	}

	info, err := s.assemble(ctx, calendar)
	if err != nil {
		return nil, err
	}

	if !validate {
		return info, nil
	}

	if verr := Validate(info); verr != nil {
		if calendar.IsDefault() {
			// Каноническое наполнение по умолчанию согласовано; сюда можно попасть
			// только если кто-то пересохранил календарь по умолчанию вручную
			s.logger.Error("fullInformation: default calendar failed validation: %v", verr)
			return info, nil
		}

		s.logger.Warn("fullInformation: calendar uid=%s failed validation (%v), governing by default", uid, verr)

		defaultCalendar, err := s.ensureDefault(ctx)
		if err != nil {
			return nil, err
		}
		return s.assemble(ctx, defaultCalendar)
	}

	return info, nil
}
