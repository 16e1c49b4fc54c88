package calendars

import (
	"fmt"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// Validate проверяет собранное определение календаря на внутреннюю согласованность
// Функция чистая: никакого I/O, кандидат не изменяется
//
// Правило покрытия: каждый рабочий день должен быть покрыт правилом с его кодом дня,
// либо должно существовать хотя бы одно правило "все дни" (код 7), покрывающее
// все рабочие дни сразу
func Validate(info *domain.CalendarInformation) error {
	if len(info.WorkDays) < domain.MinWorkDays {
		return ErrTooFewWorkDays
	}

	if len(info.BusinessHours) == 0 {
		return ErrNoBusinessHours
	}

	covered := make(map[int]bool, len(info.WorkDays))
	for _, day := range info.WorkDays {
		covered[day] = false
	}

	allDays := false
	for _, rule := range info.BusinessHours {
		if rule.AppliesToAllDays() {
			allDays = true
		} else if _, ok := covered[rule.Day]; ok {
			covered[rule.Day] = true
		}
	}

	if allDays {
		return nil
	}

	for _, ok := range covered {
		if !ok {
			return ErrIncompleteWorkDayCoverage
		}
	}
	return nil
}

// validatePayload проверяет форму запроса на сохранение: коды дней,
// формат времени и дат. Согласованность календаря проверяет Validate
func validatePayload(info *domain.CalendarInformation) error {
	if info.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	if info.Status != domain.StatusActive && info.Status != domain.StatusInactive {
		return fmt.Errorf("%w: status must be ACTIVE or INACTIVE", ErrInvalidInput)
	}

	seen := make(map[int]bool, len(info.WorkDays))
	for _, day := range info.WorkDays {
		if day < 1 || day > 7 {
			return fmt.Errorf("%w: work day %d out of range 1-7", ErrInvalidInput, day)
		}
		if seen[day] {
			return fmt.Errorf("%w: duplicate work day %d", ErrInvalidInput, day)
		}
		seen[day] = true
	}

	for _, rule := range info.BusinessHours {
		if rule.Day < 1 || rule.Day > domain.DayAllDays {
			return fmt.Errorf("%w: business hours day %d out of range 1-7", ErrInvalidInput, rule.Day)
		}
		if err := rule.StartTime.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		if err := rule.EndTime.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		if !rule.StartTime.IsBefore(rule.EndTime) {
			return fmt.Errorf("%w: business hours start %s must be before end %s",
				ErrInvalidInput, rule.StartTime, rule.EndTime)
		}
	}

	for _, h := range info.Holidays {
		if h.Name == "" {
			return fmt.Errorf("%w: holiday name is required", ErrInvalidInput)
		}
		if err := h.StartDate.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		if err := h.EndDate.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		if h.EndDate.IsBefore(h.StartDate) {
			return fmt.Errorf("%w: holiday %s ends before it starts", ErrInvalidInput, h.Name)
		}
	}

	return nil
}
