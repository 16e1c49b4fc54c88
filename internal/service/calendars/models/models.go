package models

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// Request модели

// BusinessHourPayload описание одного правила рабочих часов в запросе на сохранение
type BusinessHourPayload struct {
	Day       int              `json:"day"` // 1-7, 7 = все дни недели
	StartTime types.TimeString `json:"startTime"`
	EndTime   types.TimeString `json:"endTime"`
}

// HolidayPayload описание одного праздничного периода в запросе на сохранение
type HolidayPayload struct {
	Name      string           `json:"name"`
	StartDate types.DateString `json:"startDate"`
	EndDate   types.DateString `json:"endDate"`
}

// SaveCalendarRequest запрос на сохранение календаря вместе с дочерними записями
// UID опционален: при отсутствии генерируется новый идентификатор
type SaveCalendarRequest struct {
	UID           string                `json:"uid,omitempty"`
	Name          string                `json:"name"`
	Description   string                `json:"description,omitempty"`
	Status        string                `json:"status,omitempty"` // ACTIVE/INACTIVE, по умолчанию ACTIVE
	WorkDays      []int                 `json:"workDays"`
	BusinessHours []BusinessHourPayload `json:"businessHours"`
	Holidays      []HolidayPayload      `json:"holidays,omitempty"`
}

// ToDomainInformation собирает кандидата для валидации из запроса
// Идентификаторы хранения остаются незаполненными: это ещё не сохранённая сущность
func (r *SaveCalendarRequest) ToDomainInformation() *domain.CalendarInformation {
	status := domain.CalendarStatus(r.Status)
	if r.Status == "" {
		status = domain.StatusActive
	}

	info := &domain.CalendarInformation{
		Calendar: domain.Calendar{
			UID:         r.UID,
			Name:        r.Name,
			Description: r.Description,
			Status:      status,
			WorkDays:    domain.WorkDays(r.WorkDays),
		},
		BusinessHours: make([]domain.BusinessHourRule, 0, len(r.BusinessHours)),
		Holidays:      make([]domain.Holiday, 0, len(r.Holidays)),
	}

	for _, rule := range r.BusinessHours {
		info.BusinessHours = append(info.BusinessHours, domain.BusinessHourRule{
			Day:       rule.Day,
			StartTime: rule.StartTime,
			EndTime:   rule.EndTime,
		})
	}
	for _, h := range r.Holidays {
		info.Holidays = append(info.Holidays, domain.Holiday{
			Name:      h.Name,
			StartDate: h.StartDate,
			EndDate:   h.EndDate,
		})
	}

	return info
}

// Response модели

// BusinessHourResponse правило рабочих часов в ответе
type BusinessHourResponse struct {
	ID        int64            `json:"id"`
	Day       int              `json:"day"`
	StartTime types.TimeString `json:"startTime"`
	EndTime   types.TimeString `json:"endTime"`
}

// HolidayResponse праздничный период в ответе
type HolidayResponse struct {
	ID        int64            `json:"id"`
	Name      string           `json:"name"`
	StartDate types.DateString `json:"startDate"`
	EndDate   types.DateString `json:"endDate"`
}

// CalendarResponse ответ с данными календаря и дочерними записями
type CalendarResponse struct {
	UID           string                 `json:"uid"`
	Name          string                 `json:"name"`
	Description   string                 `json:"description,omitempty"`
	Status        string                 `json:"status"`
	WorkDays      []int                  `json:"workDays"`
	BusinessHours []BusinessHourResponse `json:"businessHours"`
	Holidays      []HolidayResponse      `json:"holidays"`
	CreatedAt     time.Time              `json:"createdAt"`
	UpdatedAt     time.Time              `json:"updatedAt"`
}

// CalendarListResponse ответ со списком календарей (без дочерних записей)
type CalendarListResponse struct {
	Calendars []CalendarResponse `json:"calendars"`
}

// Методы конвертации

// FromDomainCalendar конвертирует определение календаря в DTO (без дочерних записей)
func FromDomainCalendar(c *domain.Calendar) *CalendarResponse {
	if c == nil {
		return nil
	}

	return &CalendarResponse{
		UID:           c.UID,
		Name:          c.Name,
		Description:   c.Description,
		Status:        string(c.Status),
		WorkDays:      append([]int{}, c.WorkDays...),
		BusinessHours: []BusinessHourResponse{},
		Holidays:      []HolidayResponse{},
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

// FromDomainInformation конвертирует календарь с дочерними записями в DTO
func FromDomainInformation(info *domain.CalendarInformation) *CalendarResponse {
	if info == nil {
		return nil
	}

	resp := FromDomainCalendar(&info.Calendar)

	for _, rule := range info.BusinessHours {
		resp.BusinessHours = append(resp.BusinessHours, BusinessHourResponse{
			ID:        rule.ID,
			Day:       rule.Day,
			StartTime: rule.StartTime,
			EndTime:   rule.EndTime,
		})
	}
	for _, h := range info.Holidays {
		resp.Holidays = append(resp.Holidays, HolidayResponse{
			ID:        h.ID,
			Name:      h.Name,
			StartDate: h.StartDate,
			EndDate:   h.EndDate,
		})
	}

	return resp
}

// FromDomainCalendarList конвертирует список определений в DTO
func FromDomainCalendarList(calendars []*domain.Calendar) *CalendarListResponse {
	resp := &CalendarListResponse{
		Calendars: make([]CalendarResponse, 0, len(calendars)),
	}
	for _, c := range calendars {
		if converted := FromDomainCalendar(c); converted != nil {
			resp.Calendars = append(resp.Calendars, *converted)
		}
	}
	return resp
}

