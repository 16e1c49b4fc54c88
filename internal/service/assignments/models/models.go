package models

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// SaveAssignmentRequest запрос на назначение календаря владельцу
// Владельцем может быть пользователь, процесс или задача; сервису
// передается только его UID, вид владельца определяется при резолве
type SaveAssignmentRequest struct {
	OwnerUID    string `json:"ownerUid"`
	CalendarUID string `json:"calendarUid"`
}

// ToDomainAssignment конвертирует запрос в domain модель
func (r *SaveAssignmentRequest) ToDomainAssignment() *domain.Assignment {
	return &domain.Assignment{
		OwnerUID:    r.OwnerUID,
		CalendarUID: r.CalendarUID,
	}
}

// AssignmentResponse ответ с сохранённым назначением
type AssignmentResponse struct {
	ID          int64     `json:"id"`
	OwnerUID    string    `json:"ownerUid"`
	CalendarUID string    `json:"calendarUid"`
	CreatedAt   time.Time `json:"createdAt"`
}

// FromDomainAssignment конвертирует назначение в DTO
func FromDomainAssignment(a *domain.Assignment) *AssignmentResponse {
	if a == nil {
		return nil
	}

	return &AssignmentResponse{
		ID:          a.ID,
		OwnerUID:    a.OwnerUID,
		CalendarUID: a.CalendarUID,
		CreatedAt:   a.CreatedAt,
	}
}
