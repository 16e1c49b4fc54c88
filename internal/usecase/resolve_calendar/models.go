package resolve_calendar

import (
	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/internal/service/calendars/models"
)

// Request модель запроса на резолв календаря для цепочки владельцев
// Любой из UID может быть пустым; совпадение UID в нескольких полях легально
// и влияет только на подпись владельца в ответе
type Request struct {
	UserUID    string // UID пользователя
	ProcessUID string // UID процесса
	TaskUID    string // UID задачи
	Validate   bool   // Проверять ли согласованность найденного календаря
}

// Response модель ответа с управляющим календарём и видом владельца
type Response struct {
	Calendar *models.CalendarResponse `json:"calendar"`
	Owner    domain.OwnerKind         `json:"owner"`
}
