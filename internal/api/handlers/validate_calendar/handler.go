package validate_calendar

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	"github.com/m04kA/SMC-CalendarService/internal/service/calendars"
	"github.com/m04kA/SMC-CalendarService/internal/service/calendars/models"
)

const msgInvalidBody = "некорректное тело запроса"

type Handler struct {
	service CalendarService
	logger  Logger
}

func NewHandler(service CalendarService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/calendars/validate
// Проверяет кандидата без сохранения; в отличие от резолва, причина
// отклонения возвращается вызывающему напрямую
// Защищенный endpoint - требует X-User-ID
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.SaveCalendarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("POST /calendars/validate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	if err := h.service.ValidateInformation(&req); err != nil {
		if errors.Is(err, calendars.ErrInvalidInput) {
			h.logger.Warn("POST /calendars/validate - Invalid payload: %v", err)
			handlers.RespondBadRequest(w, err.Error())
			return
		}

		h.logger.Info("POST /calendars/validate - Candidate rejected: %v", err)
		handlers.RespondJSON(w, http.StatusUnprocessableEntity, FromValidationError(err))
		return
	}

	h.logger.Info("POST /calendars/validate - Candidate accepted: uid=%s", req.UID)
	handlers.RespondJSON(w, http.StatusOK, &Response{Valid: true})
}
