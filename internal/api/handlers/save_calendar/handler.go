package save_calendar

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	"github.com/m04kA/SMC-CalendarService/internal/service/calendars"
	"github.com/m04kA/SMC-CalendarService/internal/service/calendars/models"
)

const (
	msgInvalidBody  = "некорректное тело запроса"
	msgInvalidInput = "некорректные данные календаря"
)

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

// Handle POST /api/v1/calendars
// Сохраняет определение календаря вместе с правилами рабочих часов и праздниками
// Защищенный endpoint - требует X-User-ID
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.SaveCalendarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("POST /calendars - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.SaveInformation(r.Context(), &req)
	if err != nil {
		if errors.Is(err, calendars.ErrInvalidInput) {
			h.logger.Warn("POST /calendars - Invalid calendar data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
			return
		}
		h.logger.Error("POST /calendars - Failed to save calendar: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /calendars - Calendar saved successfully: uid=%s", result.UID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
