package get_default_calendar

import (
	"net/http"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
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

// Handle GET /api/v1/calendars/default
// Возвращает календарь по умолчанию, лениво создавая его при первом обращении
// Публичный endpoint - без авторизации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetDefault(r.Context())
	if err != nil {
		h.logger.Error("GET /calendars/default - Failed to get default calendar: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /calendars/default - Default calendar retrieved: uid=%s", result.UID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
