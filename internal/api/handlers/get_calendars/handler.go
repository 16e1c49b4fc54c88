package get_calendars

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

// Handle GET /api/v1/calendars
// Возвращает последние версии всех определений календарей без дочерних записей
// Защищенный endpoint - требует X-User-ID
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /calendars - Failed to list calendars: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /calendars - Listed %d calendars", len(result.Calendars))
	handlers.RespondJSON(w, http.StatusOK, result)
}
