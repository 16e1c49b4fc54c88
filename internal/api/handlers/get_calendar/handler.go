package get_calendar

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	"github.com/m04kA/SMC-CalendarService/internal/service/calendars"
	"github.com/m04kA/SMC-CalendarService/pkg/uid"
)

const (
	msgInvalidCalendarUID = "некорректный UID календаря"
	msgCalendarNotFound   = "календарь не найден"
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

// Handle GET /api/v1/calendars/{calendarUid}
// Query params: validate (опционально, "true" включает проверку согласованности
// с деградацией к календарю по умолчанию)
// Публичный endpoint - без авторизации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	calendarUID := vars["calendarUid"]

	if len(calendarUID) != uid.Length {
		h.logger.Warn("GET /calendars/{uid} - Invalid calendar UID: %s", calendarUID)
		handlers.RespondBadRequest(w, msgInvalidCalendarUID)
		return
	}

	validate := r.URL.Query().Get("validate") == "true"

	// Сначала проверяем существование, чтобы отдать честный 404:
	// GetFullInformation сам по себе молча подставляет календарь по умолчанию
	if _, err := h.service.GetDefinition(r.Context(), calendarUID, false); err != nil {
		if errors.Is(err, calendars.ErrCalendarNotFound) {
			h.logger.Info("GET /calendars/{uid} - Calendar not found: uid=%s", calendarUID)
			handlers.RespondNotFound(w, msgCalendarNotFound)
			return
		}
		h.logger.Error("GET /calendars/{uid} - Failed to get calendar: uid=%s, error=%v", calendarUID, err)
		handlers.RespondInternalError(w)
		return
	}

	result, err := h.service.GetFullInformation(r.Context(), calendarUID, validate)
	if err != nil {
		h.logger.Error("GET /calendars/{uid} - Failed to get full information: uid=%s, error=%v", calendarUID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /calendars/{uid} - Calendar retrieved successfully: uid=%s", result.UID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
