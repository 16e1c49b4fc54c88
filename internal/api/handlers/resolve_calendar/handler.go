package resolve_calendar

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	resolveUC "github.com/m04kA/SMC-CalendarService/internal/usecase/resolve_calendar"
)

const msgMissingOwner = "необходимо указать хотя бы один UID владельца"

type Handler struct {
	useCase ResolveCalendarUseCase
	logger  Logger
}

func NewHandler(useCase ResolveCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendars-resolution
// Query params: userUid, processUid, taskUid (хотя бы один обязателен),
// validate (опционально, по умолчанию true)
// Публичный endpoint - вызывается движком расчёта сроков
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	// Валидация включена по умолчанию: резолв обязан вернуть пригодный календарь
	validate := query.Get("validate") != "false"

	req := &resolveUC.Request{
		UserUID:    query.Get("userUid"),
		ProcessUID: query.Get("processUid"),
		TaskUID:    query.Get("taskUid"),
		Validate:   validate,
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		if errors.Is(err, resolveUC.ErrInvalidInput) {
			h.logger.Warn("GET /calendars-resolution - Missing owner UIDs")
			handlers.RespondBadRequest(w, msgMissingOwner)
			return
		}
		h.logger.Error("GET /calendars-resolution - Failed to resolve calendar: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /calendars-resolution - Resolved calendar uid=%s, owner=%s",
		result.Calendar.UID, result.Owner)
	handlers.RespondJSON(w, http.StatusOK, result)
}
