package save_assignment

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
	"github.com/m04kA/SMC-CalendarService/internal/service/assignments"
	"github.com/m04kA/SMC-CalendarService/internal/service/assignments/models"
)

const (
	msgInvalidBody  = "некорректное тело запроса"
	msgInvalidInput = "некорректные данные назначения"
)

type Handler struct {
	service AssignmentService
	logger  Logger
}

func NewHandler(service AssignmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/calendar-assignments
// Сохраняет назначение календаря владельцу (пользователю, процессу или задаче)
// Защищенный endpoint - требует X-User-ID
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.SaveAssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("POST /calendar-assignments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.Save(r.Context(), &req)
	if err != nil {
		if errors.Is(err, assignments.ErrInvalidInput) {
			h.logger.Warn("POST /calendar-assignments - Invalid assignment data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
			return
		}
		h.logger.Error("POST /calendar-assignments - Failed to save assignment: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /calendar-assignments - Assignment saved: id=%d, owner=%s, calendar=%s",
		result.ID, result.OwnerUID, result.CalendarUID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
