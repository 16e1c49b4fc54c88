package save_assignment

import (
	"context"

	"github.com/m04kA/SMC-CalendarService/internal/service/assignments/models"
)

type AssignmentService interface {
	Save(ctx context.Context, req *models.SaveAssignmentRequest) (*models.AssignmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
