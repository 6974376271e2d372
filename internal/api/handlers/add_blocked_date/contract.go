package add_blocked_date

import (
	"context"

	"github.com/m04kA/SMC-AgendaService/internal/service/schedule/models"
)

type ScheduleService interface {
	AddBlockedDate(ctx context.Context, req *models.AddBlockedDateRequest) (*models.MutationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
