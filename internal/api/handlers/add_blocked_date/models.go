package add_blocked_date

import (
	"github.com/m04kA/SMC-AgendaService/internal/service/schedule/models"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// AddBlockedDateRequest HTTP request model
// Блокировка без startTime и endTime закрывает день целиком
type AddBlockedDateRequest struct {
	Date         string  `json:"date"` // "2025-12-25"
	StartTime    *string `json:"startTime,omitempty"`
	EndTime      *string `json:"endTime,omitempty"`
	RepeatYearly bool    `json:"repeatYearly,omitempty"`
	Reason       string  `json:"reason,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *AddBlockedDateRequest) ToServiceRequest(professionalID int64) *models.AddBlockedDateRequest {
	req := &models.AddBlockedDateRequest{
		ProfessionalID: professionalID,
		Date:           r.Date,
		RepeatYearly:   r.RepeatYearly,
		Reason:         r.Reason,
	}

	if r.StartTime != nil {
		start := types.TimeString(*r.StartTime)
		req.StartTime = &start
	}
	if r.EndTime != nil {
		end := types.TimeString(*r.EndTime)
		req.EndTime = &end
	}

	return req
}
