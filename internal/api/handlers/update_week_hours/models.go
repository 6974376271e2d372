package update_week_hours

import (
	"github.com/m04kA/SMC-AgendaService/internal/service/schedule/models"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// DayHoursRequest рабочие часы одного дня в HTTP запросе
type DayHoursRequest struct {
	Enabled   bool   `json:"enabled"`
	OpenTime  string `json:"openTime,omitempty"`  // "09:00"
	CloseTime string `json:"closeTime,omitempty"` // "18:00"
}

// UpdateWeekHoursRequest HTTP request model
// Отсутствующие дни становятся выходными
type UpdateWeekHoursRequest struct {
	Days map[string]DayHoursRequest `json:"days"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateWeekHoursRequest) ToServiceRequest(professionalID int64) *models.ReplaceWeekHoursRequest {
	days := make(map[string]models.DayHours, len(r.Days))
	for name, hours := range r.Days {
		days[name] = models.DayHours{
			Enabled:   hours.Enabled,
			OpenTime:  types.TimeString(hours.OpenTime),
			CloseTime: types.TimeString(hours.CloseTime),
		}
	}

	return &models.ReplaceWeekHoursRequest{
		ProfessionalID: professionalID,
		Days:           days,
	}
}
