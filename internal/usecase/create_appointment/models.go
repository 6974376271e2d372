package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	ProfessionalID int64            // ID мастера
	ServiceID      int64            // ID услуги
	Date           time.Time        // Дата записи (без времени)
	StartTime      types.TimeString // Время начала (HH:MM)
	CustomerName   string           // Имя клиента
}

// Response модель ответа с созданной записью
//
// Длительность и цена зафиксированы на момент создания:
// последующие изменения каталога услуг их не меняют
type Response struct {
	ID              int64            `json:"id"`
	ProfessionalID  int64            `json:"professionalId"`
	ServiceID       int64            `json:"serviceId"`
	Date            time.Time        `json:"date"`
	StartTime       types.TimeString `json:"startTime"`
	EndTime         types.TimeString `json:"endTime"`
	DurationMinutes int              `json:"durationMinutes"`
	Status          string           `json:"status"`
	ServiceName     string           `json:"serviceName"`
	ServicePrice    float64          `json:"servicePrice"`
	CustomerName    string           `json:"customerName"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}
