package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	ProfessionalID int64     // ID мастера
	ServiceID      int64     // ID услуги (определяет длительность слота)
	Date           time.Time // Дата для получения слотов (без времени)
	Step           *int      // Шаг сетки слотов в минутах (опционально, по умолчанию длительность услуги)
}

// Response модель ответа со списком доступных слотов
//
// Список рекомендательный: к моменту бронирования он может устареть,
// авторитетная проверка выполняется в create_appointment
type Response struct {
	ProfessionalID  int64     `json:"professionalId"`
	ServiceID       int64     `json:"serviceId"`
	Date            time.Time `json:"date"`
	ScheduleVersion int64     `json:"scheduleVersion"` // Версия снапшота расписания, по которому считались слоты
	Slots           []Slot    `json:"slots"`
}

// Slot кандидат на бронирование: незакоммиченный интервал
type Slot struct {
	StartTime       types.TimeString `json:"startTime"`
	EndTime         types.TimeString `json:"endTime"`
	DurationMinutes int              `json:"durationMinutes"`
}
