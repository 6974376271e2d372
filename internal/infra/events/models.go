package events

import "time"

// Типы событий жизненного цикла записи
const (
	TypeAppointmentCreated   = "appointment.created"
	TypeAppointmentCancelled = "appointment.cancelled"
)

// AppointmentEvent событие изменения записи на прием
// Публикуется для внешних потребителей (напоминания, аналитика)
type AppointmentEvent struct {
	EventID         string    `json:"eventId"`
	Type            string    `json:"type"`
	AppointmentID   int64     `json:"appointmentId"`
	ProfessionalID  int64     `json:"professionalId"`
	ServiceID       int64     `json:"serviceId"`
	Date            string    `json:"date"`      // YYYY-MM-DD
	StartTime       string    `json:"startTime"` // HH:MM
	DurationMinutes int       `json:"durationMinutes"`
	OccurredAt      time.Time `json:"occurredAt"`
}
