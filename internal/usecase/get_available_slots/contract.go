package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	// GetSnapshot получает версионированный снапшот расписания мастера
	GetSnapshot(ctx context.Context, professionalID int64) (*domain.ScheduleSnapshot, error)
}

// ServiceRepository интерфейс репозитория каталога услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, professionalID, serviceID int64) (*domain.ServiceDefinition, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// GetByFilter получает записи мастера на конкретную дату
	GetByFilter(ctx context.Context, filter domain.DayAppointmentsFilter) ([]*domain.Appointment, error)
}

// SlotsCache интерфейс кэша ответов о доступных слотах
// Кэш строго best-effort: промах или ошибка приводят к пересчету
type SlotsCache interface {
	Get(ctx context.Context, professionalID, serviceID int64, date time.Time, step int, dest interface{}) bool
	Set(ctx context.Context, professionalID, serviceID int64, date time.Time, step int, value interface{})
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
