package create_appointment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	// GetByFilter получает записи мастера на дату
	// Внутри транзакции с фильтром по одной дате блокирует строки (FOR UPDATE)
	GetByFilter(ctx context.Context, filter domain.DayAppointmentsFilter) ([]*domain.Appointment, error)
}

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	GetSnapshot(ctx context.Context, professionalID int64) (*domain.ScheduleSnapshot, error)
}

// ServiceRepository интерфейс репозитория каталога услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, professionalID, serviceID int64) (*domain.ServiceDefinition, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher интерфейс публикации событий жизненного цикла записи
type EventPublisher interface {
	AppointmentCreated(ctx context.Context, appt *domain.Appointment) error
}

// SlotsCache интерфейс инвалидации кэша слотов
type SlotsCache interface {
	InvalidateDay(ctx context.Context, professionalID int64, date time.Time)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
