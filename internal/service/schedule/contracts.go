package schedule

import (
	"context"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	GetSnapshot(ctx context.Context, professionalID int64) (*domain.ScheduleSnapshot, error)
	// ReplaceWeek атомарно заменяет недельную сетку и возвращает новую версию.
	// Должен вызываться внутри транзакции
	ReplaceWeek(ctx context.Context, professionalID int64, week domain.WeekSchedule) (int64, error)
	AddException(ctx context.Context, professionalID int64, exc domain.ScheduleException) (int64, error)
	RemoveException(ctx context.Context, professionalID int64, exceptionID string) (int64, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// SlotsCache интерфейс инвалидации кэша слотов
type SlotsCache interface {
	InvalidateProfessional(ctx context.Context, professionalID int64)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
