package catalog

import (
	"context"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// ServiceRepository интерфейс репозитория каталога услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, professionalID, serviceID int64) (*domain.ServiceDefinition, error)
	ListByProfessional(ctx context.Context, professionalID int64) ([]*domain.ServiceDefinition, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
