package catalog

import (
	"context"
	"errors"
	"fmt"

	serviceRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/service"
	"github.com/m04kA/SMC-AgendaService/internal/service/catalog/models"
)

// Service сервис каталога услуг
//
// Каталог read-only: наполняется внешним сервисом профилей,
// здесь он только читается для длительности и цены
type Service struct {
	serviceRepo ServiceRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(serviceRepo ServiceRepository, logger Logger) *Service {
	return &Service{
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// GetByID получает услугу мастера по ID
func (s *Service) GetByID(ctx context.Context, professionalID, serviceID int64) (*models.ServiceResponse, error) {
	s.logger.Info("GetByID: fetching service id=%d for professional=%d", serviceID, professionalID)

	if professionalID <= 0 || serviceID <= 0 {
		return nil, fmt.Errorf("%w: ids must be positive", ErrInvalidInput)
	}

	svc, err := s.serviceRepo.GetByID(ctx, professionalID, serviceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("GetByID: service id=%d not found for professional=%d", serviceID, professionalID)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("GetByID: repository error for service id=%d: %v", serviceID, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainService(svc), nil
}

// ListByProfessional получает все услуги мастера
func (s *Service) ListByProfessional(ctx context.Context, professionalID int64) (*models.ServiceListResponse, error) {
	s.logger.Info("ListByProfessional: fetching services for professional=%d", professionalID)

	if professionalID <= 0 {
		return nil, fmt.Errorf("%w: professionalID must be positive", ErrInvalidInput)
	}

	services, err := s.serviceRepo.ListByProfessional(ctx, professionalID)
	if err != nil {
		s.logger.Error("ListByProfessional: repository error for professional=%d: %v", professionalID, err)
		return nil, fmt.Errorf("%w: ListByProfessional - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByProfessional: fetched %d services for professional=%d", len(services), professionalID)
	return models.FromDomainServiceList(services), nil
}
