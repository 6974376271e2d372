package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	scheduleRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-AgendaService/internal/service/schedule/models"
)

// Service сервис для работы с расписаниями мастеров
//
// Каждая мутация поднимает версию расписания и инвалидирует кэш слотов:
// ранее выданные списки слотов считаются устаревшими
type Service struct {
	scheduleRepo ScheduleRepository
	txManager    TransactionManager
	slotsCache   SlotsCache
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(
	scheduleRepo ScheduleRepository,
	txManager TransactionManager,
	slotsCache SlotsCache,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		txManager:    txManager,
		slotsCache:   slotsCache,
		logger:       logger,
	}
}

// GetSchedule получает расписание мастера с недельной сеткой и блокировками
func (s *Service) GetSchedule(ctx context.Context, professionalID int64) (*models.ScheduleResponse, error) {
	s.logger.Info("GetSchedule: fetching schedule for professional=%d", professionalID)

	if professionalID <= 0 {
		return nil, fmt.Errorf("%w: professionalID must be positive", ErrInvalidInput)
	}

	snapshot, err := s.scheduleRepo.GetSnapshot(ctx, professionalID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			s.logger.Warn("GetSchedule: professional=%d has no schedule configured", professionalID)
			return nil, ErrScheduleNotFound
		}
		s.logger.Error("GetSchedule: repository error for professional=%d: %v", professionalID, err)
		return nil, fmt.Errorf("%w: GetSchedule - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSnapshot(snapshot), nil
}

// ReplaceWeekHours атомарно заменяет недельную сетку мастера
// Отсутствующие в запросе дни становятся выходными
func (s *Service) ReplaceWeekHours(ctx context.Context, req *models.ReplaceWeekHoursRequest) (*models.MutationResponse, error) {
	s.logger.Info("ReplaceWeekHours: professional=%d, days=%d", req.ProfessionalID, len(req.Days))

	if req.ProfessionalID <= 0 {
		return nil, fmt.Errorf("%w: professionalID must be positive", ErrInvalidInput)
	}

	week, err := req.ToDomainWeek()
	if err != nil {
		s.logger.Warn("ReplaceWeekHours: invalid week for professional=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := week.Validate(); err != nil {
		s.logger.Warn("ReplaceWeekHours: week validation failed for professional=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var version int64
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		v, err := s.scheduleRepo.ReplaceWeek(txCtx, req.ProfessionalID, week)
		if err != nil {
			return fmt.Errorf("%w: ReplaceWeekHours - repository error: %v", ErrInternal, err)
		}
		version = v
		return nil
	})
	if err != nil {
		s.logger.Error("ReplaceWeekHours: failed for professional=%d: %v", req.ProfessionalID, err)
		return nil, err
	}

	s.slotsCache.InvalidateProfessional(ctx, req.ProfessionalID)

	s.logger.Info("ReplaceWeekHours: professional=%d updated to version=%d", req.ProfessionalID, version)
	return &models.MutationResponse{ProfessionalID: req.ProfessionalID, Version: version}, nil
}

// AddBlockedDate добавляет блокировку: на весь день или на интервал,
// однократную или ежегодную
func (s *Service) AddBlockedDate(ctx context.Context, req *models.AddBlockedDateRequest) (*models.MutationResponse, error) {
	s.logger.Info("AddBlockedDate: professional=%d, date=%s", req.ProfessionalID, req.Date)

	if req.ProfessionalID <= 0 {
		return nil, fmt.Errorf("%w: professionalID must be positive", ErrInvalidInput)
	}

	exc, err := req.ToDomainException()
	if err != nil {
		s.logger.Warn("AddBlockedDate: invalid request for professional=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	exc.ID = uuid.NewString()

	if err := exc.Validate(); err != nil {
		s.logger.Warn("AddBlockedDate: validation failed for professional=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var version int64
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		v, err := s.scheduleRepo.AddException(txCtx, req.ProfessionalID, exc)
		if err != nil {
			return fmt.Errorf("%w: AddBlockedDate - repository error: %v", ErrInternal, err)
		}
		version = v
		return nil
	})
	if err != nil {
		s.logger.Error("AddBlockedDate: failed for professional=%d: %v", req.ProfessionalID, err)
		return nil, err
	}

	s.slotsCache.InvalidateProfessional(ctx, req.ProfessionalID)

	s.logger.Info("AddBlockedDate: professional=%d added block id=%s, version=%d",
		req.ProfessionalID, exc.ID, version)
	return &models.MutationResponse{
		ProfessionalID: req.ProfessionalID,
		Version:        version,
		BlockedDateID:  exc.ID,
	}, nil
}

// RemoveBlockedDate удаляет блокировку по ID
func (s *Service) RemoveBlockedDate(ctx context.Context, professionalID int64, blockedDateID string) (*models.MutationResponse, error) {
	s.logger.Info("RemoveBlockedDate: professional=%d, block id=%s", professionalID, blockedDateID)

	if professionalID <= 0 {
		return nil, fmt.Errorf("%w: professionalID must be positive", ErrInvalidInput)
	}
	if _, err := uuid.Parse(blockedDateID); err != nil {
		return nil, fmt.Errorf("%w: blockedDateID must be a valid UUID", ErrInvalidInput)
	}

	var version int64
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		v, err := s.scheduleRepo.RemoveException(txCtx, professionalID, blockedDateID)
		if err != nil {
			if errors.Is(err, scheduleRepo.ErrExceptionNotFound) {
				return ErrBlockedDateNotFound
			}
			return fmt.Errorf("%w: RemoveBlockedDate - repository error: %v", ErrInternal, err)
		}
		version = v
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrBlockedDateNotFound) {
			s.logger.Warn("RemoveBlockedDate: block id=%s not found for professional=%d", blockedDateID, professionalID)
			return nil, err
		}
		s.logger.Error("RemoveBlockedDate: failed for professional=%d: %v", professionalID, err)
		return nil, err
	}

	s.slotsCache.InvalidateProfessional(ctx, professionalID)

	s.logger.Info("RemoveBlockedDate: professional=%d removed block id=%s, version=%d",
		professionalID, blockedDateID, version)
	return &models.MutationResponse{ProfessionalID: professionalID, Version: version}, nil
}
