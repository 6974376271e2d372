package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-AgendaService/internal/service/appointments/models"
)

// Service сервис для работы с записями
type Service struct {
	appointmentRepo AppointmentRepository
	events          EventPublisher
	slotsCache      SlotsCache
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	events EventPublisher,
	slotsCache SlotsCache,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		events:          events,
		slotsCache:      slotsCache,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d", id)

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appt), nil
}

// GetDayAgenda получает повестку дня мастера: сначала предстоящие записи
// по возрастанию времени начала, затем прошедшие, тоже по возрастанию.
// NextAppointmentID указывает на ближайшую предстоящую активную запись
//
// Точка "сейчас" берется из запроса; если не указана, выводится из даты:
// сегодняшняя дата режет день по текущему времени, прошедшая дата
// считается целиком прошедшей, будущая - целиком предстоящей
func (s *Service) GetDayAgenda(ctx context.Context, req *models.GetDayAgendaRequest) (*models.DayAgendaResponse, error) {
	s.logger.Info("GetDayAgenda: professional=%d, date=%s",
		req.ProfessionalID, req.Date.Format(domain.DateFormat))

	if req.ProfessionalID <= 0 {
		return nil, fmt.Errorf("%w: professionalID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	nowMinute, err := s.resolveNowMinute(req)
	if err != nil {
		s.logger.Warn("GetDayAgenda: invalid time: %v", err)
		return nil, err
	}

	filter := domain.DayAppointmentsFilter{
		ProfessionalID:  req.ProfessionalID,
		StartDate:       &req.Date,
		EndDate:         &req.Date,
		IncludeInactive: req.IncludeInactive,
	}

	fetched, err := s.appointmentRepo.GetByFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetDayAgenda: repository error for professional=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: GetDayAgenda - repository error: %v", ErrInternal, err)
	}

	ordered, nextIdx := domain.OrderDayAgenda(fetched, nowMinute)

	resp := &models.DayAgendaResponse{
		ProfessionalID: req.ProfessionalID,
		Date:           req.Date.Format(domain.DateFormat),
		Appointments:   models.FromDomainAppointmentList(ordered),
	}

	// Среди предстоящих ищем первую активную: отмененные записи
	// не могут быть "следующей"
	if nextIdx != domain.NoUpcoming {
		for i := nextIdx; i < len(ordered) && ordered[i].StartMinute >= nowMinute; i++ {
			if ordered[i].IsActive() {
				id := ordered[i].ID
				resp.NextAppointmentID = &id
				break
			}
		}
	}

	s.logger.Info("GetDayAgenda: fetched %d appointments for professional=%d",
		len(ordered), req.ProfessionalID)
	return resp, nil
}

// Cancel отменяет запись. Интервал освобождается немедленно
// и может быть занят новой записью
func (s *Service) Cancel(ctx context.Context, id int64) error {
	s.logger.Info("Cancel: cancelling appointment id=%d", id)

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%d not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !appt.CanBeCancelled() {
		s.logger.Warn("Cancel: appointment id=%d cannot be cancelled, status=%s", id, appt.Status)
		return ErrCannotCancel
	}

	if err := s.appointmentRepo.Cancel(ctx, id); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			// Конкурентная отмена: запись уже неактивна
			s.logger.Warn("Cancel: appointment id=%d already inactive", id)
			return ErrCannotCancel
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled appointment id=%d", id)

	if err := s.events.AppointmentCancelled(ctx, appt); err != nil {
		s.logger.Warn("Cancel: failed to publish event for appointment id=%d: %v", id, err)
	}
	s.slotsCache.InvalidateDay(ctx, appt.ProfessionalID, appt.Date)

	return nil
}

// resolveNowMinute вычисляет точку "сейчас" в минутах внутри запрошенного дня
func (s *Service) resolveNowMinute(req *models.GetDayAgendaRequest) (int, error) {
	if !req.Time.IsZero() {
		minute, err := req.Time.Minutes()
		if err != nil {
			return 0, fmt.Errorf("%w: time: %v", ErrInvalidInput, err)
		}
		return minute, nil
	}

	now := s.timeProvider.Now()
	today := now.Format(domain.DateFormat)
	requested := req.Date.Format(domain.DateFormat)

	switch {
	case requested == today:
		return now.Hour()*60 + now.Minute(), nil
	case requested < today:
		return domain.MinutesPerDay, nil
	default:
		return 0, nil
	}
}
