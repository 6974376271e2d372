package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/schedule"
	serviceRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/service"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// UseCase use case для создания записи
type UseCase struct {
	appointmentRepo AppointmentRepository
	scheduleRepo    ScheduleRepository
	serviceRepo     ServiceRepository
	txManager       TransactionManager
	events          EventPublisher
	slotsCache      SlotsCache
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	scheduleRepo ScheduleRepository,
	serviceRepo ServiceRepository,
	txManager TransactionManager,
	events EventPublisher,
	slotsCache SlotsCache,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		scheduleRepo:    scheduleRepo,
		serviceRepo:     serviceRepo,
		txManager:       txManager,
		events:          events,
		slotsCache:      slotsCache,
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
//
// Авторитетная проверка доступности: ранее выданный список слотов лишь
// рекомендательный. Использует сериализуемую транзакцию и блокировку строк
// дня, чтобы из двух конкурентных запросов на пересекающиеся интервалы
// ровно один завершился успехом
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: professional=%d, service=%d, date=%s, time=%s",
		req.ProfessionalID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем услугу - длительность и цена фиксируются в записи
	svc, err := uc.serviceRepo.GetByID(ctx, req.ProfessionalID, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%d not found for professional=%d",
				req.ServiceID, req.ProfessionalID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if err := validateService(svc); err != nil {
		uc.logger.Warn("CreateAppointment: service validation failed: %v", err)
		return nil, err
	}

	startMinute, err := req.StartTime.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: startTime: %v", ErrInvalidInput, err)
	}

	interval := domain.Interval{Start: startMinute, End: startMinute + svc.DurationMinutes}
	if !interval.IsValid() {
		uc.logger.Warn("CreateAppointment: interval [%d, %d) leaves the day", interval.Start, interval.End)
		return nil, fmt.Errorf("%w: appointment must end within the same day", ErrInvalidInput)
	}

	// Переменная для хранения результата
	var result *domain.Appointment

	// 3. Выполняем проверку и вставку в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем снапшот расписания
		// Ненастроенное расписание означает, что мастер не принимает записи
		snapshot, err := uc.scheduleRepo.GetSnapshot(txCtx, req.ProfessionalID)
		if err != nil {
			if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
				uc.logger.Warn("CreateAppointment: professional=%d has no schedule configured", req.ProfessionalID)
				return ErrProfessionalClosed
			}
			uc.logger.Error("CreateAppointment: failed to get schedule: %v", err)
			return fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
		}

		// 3.2. Проверяем рабочее окно и блокировки
		if err := checkWithinSchedule(snapshot, req, interval); err != nil {
			uc.logger.Warn("CreateAppointment: schedule check failed: %v", err)
			return err
		}

		// 3.3. Получаем активные записи дня с блокировкой строк (FOR UPDATE)
		filter := domain.DayAppointmentsFilter{
			ProfessionalID: req.ProfessionalID,
			StartDate:      &req.Date,
			EndDate:        &req.Date,
		}
		appointments, err := uc.appointmentRepo.GetByFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 3.4. Проверяем пересечения по свежим данным
		if conflict := findConflict(appointments, interval); conflict != nil {
			uc.logger.Warn("CreateAppointment: interval [%d, %d) conflicts with appointment id=%d",
				interval.Start, interval.End, conflict.ID)
			return ErrIntervalConflict
		}

		// 3.5. Создаем запись с денормализацией данных услуги
		appt := &domain.Appointment{
			ProfessionalID:  req.ProfessionalID,
			ServiceID:       req.ServiceID,
			Date:            req.Date,
			StartMinute:     startMinute,
			DurationMinutes: svc.DurationMinutes,
			Status:          domain.StatusActive,
			ServiceName:     svc.Name,
			ServicePrice:    svc.Price,
			CustomerName:    req.CustomerName,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

	// 4. Пост-коммитные эффекты: событие и инвалидация кэша (best-effort)
	if err := uc.events.AppointmentCreated(ctx, result); err != nil {
		uc.logger.Warn("CreateAppointment: failed to publish event for appointment id=%d: %v", result.ID, err)
	}
	uc.slotsCache.InvalidateDay(ctx, req.ProfessionalID, req.Date)

	return toResponse(result)
}

// toResponse конвертирует доменную запись в response
func toResponse(appt *domain.Appointment) (*Response, error) {
	startTime, err := types.NewTimeStringFromMinutes(appt.StartMinute)
	if err != nil {
		return nil, fmt.Errorf("%w: start time: %v", ErrInternal, err)
	}
	endTime, err := types.NewTimeStringFromMinutes(appt.StartMinute + appt.DurationMinutes)
	if err != nil {
		return nil, fmt.Errorf("%w: end time: %v", ErrInternal, err)
	}

	return &Response{
		ID:              appt.ID,
		ProfessionalID:  appt.ProfessionalID,
		ServiceID:       appt.ServiceID,
		Date:            appt.Date,
		StartTime:       startTime,
		EndTime:         endTime,
		DurationMinutes: appt.DurationMinutes,
		Status:          string(appt.Status),
		ServiceName:     appt.ServiceName,
		ServicePrice:    appt.ServicePrice,
		CustomerName:    appt.CustomerName,
		CreatedAt:       appt.CreatedAt,
		UpdatedAt:       appt.UpdatedAt,
	}, nil
}
