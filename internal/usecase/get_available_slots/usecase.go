package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/schedule"
	serviceRepo "github.com/m04kA/SMC-AgendaService/internal/infra/storage/service"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

// UseCase use case для получения доступных слотов на дату
type UseCase struct {
	scheduleRepo    ScheduleRepository
	serviceRepo     ServiceRepository
	appointmentRepo AppointmentRepository
	slotsCache      SlotsCache
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	scheduleRepo ScheduleRepository,
	serviceRepo ServiceRepository,
	appointmentRepo AppointmentRepository,
	slotsCache SlotsCache,
	logger Logger,
) *UseCase {
	return &UseCase{
		scheduleRepo:    scheduleRepo,
		serviceRepo:     serviceRepo,
		appointmentRepo: appointmentRepo,
		slotsCache:      slotsCache,
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: professional=%d, service=%d, date=%s",
		req.ProfessionalID, req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем услугу - её длительность определяет размер слота
	svc, err := uc.serviceRepo.GetByID(ctx, req.ProfessionalID, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found for professional=%d",
				req.ServiceID, req.ProfessionalID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if err := validateService(svc); err != nil {
		uc.logger.Warn("GetAvailableSlots: service validation failed: %v", err)
		return nil, err
	}

	// 3. Определяем шаг сетки: по умолчанию слоты идут встык
	step := svc.DurationMinutes
	if req.Step != nil {
		step = *req.Step
	}

	// 4. Проверяем кэш
	var cached Response
	if uc.slotsCache.Get(ctx, req.ProfessionalID, req.ServiceID, req.Date, step, &cached) {
		uc.logger.Info("GetAvailableSlots: cache hit, professional=%d, date=%s, slots=%d",
			req.ProfessionalID, req.Date.Format(domain.DateFormat), len(cached.Slots))
		return &cached, nil
	}

	// 5. Получаем снапшот расписания
	// Ненастроенное расписание - штатный "закрытый" результат, не ошибка
	snapshot, err := uc.scheduleRepo.GetSnapshot(ctx, req.ProfessionalID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			uc.logger.Info("GetAvailableSlots: professional=%d has no schedule configured", req.ProfessionalID)
			return emptyResponse(req, 0), nil
		}
		uc.logger.Error("GetAvailableSlots: failed to get schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	// 6. Получаем активные записи на дату
	filter := domain.DayAppointmentsFilter{
		ProfessionalID: req.ProfessionalID,
		StartDate:      &req.Date,
		EndDate:        &req.Date,
	}
	appointments, err := uc.appointmentRepo.GetByFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 7. Чистое вычисление слотов по снапшоту
	daySlots := buildDaySlots(snapshot, req.Date, svc.DurationMinutes, step, appointments)

	slots := make([]Slot, 0, len(daySlots))
	for _, s := range daySlots {
		startTime, err := types.NewTimeStringFromMinutes(s.StartMinute)
		if err != nil {
			return nil, fmt.Errorf("%w: slot start: %v", ErrInternal, err)
		}
		endTime, err := types.NewTimeStringFromMinutes(s.EndMinute)
		if err != nil {
			return nil, fmt.Errorf("%w: slot end: %v", ErrInternal, err)
		}
		slots = append(slots, Slot{
			StartTime:       startTime,
			EndTime:         endTime,
			DurationMinutes: s.Duration(),
		})
	}

	response := &Response{
		ProfessionalID:  req.ProfessionalID,
		ServiceID:       req.ServiceID,
		Date:            req.Date,
		ScheduleVersion: snapshot.Version,
		Slots:           slots,
	}

	// 8. Кэшируем результат (best-effort)
	uc.slotsCache.Set(ctx, req.ProfessionalID, req.ServiceID, req.Date, step, response)

	uc.logger.Info("GetAvailableSlots: generated %d slots for professional=%d, service=%d, date=%s",
		len(slots), req.ProfessionalID, req.ServiceID, req.Date.Format(domain.DateFormat))

	return response, nil
}

// emptyResponse формирует штатный пустой ответ
func emptyResponse(req *Request, version int64) *Response {
	return &Response{
		ProfessionalID:  req.ProfessionalID,
		ServiceID:       req.ServiceID,
		Date:            req.Date,
		ScheduleVersion: version,
		Slots:           []Slot{},
	}
}
