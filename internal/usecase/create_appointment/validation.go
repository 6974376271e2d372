package create_appointment

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ProfessionalID <= 0 {
		return fmt.Errorf("%w: professionalID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: startTime: %v", ErrInvalidInput, err)
	}

	name := strings.TrimSpace(req.CustomerName)
	if name == "" {
		return fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customerName must not exceed %d characters", ErrInvalidInput, domain.MaxCustomerNameLength)
	}

	return nil
}

// validateService проверяет длительность услуги перед фиксацией в записи
func validateService(svc *domain.ServiceDefinition) error {
	if !svc.HasValidDuration() {
		return fmt.Errorf("%w: service duration %d is out of allowed range [%d, %d]",
			ErrInvalidInput, svc.DurationMinutes, domain.MinServiceDurationMinutes, domain.MaxServiceDurationMinutes)
	}
	return nil
}

// checkWithinSchedule проверяет, что интервал целиком лежит в рабочем окне
// и не задевает блокировки. Нарушение трактуется как "мастер закрыт"
func checkWithinSchedule(snapshot *domain.ScheduleSnapshot, req *Request, interval domain.Interval) error {
	window := snapshot.WindowFor(req.Date)
	if window == nil {
		return ErrProfessionalClosed
	}

	if !window.Interval().Contains(interval) {
		return fmt.Errorf("%w: interval is outside working hours", ErrProfessionalClosed)
	}

	for _, exc := range snapshot.ExceptionsFor(req.Date) {
		if exc.FullDay {
			return fmt.Errorf("%w: date is fully blocked", ErrProfessionalClosed)
		}
		if exc.Interval().Overlaps(interval) {
			return fmt.Errorf("%w: interval overlaps a blocked period", ErrProfessionalClosed)
		}
	}

	return nil
}

// findConflict ищет активную запись, пересекающуюся с интервалом.
// Граничное касание конфликтом не считается
func findConflict(appointments []*domain.Appointment, interval domain.Interval) *domain.Appointment {
	for _, appt := range appointments {
		if !appt.IsActive() {
			continue
		}
		if appt.Interval().Overlaps(interval) {
			return appt
		}
	}
	return nil
}
