package get_available_slots

import (
	"fmt"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Некорректные данные - единственный повод для ошибки:
// закрытый день или отсутствие слотов ошибкой не являются
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

	if req.Step != nil {
		if *req.Step <= 0 {
			return fmt.Errorf("%w: step must be positive", ErrInvalidInput)
		}
		if *req.Step > domain.MaxSlotStepMinutes {
			return fmt.Errorf("%w: step must not exceed %d minutes", ErrInvalidInput, domain.MaxSlotStepMinutes)
		}
	}

	return nil
}

// validateService проверяет, что длительность услуги пригодна для генерации слотов
func validateService(svc *domain.ServiceDefinition) error {
	if svc.DurationMinutes <= 0 {
		return fmt.Errorf("%w: service duration must be positive", ErrInvalidInput)
	}
	return nil
}
