package remove_blocked_date

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AgendaService/internal/api/handlers"
	scheduleService "github.com/m04kA/SMC-AgendaService/internal/service/schedule"
)

const (
	msgInvalidProfessionalID = "некорректный ID мастера"
	msgInvalidBlockedDateID  = "некорректный ID блокировки"
	msgNotFound              = "блокировка не найдена"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/professionals/{professionalId}/schedule/blocked-dates/{blockedDateId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	professionalID, err := strconv.ParseInt(vars["professionalId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /professionals/{id}/schedule/blocked-dates/{blockId} - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	blockedDateID := vars["blockedDateId"]

	result, err := h.service.RemoveBlockedDate(r.Context(), professionalID, blockedDateID)
	if err != nil {
		switch {
		case errors.Is(err, scheduleService.ErrBlockedDateNotFound):
			h.logger.Warn("DELETE /professionals/{id}/schedule/blocked-dates/{blockId} - Blocked date not found: professional_id=%d, block_id=%s",
				professionalID, blockedDateID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, scheduleService.ErrInvalidInput):
			h.logger.Warn("DELETE /professionals/{id}/schedule/blocked-dates/{blockId} - Invalid blocked date ID: professional_id=%d, block_id=%s",
				professionalID, blockedDateID)
			handlers.RespondBadRequest(w, msgInvalidBlockedDateID)

		default:
			h.logger.Error("DELETE /professionals/{id}/schedule/blocked-dates/{blockId} - Failed to remove blocked date: professional_id=%d, block_id=%s, error=%v",
				professionalID, blockedDateID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /professionals/{id}/schedule/blocked-dates/{blockId} - Blocked date removed successfully: professional_id=%d, block_id=%s, version=%d",
		professionalID, blockedDateID, result.Version)
	handlers.RespondJSON(w, http.StatusOK, result)
}
