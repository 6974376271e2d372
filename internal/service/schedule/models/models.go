package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/types"
)

var (
	// ErrInvalidWeekday возвращается при неизвестном названии дня недели
	ErrInvalidWeekday = errors.New("invalid weekday name")

	// ErrInvalidTime возвращается при некорректном времени
	ErrInvalidTime = errors.New("invalid time value")
)

// weekdayNames маппинг JSON ключей на time.Weekday
var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// weekdayKeys обратный маппинг для сериализации
var weekdayKeys = map[time.Weekday]string{
	time.Sunday:    "sunday",
	time.Monday:    "monday",
	time.Tuesday:   "tuesday",
	time.Wednesday: "wednesday",
	time.Thursday:  "thursday",
	time.Friday:    "friday",
	time.Saturday:  "saturday",
}

// Request модели

// DayHours рабочие часы одного дня недели
// Для включенного дня без указанных часов применяются значения
// по умолчанию 09:00-18:00
type DayHours struct {
	Enabled   bool             `json:"enabled"`
	OpenTime  types.TimeString `json:"openTime,omitempty"`
	CloseTime types.TimeString `json:"closeTime,omitempty"`
}

// ReplaceWeekHoursRequest запрос на полную замену недельной сетки
// Отсутствующие дни считаются выходными
type ReplaceWeekHoursRequest struct {
	ProfessionalID int64               `json:"professionalId"`
	Days           map[string]DayHours `json:"days"`
}

// ToDomainWeek конвертирует request в domain недельную сетку
func (r *ReplaceWeekHoursRequest) ToDomainWeek() (domain.WeekSchedule, error) {
	week := make(domain.WeekSchedule, len(r.Days))

	for name, hours := range r.Days {
		weekday, ok := weekdayNames[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidWeekday, name)
		}

		window := domain.DayWindow{
			Enabled:     hours.Enabled,
			OpenMinute:  domain.DefaultOpenMinute,
			CloseMinute: domain.DefaultCloseMinute,
		}

		if !hours.OpenTime.IsZero() {
			minute, err := hours.OpenTime.Minutes()
			if err != nil {
				return nil, fmt.Errorf("%w: %s openTime: %v", ErrInvalidTime, name, err)
			}
			window.OpenMinute = minute
		}
		if !hours.CloseTime.IsZero() {
			minute, err := hours.CloseTime.Minutes()
			if err != nil {
				return nil, fmt.Errorf("%w: %s closeTime: %v", ErrInvalidTime, name, err)
			}
			window.CloseMinute = minute
		}

		week[weekday] = window
	}

	return week, nil
}

// AddBlockedDateRequest запрос на добавление блокировки
//
// Блокировка без startTime и endTime закрывает день целиком.
// repeatYearly повторяет блокировку каждый год в тот же день
type AddBlockedDateRequest struct {
	ProfessionalID int64             `json:"professionalId"`
	Date           string            `json:"date"` // "2025-12-25"
	StartTime      *types.TimeString `json:"startTime,omitempty"`
	EndTime        *types.TimeString `json:"endTime,omitempty"`
	RepeatYearly   bool              `json:"repeatYearly,omitempty"`
	Reason         string            `json:"reason,omitempty"`
}

// ToDomainException конвертирует request в domain блокировку
// ID должен быть присвоен вызывающей стороной
func (r *AddBlockedDateRequest) ToDomainException() (domain.ScheduleException, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return domain.ScheduleException{}, fmt.Errorf("%w: date %q", ErrInvalidTime, r.Date)
	}

	if len(r.Reason) > domain.MaxLabelLength {
		return domain.ScheduleException{}, fmt.Errorf("reason must not exceed %d characters", domain.MaxLabelLength)
	}

	exc := domain.ScheduleException{
		Scope: domain.ScopeOneOff,
		Year:  date.Year(),
		Month: date.Month(),
		Day:   date.Day(),
		Label: r.Reason,
	}
	if r.RepeatYearly {
		exc.Scope = domain.ScopeAnnual
		exc.Year = 0
	}

	if r.StartTime == nil && r.EndTime == nil {
		exc.FullDay = true
		return exc, nil
	}

	if r.StartTime == nil || r.EndTime == nil {
		return domain.ScheduleException{}, fmt.Errorf("%w: startTime and endTime must be set together", ErrInvalidTime)
	}

	start, err := r.StartTime.Minutes()
	if err != nil {
		return domain.ScheduleException{}, fmt.Errorf("%w: startTime: %v", ErrInvalidTime, err)
	}
	end, err := r.EndTime.Minutes()
	if err != nil {
		return domain.ScheduleException{}, fmt.Errorf("%w: endTime: %v", ErrInvalidTime, err)
	}

	exc.StartMinute = &start
	exc.EndMinute = &end
	return exc, nil
}

// Response модели

// DayHoursResponse рабочие часы одного дня в ответе
type DayHoursResponse struct {
	Enabled   bool   `json:"enabled"`
	OpenTime  string `json:"openTime"`
	CloseTime string `json:"closeTime"`
}

// BlockedDateResponse блокировка в ответе
type BlockedDateResponse struct {
	ID           string  `json:"id"`
	Date         string  `json:"date"` // Для ежегодных блокировок год опускается: "--12-25"
	StartTime    *string `json:"startTime,omitempty"`
	EndTime      *string `json:"endTime,omitempty"`
	FullDay      bool    `json:"fullDay"`
	RepeatYearly bool    `json:"repeatYearly"`
	Reason       string  `json:"reason,omitempty"`
}

// ScheduleResponse расписание мастера с версией
type ScheduleResponse struct {
	ProfessionalID int64                       `json:"professionalId"`
	Version        int64                       `json:"version"`
	Days           map[string]DayHoursResponse `json:"days"`
	BlockedDates   []BlockedDateResponse       `json:"blockedDates"`
}

// MutationResponse результат изменения расписания
type MutationResponse struct {
	ProfessionalID int64  `json:"professionalId"`
	Version        int64  `json:"version"`
	BlockedDateID  string `json:"blockedDateId,omitempty"`
}

// Методы конвертации

// FromDomainSnapshot конвертирует domain снапшот в DTO
func FromDomainSnapshot(s *domain.ScheduleSnapshot) *ScheduleResponse {
	if s == nil {
		return nil
	}

	days := make(map[string]DayHoursResponse, len(s.Week))
	for weekday, window := range s.Week {
		days[weekdayKeys[weekday]] = DayHoursResponse{
			Enabled:   window.Enabled,
			OpenTime:  minutesToTime(window.OpenMinute),
			CloseTime: minutesToTime(window.CloseMinute),
		}
	}

	blocked := make([]BlockedDateResponse, 0, len(s.Exceptions))
	for _, exc := range s.Exceptions {
		blocked = append(blocked, fromDomainException(exc))
	}

	return &ScheduleResponse{
		ProfessionalID: s.ProfessionalID,
		Version:        s.Version,
		Days:           days,
		BlockedDates:   blocked,
	}
}

func fromDomainException(exc domain.ScheduleException) BlockedDateResponse {
	resp := BlockedDateResponse{
		ID:           exc.ID,
		FullDay:      exc.FullDay,
		RepeatYearly: exc.Scope == domain.ScopeAnnual,
		Reason:       exc.Label,
	}

	if exc.Scope == domain.ScopeAnnual {
		resp.Date = fmt.Sprintf("--%02d-%02d", exc.Month, exc.Day)
	} else {
		resp.Date = fmt.Sprintf("%04d-%02d-%02d", exc.Year, exc.Month, exc.Day)
	}

	if !exc.FullDay && exc.StartMinute != nil && exc.EndMinute != nil {
		start := minutesToTime(*exc.StartMinute)
		end := minutesToTime(*exc.EndMinute)
		resp.StartTime = &start
		resp.EndTime = &end
	}

	return resp
}

func minutesToTime(minutes int) string {
	ts, err := types.NewTimeStringFromMinutes(minutes)
	if err != nil {
		return ""
	}
	return ts.String()
}
