package domain

import "time"

// AppointmentStatus represents the lifecycle state of an appointment.
type AppointmentStatus string

const (
	StatusActive    AppointmentStatus = "active"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Appointment is a committed reservation on one professional's timeline.
// DurationMinutes is copied from the service at booking time and frozen:
// later catalog changes never alter existing appointments.
type Appointment struct {
	ID              int64
	ProfessionalID  int64
	ServiceID       int64
	Date            time.Time
	StartMinute     int
	DurationMinutes int
	Status          AppointmentStatus

	// Denormalized data for history
	ServiceName  string
	ServicePrice float64
	CustomerName string

	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive reports whether the appointment still occupies its interval.
func (a *Appointment) IsActive() bool {
	return a.Status == StatusActive
}

// CanBeCancelled reports whether the appointment can transition to cancelled.
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusActive
}

// Interval returns the occupied minute range [start, start+duration).
func (a *Appointment) Interval() Interval {
	return Interval{Start: a.StartMinute, End: a.StartMinute + a.DurationMinutes}
}

// DayAppointmentsFilter describes a query for one professional's
// appointments on a date range.
type DayAppointmentsFilter struct {
	ProfessionalID  int64
	StartDate       *time.Time
	EndDate         *time.Time
	Status          *AppointmentStatus
	IncludeInactive bool
}
