package domain

import "time"

// ServiceDefinition is one entry of a professional's service catalog.
// Duration parameterizes slot generation; price is denormalized into
// appointments at booking time.
type ServiceDefinition struct {
	ID              int64
	ProfessionalID  int64
	Name            string
	DurationMinutes int
	Price           float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasValidDuration reports whether the duration is within business limits.
func (s *ServiceDefinition) HasValidDuration() bool {
	return s.DurationMinutes >= MinServiceDurationMinutes &&
		s.DurationMinutes <= MaxServiceDurationMinutes
}
