package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// MinutesPerDay is the number of minutes in a single day.
// All intra-day time values are minute offsets in [0, MinutesPerDay).
const MinutesPerDay = 24 * 60

// Default schedule values, mirroring what the dashboard pre-fills
// for a newly enabled weekday.
const (
	DefaultOpenMinute  = 9 * 60  // 09:00
	DefaultCloseMinute = 18 * 60 // 18:00
)

// Business validation constants
const (
	MinServiceDurationMinutes = 5
	MaxServiceDurationMinutes = 480 // 8 hours
	MaxSlotStepMinutes        = MinutesPerDay
	MaxLabelLength            = 200
	MaxCustomerNameLength     = 120
	MaxServiceNameLength      = 120
)
