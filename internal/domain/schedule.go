package domain

import (
	"fmt"
	"time"
)

// DayWindow is the configured working window for one weekday.
// Minutes are offsets from local midnight.
type DayWindow struct {
	Enabled     bool
	OpenMinute  int
	CloseMinute int
}

// Validate checks the window invariant: when enabled, open < close and both
// lie within the day.
func (w DayWindow) Validate() error {
	if !w.Enabled {
		return nil
	}
	// close is capped at 23:59, the latest time a TIME column can hold
	if w.OpenMinute < 0 || w.CloseMinute >= MinutesPerDay {
		return fmt.Errorf("day window [%d, %d) is outside the day", w.OpenMinute, w.CloseMinute)
	}
	if w.OpenMinute >= w.CloseMinute {
		return fmt.Errorf("day window open %d must be before close %d", w.OpenMinute, w.CloseMinute)
	}
	return nil
}

// Interval returns the window as a half-open minute interval.
func (w DayWindow) Interval() Interval {
	return Interval{Start: w.OpenMinute, End: w.CloseMinute}
}

// WeekSchedule holds the working window for each weekday.
type WeekSchedule map[time.Weekday]DayWindow

// Validate checks every enabled day window.
func (s WeekSchedule) Validate() error {
	for day, window := range s {
		if day < time.Sunday || day > time.Saturday {
			return fmt.Errorf("invalid weekday %d", day)
		}
		if err := window.Validate(); err != nil {
			return fmt.Errorf("%s: %v", day, err)
		}
	}
	return nil
}

// ScheduleSnapshot is an immutable, versioned view of one professional's
// schedule configuration. Mutation happens only through repository commands
// (update hours, add/remove blocked date), each producing a new version.
type ScheduleSnapshot struct {
	ProfessionalID int64
	Version        int64
	Week           WeekSchedule
	Exceptions     []ScheduleException
}

// WindowFor returns the configured window for the date's weekday, or nil
// when the weekday is disabled or not configured. A missing window is a
// normal "closed" outcome, never an error.
func (s *ScheduleSnapshot) WindowFor(date time.Time) *DayWindow {
	window, ok := s.Week[date.Weekday()]
	if !ok || !window.Enabled {
		return nil
	}
	return &window
}

// ExceptionsFor returns every exception matching the date: one-off entries
// on the exact calendar date plus annual entries on the same month and day.
// Overlapping matches are returned as-is; callers merge them.
func (s *ScheduleSnapshot) ExceptionsFor(date time.Time) []ScheduleException {
	var matched []ScheduleException
	for _, exc := range s.Exceptions {
		if exc.MatchesDate(date) {
			matched = append(matched, exc)
		}
	}
	return matched
}
