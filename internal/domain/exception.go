package domain

import (
	"fmt"
	"time"
)

// ExceptionScope determines how a blocked date recurs.
type ExceptionScope string

const (
	// ScopeOneOff blocks a single calendar date.
	ScopeOneOff ExceptionScope = "one_off"
	// ScopeAnnual blocks the same month and day every year.
	ScopeAnnual ExceptionScope = "annual"
)

// ScheduleException is a closure carved out of the weekly schedule: a
// holiday, a break, a one-off or annually recurring block. It either covers
// the whole day or a minute range [StartMinute, EndMinute).
type ScheduleException struct {
	ID    string
	Scope ExceptionScope

	// Year is meaningful only for one-off exceptions.
	Year  int
	Month time.Month
	Day   int

	FullDay     bool
	StartMinute *int
	EndMinute   *int

	Label string
}

// Validate checks the exception invariants: a ranged exception carries both
// bounds with start < end, a full-day exception carries neither.
func (e ScheduleException) Validate() error {
	switch e.Scope {
	case ScopeOneOff:
		if e.Year <= 0 {
			return fmt.Errorf("one-off exception requires a year")
		}
	case ScopeAnnual:
	default:
		return fmt.Errorf("unknown exception scope %q", e.Scope)
	}

	if e.Month < time.January || e.Month > time.December {
		return fmt.Errorf("invalid month %d", e.Month)
	}
	if e.Day < 1 || e.Day > 31 {
		return fmt.Errorf("invalid day %d", e.Day)
	}

	if e.FullDay {
		if e.StartMinute != nil || e.EndMinute != nil {
			return fmt.Errorf("full-day exception must not carry a time range")
		}
		return nil
	}

	if e.StartMinute == nil || e.EndMinute == nil {
		return fmt.Errorf("ranged exception requires both start and end")
	}
	iv := Interval{Start: *e.StartMinute, End: *e.EndMinute}
	if !iv.IsValid() || iv.End >= MinutesPerDay {
		return fmt.Errorf("ranged exception [%d, %d) is invalid", *e.StartMinute, *e.EndMinute)
	}
	return nil
}

// MatchesDate reports whether the exception applies to the given date.
// One-off exceptions match the exact calendar date; annual exceptions match
// month and day regardless of year. An annual Feb-29 exception applies to
// Feb-28 in non-leap years, so the closure is not silently skipped.
func (e ScheduleException) MatchesDate(date time.Time) bool {
	year, month, day := date.Date()

	switch e.Scope {
	case ScopeOneOff:
		return e.Year == year && e.Month == month && e.Day == day
	case ScopeAnnual:
		if e.Month == month && e.Day == day {
			return true
		}
		if e.Month == time.February && e.Day == 29 && !isLeapYear(year) {
			return month == time.February && day == 28
		}
		return false
	default:
		return false
	}
}

// Interval returns the blocked minute range for a ranged exception.
// Full-day exceptions have no interval; callers must check FullDay first.
func (e ScheduleException) Interval() Interval {
	if e.FullDay || e.StartMinute == nil || e.EndMinute == nil {
		return Interval{}
	}
	return Interval{Start: *e.StartMinute, End: *e.EndMinute}
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
