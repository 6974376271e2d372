package domain

// Slot is a candidate, not-yet-committed bookable interval. It is purely a
// query result and is never persisted.
type Slot struct {
	StartMinute int
	EndMinute   int
}

// Duration returns the slot length in minutes.
func (s Slot) Duration() int {
	return s.EndMinute - s.StartMinute
}

// Interval returns the slot as a half-open minute interval.
func (s Slot) Interval() Interval {
	return Interval{Start: s.StartMinute, End: s.EndMinute}
}
