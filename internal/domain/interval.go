package domain

import "sort"

// Interval is a half-open minute range [Start, End) within a single day.
type Interval struct {
	Start int
	End   int
}

// IsValid reports whether the interval is non-empty and within the day.
func (i Interval) IsValid() bool {
	return i.Start >= 0 && i.End <= MinutesPerDay && i.Start < i.End
}

// Duration returns the length of the interval in minutes.
func (i Interval) Duration() int {
	return i.End - i.Start
}

// Overlaps reports whether two half-open intervals actually intersect.
// Intervals that merely touch (one ends exactly where the other starts)
// do not overlap.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start < other.End && other.Start < i.End
}

// Contains reports whether other lies entirely within i.
func (i Interval) Contains(other Interval) bool {
	return i.Start <= other.Start && other.End <= i.End
}

// MergeIntervals sorts the intervals by start and coalesces overlapping or
// adjacent ranges into a disjoint ascending set. Empty or inverted inputs
// are dropped. The input slice is not modified.
func MergeIntervals(intervals []Interval) []Interval {
	filtered := make([]Interval, 0, len(intervals))
	for _, iv := range intervals {
		if iv.Start < iv.End {
			filtered = append(filtered, iv)
		}
	}
	if len(filtered) == 0 {
		return nil
	}

	sort.Slice(filtered, func(a, b int) bool {
		if filtered[a].Start != filtered[b].Start {
			return filtered[a].Start < filtered[b].Start
		}
		return filtered[a].End < filtered[b].End
	})

	merged := []Interval{filtered[0]}
	for _, iv := range filtered[1:] {
		last := &merged[len(merged)-1]
		// adjacent ranges coalesce too: [a,b) + [b,c) -> [a,c)
		if iv.Start <= last.End {
			if iv.End > last.End {
				last.End = iv.End
			}
			continue
		}
		merged = append(merged, iv)
	}

	return merged
}

// SubtractIntervals removes the blocked set from the window and returns the
// remaining free segments in ascending order. The blocked set must be
// disjoint and sorted (the output of MergeIntervals). Blocked ranges outside
// the window are ignored; ranges touching the window boundary have no effect.
func SubtractIntervals(window Interval, blocked []Interval) []Interval {
	if !window.IsValid() {
		return nil
	}

	free := make([]Interval, 0, len(blocked)+1)
	cursor := window.Start

	for _, b := range blocked {
		if b.End <= window.Start || b.Start >= window.End {
			continue
		}
		if b.Start > cursor {
			free = append(free, Interval{Start: cursor, End: min(b.Start, window.End)})
		}
		if b.End > cursor {
			cursor = b.End
		}
		if cursor >= window.End {
			return free
		}
	}

	if cursor < window.End {
		free = append(free, Interval{Start: cursor, End: window.End})
	}

	return free
}
