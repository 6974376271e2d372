package domain

import "sort"

// NoUpcoming is the next-appointment index returned when every appointment
// of the day has already started.
const NoUpcoming = -1

// OrderDayAgenda orders one day's appointments for display: upcoming
// appointments first (ascending by start), then past ones (also ascending).
// The returned index points at the soonest upcoming appointment, or
// NoUpcoming when there is none.
//
// Sorting is stable: appointments with equal start keep their input order.
// The result always contains exactly the input items, none dropped or
// duplicated; the input slice is not modified.
func OrderDayAgenda(appointments []*Appointment, nowMinute int) ([]*Appointment, int) {
	future := make([]*Appointment, 0, len(appointments))
	past := make([]*Appointment, 0, len(appointments))

	for _, a := range appointments {
		if a.StartMinute >= nowMinute {
			future = append(future, a)
		} else {
			past = append(past, a)
		}
	}

	sort.SliceStable(future, func(i, j int) bool {
		return future[i].StartMinute < future[j].StartMinute
	})
	sort.SliceStable(past, func(i, j int) bool {
		return past[i].StartMinute < past[j].StartMinute
	})

	ordered := append(future, past...)

	nextIndex := NoUpcoming
	if len(future) > 0 {
		nextIndex = 0
	}

	return ordered, nextIndex
}
