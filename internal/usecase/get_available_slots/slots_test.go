package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/ptr"
)

func mondaySnapshot(open, close int, exceptions ...domain.ScheduleException) *domain.ScheduleSnapshot {
	return &domain.ScheduleSnapshot{
		ProfessionalID: 1,
		Version:        1,
		Week: domain.WeekSchedule{
			time.Monday: {Enabled: true, OpenMinute: open, CloseMinute: close},
		},
		Exceptions: exceptions,
	}
}

func activeAppointment(start, duration int) *domain.Appointment {
	return &domain.Appointment{
		StartMinute:     start,
		DurationMinutes: duration,
		Status:          domain.StatusActive,
	}
}

// monday 2024-06-03
var monday = time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC)

func slotStarts(slots []domain.Slot) []int {
	starts := make([]int, len(slots))
	for i, s := range slots {
		starts[i] = s.StartMinute
	}
	return starts
}

func TestBuildDaySlots_BackToBackAroundAppointment(t *testing.T) {
	// window 09:00-12:00, appointment 10:00-10:30, duration 30
	snapshot := mondaySnapshot(540, 720)
	appointments := []*domain.Appointment{activeAppointment(600, 30)}

	slots := buildDaySlots(snapshot, monday, 30, 30, appointments)

	// 09:00, 09:30, 10:30, 11:00, 11:30
	assert.Equal(t, []int{540, 570, 630, 660, 690}, slotStarts(slots))
	for _, s := range slots {
		assert.Equal(t, 30, s.Duration())
	}
}

func TestBuildDaySlots_DisabledDay(t *testing.T) {
	snapshot := &domain.ScheduleSnapshot{Week: domain.WeekSchedule{
		time.Monday: {Enabled: false, OpenMinute: 540, CloseMinute: 720},
	}}

	assert.Empty(t, buildDaySlots(snapshot, monday, 30, 30, nil))
}

func TestBuildDaySlots_FullDayException(t *testing.T) {
	snapshot := mondaySnapshot(540, 1080, domain.ScheduleException{
		Scope: domain.ScopeOneOff, Year: 2024, Month: time.June, Day: 3, FullDay: true,
	})

	assert.Empty(t, buildDaySlots(snapshot, monday, 30, 30, nil))
}

func TestBuildDaySlots_AnnualFullDayExceptionEveryYear(t *testing.T) {
	snapshot := &domain.ScheduleSnapshot{
		Week: domain.WeekSchedule{
			time.Wednesday: {Enabled: true, OpenMinute: 540, CloseMinute: 1080},
			time.Thursday:  {Enabled: true, OpenMinute: 540, CloseMinute: 1080},
		},
		Exceptions: []domain.ScheduleException{
			{Scope: domain.ScopeAnnual, Month: time.December, Day: 25, FullDay: true},
		},
	}

	christmas2024 := time.Date(2024, time.December, 25, 0, 0, 0, 0, time.UTC)
	christmas2025 := time.Date(2025, time.December, 25, 0, 0, 0, 0, time.UTC)

	assert.Empty(t, buildDaySlots(snapshot, christmas2024, 30, 30, nil))
	assert.Empty(t, buildDaySlots(snapshot, christmas2025, 30, 30, nil))
}

func TestBuildDaySlots_RangedExceptionBlocks(t *testing.T) {
	// lunch break 12:00-13:00 inside a 09:00-15:00 window, duration 60
	snapshot := mondaySnapshot(540, 900, domain.ScheduleException{
		Scope: domain.ScopeOneOff, Year: 2024, Month: time.June, Day: 3,
		StartMinute: ptr.Ptr(720), EndMinute: ptr.Ptr(780),
	})

	slots := buildDaySlots(snapshot, monday, 60, 60, nil)

	assert.Equal(t, []int{540, 600, 660, 780, 840}, slotStarts(slots))
}

func TestBuildDaySlots_ExceptionAndAppointmentCoalesce(t *testing.T) {
	// exception 10:00-11:00 overlapping an appointment 10:30-11:30
	snapshot := mondaySnapshot(540, 780, domain.ScheduleException{
		Scope: domain.ScopeOneOff, Year: 2024, Month: time.June, Day: 3,
		StartMinute: ptr.Ptr(600), EndMinute: ptr.Ptr(660),
	})
	appointments := []*domain.Appointment{activeAppointment(630, 60)}

	slots := buildDaySlots(snapshot, monday, 30, 30, appointments)

	// blocked merges into 10:00-11:30; free 09:00-10:00 and 11:30-13:00
	assert.Equal(t, []int{540, 570, 690, 720, 750}, slotStarts(slots))
}

func TestBuildDaySlots_CancelledAppointmentIgnored(t *testing.T) {
	snapshot := mondaySnapshot(540, 660)
	cancelled := &domain.Appointment{StartMinute: 540, DurationMinutes: 60, Status: domain.StatusCancelled}

	slots := buildDaySlots(snapshot, monday, 60, 60, []*domain.Appointment{cancelled})

	assert.Equal(t, []int{540, 600}, slotStarts(slots))
}

func TestBuildDaySlots_TouchingBlockHasNoEffect(t *testing.T) {
	// appointment ends exactly at window open
	snapshot := mondaySnapshot(540, 660)
	appointments := []*domain.Appointment{activeAppointment(480, 60)}

	slots := buildDaySlots(snapshot, monday, 60, 60, appointments)

	assert.Equal(t, []int{540, 600}, slotStarts(slots))
}

func TestBuildDaySlots_BlockOutsideWindowIgnored(t *testing.T) {
	snapshot := mondaySnapshot(540, 660)
	appointments := []*domain.Appointment{activeAppointment(900, 60)}

	slots := buildDaySlots(snapshot, monday, 60, 60, appointments)

	assert.Equal(t, []int{540, 600}, slotStarts(slots))
}

func TestBuildDaySlots_DurationLongerThanWindow(t *testing.T) {
	snapshot := mondaySnapshot(540, 660) // 2 hours

	assert.Empty(t, buildDaySlots(snapshot, monday, 180, 180, nil))
}

func TestBuildDaySlots_TrailingRemainderDropped(t *testing.T) {
	// window 09:00-10:45, duration 30: last full slot starts at 10:00
	snapshot := mondaySnapshot(540, 645)

	slots := buildDaySlots(snapshot, monday, 30, 30, nil)

	assert.Equal(t, []int{540, 570, 600}, slotStarts(slots))
}

func TestBuildDaySlots_CustomStepOverlapsAllowed(t *testing.T) {
	// step 15 with duration 30 produces overlapping candidates
	snapshot := mondaySnapshot(540, 600)

	slots := buildDaySlots(snapshot, monday, 30, 15, nil)

	assert.Equal(t, []int{540, 555, 570}, slotStarts(slots))
}

func TestBuildDaySlots_SlotsNeverIntersectBlocks(t *testing.T) {
	snapshot := mondaySnapshot(480, 1140,
		domain.ScheduleException{
			Scope: domain.ScopeOneOff, Year: 2024, Month: time.June, Day: 3,
			StartMinute: ptr.Ptr(750), EndMinute: ptr.Ptr(810),
		},
	)
	appointments := []*domain.Appointment{
		activeAppointment(510, 45),
		activeAppointment(900, 25),
	}

	slots := buildDaySlots(snapshot, monday, 40, 40, appointments)

	window := domain.Interval{Start: 480, End: 1140}
	require.NotEmpty(t, slots)
	for i, s := range slots {
		assert.True(t, window.Contains(s.Interval()), "slot %v inside window", s)
		assert.Equal(t, 40, s.Duration())
		for _, appt := range appointments {
			assert.False(t, s.Interval().Overlaps(appt.Interval()), "slot %v vs appointment %v", s, appt)
		}
		assert.False(t, s.Interval().Overlaps(domain.Interval{Start: 750, End: 810}), "slot %v vs exception", s)
		if i > 0 {
			assert.False(t, s.Interval().Overlaps(slots[i-1].Interval()), "slots must not overlap each other")
		}
	}
}
