package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AgendaService/pkg/ptr"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestDayWindow_Validate(t *testing.T) {
	assert.NoError(t, DayWindow{Enabled: true, OpenMinute: 540, CloseMinute: 1080}.Validate())
	assert.NoError(t, DayWindow{Enabled: false, OpenMinute: 700, CloseMinute: 600}.Validate(), "disabled windows are not validated")
	assert.Error(t, DayWindow{Enabled: true, OpenMinute: 600, CloseMinute: 600}.Validate())
	assert.Error(t, DayWindow{Enabled: true, OpenMinute: 700, CloseMinute: 600}.Validate())
	assert.Error(t, DayWindow{Enabled: true, OpenMinute: -10, CloseMinute: 600}.Validate())
	assert.Error(t, DayWindow{Enabled: true, OpenMinute: 600, CloseMinute: MinutesPerDay}.Validate(), "close is capped at 23:59")
}

func TestScheduleSnapshot_WindowFor(t *testing.T) {
	snapshot := &ScheduleSnapshot{
		Week: WeekSchedule{
			time.Monday: {Enabled: true, OpenMinute: 540, CloseMinute: 1080},
			time.Sunday: {Enabled: false, OpenMinute: 540, CloseMinute: 1080},
		},
	}

	monday := date(2024, time.June, 3)
	window := snapshot.WindowFor(monday)
	require.NotNil(t, window)
	assert.Equal(t, 540, window.OpenMinute)
	assert.Equal(t, 1080, window.CloseMinute)

	sunday := date(2024, time.June, 2)
	assert.Nil(t, snapshot.WindowFor(sunday), "disabled day has no window")

	tuesday := date(2024, time.June, 4)
	assert.Nil(t, snapshot.WindowFor(tuesday), "unconfigured day has no window")
}

func TestScheduleSnapshot_ExceptionsFor(t *testing.T) {
	snapshot := &ScheduleSnapshot{
		Exceptions: []ScheduleException{
			{ID: "christmas", Scope: ScopeAnnual, Month: time.December, Day: 25, FullDay: true},
			{ID: "renovation", Scope: ScopeOneOff, Year: 2024, Month: time.June, Day: 3, StartMinute: ptr.Ptr(600), EndMinute: ptr.Ptr(660)},
			{ID: "lunch", Scope: ScopeOneOff, Year: 2024, Month: time.June, Day: 3, StartMinute: ptr.Ptr(630), EndMinute: ptr.Ptr(720)},
		},
	}

	// annual exception matches the same month/day in every year
	for _, year := range []int{2024, 2025, 2031} {
		matched := snapshot.ExceptionsFor(date(year, time.December, 25))
		require.Len(t, matched, 1, "year %d", year)
		assert.Equal(t, "christmas", matched[0].ID)
	}

	// one-off exceptions match only the exact date; overlap is not merged here
	matched := snapshot.ExceptionsFor(date(2024, time.June, 3))
	require.Len(t, matched, 2)
	assert.Equal(t, "renovation", matched[0].ID)
	assert.Equal(t, "lunch", matched[1].ID)

	assert.Empty(t, snapshot.ExceptionsFor(date(2025, time.June, 3)))
	assert.Empty(t, snapshot.ExceptionsFor(date(2024, time.December, 24)))
}

func TestScheduleException_Validate(t *testing.T) {
	tests := []struct {
		name    string
		exc     ScheduleException
		wantErr bool
	}{
		{
			name: "valid full day one-off",
			exc:  ScheduleException{Scope: ScopeOneOff, Year: 2024, Month: time.June, Day: 1, FullDay: true},
		},
		{
			name: "valid ranged annual",
			exc:  ScheduleException{Scope: ScopeAnnual, Month: time.May, Day: 1, StartMinute: ptr.Ptr(540), EndMinute: ptr.Ptr(600)},
		},
		{
			name:    "full day with range",
			exc:     ScheduleException{Scope: ScopeAnnual, Month: time.May, Day: 1, FullDay: true, StartMinute: ptr.Ptr(540)},
			wantErr: true,
		},
		{
			name:    "ranged without end",
			exc:     ScheduleException{Scope: ScopeAnnual, Month: time.May, Day: 1, StartMinute: ptr.Ptr(540)},
			wantErr: true,
		},
		{
			name:    "ranged start after end",
			exc:     ScheduleException{Scope: ScopeAnnual, Month: time.May, Day: 1, StartMinute: ptr.Ptr(600), EndMinute: ptr.Ptr(540)},
			wantErr: true,
		},
		{
			name:    "one-off without year",
			exc:     ScheduleException{Scope: ScopeOneOff, Month: time.May, Day: 1, FullDay: true},
			wantErr: true,
		},
		{
			name:    "unknown scope",
			exc:     ScheduleException{Scope: "weekly", Month: time.May, Day: 1, FullDay: true},
			wantErr: true,
		},
		{
			name:    "invalid day",
			exc:     ScheduleException{Scope: ScopeAnnual, Month: time.May, Day: 42, FullDay: true},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.exc.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestScheduleException_AnnualFeb29(t *testing.T) {
	exc := ScheduleException{Scope: ScopeAnnual, Month: time.February, Day: 29, FullDay: true}

	assert.True(t, exc.MatchesDate(date(2024, time.February, 29)), "leap year, exact day")
	assert.True(t, exc.MatchesDate(date(2025, time.February, 28)), "non-leap year falls back to Feb-28")
	assert.False(t, exc.MatchesDate(date(2024, time.February, 28)), "leap year keeps Feb-28 open")
	assert.False(t, exc.MatchesDate(date(2025, time.March, 1)))
}
