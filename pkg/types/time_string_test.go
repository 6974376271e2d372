package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid morning", input: "09:30"},
		{name: "midnight", input: "00:00"},
		{name: "last minute of day", input: "23:59"},
		{name: "missing leading zero", input: "9:30", wantErr: true},
		{name: "out of range hour", input: "24:00", wantErr: true},
		{name: "out of range minute", input: "10:60", wantErr: true},
		{name: "no separator", input: "0930", wantErr: true},
		{name: "with seconds", input: "09:30:00", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, ts.String())
		})
	}
}

func TestTimeString_Minutes(t *testing.T) {
	tests := []struct {
		input TimeString
		want  int
	}{
		{input: "00:00", want: 0},
		{input: "00:01", want: 1},
		{input: "09:30", want: 570},
		{input: "12:00", want: 720},
		{input: "23:59", want: 1439},
	}

	for _, tt := range tests {
		t.Run(string(tt.input), func(t *testing.T) {
			got, err := tt.input.Minutes()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("invalid value", func(t *testing.T) {
		_, err := TimeString("nope").Minutes()
		assert.Error(t, err)
	})
}

func TestNewTimeStringFromMinutes(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		for _, minutes := range []int{0, 1, 570, 720, 1439} {
			ts, err := NewTimeStringFromMinutes(minutes)
			require.NoError(t, err)

			back, err := ts.Minutes()
			require.NoError(t, err)
			assert.Equal(t, minutes, back)
		}
	})

	t.Run("negative offset rejected", func(t *testing.T) {
		_, err := NewTimeStringFromMinutes(-1)
		assert.Error(t, err)
	})

	t.Run("full day rejected", func(t *testing.T) {
		_, err := NewTimeStringFromMinutes(MinutesPerDay)
		assert.Error(t, err)
	})
}

func TestTimeString_AddMinutes(t *testing.T) {
	t.Run("forward shift", func(t *testing.T) {
		got, err := TimeString("09:30").AddMinutes(45)
		require.NoError(t, err)
		assert.Equal(t, TimeString("10:15"), got)
	})

	t.Run("backward shift", func(t *testing.T) {
		got, err := TimeString("09:30").AddMinutes(-30)
		require.NoError(t, err)
		assert.Equal(t, TimeString("09:00"), got)
	})

	t.Run("shift past midnight rejected", func(t *testing.T) {
		_, err := TimeString("23:30").AddMinutes(31)
		assert.Error(t, err)
	})

	t.Run("shift before midnight rejected", func(t *testing.T) {
		_, err := TimeString("00:10").AddMinutes(-11)
		assert.Error(t, err)
	})
}

func TestTimeString_Comparisons(t *testing.T) {
	a := TimeString("09:00")
	b := TimeString("10:30")

	assert.True(t, a.IsBefore(b))
	assert.False(t, b.IsBefore(a))
	assert.True(t, b.IsAfter(a))
	assert.False(t, a.IsAfter(b))
	assert.False(t, a.IsBefore(a))
	assert.False(t, a.IsAfter(a))
}

func TestTimeString_Scan(t *testing.T) {
	t.Run("postgres time string with seconds", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan("10:00:00"))
		assert.Equal(t, TimeString("10:00"), ts)
	})

	t.Run("bytes", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan([]byte("17:45:00")))
		assert.Equal(t, TimeString("17:45"), ts)
	})

	t.Run("time.Time", func(t *testing.T) {
		var ts TimeString
		src := time.Date(2024, time.June, 3, 14, 5, 59, 0, time.UTC)
		require.NoError(t, ts.Scan(src))
		assert.Equal(t, TimeString("14:05"), ts)
	})

	t.Run("nil clears value", func(t *testing.T) {
		ts := TimeString("10:00")
		require.NoError(t, ts.Scan(nil))
		assert.True(t, ts.IsZero())
	})

	t.Run("unsupported type", func(t *testing.T) {
		var ts TimeString
		assert.Error(t, ts.Scan(42))
	})
}

func TestTimeString_Value(t *testing.T) {
	t.Run("valid value", func(t *testing.T) {
		v, err := TimeString("10:00").Value()
		require.NoError(t, err)
		assert.Equal(t, "10:00", v)
	})

	t.Run("zero value maps to NULL", func(t *testing.T) {
		v, err := TimeString("").Value()
		require.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("invalid value rejected", func(t *testing.T) {
		_, err := TimeString("25:00").Value()
		assert.Error(t, err)
	})
}
