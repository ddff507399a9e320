package core

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_JDN(t *testing.T) {
	tests := []struct {
		date Date
		want int
	}{
		{Date{2000, 1, 1}, 2451545},
		{Date{2006, 1, 2}, 2453738},
		{Date{1971, 11, 17}, 2441273},
		{Date{1988, 9, 18}, 2447423},
		{Date{1949, 10, 1}, 2433191},
		{Date{1858, 11, 17}, 2400001},
		{Date{-4713, 11, 24}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.date.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.date.JDN())
			assert.Equal(t, tt.date, DateFromJDN(tt.want))
		})
	}
}

func TestDate_JDNRoundTripAcrossYears(t *testing.T) {
	d := Date{Year: 1899, Month: 12, Day: 1}
	prev := d.JDN()
	for i := 0; i < 80000; i++ {
		next := d.AddDays(1)
		require.NoError(t, next.Validate(), "after %s", d)
		require.Equal(t, prev+1, next.JDN(), "after %s", d)
		d, prev = next, next.JDN()
	}
}

func TestDate_Validate(t *testing.T) {
	tests := []struct {
		name    string
		date    Date
		wantErr bool
	}{
		{"ordinary", Date{1971, 11, 17}, false},
		{"leap day", Date{2000, 2, 29}, false},
		{"leap day 2024", Date{2024, 2, 29}, false},
		{"century not leap", Date{1900, 2, 29}, true},
		{"feb 30", Date{1988, 2, 30}, true},
		{"april 31", Date{1988, 4, 31}, true},
		{"month 13", Date{1988, 13, 1}, true},
		{"month 0", Date{1988, 0, 1}, true},
		{"day 0", Date{1988, 1, 0}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.date.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var dateErr *InvalidDateError
			require.True(t, errors.As(err, &dateErr), "want InvalidDateError, got %v", err)
			assert.Equal(t, tt.date.Month, dateErr.Month)
		})
	}
}

func TestDate_Weekday(t *testing.T) {
	assert.Equal(t, time.Saturday, Date{2000, 1, 1}.Weekday())
	assert.Equal(t, time.Wednesday, Date{1971, 11, 17}.Weekday())
	assert.Equal(t, time.Sunday, Date{1988, 9, 18}.Weekday())

	// Cross-check against the standard library over a few years.
	d := Date{2020, 1, 1}
	for i := 0; i < 1500; i++ {
		std := time.Date(d.Year, time.Month(d.Month), d.Day, 12, 0, 0, 0, time.UTC)
		require.Equal(t, std.Weekday(), d.Weekday(), d.String())
		d = d.AddDays(1)
	}
}

func TestDateTime_AddMinutes(t *testing.T) {
	tests := []struct {
		name  string
		start DateTime
		delta int
		want  string
	}{
		{"same hour", At(Date{1988, 9, 18}, 20, 0), -30, "1988-09-18 19:30"},
		{"previous day", At(Date{1988, 9, 18}, 0, 10), -30, "1988-09-17 23:40"},
		{"previous year", At(Date{1988, 1, 1}, 0, 0), -90, "1987-12-31 22:30"},
		{"leap day", At(Date{2024, 3, 1}, 0, 5), -10, "2024-02-29 23:55"},
		{"forward", At(Date{1999, 12, 31}, 23, 30), 45, "2000-01-01 00:15"},
		{"two days", At(Date{2000, 1, 1}, 12, 0), -2 * 24 * 60, "1999-12-30 12:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.start.AddMinutes(tt.delta).String())
		})
	}
}

func TestDateTime_Compare(t *testing.T) {
	a := At(Date{1988, 5, 8}, 1, 59)
	b := At(Date{1988, 5, 8}, 2, 0)
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(a))
	assert.True(t, Date{1987, 12, 31}.Before(Date{1988, 1, 1}))
}

func TestCheckYear(t *testing.T) {
	assert.NoError(t, CheckYear(MinYear))
	assert.NoError(t, CheckYear(MaxYear))

	var yearErr *UnsupportedYearError
	require.True(t, errors.As(CheckYear(1899), &yearErr))
	assert.Equal(t, 1899, yearErr.Year)
	assert.True(t, errors.As(CheckYear(2101), &yearErr))
}

func TestLunarConversionError_Unwrap(t *testing.T) {
	cause := errors.New("no such day")
	err := &LunarConversionError{Year: 2023, Month: 2, Day: 30, Leap: true, Cause: cause}
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "leap month")
	assert.Contains(t, err.Error(), "2023-02-30")
}
