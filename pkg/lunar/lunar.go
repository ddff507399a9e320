// Package lunar converts Korean lunar calendar dates to Gregorian dates.
//
// The conversion tables themselves live in github.com/6tail/lunar-go; this
// package validates input against them and reports every failure as a
// *core.LunarConversionError.
package lunar

import (
	"errors"
	"fmt"

	"github.com/6tail/lunar-go/calendar"

	"github.com/leapstack-labs/saju/pkg/core"
)

// Converter turns a lunar date into its Gregorian equivalent.
type Converter interface {
	ToSolar(year, month, day int, leap bool) (core.Date, error)
}

// ConverterFunc adapts a function to the Converter interface.
type ConverterFunc func(year, month, day int, leap bool) (core.Date, error)

// ToSolar calls f.
func (f ConverterFunc) ToSolar(year, month, day int, leap bool) (core.Date, error) {
	return f(year, month, day, leap)
}

// Errors used as LunarConversionError causes.
var (
	ErrYearRange  = errors.New("lunar year outside supported range")
	ErrMonthRange = errors.New("lunar month must be 1-12")
	ErrNotLeap    = errors.New("month is not a leap month in this year")
	ErrDayRange   = errors.New("day exceeds the length of the lunar month")
)

// Library is the Converter backed by lunar-go.
type Library struct{}

var _ Converter = Library{}

// ToSolar validates the lunar date and converts it.
func (Library) ToSolar(year, month, day int, leap bool) (date core.Date, err error) {
	fail := func(cause error) error {
		return &core.LunarConversionError{Year: year, Month: month, Day: day, Leap: leap, Cause: cause}
	}

	// A lunar year starts in January or February, so its first months can
	// still fall in the Gregorian year before MinYear.
	if year < core.MinYear-1 || year > core.MaxYear {
		return core.Date{}, fail(ErrYearRange)
	}
	if month < 1 || month > 12 {
		return core.Date{}, fail(ErrMonthRange)
	}

	defer func() {
		if r := recover(); r != nil {
			date = core.Date{}
			err = fail(fmt.Errorf("lunar-go: %v", r))
		}
	}()

	ly := calendar.NewLunarYear(year)
	if leap && leapMonthOf(ly) != month {
		return core.Date{}, fail(ErrNotLeap)
	}

	// lunar-go encodes leap months as negative month numbers.
	m := month
	if leap {
		m = -month
	}
	lm := ly.GetMonth(m)
	if lm == nil {
		return core.Date{}, fail(ErrMonthRange)
	}
	if day < 1 || day > lm.GetDayCount() {
		return core.Date{}, fail(fmt.Errorf("%w (%d days)", ErrDayRange, lm.GetDayCount()))
	}

	solar := calendar.NewLunarFromYmd(year, m, day).GetSolar()
	return core.Date{Year: solar.GetYear(), Month: solar.GetMonth(), Day: solar.GetDay()}, nil
}

// LeapMonth returns the leap month of a lunar year, or 0 when it has none.
func LeapMonth(year int) (month int, err error) {
	if year < core.MinYear-1 || year > core.MaxYear {
		return 0, &core.LunarConversionError{Year: year, Cause: ErrYearRange}
	}
	defer func() {
		if r := recover(); r != nil {
			month = 0
			err = &core.LunarConversionError{Year: year, Cause: fmt.Errorf("lunar-go: %v", r)}
		}
	}()
	return leapMonthOf(calendar.NewLunarYear(year)), nil
}

// leapMonthOf returns the leap month of ly, or 0 when it has none. lunar-go
// stores a leap month as the negated month number.
func leapMonthOf(ly *calendar.LunarYear) int {
	for e := ly.GetMonthsInYear().Front(); e != nil; e = e.Next() {
		m, ok := e.Value.(*calendar.LunarMonth)
		if !ok || !m.IsLeap() {
			continue
		}
		if n := m.GetMonth(); n < 0 {
			return -n
		}
		return m.GetMonth()
	}
	return 0
}
