package core

import "fmt"

// InvalidDateError reports a calendar date that does not exist,
// such as February 30 or month 13.
type InvalidDateError struct {
	Year   int
	Month  int
	Day    int
	Reason string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date %04d-%02d-%02d: %s", e.Year, e.Month, e.Day, e.Reason)
}

// InvalidTimeError reports a clock time outside 00:00..23:59.
type InvalidTimeError struct {
	Hour   int
	Minute int
}

func (e *InvalidTimeError) Error() string {
	return fmt.Sprintf("invalid time %02d:%02d: hour must be 0-23 and minute 0-59", e.Hour, e.Minute)
}

// UnsupportedYearError reports a year outside the range the anchor constants
// and historical tables are calibrated for.
type UnsupportedYearError struct {
	Year int
	Min  int
	Max  int
}

func (e *UnsupportedYearError) Error() string {
	return fmt.Sprintf("unsupported year %d: supported range is %d-%d", e.Year, e.Min, e.Max)
}

// LunarConversionError reports a lunar date the converter cannot resolve,
// typically a day past the end of the lunar month or a leap-month flag for a
// month that is not leap in that year.
type LunarConversionError struct {
	Year  int
	Month int
	Day   int
	Leap  bool
	Cause error
}

func (e *LunarConversionError) Error() string {
	leap := ""
	if e.Leap {
		leap = " (leap month)"
	}
	msg := fmt.Sprintf("cannot convert lunar date %04d-%02d-%02d%s", e.Year, e.Month, e.Day, leap)
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *LunarConversionError) Unwrap() error {
	return e.Cause
}

// CheckYear returns an UnsupportedYearError when year is outside
// [MinYear, MaxYear].
func CheckYear(year int) error {
	if year < MinYear || year > MaxYear {
		return &UnsupportedYearError{Year: year, Min: MinYear, Max: MaxYear}
	}
	return nil
}
