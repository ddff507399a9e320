package core

import (
	"fmt"
	"time"
)

// Supported year range. The day anchor is exact for any proleptic Gregorian
// date, but the historical offset and DST tables only describe this window.
const (
	MinYear = 1900
	MaxYear = 2100
)

// =============================================================================
// Date
// =============================================================================

// Date is a proleptic Gregorian calendar date.
type Date struct {
	Year  int
	Month int
	Day   int
}

// NewDate returns a validated date.
func NewDate(year, month, day int) (Date, error) {
	d := Date{Year: year, Month: month, Day: day}
	if err := d.Validate(); err != nil {
		return Date{}, err
	}
	return d, nil
}

// IsLeapYear reports whether year is a Gregorian leap year.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

var monthDays = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// DaysInMonth returns the number of days in month of year, or 0 for an
// invalid month.
func DaysInMonth(year, month int) int {
	if month < 1 || month > 12 {
		return 0
	}
	if month == 2 && IsLeapYear(year) {
		return 29
	}
	return monthDays[month]
}

// Validate returns an InvalidDateError when d does not exist.
func (d Date) Validate() error {
	if d.Month < 1 || d.Month > 12 {
		return &InvalidDateError{Year: d.Year, Month: d.Month, Day: d.Day, Reason: "month must be 1-12"}
	}
	if n := DaysInMonth(d.Year, d.Month); d.Day < 1 || d.Day > n {
		return &InvalidDateError{
			Year: d.Year, Month: d.Month, Day: d.Day,
			Reason: fmt.Sprintf("day must be 1-%d", n),
		}
	}
	return nil
}

// JDN returns the Julian Day Number of d (the day beginning at noon on d).
// The closed form is exact for every proleptic Gregorian date.
func (d Date) JDN() int {
	a := floorDiv(14-d.Month, 12)
	y := d.Year + 4800 - a
	m := d.Month + 12*a - 3
	return d.Day + floorDiv(153*m+2, 5) + 365*y + floorDiv(y, 4) - floorDiv(y, 100) + floorDiv(y, 400) - 32045
}

// DateFromJDN is the inverse of Date.JDN.
func DateFromJDN(jdn int) Date {
	a := jdn + 32044
	b := floorDiv(4*a+3, 146097)
	c := a - floorDiv(146097*b, 4)
	d := floorDiv(4*c+3, 1461)
	e := c - floorDiv(1461*d, 4)
	m := floorDiv(5*e+2, 153)
	return Date{
		Day:   e - floorDiv(153*m+2, 5) + 1,
		Month: m + 3 - 12*floorDiv(m, 10),
		Year:  100*b + d - 4800 + floorDiv(m, 10),
	}
}

// AddDays returns the date n days after d (n may be negative).
func (d Date) AddDays(n int) Date {
	return DateFromJDN(d.JDN() + n)
}

// Weekday returns the day of the week.
func (d Date) Weekday() time.Weekday {
	// JDN 0 was a Monday.
	return time.Weekday(floorMod(d.JDN()+1, 7))
}

// Compare returns -1, 0 or +1 as d is before, equal to or after other.
func (d Date) Compare(other Date) int {
	switch {
	case d.Year != other.Year:
		return sign(d.Year - other.Year)
	case d.Month != other.Month:
		return sign(d.Month - other.Month)
	default:
		return sign(d.Day - other.Day)
	}
}

// Before reports whether d is strictly before other.
func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// MarshalText encodes the date as YYYY-MM-DD.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// =============================================================================
// DateTime
// =============================================================================

// DateTime is a wall-clock time on a date, with minute precision.
type DateTime struct {
	Date
	Hour   int
	Minute int
}

// At combines a date with a clock time.
func At(d Date, hour, minute int) DateTime {
	return DateTime{Date: d, Hour: hour, Minute: minute}
}

// Validate checks both the date and the clock time.
func (t DateTime) Validate() error {
	if err := ValidateClock(t.Hour, t.Minute); err != nil {
		return err
	}
	return t.Date.Validate()
}

// ValidateClock returns an InvalidTimeError for an hour outside 0..23 or a
// minute outside 0..59.
func ValidateClock(hour, minute int) error {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return &InvalidTimeError{Hour: hour, Minute: minute}
	}
	return nil
}

// AddMinutes returns t shifted by n minutes, carrying across day, month and
// year boundaries.
func (t DateTime) AddMinutes(n int) DateTime {
	total := t.Hour*60 + t.Minute + n
	days := floorDiv(total, minutesPerDay)
	rem := total - days*minutesPerDay
	return DateTime{
		Date:   t.Date.AddDays(days),
		Hour:   rem / 60,
		Minute: rem % 60,
	}
}

// Compare returns -1, 0 or +1 as t is before, equal to or after other.
func (t DateTime) Compare(other DateTime) int {
	if c := t.Date.Compare(other.Date); c != 0 {
		return c
	}
	return sign((t.Hour*60 + t.Minute) - (other.Hour*60 + other.Minute))
}

// String formats the time as YYYY-MM-DD HH:MM.
func (t DateTime) String() string {
	return fmt.Sprintf("%s %02d:%02d", t.Date, t.Hour, t.Minute)
}

// Clock formats only the time of day as HH:MM.
func (t DateTime) Clock() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

const minutesPerDay = 24 * 60

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
