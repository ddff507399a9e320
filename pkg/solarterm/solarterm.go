// Package solarterm resolves the solar month (절월) of a Gregorian date from a
// fixed table of sectional-term start days.
//
// The table approximates the twelve 절 (sectional terms) by the calendar day
// on which they usually fall. True term instants drift by a day or two from
// year to year; the table is kept fixed so that results are reproducible.
package solarterm

import "fmt"

// Boundary is the first day of a solar month within a Gregorian month.
type Boundary struct {
	Month      int    // Gregorian month, 1-12
	Day        int    // first day belonging to the new solar month
	Term       string // sectional term name
	SolarMonth int    // solar month that starts on Day (1 = 인월)
}

// boundaries is indexed by Gregorian month - 1.
var boundaries = [12]Boundary{
	{Month: 1, Day: 6, Term: "소한", SolarMonth: 12},
	{Month: 2, Day: 4, Term: "입춘", SolarMonth: 1},
	{Month: 3, Day: 6, Term: "경칩", SolarMonth: 2},
	{Month: 4, Day: 5, Term: "청명", SolarMonth: 3},
	{Month: 5, Day: 6, Term: "입하", SolarMonth: 4},
	{Month: 6, Day: 6, Term: "망종", SolarMonth: 5},
	{Month: 7, Day: 7, Term: "소서", SolarMonth: 6},
	{Month: 8, Day: 8, Term: "입추", SolarMonth: 7},
	{Month: 9, Day: 8, Term: "백로", SolarMonth: 8},
	{Month: 10, Day: 8, Term: "한로", SolarMonth: 9},
	{Month: 11, Day: 7, Term: "입동", SolarMonth: 10},
	{Month: 12, Day: 7, Term: "대설", SolarMonth: 11},
}

// Month returns the solar month (1-12, 1 = 인월 beginning at 입춘) that the
// Gregorian date month/day falls in.
//
// A day on or after the month's boundary belongs to the solar month that
// starts there; earlier days still belong to the previous solar month.
func Month(month, day int) (int, error) {
	if month < 1 || month > 12 {
		return 0, fmt.Errorf("solar month: month %d out of range 1-12", month)
	}
	if day < 1 || day > 31 {
		return 0, fmt.Errorf("solar month: day %d out of range 1-31", day)
	}
	b := boundaries[month-1]
	if day >= b.Day {
		return b.SolarMonth, nil
	}
	if b.SolarMonth == 1 {
		return 12, nil
	}
	return b.SolarMonth - 1, nil
}

// Boundaries returns a copy of the boundary table in Gregorian month order.
func Boundaries() []Boundary {
	out := make([]Boundary, len(boundaries))
	copy(out, boundaries[:])
	return out
}

// BoundaryFor returns the boundary inside the given Gregorian month.
func BoundaryFor(month int) (Boundary, bool) {
	if month < 1 || month > 12 {
		return Boundary{}, false
	}
	return boundaries[month-1], true
}

// IsBoundary reports whether month/day is the first day of a solar month and
// returns the term that begins there.
func IsBoundary(month, day int) (string, bool) {
	b, ok := BoundaryFor(month)
	if !ok || b.Day != day {
		return "", false
	}
	return b.Term, true
}

// TermName returns the sectional term that opens the given solar month.
func TermName(solarMonth int) string {
	for _, b := range boundaries {
		if b.SolarMonth == solarMonth {
			return b.Term
		}
	}
	return ""
}
