// Package kst holds the clock history of Korea needed to turn a recorded
// wall-clock birth time into the time used for hour bucketing: the gazetted
// daylight-saving periods and the standard-offset eras of Asia/Seoul.
//
// Both tables are sorted lists of explicit ranges so their edges can be
// enumerated and tested exhaustively.
package kst

import "github.com/leapstack-labs/saju/pkg/core"

// ReferenceOffset is the UTC offset, in minutes, of the 127.5°E meridian that
// runs through the middle of the peninsula. Clock time on a +9:00 standard is
// 30 minutes ahead of it.
const ReferenceOffset = 8*60 + 30

// =============================================================================
// Daylight saving
// =============================================================================

// Range is a half-open wall-clock interval [Start, End) during which clocks
// were one hour ahead. Start is read on standard time (the minute clocks
// jumped forward); End is read on daylight time (the minute clocks were set
// back).
//
// Times in the skipped spring hour fall inside the range. The repeated autumn
// hour is treated as its first (daylight) occurrence.
type Range struct {
	Start core.DateTime
	End   core.DateTime
}

// Contains reports whether t falls inside the range.
func (r Range) Contains(t core.DateTime) bool {
	return t.Compare(r.Start) >= 0 && t.Compare(r.End) < 0
}

func wall(y, m, d, h int) core.DateTime {
	return core.At(core.Date{Year: y, Month: m, Day: d}, h, 0)
}

// dstRanges lists every daylight-saving period observed in South Korea.
// Transitions written as "24:00" in the gazette are stored as 00:00 of the
// following day.
var dstRanges = [...]Range{
	{Start: wall(1948, 6, 1, 0), End: wall(1948, 9, 13, 0)},
	{Start: wall(1949, 4, 3, 0), End: wall(1949, 9, 11, 0)},
	{Start: wall(1950, 4, 1, 0), End: wall(1950, 9, 10, 0)},
	{Start: wall(1951, 5, 6, 0), End: wall(1951, 9, 9, 0)},
	{Start: wall(1955, 5, 5, 0), End: wall(1955, 9, 9, 0)},
	{Start: wall(1956, 5, 20, 0), End: wall(1956, 9, 30, 0)},
	{Start: wall(1957, 5, 5, 0), End: wall(1957, 9, 22, 0)},
	{Start: wall(1958, 5, 4, 0), End: wall(1958, 9, 21, 0)},
	{Start: wall(1959, 5, 3, 0), End: wall(1959, 9, 20, 0)},
	{Start: wall(1960, 5, 1, 0), End: wall(1960, 9, 18, 0)},
	{Start: wall(1987, 5, 10, 2), End: wall(1987, 10, 11, 3)},
	{Start: wall(1988, 5, 8, 2), End: wall(1988, 10, 9, 3)},
}

// DSTRanges returns a copy of the daylight-saving table in chronological
// order.
func DSTRanges() []Range {
	out := make([]Range, len(dstRanges))
	copy(out, dstRanges[:])
	return out
}

// InDST reports whether the wall-clock time t was on daylight saving time.
func InDST(t core.DateTime) bool {
	_, ok := dstRangeFor(t)
	return ok
}

func dstRangeFor(t core.DateTime) (Range, bool) {
	for _, r := range dstRanges {
		if t.Compare(r.Start) < 0 {
			// Sorted: nothing later can contain t.
			return Range{}, false
		}
		if r.Contains(t) {
			return r, true
		}
	}
	return Range{}, false
}

// =============================================================================
// Standard offset eras
// =============================================================================

// Era is a period with one standard UTC offset, starting at 00:00 local time
// on Start and lasting until the next era.
type Era struct {
	Start  core.Date
	Offset int // minutes east of UTC
	Name   string
}

// eras follows the Asia/Seoul history. Before 1908-04-01 clocks kept Seoul
// local mean time (+8:27:52, rounded here to the minute).
var eras = [...]Era{
	{Start: core.Date{Year: 1, Month: 1, Day: 1}, Offset: 8*60 + 28, Name: "LMT"},
	{Start: core.Date{Year: 1908, Month: 4, Day: 1}, Offset: 8*60 + 30, Name: "KST"},
	{Start: core.Date{Year: 1912, Month: 1, Day: 1}, Offset: 9 * 60, Name: "JST"},
	{Start: core.Date{Year: 1945, Month: 9, Day: 8}, Offset: 9 * 60, Name: "KST"},
	{Start: core.Date{Year: 1954, Month: 3, Day: 21}, Offset: 8*60 + 30, Name: "KST"},
	{Start: core.Date{Year: 1961, Month: 8, Day: 10}, Offset: 9 * 60, Name: "KST"},
}

// Eras returns a copy of the standard-offset table in chronological order.
func Eras() []Era {
	out := make([]Era, len(eras))
	copy(out, eras[:])
	return out
}

// EraFor returns the standard-offset era in force on d.
func EraFor(d core.Date) Era {
	current := eras[0]
	for _, e := range eras[1:] {
		if d.Before(e.Start) {
			break
		}
		current = e
	}
	return current
}

// StandardOffset returns the standard (non-DST) UTC offset in minutes in
// force at t.
func StandardOffset(t core.DateTime) int {
	return EraFor(t.Date).Offset
}

// =============================================================================
// Correction
// =============================================================================

// Options selects which corrections Correct applies.
type Options struct {
	// DisableDST leaves clock time untouched inside daylight-saving ranges.
	DisableDST bool
	// DisableMeridian skips the shift from the standard meridian to the
	// 127.5°E reference meridian.
	DisableMeridian bool
}

// Correction describes how a wall-clock time was turned into the effective
// time used for bucketing.
type Correction struct {
	Input     core.DateTime
	Effective core.DateTime

	// DST is true when the input fell inside a daylight-saving range and one
	// hour was subtracted.
	DST bool

	// MeridianMinutes is the number of minutes subtracted for the distance
	// between the era's standard meridian and the reference meridian. It is
	// zero on +8:30 eras and negative before 1908.
	MeridianMinutes int
}

// Shift returns the total number of minutes subtracted from the input.
func (c Correction) Shift() int {
	shift := c.MeridianMinutes
	if c.DST {
		shift += 60
	}
	return shift
}

// Correct returns the effective wall time for t. The result may fall on an
// earlier date than t. Outside every daylight-saving range, and with the
// meridian shift disabled, the time passes through unchanged.
func Correct(t core.DateTime, opts Options) Correction {
	c := Correction{Input: t}
	if !opts.DisableDST {
		c.DST = InDST(t)
	}
	if !opts.DisableMeridian {
		c.MeridianMinutes = StandardOffset(t) - ReferenceOffset
	}
	c.Effective = t.AddMinutes(-c.Shift())
	return c
}
