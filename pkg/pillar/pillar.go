// Package pillar computes the year, month, day and hour pillars of the four
// pillars chart.
//
// Every calculator is a pure function over its arguments and the fixed tables
// declared here; none of them hold state.
package pillar

import (
	"fmt"

	"github.com/leapstack-labs/saju/pkg/core"
	"github.com/leapstack-labs/saju/pkg/ganji"
	"github.com/leapstack-labs/saju/pkg/solarterm"
)

// Anchor constants.
const (
	// AnchorYear is a year whose pillar is 갑자 (cycle index 0).
	AnchorYear = 1984

	// AnchorJDN is 2000-01-01, a 무오 day (cycle index 54). This is the
	// reference pairing printed in standard perpetual calendars (만세력); it
	// also reproduces 1949-10-01 as 갑자.
	AnchorJDN      = 2451545
	AnchorDayIndex = 54
)

// monthStemStart is the five-tiger rule (오호둔): the stem of 인월 for each
// year stem.
var monthStemStart = [10]ganji.Stem{
	ganji.Byeong, // 갑
	ganji.Mu,     // 을
	ganji.Gyeong, // 병
	ganji.Im,     // 정
	ganji.Gap,    // 무
	ganji.Byeong, // 기
	ganji.Mu,     // 경
	ganji.Gyeong, // 신
	ganji.Im,     // 임
	ganji.Gap,    // 계
}

// hourStemStart is the five-rat rule (오서둔): the stem of 자시 for each day
// stem.
var hourStemStart = [10]ganji.Stem{
	ganji.Gap,    // 갑
	ganji.Byeong, // 을
	ganji.Mu,     // 병
	ganji.Gyeong, // 정
	ganji.Im,     // 무
	ganji.Gap,    // 기
	ganji.Byeong, // 경
	ganji.Mu,     // 신
	ganji.Gyeong, // 임
	ganji.Im,     // 계
}

// =============================================================================
// Year
// =============================================================================

// AdjustedYear returns the year used for the year pillar. Dates before
// 입춘 (all of January, and February 1-3) still belong to the previous year.
func AdjustedYear(d core.Date) int {
	if d.Month == 1 || (d.Month == 2 && d.Day < 4) {
		return d.Year - 1
	}
	return d.Year
}

// YearIndex returns the cycle index of the year pillar for d.
func YearIndex(d core.Date) int {
	return ganji.Mod60(AdjustedYear(d) - AnchorYear)
}

// Year returns the year pillar for d.
func Year(d core.Date) (ganji.Pair, error) {
	if err := d.Validate(); err != nil {
		return ganji.Pair{}, err
	}
	if err := core.CheckYear(d.Year); err != nil {
		return ganji.Pair{}, err
	}
	return ganji.PairAt(YearIndex(d)), nil
}

// =============================================================================
// Month
// =============================================================================

// MonthFor pairs a year stem with a solar month (1 = 인월).
func MonthFor(yearStem ganji.Stem, solarMonth int) ganji.Pair {
	stem := ganji.Stem((int(monthStemStart[yearStem]) + solarMonth - 1) % 10)
	branch := ganji.Branch((int(ganji.In) + solarMonth - 1) % 12)
	return ganji.Pair{Gan: stem, Ji: branch}
}

// Month returns the month pillar for d.
func Month(d core.Date) (ganji.Pair, error) {
	year, err := Year(d)
	if err != nil {
		return ganji.Pair{}, err
	}
	sm, err := solarterm.Month(d.Month, d.Day)
	if err != nil {
		return ganji.Pair{}, err
	}
	return MonthFor(year.Gan, sm), nil
}

// =============================================================================
// Day
// =============================================================================

// DayIndex returns the cycle index of the day pillar. It is total over valid
// Gregorian dates and increases by exactly one per calendar day.
func DayIndex(d core.Date) int {
	return ganji.Mod60(AnchorDayIndex + d.JDN() - AnchorJDN)
}

// Day returns the day pillar for d.
func Day(d core.Date) (ganji.Pair, error) {
	if err := d.Validate(); err != nil {
		return ganji.Pair{}, err
	}
	return ganji.PairAt(DayIndex(d)), nil
}

// =============================================================================
// Hour
// =============================================================================

// HourBranch returns the two-hour bucket (시) containing hour.
//
// Buckets are half-open and start on odd hours: 자 is [23:00, 01:00),
// 축 is [01:00, 03:00), and so on through 해 at [21:00, 23:00).
func HourBranch(hour int) ganji.Branch {
	return ganji.Branch(((hour + 1) % 24) / 2)
}

// HourFor pairs a day stem with an hour branch using the five-rat table.
func HourFor(dayStem ganji.Stem, branch ganji.Branch) ganji.Pair {
	stem := ganji.Stem((int(hourStemStart[dayStem]) + int(branch)) % 10)
	return ganji.Pair{Gan: stem, Ji: branch}
}

// Hour returns the hour pillar for an effective (already corrected) clock
// time. The minute does not move the bucket; it is validated only.
func Hour(dayStem ganji.Stem, hour, minute int) (ganji.Pair, error) {
	if !dayStem.Valid() {
		return ganji.Pair{}, fmt.Errorf("hour pillar: invalid day stem %d", int(dayStem))
	}
	if err := core.ValidateClock(hour, minute); err != nil {
		return ganji.Pair{}, err
	}
	return HourFor(dayStem, HourBranch(hour)), nil
}
