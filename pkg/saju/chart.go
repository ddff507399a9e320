package saju

import (
	"github.com/leapstack-labs/saju/pkg/core"
	"github.com/leapstack-labs/saju/pkg/ganji"
	"github.com/leapstack-labs/saju/pkg/kst"
	"github.com/leapstack-labs/saju/pkg/ohhaeng"
)

// Chart is the result of one calculation. Its JSON form is the stable
// external contract; field order is fixed.
type Chart struct {
	Year     ganji.Pair `json:"year"`
	Month    ganji.Pair `json:"month"`
	Day      ganji.Pair `json:"day"`
	Time     ganji.Pair `json:"time"`
	FullSaju string     `json:"fullSaju"`

	OhHaengBalance ohhaeng.Counts      `json:"ohHaengBalance"`
	OhHaengPercent ohhaeng.Percentages `json:"ohHaengPercent"`

	// SolarDate is the Gregorian birth date, after lunar conversion.
	SolarDate core.Date `json:"solarDate"`
	// EffectiveTime is the corrected wall time the pillars were computed from.
	EffectiveTime string `json:"effectiveTime"`
	DSTApplied    bool   `json:"dstApplied"`
	// MeridianMinutes is the meridian correction that was subtracted.
	MeridianMinutes int    `json:"meridianMinutes"`
	Zodiac          string `json:"zodiac"`

	Input      core.BirthMoment `json:"-"`
	Correction kst.Correction   `json:"-"`
}

func newChart(m core.BirthMoment, solar core.Date, corr kst.Correction, p FourPillars) *Chart {
	counts := ohhaeng.Count(p)
	return &Chart{
		Year:            p.Year,
		Month:           p.Month,
		Day:             p.Day,
		Time:            p.Hour,
		FullSaju:        p.String(),
		OhHaengBalance:  counts,
		OhHaengPercent:  ohhaeng.Percent(counts),
		SolarDate:       solar,
		EffectiveTime:   corr.Effective.String(),
		DSTApplied:      corr.DST,
		MeridianMinutes: corr.MeridianMinutes,
		Zodiac:          p.Year.Ji.Animal(),
		Input:           m,
		Correction:      corr,
	}
}

// Pillars returns the four pillars of the chart.
func (c *Chart) Pillars() FourPillars {
	return FourPillars{Year: c.Year, Month: c.Month, Day: c.Day, Hour: c.Time}
}
