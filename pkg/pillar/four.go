package pillar

import (
	"strings"

	"github.com/leapstack-labs/saju/pkg/ganji"
)

// FourPillars holds the year, month, day and hour pillars of one chart.
type FourPillars struct {
	Year  ganji.Pair
	Month ganji.Pair
	Day   ganji.Pair
	Hour  ganji.Pair
}

// Pairs returns the pillars in year, month, day, hour order.
func (f FourPillars) Pairs() [4]ganji.Pair {
	return [4]ganji.Pair{f.Year, f.Month, f.Day, f.Hour}
}

// String joins the four pillars with spaces, e.g. "신해 기해 병오 경인".
func (f FourPillars) String() string {
	pairs := f.Pairs()
	parts := make([]string, len(pairs))
	for i, p := range pairs {
		parts[i] = p.String()
	}
	return strings.Join(parts, " ")
}

// Hanja joins the four pillars in Hanja with spaces.
func (f FourPillars) Hanja() string {
	pairs := f.Pairs()
	parts := make([]string, len(pairs))
	for i, p := range pairs {
		parts[i] = p.Hanja()
	}
	return strings.Join(parts, " ")
}

// Valid reports whether all four pillars are canonical cycle pairs.
func (f FourPillars) Valid() bool {
	for _, p := range f.Pairs() {
		if !p.Valid() {
			return false
		}
	}
	return true
}
