package output

import (
	"github.com/leapstack-labs/saju/pkg/ganji"
)

// CalendarOutput is the JSON structure for the calendar command.
type CalendarOutput struct {
	Year  int           `json:"year"`
	Month int           `json:"month"`
	Days  []CalendarDay `json:"days"`
}

// CalendarDay is one row of the perpetual calendar.
type CalendarDay struct {
	Date    string     `json:"date"`
	Weekday string     `json:"weekday"`
	Year    ganji.Pair `json:"year"`
	Month   ganji.Pair `json:"month"`
	Day     ganji.Pair `json:"day"`
	// Term is set on the first day of a solar month.
	Term string `json:"term,omitempty"`
}

// DSTOutput is the JSON structure for the dst command.
type DSTOutput struct {
	DST  []DSTRange `json:"dst"`
	Eras []EraInfo  `json:"eras"`
}

// DSTRange is one daylight-saving period, as wall-clock times.
type DSTRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// EraInfo is one standard-offset era.
type EraInfo struct {
	Start           string `json:"start"`
	Name            string `json:"name"`
	Offset          string `json:"offset"`
	MeridianMinutes int    `json:"meridianMinutes"`
}

// ErrorOutput is the JSON structure for a failed calculation.
type ErrorOutput struct {
	Input string `json:"input"`
	Error string `json:"error"`
}
