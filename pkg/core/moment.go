package core

import (
	"fmt"
	"strconv"
	"strings"
)

// BirthMoment is the engine input: a calendar date and clock time, given
// either on the Gregorian calendar or on the lunar calendar.
type BirthMoment struct {
	Year   int `json:"year" yaml:"year"`
	Month  int `json:"month" yaml:"month"`
	Day    int `json:"day" yaml:"day"`
	Hour   int `json:"hour" yaml:"hour"`
	Minute int `json:"minute" yaml:"minute"`

	// IsLunar marks Year/Month/Day as a lunar date that must be converted
	// before any pillar is computed.
	IsLunar bool `json:"isLunar" yaml:"lunar"`

	// IsLeapMonth selects the intercalary month (윤달). Only meaningful
	// together with IsLunar.
	IsLeapMonth bool `json:"isLeapMonth,omitempty" yaml:"leap"`
}

// Date returns the calendar date part as given (not converted).
func (m BirthMoment) Date() Date {
	return Date{Year: m.Year, Month: m.Month, Day: m.Day}
}

// String formats the moment as "YYYY-MM-DD HH:MM" followed by a calendar
// marker for lunar input.
func (m BirthMoment) String() string {
	s := fmt.Sprintf("%04d-%02d-%02d %02d:%02d", m.Year, m.Month, m.Day, m.Hour, m.Minute)
	switch {
	case m.IsLunar && m.IsLeapMonth:
		return s + " lunar leap"
	case m.IsLunar:
		return s + " lunar"
	default:
		return s
	}
}

// ParseDate parses YYYY-MM-DD (also accepting '/' or '.' separators).
// Only the shape is checked; call Validate for calendar rules.
func ParseDate(s string) (Date, error) {
	fields := strings.FieldsFunc(strings.TrimSpace(s), func(r rune) bool {
		return r == '-' || r == '/' || r == '.'
	})
	if len(fields) != 3 {
		return Date{}, fmt.Errorf("date %q: expected YYYY-MM-DD", s)
	}
	var nums [3]int
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return Date{}, fmt.Errorf("date %q: %q is not a number", s, f)
		}
		nums[i] = n
	}
	return Date{Year: nums[0], Month: nums[1], Day: nums[2]}, nil
}

// ParseClock parses HH:MM (or a bare hour, "4").
func ParseClock(s string) (hour, minute int, err error) {
	s = strings.TrimSpace(s)
	h, m, found := strings.Cut(s, ":")
	hour, err = strconv.Atoi(h)
	if err != nil {
		return 0, 0, fmt.Errorf("time %q: expected HH:MM", s)
	}
	if found {
		minute, err = strconv.Atoi(m)
		if err != nil {
			return 0, 0, fmt.Errorf("time %q: expected HH:MM", s)
		}
	}
	if err := ValidateClock(hour, minute); err != nil {
		return 0, 0, err
	}
	return hour, minute, nil
}

// ParseMoment parses "YYYY-MM-DD [HH:MM] [lunar] [leap]".
// The time defaults to 00:00. The words "lunar" (or "음력") and "leap"
// (or "윤") may follow in any order.
func ParseMoment(s string) (BirthMoment, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return BirthMoment{}, fmt.Errorf("empty birth moment")
	}
	d, err := ParseDate(fields[0])
	if err != nil {
		return BirthMoment{}, err
	}
	m := BirthMoment{Year: d.Year, Month: d.Month, Day: d.Day}

	for _, f := range fields[1:] {
		switch strings.ToLower(f) {
		case "lunar", "음력":
			m.IsLunar = true
		case "leap", "윤", "윤달":
			m.IsLeapMonth = true
		case "solar", "양력":
			m.IsLunar = false
		default:
			h, mm, err := ParseClock(f)
			if err != nil {
				return BirthMoment{}, err
			}
			m.Hour, m.Minute = h, mm
		}
	}
	if m.IsLeapMonth && !m.IsLunar {
		return BirthMoment{}, fmt.Errorf("birth moment %q: leap month requires a lunar date", s)
	}
	return m, nil
}
