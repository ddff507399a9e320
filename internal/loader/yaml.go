package loader

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/saju/pkg/core"
)

// knownYAMLFields are the keys accepted in a mapping entry. "date" and
// "time" are the short form of year/month/day and hour/minute.
var knownYAMLFields = map[string]bool{
	"year":   true,
	"month":  true,
	"day":    true,
	"hour":   true,
	"minute": true,
	"lunar":  true,
	"leap":   true,
	"date":   true,
	"time":   true,
}

// momentYAML is the mapping form of an entry.
type momentYAML struct {
	Year   int    `yaml:"year"`
	Month  int    `yaml:"month"`
	Day    int    `yaml:"day"`
	Hour   int    `yaml:"hour"`
	Minute int    `yaml:"minute"`
	Lunar  bool   `yaml:"lunar"`
	Leap   bool   `yaml:"leap"`
	Date   string `yaml:"date"`
	Time   string `yaml:"time"`
}

// readYAML parses a top-level sequence. Each item is either a string in the
// ParseMoment form ("1971-11-17 04:00 lunar") or a mapping.
func readYAML(r io.Reader) ([]Entry, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, &ParseError{Message: fmt.Sprintf("invalid YAML: %v", err)}
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.SequenceNode {
		return nil, &ParseError{Line: root.Line, Message: "expected a list of birth moments"}
	}

	entries := make([]Entry, 0, len(root.Content))
	for _, item := range root.Content {
		m, err := parseYAMLItem(item)
		entries = append(entries, Entry{Line: item.Line, Moment: m, Err: err})
	}
	return entries, nil
}

func parseYAMLItem(n *yaml.Node) (core.BirthMoment, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		m, err := core.ParseMoment(n.Value)
		if err != nil {
			return core.BirthMoment{}, &ParseError{Line: n.Line, Message: err.Error()}
		}
		return m, nil

	case yaml.MappingNode:
		// Content alternates key and value nodes.
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i]
			if !knownYAMLFields[key.Value] {
				return core.BirthMoment{}, &UnknownFieldError{Line: key.Line, Field: key.Value}
			}
		}

		var raw momentYAML
		if err := n.Decode(&raw); err != nil {
			return core.BirthMoment{}, &ParseError{Line: n.Line, Message: err.Error()}
		}
		m, err := raw.toMoment()
		if err != nil {
			return core.BirthMoment{}, &ParseError{Line: n.Line, Message: err.Error()}
		}
		return m, nil

	default:
		return core.BirthMoment{}, &ParseError{Line: n.Line, Message: "expected a string or a mapping"}
	}
}

func (y momentYAML) toMoment() (core.BirthMoment, error) {
	m := core.BirthMoment{
		Year:        y.Year,
		Month:       y.Month,
		Day:         y.Day,
		Hour:        y.Hour,
		Minute:      y.Minute,
		IsLunar:     y.Lunar,
		IsLeapMonth: y.Leap,
	}
	if y.Date != "" {
		d, err := core.ParseDate(y.Date)
		if err != nil {
			return core.BirthMoment{}, err
		}
		m.Year, m.Month, m.Day = d.Year, d.Month, d.Day
	}
	if y.Time != "" {
		h, mm, err := core.ParseClock(y.Time)
		if err != nil {
			return core.BirthMoment{}, err
		}
		m.Hour, m.Minute = h, mm
	}
	if m.IsLeapMonth && !m.IsLunar {
		return core.BirthMoment{}, fmt.Errorf("leap month requires a lunar date")
	}
	return m, nil
}
