package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/leapstack-labs/saju/pkg/core"
)

// CSV columns. Only "date" is required.
const (
	colDate     = "date"
	colTime     = "time"
	colCalendar = "calendar"
	colLeap     = "leap"
)

// readCSV parses a table whose first record is a header naming the columns.
// Lines starting with '#' are comments.
func readCSV(r io.Reader) ([]Entry, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, &ParseError{Message: fmt.Sprintf("failed to read CSV header: %v", err)}
	}
	headerLine, _ := reader.FieldPos(0)

	columns := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(name))
		switch name {
		case colDate, colTime, colCalendar, colLeap:
			columns[name] = i
		default:
			return nil, &UnknownFieldError{Line: headerLine, Field: name}
		}
	}
	if _, ok := columns[colDate]; !ok {
		return nil, &ParseError{Line: headerLine, Message: `CSV header must include a "date" column`}
	}

	var entries []Entry
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var csvErr *csv.ParseError
			if errors.As(err, &csvErr) {
				entries = append(entries, Entry{Line: csvErr.Line, Err: &ParseError{Line: csvErr.Line, Message: csvErr.Err.Error()}})
				continue
			}
			return nil, &ParseError{Message: fmt.Sprintf("failed to read CSV: %v", err)}
		}

		line, _ := reader.FieldPos(0)
		m, err := parseCSVRecord(record, columns, len(header))
		if err != nil {
			err = &ParseError{Line: line, Message: err.Error()}
		}
		entries = append(entries, Entry{Line: line, Moment: m, Err: err})
	}
	return entries, nil
}

func parseCSVRecord(record []string, columns map[string]int, width int) (core.BirthMoment, error) {
	if len(record) != width {
		return core.BirthMoment{}, fmt.Errorf("expected %d fields, got %d", width, len(record))
	}
	field := func(name string) string {
		if i, ok := columns[name]; ok {
			return strings.TrimSpace(record[i])
		}
		return ""
	}

	d, err := core.ParseDate(field(colDate))
	if err != nil {
		return core.BirthMoment{}, err
	}
	m := core.BirthMoment{Year: d.Year, Month: d.Month, Day: d.Day}

	if t := field(colTime); t != "" {
		m.Hour, m.Minute, err = core.ParseClock(t)
		if err != nil {
			return core.BirthMoment{}, err
		}
	}

	switch strings.ToLower(field(colCalendar)) {
	case "", "solar", "양력":
	case "lunar", "음력":
		m.IsLunar = true
	default:
		return core.BirthMoment{}, fmt.Errorf("calendar %q: want solar or lunar", field(colCalendar))
	}

	if l := field(colLeap); l != "" {
		m.IsLeapMonth, err = strconv.ParseBool(l)
		if err != nil {
			return core.BirthMoment{}, fmt.Errorf("leap %q: want true or false", l)
		}
	}
	if m.IsLeapMonth && !m.IsLunar {
		return core.BirthMoment{}, fmt.Errorf("leap month requires a lunar date")
	}
	return m, nil
}
