// Package saju computes four pillars charts from birth moments.
//
// An Engine runs the full pipeline: lunar conversion, date validation,
// clock correction, the four pillar calculators and the five-element tally.
// It holds no mutable state and is safe for concurrent use.
package saju

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/leapstack-labs/saju/pkg/core"
	"github.com/leapstack-labs/saju/pkg/ganji"
	"github.com/leapstack-labs/saju/pkg/kst"
	"github.com/leapstack-labs/saju/pkg/lunar"
	"github.com/leapstack-labs/saju/pkg/pillar"
	"github.com/leapstack-labs/saju/pkg/solarterm"
)

// FourPillars is the year, month, day and hour pillars of a chart.
type FourPillars = pillar.FourPillars

// LateRatPolicy decides which day an effective time of 23:00-23:59 belongs to.
type LateRatPolicy string

const (
	// LateRatSplit keeps the day pillar on the current date and takes the hour
	// stem from the next day, so hour pillars run on without a jump at 23:00.
	LateRatSplit LateRatPolicy = "split"

	// LateRatNextDay starts the next day at 23:00: the year, month, day and
	// hour pillars are all read from the next date.
	LateRatNextDay LateRatPolicy = "next-day"
)

// ErrUnknownLateRatPolicy is returned for a policy name other than "split"
// or "next-day".
var ErrUnknownLateRatPolicy = errors.New("unknown late rat hour policy")

// ParseLateRatPolicy parses a policy name. The empty string selects
// LateRatSplit.
func ParseLateRatPolicy(s string) (LateRatPolicy, error) {
	switch LateRatPolicy(s) {
	case "", LateRatSplit:
		return LateRatSplit, nil
	case LateRatNextDay:
		return LateRatNextDay, nil
	default:
		return "", fmt.Errorf("%w: %q (want %q or %q)", ErrUnknownLateRatPolicy, s, LateRatSplit, LateRatNextDay)
	}
}

// Engine computes charts.
type Engine struct {
	converter lunar.Converter
	clock     kst.Options
	lateRat   LateRatPolicy
	logger    *slog.Logger
}

// Config holds engine configuration. The zero value selects the default
// pipeline.
type Config struct {
	// Converter resolves lunar input (optional, uses lunar-go if nil)
	Converter lunar.Converter
	// DisableDST ignores the historical daylight-saving table
	DisableDST bool
	// DisableMeridianCorrection skips the shift to the 127.5°E meridian
	DisableMeridianCorrection bool
	// LateRatHour is "split" (default) or "next-day"
	LateRatHour LateRatPolicy
	// Logger is the structured logger (optional, uses discard if nil)
	Logger *slog.Logger
}

// New creates an engine.
func New(cfg Config) (*Engine, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	policy, err := ParseLateRatPolicy(string(cfg.LateRatHour))
	if err != nil {
		return nil, err
	}

	converter := cfg.Converter
	if converter == nil {
		converter = lunar.Library{}
	}

	logger.Debug("initializing engine",
		"dst", !cfg.DisableDST,
		"meridian_correction", !cfg.DisableMeridianCorrection,
		"late_rat_hour", string(policy))

	return &Engine{
		converter: converter,
		clock: kst.Options{
			DisableDST:      cfg.DisableDST,
			DisableMeridian: cfg.DisableMeridianCorrection,
		},
		lateRat: policy,
		logger:  logger,
	}, nil
}

// Calculate computes the chart for m.
func (e *Engine) Calculate(m core.BirthMoment) (*Chart, error) {
	if err := core.ValidateClock(m.Hour, m.Minute); err != nil {
		return nil, err
	}

	solar := m.Date()
	if m.IsLunar {
		var err error
		solar, err = e.toSolar(m)
		if err != nil {
			return nil, err
		}
	} else if m.IsLeapMonth {
		return nil, &core.InvalidDateError{Year: m.Year, Month: m.Month, Day: m.Day, Reason: "leap month flag requires a lunar date"}
	}

	if err := solar.Validate(); err != nil {
		return nil, err
	}
	if err := core.CheckYear(solar.Year); err != nil {
		return nil, err
	}

	corr := kst.Correct(core.At(solar, m.Hour, m.Minute), e.clock)
	eff := corr.Effective

	pillars, err := e.pillars(eff)
	if err != nil {
		return nil, err
	}

	e.logger.Debug("computed chart",
		"input", m.String(),
		"solar_date", solar.String(),
		"effective", eff.String(),
		"dst", corr.DST,
		"meridian_minutes", corr.MeridianMinutes,
		"pillars", pillars.String())

	return newChart(m, solar, corr, pillars), nil
}

// Pillars computes the four pillars for an already-corrected wall time.
func (e *Engine) Pillars(eff core.DateTime) (FourPillars, error) {
	if err := eff.Validate(); err != nil {
		return FourPillars{}, err
	}
	return e.pillars(eff)
}

func (e *Engine) pillars(eff core.DateTime) (FourPillars, error) {
	// Under LateRatNextDay the whole chart is read from the next date, so
	// the year and month can change with the day at a 입춘 or 절 boundary.
	date := eff.Date
	lateRat := eff.Hour == 23
	if lateRat && e.lateRat == LateRatNextDay {
		date = date.AddDays(1)
	}

	year := ganji.PairAt(pillar.YearIndex(date))

	sm, err := solarterm.Month(date.Month, date.Day)
	if err != nil {
		return FourPillars{}, err
	}
	month := pillar.MonthFor(year.Gan, sm)

	day := ganji.PairAt(pillar.DayIndex(date))
	hourStem := day.Gan
	if lateRat && e.lateRat == LateRatSplit {
		hourStem = ganji.PairAt(pillar.DayIndex(date.AddDays(1))).Gan
	}

	hour, err := pillar.Hour(hourStem, eff.Hour, eff.Minute)
	if err != nil {
		return FourPillars{}, err
	}

	return FourPillars{Year: year, Month: month, Day: day, Hour: hour}, nil
}

func (e *Engine) toSolar(m core.BirthMoment) (core.Date, error) {
	d, err := e.converter.ToSolar(m.Year, m.Month, m.Day, m.IsLeapMonth)
	if err != nil {
		var convErr *core.LunarConversionError
		if errors.As(err, &convErr) {
			return core.Date{}, err
		}
		return core.Date{}, &core.LunarConversionError{
			Year: m.Year, Month: m.Month, Day: m.Day, Leap: m.IsLeapMonth, Cause: err,
		}
	}
	e.logger.Debug("converted lunar date", "lunar", m.Date().String(), "leap", m.IsLeapMonth, "solar", d.String())
	return d, nil
}

// Calculate computes a chart with the default engine.
func Calculate(m core.BirthMoment) (*Chart, error) {
	return defaultEngine.Calculate(m)
}

var defaultEngine = &Engine{
	converter: lunar.Library{},
	lateRat:   LateRatSplit,
	logger:    slog.New(slog.DiscardHandler),
}
