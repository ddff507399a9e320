package saju

import (
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/saju/internal/testutil"
	"github.com/leapstack-labs/saju/pkg/core"
	"github.com/leapstack-labs/saju/pkg/ganji"
	"github.com/leapstack-labs/saju/pkg/lunar"
	"github.com/leapstack-labs/saju/pkg/pillar"
)

func newEngine(t *testing.T, cfg Config) *Engine {
	t.Helper()
	if cfg.Logger == nil {
		cfg.Logger = testutil.NewTestLogger(t)
	}
	e, err := New(cfg)
	require.NoError(t, err)
	return e
}

func solar(y, m, d, h, min int) core.BirthMoment {
	return core.BirthMoment{Year: y, Month: m, Day: d, Hour: h, Minute: min}
}

func pair(t *testing.T, s string) ganji.Pair {
	t.Helper()
	p, err := ganji.ParsePair(s)
	require.NoError(t, err)
	return p
}

var chartOpts = cmp.Options{
	cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) }),
	cmpopts.IgnoreFields(Chart{}, "Input", "Correction"),
}

func TestCalculate_Fixtures(t *testing.T) {
	tests := []struct {
		name   string
		cfg    Config
		input  core.BirthMoment
		want   string
		zodiac string
	}{
		{
			name:   "1971 morning",
			input:  solar(1971, 11, 17, 4, 0),
			want:   "신해 기해 병오 경인",
			zodiac: "돼지",
		},
		{
			name:   "1971 morning without corrections",
			cfg:    Config{DisableDST: true, DisableMeridianCorrection: true},
			input:  solar(1971, 11, 17, 4, 0),
			want:   "신해 기해 병오 경인",
			zodiac: "돼지",
		},
		{
			name:   "1988 daylight saving",
			input:  solar(1988, 9, 18, 20, 0),
			want:   "무진 신유 병자 정유",
			zodiac: "용",
		},
		{
			name:   "1988 naive clock",
			cfg:    Config{DisableDST: true, DisableMeridianCorrection: true},
			input:  solar(1988, 9, 18, 20, 0),
			want:   "무진 신유 병자 무술",
			zodiac: "용",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chart, err := newEngine(t, tt.cfg).Calculate(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, chart.FullSaju)
			assert.Equal(t, tt.want, chart.Pillars().String())
			assert.Equal(t, tt.zodiac, chart.Zodiac)
			assert.Equal(t, 8, chart.OhHaengBalance.Total())
			assert.True(t, chart.OhHaengPercent.Total().Equal(decimal.NewFromInt(100)))
		})
	}
}

func TestCalculate_WholeChart(t *testing.T) {
	chart, err := newEngine(t, Config{}).Calculate(solar(1988, 9, 18, 20, 0))
	require.NoError(t, err)

	want := &Chart{
		Year:            pair(t, "무진"),
		Month:           pair(t, "신유"),
		Day:             pair(t, "병자"),
		Time:            pair(t, "정유"),
		FullSaju:        "무진 신유 병자 정유",
		OhHaengBalance:  [5]int{0, 2, 2, 3, 1},
		SolarDate:       core.Date{Year: 1988, Month: 9, Day: 18},
		EffectiveTime:   "1988-09-18 18:30",
		DSTApplied:      true,
		MeridianMinutes: 30,
		Zodiac:          "용",
	}
	for i, n := range []string{"0", "25", "25", "37.5", "12.5"} {
		want.OhHaengPercent[i] = decimal.RequireFromString(n)
	}

	if diff := cmp.Diff(want, chart, chartOpts); diff != "" {
		t.Errorf("Calculate() mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, chart.Correction.DST)
	assert.Equal(t, 90, chart.Correction.Shift())
}

func TestCalculate_JSONIsDeterministic(t *testing.T) {
	e := newEngine(t, Config{})
	in := solar(1971, 11, 17, 4, 0)

	first, err := e.Calculate(in)
	require.NoError(t, err)
	second, err := e.Calculate(in)
	require.NoError(t, err)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))

	want := `{"year":{"gan":"신","ji":"해"},"month":{"gan":"기","ji":"해"},` +
		`"day":{"gan":"병","ji":"오"},"time":{"gan":"경","ji":"인"},` +
		`"fullSaju":"신해 기해 병오 경인",` +
		`"ohHaengBalance":{"목":1,"화":2,"토":1,"금":2,"수":2},` +
		`"ohHaengPercent":{"목":12.5,"화":25,"토":12.5,"금":25,"수":25},` +
		`"solarDate":"1971-11-17","effectiveTime":"1971-11-17 03:30",` +
		`"dstApplied":false,"meridianMinutes":30,"zodiac":"돼지"}`
	assert.JSONEq(t, want, string(a))
	assert.Equal(t, want, string(a))
}

func TestCalculate_HourBoundaries(t *testing.T) {
	e := newEngine(t, Config{DisableDST: true, DisableMeridianCorrection: true})
	at := func(h, m int) *Chart {
		c, err := e.Calculate(solar(1971, 11, 17, h, m))
		require.NoError(t, err)
		return c
	}

	assert.Equal(t, at(23, 0).Time, at(23, 59).Time)
	assert.NotEqual(t, at(22, 59).Time, at(23, 0).Time)
	assert.Equal(t, "기해", at(22, 59).Time.String())
	assert.Equal(t, "경자", at(23, 0).Time.String())
	assert.Equal(t, "병오", at(23, 0).Day.String())

	next, err := e.Calculate(solar(1971, 11, 18, 0, 30))
	require.NoError(t, err)
	assert.Equal(t, at(23, 30).Time, next.Time, "late and early rat hour share a pillar")
	assert.Equal(t, "정미", next.Day.String())
}

func TestCalculate_LateRatNextDay(t *testing.T) {
	e := newEngine(t, Config{DisableDST: true, DisableMeridianCorrection: true, LateRatHour: LateRatNextDay})

	c, err := e.Calculate(solar(1971, 11, 17, 23, 15))
	require.NoError(t, err)
	assert.Equal(t, "정미", c.Day.String())
	assert.Equal(t, "경자", c.Time.String())

	c, err = e.Calculate(solar(1971, 11, 17, 22, 59))
	require.NoError(t, err)
	assert.Equal(t, "병오", c.Day.String())
}

func TestCalculate_LateRatAtIpchun(t *testing.T) {
	tests := []struct {
		name   string
		policy LateRatPolicy
		input  core.BirthMoment
		want   string
	}{
		{"split keeps the old year", LateRatSplit, solar(1984, 2, 3, 23, 30), "계해 을축 정묘 임자"},
		{"next day takes the new year", LateRatNextDay, solar(1984, 2, 3, 23, 30), "갑자 병인 무진 임자"},
		{"after midnight", LateRatNextDay, solar(1984, 2, 4, 0, 30), "갑자 병인 무진 임자"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEngine(t, Config{DisableDST: true, DisableMeridianCorrection: true, LateRatHour: tt.policy})
			c, err := e.Calculate(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.FullSaju)
		})
	}
}

func TestCalculate_MeridianShiftsHourEdges(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		h, m     int
		wantHour string
	}{
		{"default 23:00 is still 해", Config{}, 23, 0, "기해"},
		{"default 23:29 is still 해", Config{}, 23, 29, "기해"},
		{"default 23:30 starts 자", Config{}, 23, 30, "경자"},
		{"default 23:59", Config{}, 23, 59, "경자"},
		{"no meridian 22:59", Config{DisableMeridianCorrection: true}, 22, 59, "기해"},
		{"no meridian 23:00 starts 자", Config{DisableMeridianCorrection: true}, 23, 0, "경자"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEngine(t, tt.cfg)
			c, err := e.Calculate(solar(1971, 11, 17, tt.h, tt.m))
			require.NoError(t, err)
			assert.Equal(t, tt.wantHour, c.Time.String())
		})
	}
}

func TestCalculate_HourCycleIsContinuous(t *testing.T) {
	for _, policy := range []LateRatPolicy{LateRatSplit, LateRatNextDay} {
		t.Run(string(policy), func(t *testing.T) {
			e := newEngine(t, Config{DisableDST: true, DisableMeridianCorrection: true, LateRatHour: policy})
			start := core.At(core.Date{Year: 1999, Month: 12, Day: 25}, 1, 0)

			prev, err := e.Pillars(start)
			require.NoError(t, err)
			prevIdx, ok := ganji.Index(prev.Hour)
			require.True(t, ok)

			for step := 1; step <= 12*20; step++ {
				tm := start.AddMinutes(step * 120)
				got, err := e.Pillars(tm)
				require.NoError(t, err)
				idx, ok := ganji.Index(got.Hour)
				require.True(t, ok)
				require.Equal(t, ganji.Add(prevIdx, 1), idx, "at %s", tm)
				prevIdx = idx
			}
		})
	}
}

func TestCalculate_CorrectionCrossesBoundaries(t *testing.T) {
	e := newEngine(t, Config{})

	// 00:10 on New Year's Day becomes 23:40 on New Year's Eve.
	c, err := e.Calculate(solar(1990, 1, 1, 0, 10))
	require.NoError(t, err)
	assert.Equal(t, "1989-12-31 23:40", c.EffectiveTime)
	wantDay, err := pillar.Day(core.Date{Year: 1989, Month: 12, Day: 31})
	require.NoError(t, err)
	assert.Equal(t, wantDay, c.Day)

	raw := newEngine(t, Config{DisableDST: true, DisableMeridianCorrection: true})
	uncorrected, err := raw.Calculate(solar(1990, 1, 1, 0, 10))
	require.NoError(t, err)
	assert.Equal(t, uncorrected.Time, c.Time, "still the same rat hour")

	// Shortly after midnight on 입춘 the corrected time is still the day before.
	c, err = e.Calculate(solar(1984, 2, 4, 0, 10))
	require.NoError(t, err)
	assert.Equal(t, "계해", c.Year.String())
	assert.Equal(t, "을축", c.Month.String())

	c, err = e.Calculate(solar(1984, 2, 4, 0, 40))
	require.NoError(t, err)
	assert.Equal(t, "갑자", c.Year.String())
	assert.Equal(t, "병인", c.Month.String())
}

func TestCalculate_Lunar(t *testing.T) {
	var got [4]any
	fake := lunar.ConverterFunc(func(year, month, day int, leap bool) (core.Date, error) {
		got = [4]any{year, month, day, leap}
		return core.Date{Year: 1971, Month: 11, Day: 17}, nil
	})
	e := newEngine(t, Config{Converter: fake})

	c, err := e.Calculate(core.BirthMoment{Year: 1971, Month: 9, Day: 30, Hour: 4, IsLunar: true})
	require.NoError(t, err)
	assert.Equal(t, [4]any{1971, 9, 30, false}, got)
	assert.Equal(t, "신해 기해 병오 경인", c.FullSaju)
	assert.Equal(t, core.Date{Year: 1971, Month: 11, Day: 17}, c.SolarDate)
	assert.True(t, c.Input.IsLunar)

	_, err = e.Calculate(core.BirthMoment{Year: 1971, Month: 9, Day: 30, Hour: 4, IsLunar: true, IsLeapMonth: true})
	require.NoError(t, err)
	assert.Equal(t, true, got[3])
}

func TestCalculate_LunarErrors(t *testing.T) {
	boom := errors.New("boom")
	e := newEngine(t, Config{Converter: lunar.ConverterFunc(func(int, int, int, bool) (core.Date, error) {
		return core.Date{}, boom
	})})

	_, err := e.Calculate(core.BirthMoment{Year: 2000, Month: 1, Day: 1, IsLunar: true, IsLeapMonth: true})
	var convErr *core.LunarConversionError
	require.True(t, errors.As(err, &convErr))
	assert.True(t, convErr.Leap)
	assert.ErrorIs(t, err, boom)

	// Errors that are already typed pass through unchanged.
	typed := &core.LunarConversionError{Year: 2000, Month: 1, Day: 31, Cause: lunar.ErrDayRange}
	e = newEngine(t, Config{Converter: lunar.ConverterFunc(func(int, int, int, bool) (core.Date, error) {
		return core.Date{}, typed
	})})
	_, err = e.Calculate(core.BirthMoment{Year: 2000, Month: 1, Day: 31, IsLunar: true})
	assert.Same(t, typed, err)
}

func TestCalculate_Errors(t *testing.T) {
	e := newEngine(t, Config{})
	tests := []struct {
		name  string
		input core.BirthMoment
		check func(t *testing.T, err error)
	}{
		{
			name:  "february thirtieth",
			input: solar(2001, 2, 30, 12, 0),
			check: func(t *testing.T, err error) {
				var target *core.InvalidDateError
				assert.True(t, errors.As(err, &target))
			},
		},
		{
			name:  "year before range",
			input: solar(1850, 5, 5, 12, 0),
			check: func(t *testing.T, err error) {
				var target *core.UnsupportedYearError
				assert.True(t, errors.As(err, &target))
			},
		},
		{
			name:  "year after range",
			input: solar(2101, 5, 5, 12, 0),
			check: func(t *testing.T, err error) {
				var target *core.UnsupportedYearError
				assert.True(t, errors.As(err, &target))
			},
		},
		{
			name:  "hour twenty four",
			input: solar(2000, 5, 5, 24, 0),
			check: func(t *testing.T, err error) {
				var target *core.InvalidTimeError
				assert.True(t, errors.As(err, &target))
			},
		},
		{
			name:  "minute sixty",
			input: solar(2000, 5, 5, 10, 60),
			check: func(t *testing.T, err error) {
				var target *core.InvalidTimeError
				assert.True(t, errors.As(err, &target))
			},
		},
		{
			name:  "leap flag on solar date",
			input: core.BirthMoment{Year: 2000, Month: 5, Day: 5, IsLeapMonth: true},
			check: func(t *testing.T, err error) {
				var target *core.InvalidDateError
				assert.True(t, errors.As(err, &target))
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chart, err := e.Calculate(tt.input)
			require.Error(t, err)
			assert.Nil(t, chart)
			tt.check(t, err)
		})
	}
}

func TestNew_RejectsUnknownPolicy(t *testing.T) {
	_, err := New(Config{LateRatHour: "midnight"})
	assert.ErrorIs(t, err, ErrUnknownLateRatPolicy)

	p, err := ParseLateRatPolicy("")
	require.NoError(t, err)
	assert.Equal(t, LateRatSplit, p)
}

func TestCalculate_ConcurrentUse(t *testing.T) {
	e := newEngine(t, Config{Logger: nil})
	want, err := e.Calculate(solar(1988, 9, 18, 20, 0))
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]*Chart, 32)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c, err := e.Calculate(solar(1988, 9, 18, 20, 0))
			if err == nil {
				results[i] = c
			}
		}()
	}
	wg.Wait()

	for _, got := range results {
		require.NotNil(t, got)
		if diff := cmp.Diff(want, got, chartOpts); diff != "" {
			t.Errorf("concurrent result mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestPackageCalculate(t *testing.T) {
	c, err := Calculate(solar(1971, 11, 17, 4, 0))
	require.NoError(t, err)
	assert.Equal(t, "신해 기해 병오 경인", c.FullSaju)
}
