// Package batch computes many charts concurrently.
package batch

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/saju/internal/loader"
	"github.com/leapstack-labs/saju/pkg/core"
	"github.com/leapstack-labs/saju/pkg/saju"
)

// Calculator computes one chart. *saju.Engine satisfies it.
type Calculator interface {
	Calculate(core.BirthMoment) (*saju.Chart, error)
}

// Config holds runner configuration.
type Config struct {
	// Workers bounds the number of charts computed at once (defaults to
	// GOMAXPROCS)
	Workers int
	// Logger is the structured logger (optional, uses discard if nil)
	Logger *slog.Logger
}

// Runner computes charts for a list of entries on a bounded worker pool.
type Runner struct {
	calc    Calculator
	workers int
	logger  *slog.Logger
}

// New creates a runner.
func New(calc Calculator, cfg Config) *Runner {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Runner{calc: calc, workers: workers, logger: logger}
}

// Result is the outcome for one entry.
type Result struct {
	Line   int
	Moment core.BirthMoment
	Chart  *saju.Chart
	Err    error
}

// OK reports whether a chart was computed.
func (r Result) OK() bool { return r.Err == nil && r.Chart != nil }

type resultJSON struct {
	Line   int              `json:"line"`
	Input  string           `json:"input"`
	Moment core.BirthMoment `json:"moment"`
	Chart  *saju.Chart      `json:"chart,omitempty"`
	Error  string           `json:"error,omitempty"`
}

// MarshalJSON encodes the result with the error as a string.
func (r Result) MarshalJSON() ([]byte, error) {
	out := resultJSON{Line: r.Line, Input: r.Moment.String(), Moment: r.Moment, Chart: r.Chart}
	if r.Err != nil {
		out.Error = r.Err.Error()
	}
	return json.Marshal(out)
}

// Report is the outcome of one run.
type Report struct {
	RunID    uuid.UUID     `json:"runId"`
	Results  []Result      `json:"results"`
	Failed   int           `json:"failed"`
	Duration time.Duration `json:"-"`
}

// Succeeded returns the number of entries that produced a chart.
func (r *Report) Succeeded() int { return len(r.Results) - r.Failed }

// Run computes a chart for every entry. Results keep input order. Entries
// that failed to load or to compute are reported in their Result; Run itself
// only fails when ctx is cancelled.
func (r *Runner) Run(ctx context.Context, entries []loader.Entry) (*Report, error) {
	start := time.Now()
	report := &Report{
		RunID:   uuid.New(),
		Results: make([]Result, len(entries)),
	}
	logger := r.logger.With("run_id", report.RunID.String())
	logger.Debug("starting batch", "entries", len(entries), "workers", r.workers)

	eg, egctx := errgroup.WithContext(ctx)
	eg.SetLimit(r.workers)

	for i, entry := range entries {
		if egctx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := egctx.Err(); err != nil {
				return err
			}
			// Each goroutine writes only its own slot.
			report.Results[i] = r.compute(entry)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("batch %s cancelled: %w", report.RunID, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("batch %s cancelled: %w", report.RunID, err)
	}

	for _, res := range report.Results {
		if res.Err != nil {
			report.Failed++
			logger.Debug("entry failed", "line", res.Line, "error", res.Err)
		}
	}
	report.Duration = time.Since(start)

	logger.Info("batch complete",
		"entries", len(entries),
		"failed", report.Failed,
		"duration", report.Duration)

	return report, nil
}

func (r *Runner) compute(entry loader.Entry) Result {
	res := Result{Line: entry.Line, Moment: entry.Moment, Err: entry.Err}
	if res.Err != nil {
		return res
	}
	res.Chart, res.Err = r.calc.Calculate(entry.Moment)
	return res
}
