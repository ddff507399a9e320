package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/saju/internal/batch"
	"github.com/leapstack-labs/saju/internal/cli/output"
	"github.com/leapstack-labs/saju/internal/loader"
)

// BatchOptions holds options for the batch command.
type BatchOptions struct {
	Format string
}

// NewBatchCommand creates the batch command.
func NewBatchCommand() *cobra.Command {
	opts := &BatchOptions{}

	cmd := &cobra.Command{
		Use:   "batch <file>",
		Short: "Compute charts for every birth moment in a file",
		Long: `Compute charts for a YAML or CSV file of birth moments, concurrently.

YAML input is a sequence of "YYYY-MM-DD HH:MM [lunar] [leap]" strings or
mappings with year, month, day, hour, minute, lunar and leap keys (or date and
time). CSV input has a header row with the columns date, time, calendar and
leap; only date is required.

Entries that fail are reported alongside the others. The command exits with an
error when any entry failed. Use "-" to read standard input.`,
		Example: `  # Compute a YAML file with 8 workers
  saju batch people.yaml --workers 8

  # CSV from standard input, as JSON
  cat people.csv | saju batch - --format csv -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.Format, "format", "", "Input format (yaml|csv), default from the file extension")
	cmd.Flags().Int("workers", 0, "Charts computed concurrently (default GOMAXPROCS)")

	return cmd
}

func runBatch(cmd *cobra.Command, path string, opts *BatchOptions) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	entries, err := loadEntries(cmd.InOrStdin(), path, opts.Format)
	if err != nil {
		return err
	}

	runner := batch.New(cmdCtx.Engine, batch.Config{
		Workers: cmdCtx.Cfg.Batch.Workers,
		Logger:  cmdCtx.Logger,
	})
	report, err := runner.Run(cmd.Context(), entries)
	if err != nil {
		return err
	}

	r := cmdCtx.Renderer
	if r.EffectiveMode() == output.ModeJSON {
		if err := r.JSON(report); err != nil {
			return err
		}
	} else {
		renderReport(r, report)
	}

	if report.Failed > 0 {
		return fmt.Errorf("%d of %d entries failed", report.Failed, len(report.Results))
	}
	return nil
}

func loadEntries(stdin io.Reader, path, formatName string) ([]loader.Entry, error) {
	if path == "-" {
		format := loader.FormatYAML
		if formatName != "" {
			f, err := loader.ParseFormat(formatName)
			if err != nil {
				return nil, err
			}
			format = f
		}
		return loader.Read(stdin, format)
	}
	if formatName == "" {
		return loader.Load(path)
	}
	format, err := loader.ParseFormat(formatName)
	if err != nil {
		return nil, err
	}
	return loader.LoadAs(path, format)
}

func renderReport(r *output.Renderer, report *batch.Report) {
	r.Header(1, fmt.Sprintf("Batch %s (%d entries)", report.RunID.String()[:8], len(report.Results)))

	rows := make([]table.Row, 0, len(report.Results))
	for _, res := range report.Results {
		if !res.OK() {
			msg := "no chart"
			if res.Err != nil {
				msg = res.Err.Error()
			}
			rows = append(rows, table.Row{res.Line, res.Moment.String(), "", "", msg})
			continue
		}
		rows = append(rows, table.Row{res.Line, res.Moment.String(), res.Chart.FullSaju, res.Chart.Zodiac, ""})
	}
	r.Table(table.Row{"Line", "Input", "Saju", "Zodiac", "Error"}, rows)
	r.Println("")

	summary := fmt.Sprintf("%d computed in %s", report.Succeeded(), report.Duration.Round(time.Millisecond))
	if report.Failed == 0 {
		r.Success(summary)
		return
	}
	r.Warning(fmt.Sprintf("%s, %d failed", summary, report.Failed))
}
