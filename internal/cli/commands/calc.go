package commands

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/saju/pkg/core"
)

// CalcOptions holds options for the calc command.
type CalcOptions struct {
	Lunar bool
	Leap  bool
}

// NewCalcCommand creates the calc command.
func NewCalcCommand() *cobra.Command {
	opts := &CalcOptions{}

	cmd := &cobra.Command{
		Use:   "calc <date> [time]",
		Short: "Compute the Four Pillars for one birth moment",
		Long: `Compute the Four Pillars (사주) for a birth date and time in Korea.

The date is YYYY-MM-DD and the time HH:MM (24-hour, local clock time as it was
read at birth). The time defaults to 00:00. Historical daylight-saving time and
the standard-meridian offset of the day are corrected automatically.

With the default meridian correction, clocks on the 135°E meridian (+09:00)
run 30 minutes ahead of solar time, so hour pillars change at :30 on the wall
clock (자 starts at 23:30, 축 at 01:30). Use --meridian=false for hour
pillars that change on the odd hour (자 from 23:00).

Output adapts to environment:
  - Terminal: Styled, colored output
  - Piped/Scripted: Markdown format (agent-friendly)

Use --output to override: auto, text, markdown, json`,
		Example: `  # Solar (Gregorian) birth date
  saju calc 1971-11-17 04:00

  # Lunar birth date in a leap month
  saju calc 2023-02-01 10:30 --lunar --leap

  # Machine-readable
  saju calc 1988-09-18 20:00 -o json

  # Ignore historical daylight-saving time
  saju calc 1988-09-18 20:00 --dst=false`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalc(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Lunar, "lunar", false, "Date is on the lunar calendar (음력)")
	cmd.Flags().BoolVar(&opts.Leap, "leap", false, "Lunar date is in the leap month (윤달)")

	return cmd
}

func runCalc(cmd *cobra.Command, args []string, opts *CalcOptions) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	m, err := parseMomentArgs(args, opts)
	if err != nil {
		return err
	}

	chart, err := cmdCtx.Engine.Calculate(m)
	if err != nil {
		return err
	}
	cmdCtx.Logger.Debug("chart computed",
		slog.String("input", m.String()),
		slog.String("saju", chart.FullSaju))

	return cmdCtx.Renderer.Chart(chart)
}

// parseMomentArgs joins the date and time arguments and applies the calendar
// flags.
func parseMomentArgs(args []string, opts *CalcOptions) (core.BirthMoment, error) {
	m, err := core.ParseMoment(strings.Join(args, " "))
	if err != nil {
		return core.BirthMoment{}, err
	}
	if opts.Lunar {
		m.IsLunar = true
	}
	if opts.Leap {
		if !m.IsLunar {
			return core.BirthMoment{}, fmt.Errorf("--leap requires --lunar")
		}
		m.IsLeapMonth = true
	}
	return m, nil
}
