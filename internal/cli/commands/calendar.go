package commands

import (
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/saju/internal/cli/output"
	"github.com/leapstack-labs/saju/pkg/core"
	"github.com/leapstack-labs/saju/pkg/pillar"
	"github.com/leapstack-labs/saju/pkg/solarterm"
)

// NewCalendarCommand creates the calendar command.
func NewCalendarCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calendar <year> <month>",
		Short: "Show the perpetual calendar (만세력) for a month",
		Long: `List every day of a Gregorian month with its day, month and year pillars.

Days on which a solar month begins are marked with the sectional term (절) that
opens it. The month and year pillars change on those days, not on the first of
the Gregorian month.`,
		Example: `  saju calendar 2024 2
  saju calendar 1988 9 -o json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("year %q is not a number", args[0])
			}
			month, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("month %q is not a number", args[1])
			}
			return runCalendar(cmd, year, month)
		},
	}
	return cmd
}

func runCalendar(cmd *cobra.Command, year, month int) error {
	cmdCtx := NewCommandContextWithoutEngine(cmd)

	cal, err := buildCalendar(year, month)
	if err != nil {
		return err
	}

	r := cmdCtx.Renderer
	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(cal)
	}

	r.Header(1, fmt.Sprintf("만세력 %04d-%02d", year, month))
	rows := make([]table.Row, 0, len(cal.Days))
	for _, d := range cal.Days {
		term := d.Term
		if term != "" && r.EffectiveMode() == output.ModeText {
			term = r.Styles().Info.Render(term)
		}
		rows = append(rows, table.Row{d.Date, d.Weekday, d.Day.String(), d.Month.String(), d.Year.String(), term})
	}
	r.Table(table.Row{"Date", "Wk", "Day", "Month", "Year", "Term"}, rows)
	return nil
}

// buildCalendar computes the pillars for each day of a Gregorian month.
func buildCalendar(year, month int) (*output.CalendarOutput, error) {
	if err := core.CheckYear(year); err != nil {
		return nil, err
	}
	first, err := core.NewDate(year, month, 1)
	if err != nil {
		return nil, err
	}

	n := core.DaysInMonth(year, month)
	cal := &output.CalendarOutput{Year: year, Month: month, Days: make([]output.CalendarDay, 0, n)}
	for i := 0; i < n; i++ {
		d := first.AddDays(i)
		day, err := pillar.Day(d)
		if err != nil {
			return nil, err
		}
		mon, err := pillar.Month(d)
		if err != nil {
			return nil, err
		}
		yr, err := pillar.Year(d)
		if err != nil {
			return nil, err
		}
		term, _ := solarterm.IsBoundary(d.Month, d.Day)
		cal.Days = append(cal.Days, output.CalendarDay{
			Date:    d.String(),
			Weekday: d.Weekday().String()[:3],
			Year:    yr,
			Month:   mon,
			Day:     day,
			Term:    term,
		})
	}
	return cal, nil
}
