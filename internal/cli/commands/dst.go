package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/saju/internal/cli/output"
	"github.com/leapstack-labs/saju/pkg/kst"
)

// NewDSTCommand creates the dst command.
func NewDSTCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dst",
		Short: "List historical Korean daylight-saving and standard-time periods",
		Long: `List the daylight-saving periods observed in South Korea and the standard
UTC offsets in force since 1908, with the meridian correction each one implies.

DST ranges are wall-clock times: the start is read on standard time and the
end on daylight time.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDST(cmd)
		},
	}
}

func runDST(cmd *cobra.Command) error {
	r := NewCommandContextWithoutEngine(cmd).Renderer
	out := buildDSTOutput()

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(out)
	}

	r.Header(1, "Daylight saving time")
	rows := make([]table.Row, 0, len(out.DST))
	for _, d := range out.DST {
		rows = append(rows, table.Row{d.Start, d.End})
	}
	r.Table(table.Row{"Start", "End"}, rows)
	r.Println("")

	r.Header(1, "Standard time")
	rows = rows[:0]
	for _, e := range out.Eras {
		rows = append(rows, table.Row{e.Start, e.Name, e.Offset, fmt.Sprintf("%+d min", e.MeridianMinutes)})
	}
	r.Table(table.Row{"From", "Zone", "UTC offset", "Meridian shift"}, rows)
	return nil
}

func buildDSTOutput() *output.DSTOutput {
	ranges := kst.DSTRanges()
	eras := kst.Eras()
	out := &output.DSTOutput{
		DST:  make([]output.DSTRange, 0, len(ranges)),
		Eras: make([]output.EraInfo, 0, len(eras)),
	}
	for _, rg := range ranges {
		out.DST = append(out.DST, output.DSTRange{Start: rg.Start.String(), End: rg.End.String()})
	}
	for _, e := range eras {
		out.Eras = append(out.Eras, output.EraInfo{
			Start:           e.Start.String(),
			Name:            e.Name,
			Offset:          formatOffset(e.Offset),
			MeridianMinutes: e.Offset - kst.ReferenceOffset,
		})
	}
	return out
}

// formatOffset renders minutes east of UTC as "+09:00".
func formatOffset(minutes int) string {
	sign := '+'
	if minutes < 0 {
		sign = '-'
		minutes = -minutes
	}
	return fmt.Sprintf("%c%02d:%02d", sign, minutes/60, minutes%60)
}
