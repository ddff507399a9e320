package output

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/leapstack-labs/saju/pkg/ganji"
	"github.com/leapstack-labs/saju/pkg/saju"
)

// Chart renders a saju chart in the effective mode.
func (r *Renderer) Chart(c *saju.Chart) error {
	switch r.EffectiveMode() {
	case ModeJSON:
		return r.JSON(c)
	case ModeMarkdown:
		r.chartMarkdown(c)
	default:
		r.chartText(c)
	}
	return nil
}

// pillarColumns lists the pillars in traditional right-to-left reading
// order: hour, day, month, year.
func pillarColumns(c *saju.Chart) [4]ganji.Pair {
	return [4]ganji.Pair{c.Time, c.Day, c.Month, c.Year}
}

var pillarHeader = table.Row{"", "시 (Hour)", "일 (Day)", "월 (Month)", "년 (Year)"}

func (r *Renderer) pillarRows(c *saju.Chart, styled bool) []table.Row {
	cols := pillarColumns(c)
	stems := table.Row{"천간"}
	branches := table.Row{"지지"}
	hanja := table.Row{"한자"}
	elements := table.Row{"오행"}
	for _, p := range cols {
		stem, branch := p.Gan.String(), p.Ji.String()
		if styled {
			stem = r.styles.Element(p.Gan.Element()).Render(stem)
			branch = r.styles.Element(p.Ji.Element()).Render(branch)
		}
		stems = append(stems, stem)
		branches = append(branches, branch)
		hanja = append(hanja, p.Hanja())
		elements = append(elements, p.Gan.Element().String()+"/"+p.Ji.Element().String())
	}
	return []table.Row{stems, branches, hanja, elements}
}

func (r *Renderer) chartText(c *saju.Chart) {
	r.Header(1, c.FullSaju)
	r.Table(pillarHeader, r.pillarRows(c, true))
	r.Println("")

	r.Println(r.styles.Header2.Render("오행 Balance"))
	for _, e := range ganji.Elements {
		n := c.OhHaengBalance.Of(e)
		bar := r.styles.Element(e).Render(strings.Repeat("█", n))
		r.Printf("  %-12s %s %d (%s%%)\n", ElementLabel(e), bar, n, c.OhHaengPercent.Of(e).String())
	}
	r.Println("")

	r.chartDetails(c)
}

func (r *Renderer) chartMarkdown(c *saju.Chart) {
	r.Header(1, c.FullSaju)
	r.Table(pillarHeader, r.pillarRows(c, false))
	r.Println("")

	r.Header(2, "오행 Balance")
	for _, e := range ganji.Elements {
		r.Println(FormatKeyValue(ElementLabel(e),
			fmt.Sprintf("%d (%s%%)", c.OhHaengBalance.Of(e), c.OhHaengPercent.Of(e).String())))
	}
	r.Println("")

	r.Header(2, "Details")
	r.chartDetails(c)
}

func (r *Renderer) chartDetails(c *saju.Chart) {
	if c.Input.IsLunar {
		r.StatusLine("Input", c.Input.String())
	}
	r.StatusLine("Solar date", c.SolarDate.String())
	r.StatusLine("Effective time", c.EffectiveTime)
	r.StatusLine("DST applied", YesNo(c.DSTApplied))
	r.StatusLine("Meridian shift", fmt.Sprintf("%d min", c.MeridianMinutes))
	r.StatusLine("Zodiac", c.Zodiac)

	dominant := c.OhHaengBalance.Dominant()
	if len(dominant) > 0 {
		r.StatusLine("Dominant", joinElements(dominant))
	}
	if missing := c.OhHaengBalance.Missing(); len(missing) > 0 {
		r.StatusLine("Missing", joinElements(missing))
	}
}

func joinElements(es []ganji.Element) string {
	names := make([]string, len(es))
	for i, e := range es {
		names[i] = ElementLabel(e)
	}
	return strings.Join(names, ", ")
}
