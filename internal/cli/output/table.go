package output

import (
	"github.com/jedib0t/go-pretty/v6/table"
)

// Table renders rows as a light box table in text mode and a markdown table
// otherwise. JSON callers encode their own structures.
func (r *Renderer) Table(header table.Row, rows []table.Row) {
	t := table.NewWriter()
	t.AppendHeader(header)
	t.AppendRows(rows)

	if r.EffectiveMode() == ModeText {
		t.SetStyle(table.StyleLight)
		r.Println(t.Render())
		return
	}
	r.Println(t.RenderMarkdown())
}
