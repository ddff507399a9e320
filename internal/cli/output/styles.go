package output

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/leapstack-labs/saju/pkg/ganji"
)

// Styles holds the lipgloss styles used by a Renderer.
type Styles struct {
	Header1 lipgloss.Style
	Header2 lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style

	elements [5]lipgloss.Style
}

// Element colours follow the traditional five-colour scheme.
var elementColors = [5]lipgloss.AdaptiveColor{
	{Light: "#2E7D32", Dark: "#81C784"}, // wood
	{Light: "#C62828", Dark: "#E57373"}, // fire
	{Light: "#8D6E00", Dark: "#FFD54F"}, // earth
	{Light: "#616161", Dark: "#E0E0E0"}, // metal
	{Light: "#1565C0", Dark: "#64B5F6"}, // water
}

// NewStyles builds styles bound to w. Without a TTY the colour profile is
// forced to plain ASCII so no escape codes are written.
func NewStyles(w io.Writer, isTTY bool) *Styles {
	lr := lipgloss.NewRenderer(w)
	if !isTTY {
		lr.SetColorProfile(termenv.Ascii)
	}

	s := &Styles{
		Header1: lr.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#4A148C", Dark: "#CE93D8"}).MarginBottom(1),
		Header2: lr.NewStyle().Bold(true).Underline(true),
		Muted:   lr.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#757575", Dark: "#9E9E9E"}),
		Success: lr.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#2E7D32", Dark: "#81C784"}),
		Warning: lr.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#E65100", Dark: "#FFB74D"}),
		Error:   lr.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#B71C1C", Dark: "#EF5350"}),
		Info:    lr.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#01579B", Dark: "#4FC3F7"}),
	}
	for i, c := range elementColors {
		s.elements[i] = lr.NewStyle().Foreground(c)
	}
	return s
}

// Element returns the style for a five-element phase.
func (s *Styles) Element(e ganji.Element) lipgloss.Style {
	if !e.Valid() {
		return s.Muted
	}
	return s.elements[e]
}
