package game

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/termenv"
)

// Renderer styles game text for one output sink.
type Renderer struct {
	width int

	title   lipgloss.Style
	heading lipgloss.Style
	exits   lipgloss.Style
	speaker lipgloss.Style
	warn    lipgloss.Style
	dim     lipgloss.Style
}

// NewRenderer binds styles to w so colors are only emitted when w is a
// terminal. width <= 0 disables wrapping.
func NewRenderer(w io.Writer, width int) *Renderer {
	return newRenderer(lipgloss.NewRenderer(w), width)
}

func newRenderer(r *lipgloss.Renderer, width int) *Renderer {
	return &Renderer{
		width:   width,
		title:   r.NewStyle().Foreground(lipgloss.Color("205")).Bold(true), // pink
		heading: r.NewStyle().Foreground(lipgloss.Color("86")).Bold(true),  // green
		exits:   r.NewStyle().Foreground(lipgloss.Color("39")),             // teal
		speaker: r.NewStyle().Foreground(lipgloss.Color("212")).Bold(true), // purple
		warn:    r.NewStyle().Foreground(lipgloss.Color("214")),            // yellow
		dim:     r.NewStyle().Foreground(lipgloss.Color("240")),            // dark grey
	}
}

// plainRenderer never emits escape sequences.
func plainRenderer() *Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	return newRenderer(r, 0)
}

func (r *Renderer) wrap(s string) string {
	if r.width <= 0 {
		return s
	}
	return wordwrap.String(s, r.width)
}

func (r *Renderer) separator(under string) string {
	return r.dim.Render(strings.Repeat("=", lipgloss.Width(under)))
}
