package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Styles renders console output for a specific writer. Colors are dropped
// automatically when the writer is not a terminal.
type Styles struct {
	header  lipgloss.Style
	errText lipgloss.Style
	okText  lipgloss.Style
	muted   lipgloss.Style
}

func NewStyles(w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)

	return Styles{
		header:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("170")),
		errText: r.NewStyle().Foreground(lipgloss.Color("196")),
		okText:  r.NewStyle().Foreground(lipgloss.Color("42")),
		muted:   r.NewStyle().Faint(true),
	}
}

func (s Styles) Header(str string) string  { return s.header.Render(str) }
func (s Styles) Error(str string) string   { return s.errText.Render(str) }
func (s Styles) Success(str string) string { return s.okText.Render(str) }
func (s Styles) Muted(str string) string   { return s.muted.Render(str) }
