// Package console writes the user-facing notices of the tool. Colors are only
// emitted when the underlying writer is a color-capable terminal.
package console

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Sink is the console output every operation reports to.
type Sink struct {
	w       io.Writer
	success lipgloss.Style
	failure lipgloss.Style
}

// NewSink binds a sink to w. The color profile is detected from w itself.
func NewSink(w io.Writer) *Sink {
	r := lipgloss.NewRenderer(w)
	return &Sink{
		w:       w,
		success: r.NewStyle().Foreground(lipgloss.Color("10")),
		failure: r.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

// Writer returns the underlying writer, for table output.
func (s *Sink) Writer() io.Writer {
	return s.w
}

// Notice prints an uncolored informational line.
func (s *Sink) Notice(format string, a ...any) {
	fmt.Fprintln(s.w, fmt.Sprintf(format, a...))
}

// Success prints a line in green.
func (s *Sink) Success(format string, a ...any) {
	fmt.Fprintln(s.w, s.success.Render(fmt.Sprintf(format, a...)))
}

// Failure prints a line in red.
func (s *Sink) Failure(format string, a ...any) {
	fmt.Fprintln(s.w, s.failure.Render(fmt.Sprintf(format, a...)))
}
