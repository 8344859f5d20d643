package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

// Printer writes the final installer report to the terminal. Markdown is
// rendered with glamour when a TTY is attached and printed raw otherwise.
type Printer struct {
	out      io.Writer
	headless *HeadlessManager
}

// NewPrinter creates a Printer writing to out.
func NewPrinter(out io.Writer, h *HeadlessManager) *Printer {
	if h == nil {
		h = NewHeadlessManager()
	}
	return &Printer{out: out, headless: h}
}

// Header prints a styled section header.
func (p *Printer) Header(text string) {
	fmt.Fprintln(p.out, headerStyle.Render(text))
}

// Warn prints a styled warning line.
func (p *Printer) Warn(text string) {
	fmt.Fprintln(p.out, warnStyle.Render("! "+text))
}

// Markdown renders a markdown document to the terminal.
func (p *Printer) Markdown(doc string) error {
	if p.headless.IsHeadless() {
		_, err := fmt.Fprint(p.out, doc)
		return err
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		// Styling is best effort; fall back to the raw document.
		_, werr := fmt.Fprint(p.out, doc)
		return werr
	}
	rendered, err := r.Render(doc)
	if err != nil {
		_, werr := fmt.Fprint(p.out, doc)
		return werr
	}
	_, err = fmt.Fprint(p.out, rendered)
	return err
}
