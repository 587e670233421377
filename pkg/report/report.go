// Package report renders lint results for the terminal.
package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/frontkit/js-imports-order/pkg/lint"
)

// Printer writes diagnostics and a run summary to an output stream.
type Printer struct {
	out io.Writer

	path    lipgloss.Style
	loc     lipgloss.Style
	badge   lipgloss.Style
	fixed   lipgloss.Style
	problem lipgloss.Style
}

// NewPrinter creates a Printer. With color disabled all styles are no-ops
// and the output is plain text.
func NewPrinter(out io.Writer, color bool) *Printer {
	p := &Printer{
		out:     out,
		path:    lipgloss.NewStyle(),
		loc:     lipgloss.NewStyle(),
		badge:   lipgloss.NewStyle(),
		fixed:   lipgloss.NewStyle(),
		problem: lipgloss.NewStyle(),
	}
	if color {
		p.path = lipgloss.NewStyle().Bold(true)
		p.loc = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
		p.badge = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
		p.fixed = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
		p.problem = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	}
	return p
}

// Results prints every file's diagnostics in result order.
func (p *Printer) Results(results []lint.FileResult) {
	for _, res := range results {
		p.file(res)
	}
	p.summary(results)
}

func (p *Printer) file(res lint.FileResult) {
	if len(res.Diagnostics) == 0 && res.Fixed == 0 {
		return
	}

	fmt.Fprintln(p.out, p.path.Render(res.Path))
	if res.Fixed > 0 {
		fmt.Fprintf(p.out, "  %s\n", p.fixed.Render(fmt.Sprintf("fixed %d imports", res.Fixed)))
	}
	for _, d := range res.Diagnostics {
		line := fmt.Sprintf("  %s  %s",
			p.loc.Render(fmt.Sprintf("%d:%d", d.Line, d.Column)),
			d.Message)
		if d.HasFix() {
			line += "  " + p.badge.Render("(fixable)")
		}
		fmt.Fprintln(p.out, line)
	}
}

func (p *Printer) summary(results []lint.FileResult) {
	problems := lint.Problems(results)
	fixed := lint.FixedCount(results)

	switch {
	case problems == 0 && fixed == 0:
		fmt.Fprintf(p.out, "%d files checked, no problems found\n", len(results))
	case problems == 0:
		fmt.Fprintf(p.out, "%d files checked, %s\n", len(results),
			p.fixed.Render(fmt.Sprintf("%d imports fixed", fixed)))
	default:
		fmt.Fprintf(p.out, "%d files checked, %s\n", len(results),
			p.problem.Render(fmt.Sprintf("%d problems found", problems)))
	}
}
