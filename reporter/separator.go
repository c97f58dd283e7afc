package reporter

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const defaultRuleWidth = 40

// SeparatorOption adjusts a Separator call.
type SeparatorOption func(*sepOpts)

type sepOpts struct {
	width int
	style lipgloss.Style
	out   io.Writer
}

// WithWidth sets the total rule width in terminal cells.
func WithWidth(w int) SeparatorOption {
	return func(o *sepOpts) { o.width = w }
}

// WithSeparatorStyle overrides the default bold magenta rule style.
func WithSeparatorStyle(st lipgloss.Style) SeparatorOption {
	return func(o *sepOpts) { o.style = st }
}

// WithRuleWriter redirects the rule (default os.Stdout).
func WithRuleWriter(w io.Writer) SeparatorOption {
	return func(o *sepOpts) { o.out = w }
}

// Separator prints a titled horizontal rule, e.g.
//
//	───────────────── Init ─────────────────
//
// The title is centered in the rule; an empty title yields an unbroken
// line. Width accounting uses display cells so wide runes center
// correctly.
func Separator(title string, opts ...SeparatorOption) {
	o := sepOpts{
		width: defaultRuleWidth,
		style: BrightMagenta.Bold(true),
		out:   os.Stdout,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.width < 1 {
		o.width = defaultRuleWidth
	}
	line := rule(title, o.width)
	fmt.Fprintln(o.out, o.style.Render(line))
}

func rule(title string, width int) string {
	if title == "" {
		return strings.Repeat("─", width)
	}
	label := " " + title + " "
	lw := runewidth.StringWidth(label)
	if lw >= width {
		return label
	}
	left := (width - lw) / 2
	right := width - lw - left
	return strings.Repeat("─", left) + label + strings.Repeat("─", right)
}
