package reporter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Style tokens for building color schemes and per-call overrides.
//
// The palette covers the standard ANSI row, the bright row, and the
// matching backgrounds. Modifiers (bold, underline, reversed) compose via
// lipgloss, e.g. reporter.BrightRed.Bold(true).
var (
	Black   = lipgloss.NewStyle().Foreground(lipgloss.Color("0"))
	Red     = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	Green   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	Yellow  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	Blue    = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	Magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	Cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	White   = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))

	BrightBlack   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	BrightRed     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	BrightGreen   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	BrightYellow  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	BrightBlue    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	BrightMagenta = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
	BrightCyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	BrightWhite   = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
)

// foreground color tokens recognized by ParseStyle
var fgTokens = map[string]lipgloss.Color{
	"black":   "0",
	"red":     "1",
	"green":   "2",
	"yellow":  "3",
	"blue":    "4",
	"magenta": "5",
	"cyan":    "6",
	"white":   "7",

	"bright_black":   "8",
	"bright_red":     "9",
	"bright_green":   "10",
	"bright_yellow":  "11",
	"bright_blue":    "12",
	"bright_magenta": "13",
	"bright_cyan":    "14",
	"bright_white":   "15",
}

// background color tokens recognized by ParseStyle (bg_ prefix stripped)
var bgTokens = map[string]lipgloss.Color{
	"bg_black":   "0",
	"bg_red":     "1",
	"bg_green":   "2",
	"bg_yellow":  "3",
	"bg_blue":    "4",
	"bg_magenta": "5",
	"bg_cyan":    "6",
	"bg_white":   "7",
}

// ParseStyle builds a style from a '+'-separated token string, e.g.
// "bright_red+bold" or "yellow+bg_black+underline". Token names are
// case-insensitive. An empty spec yields the zero (unstyled) style; an
// unknown token yields a *ConfigError.
func ParseStyle(spec string) (lipgloss.Style, error) {
	st := lipgloss.NewStyle()
	if strings.TrimSpace(spec) == "" {
		return st, nil
	}
	for _, tok := range strings.Split(spec, "+") {
		name := strings.ToLower(strings.TrimSpace(tok))
		switch name {
		case "bold":
			st = st.Bold(true)
		case "underline":
			st = st.Underline(true)
		case "reversed":
			st = st.Reverse(true)
		default:
			if c, ok := fgTokens[name]; ok {
				st = st.Foreground(c)
				continue
			}
			if c, ok := bgTokens[name]; ok {
				st = st.Background(c)
				continue
			}
			return lipgloss.NewStyle(), configErrorf("unknown style token %q", name)
		}
	}
	return st, nil
}
