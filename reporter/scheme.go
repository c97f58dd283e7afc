package reporter

import "github.com/charmbracelet/lipgloss"

// ColorScheme maps severity levels to display styles. Levels absent from
// the scheme render unstyled.
type ColorScheme map[Level]lipgloss.Style

// DefaultScheme returns the built-in scheme: the bright ANSI row, with
// errors and criticals in red and successes in green.
func DefaultScheme() ColorScheme {
	return ColorScheme{
		LevelInfo:     BrightWhite,
		LevelWarning:  BrightYellow,
		LevelError:    BrightRed,
		LevelDebug:    BrightCyan,
		LevelSuccess:  BrightGreen,
		LevelCritical: BrightRed,
		LevelInput:    BrightGreen,
	}
}

// Merge overlays the entries of over onto s. Levels not present in over
// keep their current style (partial update, not wholesale replace).
func (s ColorScheme) Merge(over ColorScheme) {
	for lvl, st := range over {
		s[lvl] = st
	}
}

// Clone returns an independent copy of the scheme.
func (s ColorScheme) Clone() ColorScheme {
	out := make(ColorScheme, len(s))
	for lvl, st := range s {
		out[lvl] = st
	}
	return out
}
