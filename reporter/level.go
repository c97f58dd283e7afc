package reporter

import "strings"

// Level identifies one of the fixed severity levels.
type Level int

const (
	LevelInfo Level = iota
	LevelWarning
	LevelError
	LevelDebug
	LevelSuccess
	LevelCritical
	// LevelInput is the scheme slot for the Input prompt; it is not an
	// emit level and carries no conditional gating.
	LevelInput
)

// Levels lists the emit levels in display order (Input excluded).
func Levels() []Level {
	return []Level{LevelInfo, LevelWarning, LevelError, LevelDebug, LevelSuccess, LevelCritical}
}

func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "info"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	case LevelDebug:
		return "debug"
	case LevelSuccess:
		return "success"
	case LevelCritical:
		return "critical"
	case LevelInput:
		return "input"
	}
	return "unknown"
}

// Marker returns the glyph printed inside the leading brackets.
func (l Level) Marker() string {
	switch l {
	case LevelInfo:
		return "*"
	case LevelWarning:
		return "!"
	case LevelError, LevelCritical:
		return "x"
	case LevelDebug:
		return "-"
	case LevelSuccess:
		return "✓"
	case LevelInput:
		return "?"
	}
	return " "
}

// ParseLevel maps a level name (as used in config files) to its Level.
// Unknown names yield a *ConfigError.
func ParseLevel(name string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "info":
		return LevelInfo, nil
	case "warning":
		return LevelWarning, nil
	case "error":
		return LevelError, nil
	case "debug":
		return LevelDebug, nil
	case "success":
		return LevelSuccess, nil
	case "critical":
		return LevelCritical, nil
	case "input":
		return LevelInput, nil
	}
	return 0, configErrorf("unknown severity level %q", name)
}
