package reporter

import "fmt"

// ConfigError reports structurally invalid configuration input: an unknown
// style token or level name, or a malformed log file path. It is returned
// immediately by the parser or setter that rejected the value.
type ConfigError struct {
	msg string
}

func (e *ConfigError) Error() string { return e.msg }

func configErrorf(format string, args ...any) *ConfigError {
	return &ConfigError{msg: fmt.Sprintf(format, args...)}
}
