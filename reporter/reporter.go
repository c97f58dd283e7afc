package reporter

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// timestampLayout is the console and file timestamp format (local time,
// second precision).
const timestampLayout = "2006-01-02 15:04:05"

// Reporter prints color-coded, severity-tagged messages to a console
// writer and optionally appends plain-text copies to a log file.
//
// Every emit call is synchronous: the console line is written first, then
// the file line (when requested), and any I/O failure is returned to the
// caller. A failed file append never suppresses the console write. The
// log file is opened and closed per append; no handle is held between
// calls. Reporters are not safe for concurrent use.
type Reporter struct {
	out            io.Writer
	in             *bufio.Reader
	scheme         ColorScheme
	debugMode      bool
	useTimestamps  bool
	fileTimestamps bool
	logFile        string
	purgeOldLogs   bool
	now            func() time.Time
}

// Option configures a Reporter at construction.
type Option func(*Reporter)

// WithColorScheme overlays a (possibly partial) scheme onto the defaults.
func WithColorScheme(scheme ColorScheme) Option {
	return func(r *Reporter) { r.scheme.Merge(scheme) }
}

// WithDebugMode enables output from Debug calls.
func WithDebugMode(on bool) Option {
	return func(r *Reporter) { r.debugMode = on }
}

// WithTimestamps prepends a timestamp to console lines.
func WithTimestamps(on bool) Option {
	return func(r *Reporter) { r.useTimestamps = on }
}

// WithFileTimestamps controls whether file entries are stamped
// independently of the console timestamp flag. Defaults to true: file
// lines always carry a timestamp while logging is active. When false,
// file stamps follow the console flag.
func WithFileTimestamps(on bool) Option {
	return func(r *Reporter) { r.fileTimestamps = on }
}

// WithLogFile sets the append target for calls made with ToFile. An empty
// path disables file logging.
func WithLogFile(path string) Option {
	return func(r *Reporter) { r.logFile = path }
}

// WithPurgeOldLogs removes the configured log file during New, before any
// message is written.
func WithPurgeOldLogs(on bool) Option {
	return func(r *Reporter) { r.purgeOldLogs = on }
}

// WithOutput redirects console output (default os.Stdout).
func WithOutput(w io.Writer) Option {
	return func(r *Reporter) { r.out = w }
}

// WithInput redirects Input reads (default os.Stdin).
func WithInput(rd io.Reader) Option {
	return func(r *Reporter) { r.in = bufio.NewReader(rd) }
}

// WithClock overrides the timestamp source (default time.Now).
func WithClock(now func() time.Time) Option {
	return func(r *Reporter) { r.now = now }
}

// New builds a Reporter with the default scheme and any options applied.
// A log file path that names an existing directory is rejected with a
// *ConfigError. When purge-old-logs is enabled and a log file is set, the
// file is removed before New returns.
func New(opts ...Option) (*Reporter, error) {
	r := &Reporter{
		out:            os.Stdout,
		in:             bufio.NewReader(os.Stdin),
		scheme:         DefaultScheme(),
		fileTimestamps: true,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	if err := validateLogPath(r.logFile); err != nil {
		return nil, err
	}
	if r.purgeOldLogs && r.logFile != "" {
		if err := r.PurgeLogFile(); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func validateLogPath(path string) error {
	if path == "" {
		return nil
	}
	if st, err := os.Stat(path); err == nil && st.IsDir() {
		return configErrorf("log file %q is a directory", path)
	}
	return nil
}

// EmitOption adjusts a single emit or Input call.
type EmitOption func(*emitOpts)

type emitOpts struct {
	toFile bool
	style  *lipgloss.Style
}

// ToFile requests that this call's message also be appended to the
// configured log file. Without a configured file it is a no-op.
func ToFile() EmitOption {
	return func(o *emitOpts) { o.toFile = true }
}

// Styled overrides the scheme style for this call only.
func Styled(st lipgloss.Style) EmitOption {
	return func(o *emitOpts) { o.style = &st }
}

// Info prints an informational message, marker [*].
func (r *Reporter) Info(message string, opts ...EmitOption) error {
	return r.emit(LevelInfo, message, opts...)
}

// Warning prints a warning, marker [!].
func (r *Reporter) Warning(message string, opts ...EmitOption) error {
	return r.emit(LevelWarning, message, opts...)
}

// Error prints an error, marker [x].
func (r *Reporter) Error(message string, opts ...EmitOption) error {
	return r.emit(LevelError, message, opts...)
}

// Debug prints a debug message, marker [-]. When debug mode is off the
// call is a complete no-op: no console output and no file write,
// regardless of ToFile.
func (r *Reporter) Debug(message string, opts ...EmitOption) error {
	return r.emit(LevelDebug, message, opts...)
}

// Success prints a success message, marker [✓].
func (r *Reporter) Success(message string, opts ...EmitOption) error {
	return r.emit(LevelSuccess, message, opts...)
}

// Critical prints a critical message, marker [x].
func (r *Reporter) Critical(message string, opts ...EmitOption) error {
	return r.emit(LevelCritical, message, opts...)
}

func (r *Reporter) emit(level Level, message string, opts ...EmitOption) error {
	if level == LevelDebug && !r.debugMode {
		return nil
	}
	var eo emitOpts
	for _, opt := range opts {
		opt(&eo)
	}

	stamp := r.now().Format(timestampLayout)
	consoleStamp := ""
	if r.useTimestamps {
		consoleStamp = stamp
	}
	fileStamp := consoleStamp
	if r.fileTimestamps {
		fileStamp = stamp
	}

	line := prefix(level, consoleStamp) + " " + message
	st, ok := r.scheme[level]
	if eo.style != nil {
		st, ok = *eo.style, true
	}
	rendered := line
	if ok {
		rendered = st.Render(line)
	}
	_, werr := fmt.Fprintln(r.out, rendered)
	if werr != nil {
		werr = fmt.Errorf("console write: %w", werr)
	}

	var ferr error
	if eo.toFile && r.logFile != "" {
		ferr = appendLine(r.logFile, prefix(level, fileStamp)+" "+message)
	}
	return errors.Join(werr, ferr)
}

// prefix builds "[marker]" or "[marker][timestamp]".
func prefix(level Level, stamp string) string {
	if stamp == "" {
		return "[" + level.Marker() + "]"
	}
	return "[" + level.Marker() + "][" + stamp + "]"
}

// Input writes the styled prompt as "[?] prompt: " without a trailing
// newline, then reads one line from the configured reader and returns it
// with the line ending removed. On EOF any partial line read so far is
// returned along with the error.
func (r *Reporter) Input(prompt string, opts ...EmitOption) (string, error) {
	var eo emitOpts
	for _, opt := range opts {
		opt(&eo)
	}
	st, ok := r.scheme[LevelInput]
	if eo.style != nil {
		st, ok = *eo.style, true
	}
	line := prefix(LevelInput, "") + " " + prompt + ": "
	if ok {
		line = st.Render(line)
	}
	if _, err := fmt.Fprint(r.out, line); err != nil {
		return "", fmt.Errorf("console write: %w", err)
	}
	s, err := r.in.ReadString('\n')
	s = strings.TrimSuffix(s, "\n")
	s = strings.TrimSuffix(s, "\r")
	if err != nil && s == "" {
		return "", err
	}
	return s, nil
}

// SetColorScheme overlays scheme onto the active scheme. Levels not
// present keep their prior styles.
func (r *Reporter) SetColorScheme(scheme ColorScheme) {
	r.scheme.Merge(scheme)
}

// SetDebugMode enables or disables Debug output.
func (r *Reporter) SetDebugMode(on bool) { r.debugMode = on }

// SetTimestampUsage enables or disables console timestamps.
func (r *Reporter) SetTimestampUsage(on bool) { r.useTimestamps = on }

// SetFileTimestamps controls independent file-entry timestamping.
func (r *Reporter) SetFileTimestamps(on bool) { r.fileTimestamps = on }

// SetLogFile changes the log file path; empty disables file logging.
// Rejects paths naming an existing directory.
func (r *Reporter) SetLogFile(path string) error {
	if err := validateLogPath(path); err != nil {
		return err
	}
	r.logFile = path
	return nil
}

// SetPurgeOldLogs records the purge flag; enabling it purges the
// configured log file immediately.
func (r *Reporter) SetPurgeOldLogs(on bool) error {
	r.purgeOldLogs = on
	if on && r.logFile != "" {
		return r.PurgeLogFile()
	}
	return nil
}

// LogFile reports the configured log file path ("" when disabled).
func (r *Reporter) LogFile() string { return r.logFile }
