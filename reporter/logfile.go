package reporter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	xansi "github.com/charmbracelet/x/ansi"
)

// appendLine opens the log file, appends one plain-text line, and closes
// it again. Any ANSI styling in the message is stripped so the file stays
// grep-friendly.
func appendLine(path, line string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	_, werr := f.WriteString(xansi.Strip(line) + "\n")
	cerr := f.Close()
	if werr != nil {
		return fmt.Errorf("append to log file: %w", werr)
	}
	if cerr != nil {
		return fmt.Errorf("close log file: %w", cerr)
	}
	return nil
}

// PurgeLogFile removes the configured log file. A missing file is not an
// error; calling with no log file configured is a no-op.
func (r *Reporter) PurgeLogFile() error {
	if r.logFile == "" {
		return nil
	}
	if err := os.Remove(r.logFile); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("purge log file: %w", err)
	}
	return nil
}

// PurgeDir removes regular "*.log" files directly under dir that are
// older than maxAge or larger than maxSize bytes. A zero maxAge or
// maxSize disables that criterion. Removal continues past per-file
// failures; the removed paths and any joined errors are returned.
func PurgeDir(dir string, maxAge time.Duration, maxSize int64) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read log dir: %w", err)
	}
	cutoff := time.Now().Add(-maxAge)
	var removed []string
	var errs []error
	for _, de := range entries {
		if de.IsDir() || !strings.HasSuffix(strings.ToLower(de.Name()), ".log") {
			continue
		}
		info, err := de.Info()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		stale := maxAge > 0 && info.ModTime().Before(cutoff)
		oversized := maxSize > 0 && info.Size() > maxSize
		if !stale && !oversized {
			continue
		}
		p := filepath.Join(dir, de.Name())
		if err := os.Remove(p); err != nil {
			errs = append(errs, err)
			continue
		}
		removed = append(removed, p)
	}
	return removed, errors.Join(errs...)
}
