package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// Dir returns the tprint config directory under the user config base.
// On Linux this typically resolves to $XDG_CONFIG_HOME/tprint; on macOS
// to ~/Library/Application Support/tprint; and on Windows to
// %AppData%/tprint. Falls back to HOME when UserConfigDir is unavailable.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil || strings.TrimSpace(base) == "" {
		if home, herr := os.UserHomeDir(); herr == nil {
			base = home
		} else {
			return "", errors.New("cannot determine config directory")
		}
	}
	return filepath.Join(base, "tprint"), nil
}

// File returns the path of the TOML config file.
func File() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// LogDir returns the default directory swept by "logs purge".
func LogDir() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "logs"), nil
}
