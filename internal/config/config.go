package config

import (
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"

	"tprint/reporter"
)

// Config is the on-disk CLI configuration mirrored into reporter options.
// Colors maps level names to '+'-separated style token strings, e.g.
// warning = "bright_yellow+bold".
type Config struct {
	DebugMode      bool              `toml:"debug_mode"`
	UseTimestamps  bool              `toml:"use_timestamps"`
	FileTimestamps *bool             `toml:"file_timestamps"`
	LogFile        string            `toml:"log_file"`
	PurgeOldLogs   bool              `toml:"purge_old_logs"`
	Colors         map[string]string `toml:"colors"`
}

// Default returns the zero configuration: defaults off, file timestamps on.
func Default() Config {
	return Config{Colors: map[string]string{}}
}

// Load reads the config file from the standard location. A missing file
// yields Default.
func Load() (Config, error) {
	p, err := File()
	if err != nil {
		return Config{}, err
	}
	return LoadFrom(p)
}

// LoadFrom reads a config file from an explicit path.
func LoadFrom(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg := Default()
	if err := toml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Save writes the config to the standard location, creating the directory
// if needed.
func Save(cfg Config) error {
	p, err := File()
	if err != nil {
		return err
	}
	return SaveTo(p, cfg)
}

// SaveTo writes the config to an explicit path.
func SaveTo(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	b, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return os.WriteFile(path, b, 0o644)
}

// Options converts the config into reporter construction options. Color
// entries are validated level name and token by token; the first invalid
// entry fails the whole conversion.
func (c Config) Options() ([]reporter.Option, error) {
	scheme := reporter.ColorScheme{}
	for name, spec := range c.Colors {
		lvl, err := reporter.ParseLevel(name)
		if err != nil {
			return nil, err
		}
		st, err := reporter.ParseStyle(spec)
		if err != nil {
			return nil, fmt.Errorf("color for %s: %w", lvl, err)
		}
		scheme[lvl] = st
	}
	opts := []reporter.Option{
		reporter.WithDebugMode(c.DebugMode),
		reporter.WithTimestamps(c.UseTimestamps),
		reporter.WithLogFile(c.LogFile),
		reporter.WithPurgeOldLogs(c.PurgeOldLogs),
	}
	if len(scheme) > 0 {
		opts = append(opts, reporter.WithColorScheme(scheme))
	}
	if c.FileTimestamps != nil {
		opts = append(opts, reporter.WithFileTimestamps(*c.FileTimestamps))
	}
	return opts, nil
}
