package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tprint/reporter"
)

func TestDir_UsesUserConfigDir(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	t.Setenv("HOME", tmp) // fallback

	dir, err := Dir()
	if err != nil {
		t.Fatalf("Dir error: %v", err)
	}
	if !strings.HasPrefix(dir, tmp) || filepath.Base(dir) != "tprint" {
		t.Fatalf("unexpected config dir %q", dir)
	}
}

func TestLoadFrom_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("LoadFrom error: %v", err)
	}
	if cfg.DebugMode || cfg.UseTimestamps || cfg.LogFile != "" || cfg.PurgeOldLogs {
		t.Fatalf("expected zero defaults, got %+v", cfg)
	}
	if cfg.FileTimestamps != nil {
		t.Fatalf("file_timestamps should be unset by default")
	}
}

func TestSaveTo_LoadFrom_RoundTrip(t *testing.T) {
	p := filepath.Join(t.TempDir(), "nested", "config.toml")
	ft := false
	in := Config{
		DebugMode:      true,
		UseTimestamps:  true,
		FileTimestamps: &ft,
		LogFile:        "/tmp/t.log",
		PurgeOldLogs:   true,
		Colors: map[string]string{
			"warning": "bright_yellow+bold",
			"error":   "red+underline",
		},
	}
	if err := SaveTo(p, in); err != nil {
		t.Fatalf("SaveTo error: %v", err)
	}
	out, err := LoadFrom(p)
	if err != nil {
		t.Fatalf("LoadFrom error: %v", err)
	}
	if !out.DebugMode || !out.UseTimestamps || !out.PurgeOldLogs || out.LogFile != in.LogFile {
		t.Fatalf("round trip mismatch: %+v", out)
	}
	if out.FileTimestamps == nil || *out.FileTimestamps {
		t.Fatalf("file_timestamps lost in round trip: %+v", out.FileTimestamps)
	}
	if out.Colors["warning"] != "bright_yellow+bold" || out.Colors["error"] != "red+underline" {
		t.Fatalf("colors lost in round trip: %v", out.Colors)
	}
}

func TestOptions_ValidConfig(t *testing.T) {
	cfg := Default()
	cfg.Colors["info"] = "bright_blue"
	opts, err := cfg.Options()
	if err != nil {
		t.Fatalf("Options error: %v", err)
	}
	if _, err := reporter.New(opts...); err != nil {
		t.Fatalf("New with config options: %v", err)
	}
}

func TestOptions_RejectsBadLevelAndToken(t *testing.T) {
	cfg := Default()
	cfg.Colors["verbose"] = "red"
	if _, err := cfg.Options(); err == nil {
		t.Fatalf("expected error for unknown level name")
	}

	cfg = Default()
	cfg.Colors["info"] = "ultraviolet"
	if _, err := cfg.Options(); err == nil {
		t.Fatalf("expected error for unknown style token")
	}
}

func TestLoadFrom_BadTOML(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(p, []byte("debug_mode = [broken"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadFrom(p); err == nil {
		t.Fatalf("expected parse error")
	}
}
