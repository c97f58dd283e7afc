package settings

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"tprint/internal/config"
	"tprint/reporter"
)

// Run launches an interactive form over config.toml: reporter flags, the
// log file path, and per-level style tokens. Saves on submit.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.Colors == nil {
		cfg.Colors = map[string]string{}
	}

	fileTS := cfg.FileTimestamps == nil || *cfg.FileTimestamps

	green := lipgloss.Color("#03BF87")
	theme := huh.ThemeCharm()
	theme.FieldSeparator = lipgloss.NewStyle()
	theme.Blurred.Title = theme.Blurred.Title.Width(22).Foreground(lipgloss.Color("7"))
	theme.Focused.Title = theme.Focused.Title.Width(22).Foreground(green).Bold(true)
	theme.Focused.Base.BorderForeground(green)

	validToken := func(s string) error {
		_, err := reporter.ParseStyle(s)
		return err
	}

	colorInputs := make([]huh.Field, 0, len(reporter.Levels()))
	colorValues := map[reporter.Level]*string{}
	for _, lvl := range reporter.Levels() {
		v := cfg.Colors[lvl.String()]
		p := &v
		colorValues[lvl] = p
		colorInputs = append(colorInputs,
			huh.NewInput().
				Title(lvl.String()).
				Placeholder("default").
				Validate(validToken).
				Value(p),
		)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title("tprint settings").Description("Reporter behavior; empty color fields keep the built-in style."),
			huh.NewConfirm().Title("Debug mode").Value(&cfg.DebugMode),
			huh.NewConfirm().Title("Console timestamps").Value(&cfg.UseTimestamps),
			huh.NewConfirm().Title("File timestamps").Value(&fileTS),
			huh.NewConfirm().Title("Purge log on start").Value(&cfg.PurgeOldLogs),
			huh.NewInput().Title("Log file").Placeholder("(disabled)").Value(&cfg.LogFile),
		),
		huh.NewGroup(colorInputs...).Title("Colors (token+token, e.g. bright_red+bold)"),
	).WithTheme(theme).WithWidth(64)

	if err := form.Run(); err != nil {
		return err // form canceled or failed
	}

	cfg.FileTimestamps = &fileTS
	for lvl, v := range colorValues {
		if *v == "" {
			delete(cfg.Colors, lvl.String())
			continue
		}
		cfg.Colors[lvl.String()] = *v
	}
	if err := config.Save(cfg); err != nil {
		return err
	}
	p, _ := config.File()
	fmt.Printf("\n✓ saved %s\n\n", p)
	return nil
}
