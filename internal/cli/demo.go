package cli

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"tprint/internal/config"
	"tprint/internal/system"
	"tprint/reporter"
)

var (
	demoLog   bool
	demoWatch bool
)

func init() {
	rootCmd.AddCommand(demoCmd)
	demoCmd.Flags().BoolVar(&demoLog, "log", false, "mirror demo messages to the configured log file")
	demoCmd.Flags().BoolVar(&demoWatch, "watch", false, "re-render when the config file changes")
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Render every severity level with the active configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		rep, err := configuredReporter()
		if err != nil {
			return err
		}
		renderDemo(rep, demoLog)
		if !demoWatch {
			return nil
		}

		path, err := config.File()
		if err != nil {
			return err
		}
		stop, err := config.Watch(path, func() {
			rep, err := configuredReporter()
			if err != nil {
				system.Logger.Error("reload config", "err", err)
				return
			}
			renderDemo(rep, demoLog)
		})
		if err != nil {
			return err
		}
		defer stop()
		system.Logger.Info("watching config", "path", path)

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt)
		<-sig
		return nil
	},
}

func renderDemo(rep *reporter.Reporter, toFile bool) {
	var opts []reporter.EmitOption
	if toFile {
		opts = append(opts, reporter.ToFile())
	}
	reporter.Separator("tprint")
	_ = rep.Info("informational message", opts...)
	_ = rep.Warning("warning message", opts...)
	_ = rep.Error("error message", opts...)
	_ = rep.Debug("debug message (needs debug_mode)", opts...)
	_ = rep.Success("success message", opts...)
	_ = rep.Critical("critical message", opts...)
	reporter.Separator("overrides", reporter.WithWidth(28))
	_ = rep.Info("per-call style override", append(opts, reporter.Styled(reporter.BrightMagenta.Bold(true)))...)
}
