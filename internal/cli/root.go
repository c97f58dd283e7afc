package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tprint/internal/config"
	"tprint/reporter"
)

var rootCmd = &cobra.Command{
	Use:   "tprint",
	Short: "tprint – styled console reporter",
	Long:  "tprint prints color-coded, severity-tagged messages and can mirror them to a plain-text log file.",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default action: render the demo with the saved config
		rep, err := configuredReporter()
		if err != nil {
			return err
		}
		renderDemo(rep, false)
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// configuredReporter builds a reporter from the saved config file,
// falling back to defaults when no file exists.
func configuredReporter() (*reporter.Reporter, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	return reporter.New(opts...)
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
