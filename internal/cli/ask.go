package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(askCmd)
}

var askCmd = &cobra.Command{
	Use:   "ask <prompt>",
	Short: "Show a styled prompt and echo the answer",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rep, err := configuredReporter()
		if err != nil {
			return err
		}
		answer, err := rep.Input(strings.Join(args, " "))
		if err != nil {
			return err
		}
		return rep.Success(answer)
	},
}
