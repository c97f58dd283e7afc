package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tprint/internal/config"
	"tprint/reporter"
)

var (
	purgeDir     string
	purgeMaxAge  time.Duration
	purgeMaxSize int64
)

func init() {
	rootCmd.AddCommand(logsCmd)
	logsCmd.AddCommand(logsPurgeCmd)
	logsPurgeCmd.Flags().StringVar(&purgeDir, "dir", "", "directory to sweep (default: tprint log dir)")
	logsPurgeCmd.Flags().DurationVar(&purgeMaxAge, "max-age", 7*24*time.Hour, "remove *.log files older than this (0 disables)")
	logsPurgeCmd.Flags().Int64Var(&purgeMaxSize, "max-size", 0, "remove *.log files larger than this many bytes (0 disables)")
}

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Manage log files",
}

var logsPurgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Remove stale or oversized *.log files",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := purgeDir
		if dir == "" {
			d, err := config.LogDir()
			if err != nil {
				return err
			}
			dir = d
		}
		removed, err := reporter.PurgeDir(dir, purgeMaxAge, purgeMaxSize)
		if err != nil {
			return err
		}
		for _, p := range removed {
			fmt.Println(p)
		}
		fmt.Printf("removed %d file(s) from %s\n", len(removed), dir)
		return nil
	},
}
