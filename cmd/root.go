package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// CLI flags shared by all subcommands
	logLevel string // Log verbosity level
	logDir   string // Base directory holding (or receiving) event logs
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "summarylog",
	Short: "Append-only metric log recorder and reader for step-based computations",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (trace|debug|info|warn|error)")
	rootCmd.PersistentFlags().StringVar(&logDir, "dir", "summarylog-out", "Base directory for event logs")

	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(runCmd)
}
