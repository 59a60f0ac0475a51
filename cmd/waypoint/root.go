package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/phanxgames/waypoint/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "waypoint",
	Short: "Waypoint works with guided-tour files",
	Long:  `Waypoint validates YAML tour files, renders them as readable documents and previews them in a window.`,
	SilenceUsage: true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn or error")
}

// newLogger builds the command logger from the --log-level flag.
func newLogger(cmd *cobra.Command) (*slog.Logger, error) {
	s, err := cmd.Flags().GetString("log-level")
	if err != nil {
		return nil, err
	}
	level, err := logging.ParseLevel(s)
	if err != nil {
		return nil, err
	}
	return logging.New(level), nil
}
