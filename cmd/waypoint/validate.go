package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/phanxgames/waypoint"
)

var validateCmd = &cobra.Command{
	Use:   "validate FILE...",
	Short: "Check tour files for errors",
	Long:  `Parses each tour file and reports unknown edges, unknown touch policies, duplicate or unnamed steps and empty tours.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger(cmd)
		if err != nil {
			return err
		}
		failed := 0
		for _, path := range args {
			if err := validateFile(cmd.OutOrStdout(), path); err != nil {
				logger.Error("invalid tour file", "path", path, "error", err)
				failed++
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d tour files are invalid", failed, len(args))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func validateFile(w io.Writer, path string) error {
	f, err := waypoint.LoadTourFile(path)
	if err != nil {
		return err
	}
	for _, name := range f.Names() {
		t := f.Tours[name]
		fmt.Fprintf(w, "%s: tour %q ok (%d steps)\n", path, name, len(t.Steps))
	}
	return nil
}
