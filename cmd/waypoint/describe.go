package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/phanxgames/waypoint"
)

var describeCmd = &cobra.Command{
	Use:   "describe FILE",
	Short: "Render a tour file as a readable document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := waypoint.LoadTourFile(args[0])
		if err != nil {
			return err
		}
		md := describeMarkdown(f)
		if raw, _ := cmd.Flags().GetBool("raw"); raw {
			fmt.Fprint(cmd.OutOrStdout(), md)
			return nil
		}
		r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
		if err != nil {
			return fmt.Errorf("create renderer: %w", err)
		}
		out, err := r.Render(md)
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	describeCmd.Flags().Bool("raw", false, "Print markdown without terminal styling")
	rootCmd.AddCommand(describeCmd)
}

// describeMarkdown lists every tour with one table row per step.
func describeMarkdown(f *waypoint.TourFile) string {
	var b strings.Builder
	for i, name := range f.Names() {
		t := f.Tours[name]
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "# %s\n\n", name)
		delay := waypoint.DefaultStartDelay
		if t.StartDelay != nil {
			delay = *t.StartDelay
		}
		fmt.Fprintf(&b, "Namespace `%s`, first step after %s.\n\n", t.Namespace, delay)
		b.WriteString("| # | Tag | Edge | Touch | Text |\n")
		b.WriteString("|---|-----|------|-------|------|\n")
		for j, s := range t.Steps {
			edge, _ := waypoint.ParseEdge(s.Edge)
			text := strings.ReplaceAll(s.Text, "|", `\|`)
			if s.OK {
				text += " *(Ok!)*"
			}
			fmt.Fprintf(&b, "| %d | `%s` | %s | %s | %s |\n",
				j+1, t.Tag(s.Name).Key(), edge, s.TouchPolicy(), text)
		}
	}
	return b.String()
}
