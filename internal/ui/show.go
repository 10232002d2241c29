package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/weekgrid/internal/dateutil"
)

func (a *App) showCmd() *cobra.Command {
	var verbose bool
	var noColor bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print a week's notes",
		Long: `Print the filled slots of a week, grouped by day, without starting
the interactive grid.

Example:
  weekgrid show --week last-week`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}

			week, grid, err := a.loadWeek(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if grid.FilledCount() == 0 {
				_, _ = fmt.Fprintf(out, "No notes for week %s.\n", week)
				return nil
			}

			PrintWeek(out, week, grid, dateutil.CurrentWeek(a.now), PrintOpts{Verbose: verbose})
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show full notes")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}
