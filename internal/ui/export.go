package ui

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/weekgrid/internal/export"
)

func (a *App) exportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a week as an iCalendar file",
		Long: `Write every filled slot of a week as a one-hour event in iCalendar
(.ics) format. Without -o the calendar goes to stdout.

Example:
  weekgrid export --week 2026-10-12 -o week.ics`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			week, grid, err := a.loadWeek(cmd.Context())
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if output != "" && output != "-" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("creating %s: %w", output, err)
				}
				defer func() { _ = f.Close() }()
				w = f
			}

			if err := export.Write(w, week, grid, a.now()); err != nil {
				return err
			}

			log.WithFields(log.Fields{
				"week":   week.String(),
				"events": grid.FilledCount(),
				"output": output,
			}).Info("exported week")
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")
	return cmd
}
