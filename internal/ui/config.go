package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/weekgrid/internal/config"
	"github.com/javiermolinar/weekgrid/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	var edit bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Print the effective configuration (file, defaults and WEEKGRID_*
environment overrides) and the file it was read from.

With --edit, prompts for each value and saves the result.

Example:
  weekgrid config --edit`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := a.configPath
			if path == "" {
				path = config.DefaultConfigPath()
			}
			out := cmd.OutOrStdout()

			_, _ = fmt.Fprintf(out, "Config file: %s", path)
			if _, err := os.Stat(path); os.IsNotExist(err) {
				_, _ = fmt.Fprint(out, " (not found, using defaults)")
			}
			_, _ = fmt.Fprint(out, "\n\n")
			printConfig(out, a.config)

			if !edit {
				return nil
			}
			return runConfigInteractive(bufio.NewReader(cmd.InOrStdin()), out, a.config, path)
		},
	}

	cmd.Flags().BoolVar(&edit, "edit", false, "Edit the configuration interactively")
	return cmd
}

func runConfigInteractive(reader *bufio.Reader, out io.Writer, cfg *config.Config, path string) error {
	_, _ = fmt.Fprintln(out)

	cfg.Storage.Dir = promptValue(reader, out, "Storage directory", cfg.Storage.Dir)
	cfg.Storage.Backend = strings.ToLower(promptValue(reader, out, "Storage backend (json, sqlite)", cfg.Storage.Backend))
	cfg.Storage.DBPath = promptValue(reader, out, "Database path", cfg.Storage.DBPath)
	cfg.UI.Theme = promptTheme(reader, out, cfg.UI.Theme)
	cfg.Log.Level = promptValue(reader, out, "Log level", cfg.Log.Level)

	// Validate before saving
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := cfg.SaveTo(path); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	_, _ = fmt.Fprintln(out, "\nConfiguration saved!")
	return nil
}

func printConfig(out io.Writer, cfg *config.Config) {
	_, _ = fmt.Fprintln(out, "Current configuration:")
	_, _ = fmt.Fprintln(out, "──────────────────────")
	_, _ = fmt.Fprintln(out, "[storage]")
	_, _ = fmt.Fprintf(out, "  dir              = %s\n", cfg.Storage.Dir)
	_, _ = fmt.Fprintf(out, "  backend          = %s\n", cfg.Storage.Backend)
	if cfg.Storage.Backend == config.BackendSQLite {
		_, _ = fmt.Fprintf(out, "  db_path          = %s\n", cfg.Storage.DBPath)
	}
	_, _ = fmt.Fprintln(out, "\n[ui]")
	_, _ = fmt.Fprintf(out, "  theme            = %s\n", cfg.UI.Theme)
	_, _ = fmt.Fprintln(out, "\n[log]")
	_, _ = fmt.Fprintf(out, "  level            = %s\n", cfg.Log.Level)
}

func promptValue(reader *bufio.Reader, out io.Writer, label, current string) string {
	if current == "" {
		_, _ = fmt.Fprintf(out, "  %s: ", label)
	} else {
		_, _ = fmt.Fprintf(out, "  %s [%s]: ", label, current)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	return input
}

// promptTheme asks until a known theme is given. Running out of input keeps
// the current value.
func promptTheme(reader *bufio.Reader, out io.Writer, current string) string {
	options := strings.Join(theme.Available(), ", ")
	label := fmt.Sprintf("UI theme (%s)", options)
	for {
		value := strings.ToLower(promptValue(reader, out, label, current))
		if theme.IsAvailable(value) {
			return value
		}
		_, _ = fmt.Fprintf(out, "  Invalid theme %q. Available: %s\n", value, options)
		if _, err := reader.Peek(1); err != nil {
			return current
		}
	}
}
