package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mbroemme/fbctrl/internal/config"
	"github.com/mbroemme/fbctrl/internal/desktop"
	"github.com/mbroemme/fbctrl/internal/logging"
	"github.com/mbroemme/fbctrl/internal/output"
	"github.com/mbroemme/fbctrl/internal/types"
	"github.com/mbroemme/fbctrl/internal/workspace"
)

var (
	outputFormat string
	forceInit    bool

	successColor = color.New(color.FgGreen, color.Bold)
)

// reportFormat resolves --output, with --json taking precedence
func reportFormat() (output.Format, error) {
	if jsonOutput {
		return output.FormatJSON, nil
	}
	return output.ParseFormat(outputFormat)
}

// listCmd lists the windows of the active desktop in cycling order
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List windows on the active desktop",
	Long: `Lists the windows on the active desktop in the order --next-window
cycles through them. The active window is marked.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := reportFormat()
		if err != nil {
			return err
		}

		conn, err := openDisplay(settings)
		if err != nil {
			return fmt.Errorf("cannot open display: %w", err)
		}
		defer conn.Close()

		ws, err := workspace.NewEnumerator(settings.Table()).Enumerate(conn)
		if err != nil {
			return err
		}

		report := ws.Report(func(w types.Window) string {
			title, err := conn.WindowTitle(w)
			if err != nil {
				logging.Debug().Stringer("window", w).Err(err).Msg("no title")
				return ""
			}
			return title
		})

		switch format {
		case output.FormatJSON:
			return output.PrintJSON(stdout, report)
		case output.FormatYAML:
			return output.PrintYAML(stdout, report)
		}

		if len(report.Windows) == 0 {
			fmt.Fprintf(stdout, "No windows on Desktop ID: %d\n", ws.Desktop.Signed())
			return nil
		}
		output.PrintWorkspaceTable(stdout, report, output.TerminalWidth(os.Stdout))
		return nil
	},
}

// desktopsCmd shows the desktop state
var desktopsCmd = &cobra.Command{
	Use:   "desktops",
	Short: "Show the active desktop and the desktop count",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := reportFormat()
		if err != nil {
			return err
		}

		conn, err := openDisplay(settings)
		if err != nil {
			return fmt.Errorf("cannot open display: %w", err)
		}
		defer conn.Close()

		report, err := desktop.NewResolver(settings.Table()).Describe(conn)
		if err != nil {
			return err
		}

		switch format {
		case output.FormatJSON:
			return output.PrintJSON(stdout, report)
		case output.FormatYAML:
			return output.PrintYAML(stdout, report)
		}
		output.PrintDesktopTable(stdout, report)
		return nil
	},
}

// configCmd groups the config subcommands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

// configShowCmd prints the effective configuration
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if jsonOutput {
			return output.PrintJSON(stdout, settings)
		}
		return output.PrintYAML(stdout, settings)
	},
}

// configInitCmd writes a default configuration file
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create default configuration file",
	Args:  cobra.NoArgs,
	// the file may not exist yet
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return start(cmd, config.Default())
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			path = config.GetConfigPath()
		}

		if err := config.WriteDefault(path, forceInit); err != nil {
			return err
		}

		if !settings.Quiet {
			successColor.Fprintf(stdout, "✓ Created config file at %s\n", path)
		}
		return nil
	},
}
