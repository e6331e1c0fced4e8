package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mbroemme/fbctrl/internal/action"
	"github.com/mbroemme/fbctrl/internal/config"
	"github.com/mbroemme/fbctrl/internal/logging"
	"github.com/mbroemme/fbctrl/internal/output"
	"github.com/mbroemme/fbctrl/internal/types"
	"github.com/mbroemme/fbctrl/internal/x11"
)

var (
	// set at build time with -ldflags
	version = "0.2.0"
	release = "(rolling)"
)

var (
	configPath  string
	displayName string
	jsonOutput  bool
	noColor     bool
	debugMode   bool
	quietMode   bool

	acts actionFlags

	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr

	// settings is the merged view of config file and flags, filled in
	// before any command runs
	settings *config.Config
)

// actionFlags holds the action switches given on the command line
type actionFlags struct {
	nextWindow  bool
	prevWindow  bool
	nextDesktop bool
	prevDesktop bool
}

// selected returns the requested actions in execution order
func (f actionFlags) selected() []types.Action {
	var out []types.Action
	if f.nextWindow {
		out = append(out, types.WindowNext)
	}
	if f.prevWindow {
		out = append(out, types.WindowPrev)
	}
	if f.nextDesktop {
		out = append(out, types.DesktopNext)
	}
	if f.prevDesktop {
		out = append(out, types.DesktopPrev)
	}
	return out
}

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "fbctrl",
	Short: "Set focus on another window or desktop",
	Long: `fbctrl asks an EWMH or GNOME compliant window manager to activate the
next or previous window on the active desktop, or to switch to the next or
previous desktop.`,
	Example:           "  fbctrl --next-window",
	Version:           version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE: func(cmd *cobra.Command, args []string) error {
		d := action.NewDispatcher(connector(settings), action.Options{
			Actions: acts.selected(),
			Quiet:   settings.Quiet,
			Table:   settings.Table(),
		})
		err := d.RunAll(cmd.Context(), newPrinter())
		if err != nil && !errors.Is(err, action.ErrNoAction) {
			return &reportedError{err: err}
		}
		return err
	},
}

// setup loads the configuration, applies flag overrides and starts logging
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}
	return start(cmd, cfg)
}

func start(cmd *cobra.Command, cfg *config.Config) error {
	settings = mergeFlags(cfg, cmd)

	if !settings.Color {
		color.NoColor = true
	}

	if err := logging.Init(logging.Options{Debug: settings.Debug, File: settings.LogFile}); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	logging.Debug().
		Str("config", configPath).
		Str("display", settings.Display).
		Bool("legacy", settings.LegacyFallback).
		Msg("configuration loaded")
	return nil
}

// mergeFlags returns cfg with explicitly given flags applied on top
func mergeFlags(cfg *config.Config, cmd *cobra.Command) *config.Config {
	merged := *cfg
	flags := cmd.Flags()

	if flags.Changed("debug") {
		merged.Debug = debugMode
	}
	if flags.Changed("quiet") {
		merged.Quiet = quietMode
	}
	if flags.Changed("no-color") {
		merged.Color = !noColor
	}
	if flags.Changed("display") {
		merged.Display = displayName
	}
	// results are machine readable, colors would corrupt them
	if jsonOutput {
		merged.Color = false
	}
	return &merged
}

func connector(cfg *config.Config) action.Connector {
	return func() (action.Conn, error) {
		return openDisplay(cfg)
	}
}

func openDisplay(cfg *config.Config) (*x11.Connection, error) {
	conn := x11.NewConnection(cfg.Display, cfg.MaxPropertyLength)
	if err := conn.Connect(); err != nil {
		return nil, err
	}
	return conn, nil
}

func newPrinter() *output.Printer {
	p := &output.Printer{Out: stdout, Err: stderr, JSON: jsonOutput}
	if settings != nil {
		p.Color = settings.Color
	} else {
		p.Color = !noColor
	}
	return p
}

func init() {
	rootCmd.Flags().BoolVarP(&acts.nextWindow, "next-window", "n", false, "switch to next window on active desktop")
	rootCmd.Flags().BoolVarP(&acts.prevWindow, "prev-window", "p", false, "switch to previous window on active desktop")
	rootCmd.Flags().BoolVar(&acts.nextDesktop, "next-desktop", false, "switch to next workspace on active screen")
	rootCmd.Flags().BoolVar(&acts.prevDesktop, "prev-desktop", false, "switch to previous workspace on active screen")

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&debugMode, "debug", "d", false, "shows many debug information")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "shows nothing")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.config/fbctrl/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&displayName, "display", "", "X display to connect to (default $DISPLAY)")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{msg: unrecognized(err)}
	})
	rootCmd.SetVersionTemplate(versionText())
	setRootHelp(rootCmd)

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(desktopsCmd)
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)

	listCmd.Flags().StringVarP(&outputFormat, "output", "o", "table", "Output format: table, json, yaml")
	desktopsCmd.Flags().StringVarP(&outputFormat, "output", "o", "table", "Output format: table, json, yaml")
	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing config file")
}

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes the command line and returns the exit status
func run(args []string) int {
	defer logging.Close()

	rootCmd.SetArgs(args)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	name := programName()
	var uerr *usageError
	var rerr *reportedError
	switch {
	case errors.Is(err, action.ErrNoAction):
		fmt.Fprintf(stderr, "%s: %v\n", name, err)
		fmt.Fprintf(stderr, "Try `%s --help' for more information.\n", name)
	case errors.As(err, &uerr):
		fmt.Fprintf(stderr, "%s: %s\n", name, uerr.msg)
		fmt.Fprintf(stderr, "Try `%s --help' for more information.\n", name)
	case errors.As(err, &rerr):
		// printed as they happened
	default:
		newPrinter().PrintError(err.Error())
	}
	return 1
}

func programName() string {
	return filepath.Base(os.Args[0])
}
