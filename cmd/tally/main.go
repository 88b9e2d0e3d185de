// tally is a terminal habit tracker: counters with daily goals and binary
// toggles, tracked per calendar date and drawn as a card grid.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tally/cmd/tally/ui"
	"tally/internal/config"
	"tally/internal/logging"
	"tally/internal/registry"
)

var (
	// Global flags
	configPath string
	dataPath   string
	verbose    bool
)

// rootCmd starts the interactive TUI when no subcommand is given.
var rootCmd = &cobra.Command{
	Use:   "tally",
	Short: "tally - a terminal habit tracker",
	Long: `tally records daily progress toward quantitative and binary habits
and shows the history as a navigable card grid (day/month/year views).

Run without arguments to open the interactive interface.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

// setup loads config and the habit registry; shared by every command.
func setup() (config.Config, *registry.Registry, error) {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, nil, err
	}
	if dataPath != "" {
		cfg.DataFile = dataPath
	}

	if err := logging.Initialize(filepath.Dir(cfg.DataFile), verbose); err != nil {
		// Logging is best-effort; the tracker still works without it.
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}

	reg, err := registry.Load(cfg.DataFile)
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, reg, nil
}

func runTUI() error {
	cfg, reg, err := setup()
	if err != nil {
		return err
	}
	defer logging.Sync()

	app := ui.NewApp(reg, cfg)
	program := tea.NewProgram(app, tea.WithAltScreen())

	// Pick up external edits to the data file while the TUI runs.
	closer, err := registry.Watch(cfg.DataFile, func() {
		program.Send(ui.ReloadMsg{})
	})
	if err != nil {
		logging.L().Warn("data file watch unavailable", zap.Error(err))
	} else {
		defer closer.Close()
	}

	_, err = program.Run()
	return err
}

func main() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/tally/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "", "habits data file (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(trackCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
