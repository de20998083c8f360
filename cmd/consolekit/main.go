// consolekit runs window layouts in the terminal: the demo, the editor
// pickers and layouts loaded from YAML files.
//
// Usage:
//
//	consolekit list              - List available programs
//	consolekit run <id|file>     - Run a program or a layout file
//	consolekit menu              - Pick programs interactively
//	consolekit check <file>...   - Validate layout files
//	consolekit entries [window]  - Show committed edit box entries
//	consolekit serve             - Start SSH server for remote use
//
// Global flags:
//
//	--config <path>  - Config file (default: ~/.consolekit/config.yaml)
//	--delay <ms>     - Override the step delay of every parent window
//	--db <path>      - Entries database path
//	--driver <name>  - Terminal driver: tea or tcell
//	--log <path>     - Write engine diagnostics to a file
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/consolekit/internal/config"
	// Import programs to register them
	_ "github.com/vovakirdan/consolekit/internal/programs"
	"github.com/vovakirdan/consolekit/internal/storage"
)

var (
	// Global flags
	flagConfig string
	flagDelay  int
	flagDBPath string
	flagDriver string
	flagLog    string

	// cfg is loaded before every command runs.
	cfg config.Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "consolekit",
	Short: "consolekit - Windowed console layouts in your terminal",
	Long: `consolekit draws parent windows with movable borders, focusable child
windows, menus, edit boxes and message boxes in your terminal.

Available commands:
  list     - Show all available programs
  run      - Run a program or a layout file
  menu     - Interactive program picker
  check    - Validate layout files
  entries  - View committed edit box entries
  serve    - Start SSH server for remote use

Examples:
  consolekit list
  consolekit run demo
  consolekit run charset
  consolekit run ./my-layout.yaml --driver tcell
  consolekit entries notes`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagDelay, "delay", 0, "Step delay in milliseconds (overrides layouts)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to entries database")
	rootCmd.PersistentFlags().StringVar(&flagDriver, "driver", "", "Terminal driver: tea or tcell")
	rootCmd.PersistentFlags().StringVar(&flagLog, "log", "", "Write engine diagnostics to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(entriesCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig loads the config file and applies the flags that were set.
func loadConfig(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("delay") {
		loaded.DelayMS = flagDelay
	}
	if flags.Changed("db") {
		loaded.Storage.DB = flagDBPath
	}
	if flags.Changed("driver") {
		loaded.Driver = flagDriver
	}
	if err := loaded.Validate(); err != nil {
		return err
	}
	cfg = loaded
	return nil
}

// terminalSize returns the terminal size, falling back to the configured
// screen size.
func terminalSize() (int, int) {
	width, height := cfg.Screen.Width, cfg.Screen.Height
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return width, height
}

// openStore opens the entries database. A failure is reported and the
// caller continues without storage.
func openStore() *storage.Store {
	store, err := storage.Open(cfg.Storage.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open entries database: %v\n", err)
		return nil
	}
	return store
}

// newLogger returns the diagnostics logger and a close func. Without
// --log diagnostics are discarded, since the terminal belongs to the UI.
func newLogger() (*log.Logger, func()) {
	if flagLog == "" {
		return nil, func() {}
	}
	f, err := os.OpenFile(flagLog, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		return nil, func() {}
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
		Prefix:          "consolekit",
	})
	return logger, func() { f.Close() }
}
