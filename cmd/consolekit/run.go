package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/consolekit/internal/config"
	"github.com/vovakirdan/consolekit/internal/core"
	"github.com/vovakirdan/consolekit/internal/layout"
	"github.com/vovakirdan/consolekit/internal/palette"
	"github.com/vovakirdan/consolekit/internal/platform/tcelldrv"
	"github.com/vovakirdan/consolekit/internal/platform/tui"
	"github.com/vovakirdan/consolekit/internal/registry"
	"github.com/vovakirdan/consolekit/internal/storage"
	"github.com/vovakirdan/consolekit/internal/ui"
)

var runCmd = &cobra.Command{
	Use:   "run <id|file.yaml>",
	Short: "Run a program or a layout file",
	Long: `Run a registered program or a parent window layout loaded from YAML.

Controls (defaults, layouts may change them):
  Tab        - Move focus to the next window
  Enter      - Commit edit boxes to their sinks
  Esc        - Close the parent window
  Mouse drag - Move the parent window by its border
  Ctrl+S     - Save a screenshot (tea driver)
  Ctrl+C     - Quit

Pickers print the selected character, colours, flags or data on exit.

Examples:
  consolekit run demo
  consolekit run charset
  consolekit run ./layouts/form.yaml
  consolekit run demo --driver tcell --delay 30`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func runRun(_ *cobra.Command, args []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	width, height := terminalSize()
	info, picker, err := runProgram(args[0], store, width, height)
	if err != nil {
		return err
	}
	if picker {
		fmt.Printf("Selection: %s\n", palette.Decode(info))
	}
	return nil
}

// runProgram builds target and runs it with the configured driver. It
// reports whether target is a picker.
func runProgram(target string, store *storage.Store, width, height int) ([]byte, bool, error) {
	back := core.NewSurface(width, height)
	env := layout.Env{Backdrop: ui.BorrowedBackdrop(back)}
	if store != nil {
		env.Sink = store.Sink
	}

	pw, picker, err := buildTarget(target, env)
	if err != nil {
		return nil, false, err
	}
	defer pw.Close()
	cfg.Apply(pw)

	logger, closeLog := newLogger()
	defer closeLog()

	var info []byte
	switch cfg.Driver {
	case config.DriverTcell:
		info, err = runTcell(pw, logger)
	default:
		info, err = tui.Run(pw, tui.Options{
			Name:   filepath.Base(target),
			Width:  width,
			Height: height,
			Back:   back,
			Logger: logger,
		})
	}
	if err != nil {
		return nil, picker, fmt.Errorf("running %s: %w", target, err)
	}
	return info, picker, nil
}

// buildTarget resolves a program ID or a layout file.
func buildTarget(target string, env layout.Env) (*ui.ParentWindow, bool, error) {
	if p, err := registry.Lookup(target); err == nil {
		pw, err := registry.Create(target, env)
		return pw, p.Info, err
	}
	if ext := filepath.Ext(target); ext == ".yaml" || ext == ".yml" {
		def, err := layout.Load(target)
		if err != nil {
			return nil, false, err
		}
		pw, err := layout.Build(def, env)
		return pw, false, err
	}
	return nil, false, fmt.Errorf("unknown program %q (run 'consolekit list' to see available programs)", target)
}

// runTcell runs pw on a tcell screen until it closes or the process is
// interrupted.
func runTcell(pw *ui.ParentWindow, logger *log.Logger) ([]byte, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("cannot create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("cannot init screen: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return tcelldrv.New(screen, logger).Run(ctx, pw)
}
