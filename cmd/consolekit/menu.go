package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/consolekit/internal/palette"
	"github.com/vovakirdan/consolekit/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start consolekit with a program picker menu",
	Long: `Start consolekit in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to run a program.
After a program closes, you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Run program
  Tab          - Browse committed entries
  Q            - Quit

Examples:
  consolekit menu
  consolekit menu --driver tcell
  consolekit menu --db ./entries.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	store := openStore()
	var entries tui.EntrySource
	if store != nil {
		entries = store
	}

	var selections []string
	for {
		width, height := terminalSize()

		result, err := tui.RunMenu(width, height)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}
		if result.Quit {
			break
		}

		if result.WantsEntries {
			if err := tui.RunEntries(entries, width, height); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			continue
		}

		info, picker, err := runProgram(result.ProgramID, store, width, height)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		if picker {
			selections = append(selections, fmt.Sprintf("%s: %s", result.ProgramID, palette.Decode(info)))
		}
	}

	if store != nil {
		store.Close()
	}
	for _, s := range selections {
		fmt.Println(s)
	}
}
