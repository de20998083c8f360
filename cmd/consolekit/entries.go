package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/consolekit/internal/platform/tui"
	"github.com/vovakirdan/consolekit/internal/storage"
)

var (
	flagEntriesLimit  int
	flagEntriesBrowse bool
	flagEntriesClear  bool
)

var entriesCmd = &cobra.Command{
	Use:   "entries [window]",
	Short: "Show committed edit box entries",
	Long: `Display the values edit boxes committed to the entries database.
Edit boxes name their sink in the layout (edit.sink); that name is the window.

Without a window, lists every window with its entry count.

Examples:
  consolekit entries
  consolekit entries notes --limit 5
  consolekit entries --browse
  consolekit entries notes --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEntries,
}

func init() {
	entriesCmd.Flags().IntVar(&flagEntriesLimit, "limit", 10, "Number of entries to show")
	entriesCmd.Flags().BoolVar(&flagEntriesBrowse, "browse", false, "Open the interactive entries browser")
	entriesCmd.Flags().BoolVar(&flagEntriesClear, "clear", false, "Delete the entries of the window")
}

func runEntries(_ *cobra.Command, args []string) error {
	store, err := storage.Open(cfg.Storage.DB)
	if err != nil {
		return fmt.Errorf("opening entries database: %w", err)
	}
	defer store.Close()

	if flagEntriesBrowse {
		width, height := terminalSize()
		return tui.RunEntries(store, width, height)
	}

	if len(args) == 0 {
		return printWindows(store)
	}

	window := args[0]
	if flagEntriesClear {
		if err := store.ClearWindow(window); err != nil {
			return err
		}
		fmt.Printf("Cleared entries of %s\n", window)
		return nil
	}

	entries, err := store.Recent(window, flagEntriesLimit)
	if err != nil {
		return err
	}

	fmt.Printf("Entries - %s\n", window)
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No entries recorded yet.")
		return nil
	}

	fmt.Printf("  %-6s  %-6s  %-16s  %s\n", "ID", "Type", "Date", "Value")
	fmt.Printf("  %-6s  %-6s  %-16s  %s\n", "--", "----", "----", "-----")
	for _, e := range entries {
		fmt.Printf("  %-6d  %-6s  %-16s  %s\n", e.ID, e.Type, e.CreatedAt.Format("2006-01-02 15:04"), e.Value())
	}
	return nil
}

func printWindows(store *storage.Store) error {
	windows, err := store.Windows()
	if err != nil {
		return err
	}
	if len(windows) == 0 {
		fmt.Println("No entries recorded yet.")
		fmt.Println()
		fmt.Println("Confirm an edit box in 'consolekit run demo' to save the first one!")
		return nil
	}

	fmt.Printf("  %-16s  %-6s  %s\n", "Window", "Count", "Last")
	fmt.Printf("  %-16s  %-6s  %s\n", "------", "-----", "----")
	for _, w := range windows {
		fmt.Printf("  %-16s  %-6d  %s\n", w.Window, w.Count, w.Last.Format("2006-01-02 15:04"))
	}
	return nil
}
