package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/consolekit/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available programs",
	Long:  `Shows a list of all programs registered in consolekit.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	programs := registry.List()

	if len(programs) == 0 {
		fmt.Println("No programs available.")
		return
	}

	fmt.Println("Available programs:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, p := range programs {
		if len(p.ID) > maxIDLen {
			maxIDLen = len(p.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, p := range programs {
		title := p.Title
		if p.Info {
			title += " (picker)"
		}
		fmt.Printf("  %-*s  %s\n", maxIDLen, p.ID, title)
	}

	fmt.Println()
	fmt.Println("Run 'consolekit run <id>' to start a program.")
}
