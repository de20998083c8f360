package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/consolekit/internal/layout"
	"github.com/vovakirdan/consolekit/internal/ui"
)

var checkCmd = &cobra.Command{
	Use:   "check <file.yaml>...",
	Short: "Validate layout files",
	Long: `Parse each layout file and make its parent window without running it.
Reports geometry, focus, colour, key and receiver errors.

Examples:
  consolekit check ./layouts/form.yaml
  consolekit check layouts/*.yaml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func runCheck(_ *cobra.Command, args []string) error {
	failed := 0
	for _, file := range args {
		def, err := layout.Load(file)
		if err == nil {
			var pw *ui.ParentWindow
			if pw, err = layout.Build(def, layout.Env{}); err == nil {
				pw.Close()
			}
		}
		if err != nil {
			failed++
			fmt.Printf("FAIL  %s: %v\n", file, err)
			continue
		}
		fmt.Printf("ok    %s (%s, %d windows)\n", file, def.Name, len(def.Windows))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d layouts failed", failed, len(args))
	}
	return nil
}
