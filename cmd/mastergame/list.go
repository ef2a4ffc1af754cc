package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mastergame/internal/config"
	"github.com/vovakirdan/mastergame/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows a list of all registered games and their config files.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available games:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	fmt.Printf("  %-*s  %-8s  %s\n", maxIDLen, "ID", "Title", "Config")
	fmt.Printf("  %-*s  %-8s  %s\n", maxIDLen, "--", "-----", "------")

	for _, g := range games {
		fmt.Printf("  %-*s  %-8s  %s\n", maxIDLen, g.ID, g.Title, config.FileName(g.ID))
	}

	fmt.Println()
	fmt.Println("Run 'mastergame init <id>' to write a config, then 'mastergame play <config>'.")
}
