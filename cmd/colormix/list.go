package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/colormix/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all puzzle types",
	Long:  `Shows every registered puzzle type with its mixing mode and curated level count.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	types := registry.List()

	if len(types) == 0 {
		fmt.Println("No puzzle types available.")
		return
	}

	fmt.Println("Puzzle types:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, t := range types {
		if len(t.ID) > maxIDLen {
			maxIDLen = len(t.ID)
		}
	}

	fmt.Printf("  %-*s  %-11s  %-7s  %s\n", maxIDLen, "ID", "Mixing", "Curated", "Title")
	fmt.Printf("  %-*s  %-11s  %-7s  %s\n", maxIDLen, "--", "------", "-------", "-----")

	for _, t := range types {
		fmt.Printf("  %-*s  %-11s  %-7d  %s\n", maxIDLen, t.ID, t.MixMode, t.Curated, t.Title)
		fmt.Printf("  %-*s  %s\n", maxIDLen, "", t.Description)
	}

	fmt.Println()
	fmt.Println("Run 'colormix level <id> <n>' to generate a level.")
}
