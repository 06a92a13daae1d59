package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate play statistics",
	Run:   runStats,
}

func runStats(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening sessions database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	stats, err := store.GetStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving statistics: %v\n", err)
		os.Exit(1)
	}

	if stats.SessionCount == 0 {
		fmt.Println("No sessions recorded yet.")
		return
	}

	fmt.Println("Play Statistics")
	fmt.Println()
	fmt.Printf("  Sessions played:  %d\n", stats.SessionCount)
	fmt.Printf("  Best length:      %d\n", stats.BestLength)
	fmt.Printf("  Average length:   %.1f\n", stats.AvgLength)
	fmt.Printf("  Total turns:      %d\n", stats.TotalTurns)
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("  Last played:      %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}
}
