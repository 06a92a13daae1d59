package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagPlain  bool
	flagRecent bool
	flagReset  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Browse recorded session history",
	Long: `Display recorded game sessions, best first.

By default an interactive table opens; use --plain for plain text
output suitable for piping.

Examples:
  snake scores
  snake scores --plain
  snake scores --plain --recent
  snake scores --reset`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print plain text instead of the interactive table")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Order by date instead of length (implies --plain)")
	scoresCmd.Flags().BoolVar(&flagReset, "reset", false, "Delete all recorded sessions")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening sessions database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagReset {
		if err := store.ClearSessions(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing sessions: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("All sessions cleared.")
		return
	}

	if flagPlain || flagRecent {
		printSessions(store)
		return
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if _, err := tui.RunScoreboard(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error showing scoreboard: %v\n", err)
		os.Exit(1)
	}
}

func printSessions(store *storage.Store) {
	var (
		sessions []storage.SessionEntry
		err      error
	)
	if flagRecent {
		sessions, err = store.RecentSessions(20)
	} else {
		sessions, err = store.TopSessions(10)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Session History")
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Play 'snake play' to record the first one!")
		return
	}

	fmt.Printf("  %-4s  %-7s  %-6s  %-7s  %-15s  %s\n", "Rank", "Length", "Turns", "Board", "Outcome", "Date")
	fmt.Printf("  %-4s  %-7s  %-6s  %-7s  %-15s  %s\n", "----", "------", "-----", "-----", "-------", "----")

	for i, e := range sessions {
		dateStr := e.CreatedAt.Format("2006-01-02 15:04")
		board := fmt.Sprintf("%dx%d", e.BoardSize, e.BoardSize)
		fmt.Printf("  %-4d  %-7d  %-6d  %-7s  %-15s  %s\n", i+1, e.FinalLength, e.Turns, board, e.EndReason, dateStr)
	}

	fmt.Println()
	best, err := store.BestLength()
	if err == nil {
		fmt.Printf("Best: %d\n", best)
	}
}
