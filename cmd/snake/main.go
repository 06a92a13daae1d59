// snake is a terminal snake game played one turn at a time on a
// wrap-around board.
//
// Usage:
//
//	snake play               - Play in the current terminal
//	snake scores             - Browse session history
//	snake stats              - Show aggregate play statistics
//	snake serve              - Start SSH server for remote play
//
// Global flags:
//
//	--db <path>     - Set database path (default: ~/.snake/sessions.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var flagDBPath string

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Turn-by-turn snake on a wrap-around board",
	Long: `Snake is a terminal game played on a square board whose edges wrap
around. Nothing moves on its own: each key press advances the game by
exactly one turn, so you can think as long as you like.

Available commands:
  play     - Play in the current terminal
  scores   - Browse recorded session history
  stats    - Show aggregate play statistics
  serve    - Start SSH server for remote play

Examples:
  snake play
  snake play --size 15 --length 4
  snake scores
  snake serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snake/sessions.db", "Path to sessions database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(serveCmd)
}
