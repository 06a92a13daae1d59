package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagConfig string
	flagSize   int
	flagLength int
	flagSeed   int64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a game session in the current terminal.

Controls:
  W/Up       - Move up
  S/Down     - Move down
  A/Left     - Move left
  D/Right    - Move right
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Each key press advances the game by one turn. The board wraps around:
leaving one edge re-enters from the opposite one. Eating food grows the
snake; running into your own body ends the session.

Examples:
  snake play
  snake play --size 15
  snake play --size 20 --length 5
  snake play --seed 42
  snake play --config ./my-snake.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().IntVar(&flagSize, "size", 0, "Board size (overrides config)")
	playCmd.Flags().IntVar(&flagLength, "length", 0, "Initial snake length (overrides config)")
	playCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Flags override the config file
	if flagSize > 0 {
		cfg.Board.Size = flagSize
	}
	if flagLength > 0 {
		cfg.Board.InitialLength = flagLength
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := tui.Options{
		Game: snake.Config{
			BoardSize:     cfg.Board.Size,
			InitialLength: cfg.Board.InitialLength,
			Seed:          flagSeed,
		},
		Display: cfg.Display,
		ScreenW: width,
		ScreenH: height,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open sessions database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(opts, store)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
