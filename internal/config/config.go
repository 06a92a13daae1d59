// Package config provides YAML-based configuration loading for the
// snake game.
package config

import "fmt"

// Config contains all configuration for the game.
type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Display DisplayConfig `yaml:"display"`
}

// BoardConfig defines the simulation parameters.
type BoardConfig struct {
	Size          int `yaml:"size"`           // Side length of the square board
	InitialLength int `yaml:"initial_length"` // Starting snake length
}

// DisplayConfig defines the glyphs the renderer uses.
type DisplayConfig struct {
	Empty string `yaml:"empty"` // Empty cell marker
	Snake string `yaml:"snake"` // Snake segment marker
	Food  string `yaml:"food"`  // Food marker
}

// Validate checks that the configuration can drive a simulation.
func (c Config) Validate() error {
	if c.Board.Size <= 0 {
		return fmt.Errorf("config: board size must be positive, got %d", c.Board.Size)
	}
	if c.Board.InitialLength <= 0 {
		return fmt.Errorf("config: initial length must be positive, got %d", c.Board.InitialLength)
	}
	if c.Display.Empty == "" || c.Display.Snake == "" || c.Display.Food == "" {
		return fmt.Errorf("config: display glyphs must not be empty")
	}
	return nil
}

// EmptyRune returns the empty cell glyph as a rune.
func (d DisplayConfig) EmptyRune() rune {
	return firstRune(d.Empty, '.')
}

// SnakeRune returns the snake segment glyph as a rune.
func (d DisplayConfig) SnakeRune() rune {
	return firstRune(d.Snake, 'S')
}

// FoodRune returns the food glyph as a rune.
func (d DisplayConfig) FoodRune() rune {
	return firstRune(d.Food, 'F')
}

func firstRune(s string, fallback rune) rune {
	for _, r := range s {
		return r
	}
	return fallback
}
