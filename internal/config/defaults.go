package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Size:          10,
			InitialLength: 3,
		},
		Display: DisplayConfig{
			Empty: ".",
			Snake: "S",
			Food:  "F",
		},
	}
}
