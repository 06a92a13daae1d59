package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default config should validate: %v", err)
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}

	want := Default()
	if cfg.Board != want.Board {
		t.Errorf("Embedded board config = %+v, expected %+v", cfg.Board, want.Board)
	}
	if cfg.Display != want.Display {
		t.Errorf("Embedded display config = %+v, expected %+v", cfg.Display, want.Display)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")

	data := "board:\n  size: 15\n  initial_length: 5\ndisplay:\n  empty: \"-\"\n  snake: \"o\"\n  food: \"*\"\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}

	if cfg.Board.Size != 15 || cfg.Board.InitialLength != 5 {
		t.Errorf("Board config = %+v, expected size 15 length 5", cfg.Board)
	}
	if cfg.Display.SnakeRune() != 'o' || cfg.Display.FoodRune() != '*' {
		t.Errorf("Display glyphs not loaded: %+v", cfg.Display)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Error("Load with missing custom path should fail")
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []Config{
		{Board: BoardConfig{Size: 0, InitialLength: 3}, Display: Default().Display},
		{Board: BoardConfig{Size: 10, InitialLength: 0}, Display: Default().Display},
		{Board: BoardConfig{Size: 10, InitialLength: 3}},
	}

	for i, cfg := range cases {
		if err := cfg.Validate(); err == nil {
			t.Errorf("case %d: Validate() should fail for %+v", i, cfg)
		}
	}
}

func TestDisplayRuneFallbacks(t *testing.T) {
	var d DisplayConfig
	if d.EmptyRune() != '.' || d.SnakeRune() != 'S' || d.FoodRune() != 'F' {
		t.Error("Empty display config should fall back to default glyphs")
	}
}
