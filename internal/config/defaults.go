package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Board: Board{
			Width:  480,
			Height: 270,
			Cell:   15,
		},
		Snake: SnakeConfig{
			StartLength: 5,
			StartColor:  "#800080",
		},
		Speed: Speed{
			InitialMS: 100,
			StepMS:    10,
			FloorMS:   50,
		},
		Input: Input{
			ResetDebounceMS: 100,
			PauseDebounceMS: 400,
			IdlePollMS:      10,
		},
		Player: "Player",
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
