package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists every preset from slowest to fastest.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset accepts "" as normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (easy, normal, hard, fixed)", s)
	}
}

// ApplyPreset adjusts the speed ramp for a preset. Normal leaves the config
// untouched; fixed keeps the initial speed for the whole game.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Speed.InitialMS = 150
		cfg.Speed.StepMS = 5
		cfg.Speed.FloorMS = 80
	case DifficultyHard:
		cfg.Speed.InitialMS = 80
		cfg.Speed.StepMS = 10
		cfg.Speed.FloorMS = 40
	case DifficultyFixed:
		cfg.Speed.StepMS = 0
		cfg.Speed.FloorMS = cfg.Speed.InitialMS
	}
}
