package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the known presets in ascending difficulty.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// ParsePreset resolves a preset name. An empty name means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", name)
	}
}

// presetOverrides returns the config subtree a preset replaces.
// Normal changes nothing.
func presetOverrides(preset DifficultyPreset) map[string]any {
	switch preset {
	case DifficultyEasy:
		return map[string]any{
			"enemy_count": 4,
			"timing": map[string]any{
				"enemy_shot_interval_sec": 3.0,
				"laser_reload_sec":        0.35,
			},
		}
	case DifficultyHard:
		return map[string]any{
			"enemy_count": 10,
			"timing": map[string]any{
				"enemy_shot_interval_sec": 1.2,
				"laser_reload_sec":        0.7,
			},
		}
	default:
		return nil
	}
}
