package config

import (
	_ "embed"
)

//go:embed defaults/martians.yaml
var defaultYAML []byte

// DefaultYAML returns a copy of the embedded default configuration file.
func DefaultYAML() []byte {
	out := make([]byte, len(defaultYAML))
	copy(out, defaultYAML)
	return out
}

// DefaultConfig returns the default martians configuration.
// It mirrors defaults/martians.yaml.
func DefaultConfig() Config {
	return Config{
		FramesPerSecond: 10,
		DefaultHealth:   5,
		PlayerHealthMax: 5,
		EnemyCount:      6,
		Timing: TimingConfig{
			LaserReloadSec:       0.5,
			GracePeriodSec:       3,
			EnemyShotIntervalSec: 2,
		},
		Speeds: SpeedConfig{
			Player:     0.5,
			Enemy:      0.7,
			EnemyDrift: 0.05,
			Laser:      1.5,
			Rocket:     1,
			Bomb:       1,
		},
	}
}
