// Package config provides YAML-based game configuration loading and
// difficulty presets for the martians game.
package config

import (
	"errors"
	"fmt"
	"math"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config contains every tunable of the game. It is passed explicitly into
// the game at initialization.
type Config struct {
	FramesPerSecond int          `yaml:"frames_per_second" mapstructure:"frames_per_second"`
	DefaultHealth   int          `yaml:"default_health" mapstructure:"default_health"`
	PlayerHealthMax float64      `yaml:"player_health_max" mapstructure:"player_health_max"` // Odd integer
	EnemyCount      int          `yaml:"enemy_count" mapstructure:"enemy_count"`
	Timing          TimingConfig `yaml:"timing" mapstructure:"timing"`
	Speeds          SpeedConfig  `yaml:"speeds" mapstructure:"speeds"`
}

// TimingConfig defines cooldowns and delays, in seconds.
type TimingConfig struct {
	LaserReloadSec       float64 `yaml:"laser_reload_sec" mapstructure:"laser_reload_sec"`
	GracePeriodSec       float64 `yaml:"grace_period_sec" mapstructure:"grace_period_sec"`
	EnemyShotIntervalSec float64 `yaml:"enemy_shot_interval_sec" mapstructure:"enemy_shot_interval_sec"` // 0 disables enemy fire
}

// SpeedConfig defines movement speeds in cells per tick.
type SpeedConfig struct {
	Player     float64 `yaml:"player" mapstructure:"player"`
	Enemy      float64 `yaml:"enemy" mapstructure:"enemy"`
	EnemyDrift float64 `yaml:"enemy_drift" mapstructure:"enemy_drift"` // Downward component of enemy direction
	Laser      float64 `yaml:"laser" mapstructure:"laser"`
	Rocket     float64 `yaml:"rocket" mapstructure:"rocket"`
	Bomb       float64 `yaml:"bomb" mapstructure:"bomb"`
}

// LaserReload returns the laser cooldown.
func (t TimingConfig) LaserReload() time.Duration {
	return seconds(t.LaserReloadSec)
}

// GracePeriod returns how long the loop keeps running after the match ends.
func (t TimingConfig) GracePeriod() time.Duration {
	return seconds(t.GracePeriodSec)
}

// EnemyShotInterval returns the nominal delay between enemy shots.
func (t TimingConfig) EnemyShotInterval() time.Duration {
	return seconds(t.EnemyShotIntervalSec)
}

// FrameInterval returns the simulated time covered by one tick.
func (c Config) FrameInterval() time.Duration {
	if c.FramesPerSecond <= 0 {
		return 0
	}
	return time.Second / time.Duration(c.FramesPerSecond)
}

// Validate checks the config for values the game cannot run with.
func (c Config) Validate() error {
	if c.FramesPerSecond <= 0 {
		return fmt.Errorf("%w: frames_per_second must be positive, got %d", ErrInvalid, c.FramesPerSecond)
	}
	if c.DefaultHealth <= 0 {
		return fmt.Errorf("%w: default_health must be positive, got %d", ErrInvalid, c.DefaultHealth)
	}
	if h := c.PlayerHealthMax; h != math.Trunc(h) || math.IsInf(h, 0) {
		return fmt.Errorf("%w: player_health_max must be an integer, got %v", ErrInvalid, h)
	}
	if h := int(c.PlayerHealthMax); h <= 0 || h%2 == 0 {
		return fmt.Errorf("%w: player_health_max must be a positive odd integer, got %d", ErrInvalid, h)
	}
	if c.EnemyCount < 0 {
		return fmt.Errorf("%w: enemy_count must not be negative, got %d", ErrInvalid, c.EnemyCount)
	}
	nonNegative := []struct {
		key string
		val float64
	}{
		{"timing.laser_reload_sec", c.Timing.LaserReloadSec},
		{"timing.grace_period_sec", c.Timing.GracePeriodSec},
		{"timing.enemy_shot_interval_sec", c.Timing.EnemyShotIntervalSec},
		{"speeds.player", c.Speeds.Player},
		{"speeds.enemy", c.Speeds.Enemy},
		{"speeds.laser", c.Speeds.Laser},
		{"speeds.rocket", c.Speeds.Rocket},
		{"speeds.bomb", c.Speeds.Bomb},
	}
	for _, f := range nonNegative {
		if f.val < 0 || math.IsNaN(f.val) {
			return fmt.Errorf("%w: %s must not be negative, got %v", ErrInvalid, f.key, f.val)
		}
	}
	return nil
}

// YAML renders the config in the same layout as the embedded defaults.
func (c Config) YAML() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return out, nil
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
