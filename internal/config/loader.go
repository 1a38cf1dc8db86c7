package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g.
// MARTIANS_ENEMY_COUNT or MARTIANS_TIMING_LASER_RELOAD_SEC.
const EnvPrefix = "MARTIANS"

// Loader layers configuration sources on top of the embedded defaults.
// Search order: embedded default -> ./configs/martians.yaml ->
// ~/.martians/config.yaml -> custom path -> preset -> env -> flags.
type Loader struct {
	LocalPath string // Optional, skipped when missing
	UserPath  string // Optional, skipped when missing

	v *viper.Viper
}

// NewLoader creates a loader with the standard search paths.
func NewLoader() *Loader {
	return &Loader{
		LocalPath: filepath.Join("configs", "martians.yaml"),
		UserPath:  userConfigPath("config.yaml"),
		v:         viper.New(),
	}
}

// BindFlag makes a command-line flag override the given config key.
// The flag only wins when it was set explicitly.
func (l *Loader) BindFlag(key string, flag *pflag.Flag) error {
	if flag == nil {
		return fmt.Errorf("no flag to bind for %s", key)
	}
	if err := l.v.BindPFlag(key, flag); err != nil {
		return fmt.Errorf("failed to bind flag %s: %w", flag.Name, err)
	}
	return nil
}

// Load reads every layer and returns the validated result. A non-empty
// customPath must exist.
func (l *Loader) Load(customPath string, preset DifficultyPreset) (Config, error) {
	var cfg Config
	v := l.v

	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewReader(defaultYAML)); err != nil {
		return cfg, fmt.Errorf("failed to parse embedded defaults: %w", err)
	}

	for _, path := range []string{l.LocalPath, l.UserPath} {
		if err := mergeFile(v, path, true); err != nil {
			return cfg, err
		}
	}
	if customPath != "" {
		if err := mergeFile(v, customPath, false); err != nil {
			return cfg, err
		}
	}

	if overrides := presetOverrides(preset); overrides != nil {
		if err := v.MergeConfigMap(overrides); err != nil {
			return cfg, fmt.Errorf("failed to apply difficulty %s: %w", preset, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func mergeFile(v *viper.Viper, path string, optional bool) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := v.MergeConfig(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".martians", filename)
}
