package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-martians/internal/config"
	"github.com/vovakirdan/tui-martians/internal/core"
	"github.com/vovakirdan/tui-martians/internal/games/martians"
	"github.com/vovakirdan/tui-martians/internal/registry"
)

var _ registry.Game = (*martians.Game)(nil)

// Flags that override config keys when set explicitly.
var configFlags = map[string]string{
	"fps":     "frames_per_second",
	"enemies": "enemy_count",
}

// loadConfig layers defaults, files, env and the command's flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.Config{}, err
	}
	loader := config.NewLoader()
	for name, key := range configFlags {
		if err := loader.BindFlag(key, cmd.Flags().Lookup(name)); err != nil {
			return config.Config{}, err
		}
	}
	return loader.Load(flagConfig, preset)
}

// runtimeFor builds the runtime config for a w x h play area.
func runtimeFor(cfg config.Config, w, h int) core.RuntimeConfig {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return core.RuntimeConfig{
		ScreenW:  w,
		ScreenH:  h,
		TickRate: cfg.FramesPerSecond,
		Seed:     seed,
	}
}
