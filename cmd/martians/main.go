// martians is a terminal shooter: steer a ship along the bottom row and shoot
// down the martians before their bombs wear your health away.
//
// Usage:
//
//	martians play              - Play interactively
//	martians simulate          - Run a headless match and print the last frame
//	martians backends          - List available terminal drivers
//	martians config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Frames per second (default from config: 10)
//	--seed <value>        - RNG seed for reproducible matches
//	--enemies <n>         - Number of martians
//	--config <path>       - Extra YAML config file
//	--difficulty <name>   - easy, normal or hard
//	--log-file <path>     - Write logs to a file
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-martians/internal/config"

	// Import drivers to register them
	_ "github.com/vovakirdan/tui-martians/internal/platform/tcellui"
	_ "github.com/vovakirdan/tui-martians/internal/platform/tui"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagEnemies    int
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "martians",
	Short: "Martians - shoot down invaders in your terminal",
	Long: `Martians is a terminal shooter. Your ship moves along the bottom of
the screen while martians drift overhead and drop bombs. Destroy them all
to win.

Available commands:
  play      - Play interactively
  simulate  - Run a headless match
  backends  - Show terminal drivers
  config    - Print the effective configuration

Examples:
  martians play
  martians play --backend tcell --difficulty hard
  martians simulate --frames 200 --keys "3:space,10:r" --seed 42
  martians config --enemies 8`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 10, "Frames per second")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.IntVar(&flagEnemies, "enemies", 6, "Number of martians")
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: "+presetNames())
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: discard)")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(backendsCmd)
	rootCmd.AddCommand(configCmd)
}

func presetNames() string {
	presets := config.Presets()
	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = string(p)
	}
	return strings.Join(names, ", ")
}
