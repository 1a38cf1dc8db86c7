package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-martians/internal/games/martians"
	"github.com/vovakirdan/tui-martians/internal/logging"
	"github.com/vovakirdan/tui-martians/internal/platform/headless"
)

var (
	flagFrames int
	flagKeys   string
	flagWidth  int
	flagHeight int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless match",
	Long: `Play a match without a terminal, frame after frame without waiting,
then print the last frame and the outcome. Keys are scripted as
comma separated frame:key pairs, where frames count from 1.

Examples:
  martians simulate --frames 100
  martians simulate --seed 42 --keys "2:a,5:space,9:r,30:q"`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagFrames, "frames", 300, "Maximum number of frames to simulate")
	simulateCmd.Flags().StringVar(&flagKeys, "keys", "", "Key script, e.g. \"3:space,10:r\"")
	simulateCmd.Flags().IntVar(&flagWidth, "width", 80, "Screen width")
	simulateCmd.Flags().IntVar(&flagHeight, "height", 24, "Screen height")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	script, err := headless.ParseScript(flagKeys)
	if err != nil {
		return err
	}
	logger, err := logging.New(os.Stderr, flagLogLevel)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	game := martians.New(cfg, martians.WithLogger(logger))
	res, err := headless.Run(ctx, game, runtimeFor(cfg, flagWidth, flagHeight), flagFrames, script)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, res.Screen.String())
	fmt.Fprintf(out, "outcome: %s, frames: %d, health: %d, enemies left: %d\n",
		res.State.Outcome, res.Frames, res.State.PlayerHealth, res.State.EnemiesLeft)
	return nil
}
