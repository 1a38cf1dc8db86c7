package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-martians/internal/games/martians"
	"github.com/vovakirdan/tui-martians/internal/logging"
	"github.com/vovakirdan/tui-martians/internal/registry"
)

var flagBackend string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play interactively",
	Long: `Start an interactive match in the terminal.

Controls:
  A/Left     - Move left
  D/Right    - Move right
  S/Down     - Stop
  Space      - Fire laser
  R          - Fire rocket
  P          - Pause
  Q/Ctrl+C   - Quit

Examples:
  martians play
  martians play --backend tcell
  martians play --difficulty easy --log-file martians.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagBackend, "backend", "tea", "Terminal driver (see 'martians backends')")
}

func runPlay(cmd *cobra.Command, args []string) error {
	if !registry.Exists(flagBackend) {
		return fmt.Errorf("unknown backend %q, run 'martians backends' to list them", flagBackend)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := logging.Open(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	backend, err := registry.Create(flagBackend)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	game := martians.New(cfg, martians.WithLogger(logger))
	if err := backend.Run(ctx, game, runtimeFor(cfg, width, height)); err != nil {
		return err
	}

	if state := game.State(); state.Ended() {
		fmt.Printf("Game over: %s after %d frames\n", state.Outcome, state.Frame)
	}
	return nil
}
