package tcellui

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-martians/internal/core"
	"github.com/vovakirdan/tui-martians/internal/registry"
)

// Loop plays g on c at fps frames per second. Each frame polls at most one
// key, steps the game and shows the result. It returns when the game stops,
// ctx is cancelled or a step fails.
func Loop(ctx context.Context, g registry.Game, c *Canvas, fps int) error {
	if fps <= 0 {
		return fmt.Errorf("tcellui: invalid frame rate %d", fps)
	}
	if err := g.Render(c); err != nil {
		return err
	}
	c.Show()

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		action, _ := c.PollKey()
		result, err := g.Step(core.NewInputFrame(action))
		if err != nil {
			return err
		}
		if result.Stop {
			return nil
		}
		if err := g.Render(c); err != nil {
			return err
		}
		c.Show()
	}
}

// Backend runs games on a tcell screen.
type Backend struct {
	// NewScreen creates the screen. Nil means the real terminal.
	NewScreen func() (tcell.Screen, error)
}

// Title returns the listing description.
func (Backend) Title() string { return "tcell (direct screen, ticker loop)" }

// Run implements registry.Backend. The play area is the tcell screen size
// when it reports one, otherwise rt's dimensions.
func (b Backend) Run(ctx context.Context, g registry.Game, rt core.RuntimeConfig) error {
	newScreen := b.NewScreen
	if newScreen == nil {
		newScreen = tcell.NewScreen
	}
	screen, err := newScreen()
	if err != nil {
		return fmt.Errorf("tcellui: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("tcellui: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	if w, h := screen.Size(); w > 0 && h > 0 {
		rt.ScreenW, rt.ScreenH = w, h
	}
	if err := g.Reset(rt); err != nil {
		return err
	}
	return Loop(ctx, g, NewCanvas(screen), rt.TickRate)
}

func init() {
	registry.Register("tcell", func() registry.Backend { return Backend{} })
}
