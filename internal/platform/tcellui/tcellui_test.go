package tcellui

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-martians/internal/config"
	"github.com/vovakirdan/tui-martians/internal/core"
	"github.com/vovakirdan/tui-martians/internal/games/martians"
	"github.com/vovakirdan/tui-martians/internal/registry"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

// waitKey polls until a key arrives from the event goroutine.
func waitKey(t *testing.T, c *Canvas) core.Action {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if a, ok := c.PollKey(); ok {
			return a
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("no key delivered")
	return core.ActionNone
}

func TestDrawGlyphBlock(t *testing.T) {
	s := newSimScreen(t, 10, 4)
	c := NewCanvas(s)

	if err := c.DrawGlyphBlock(1, 2, "abc", core.ColorRed); err != nil {
		t.Fatalf("DrawGlyphBlock failed: %v", err)
	}
	for i, want := range "abc" {
		r, _, style, _ := s.GetContent(2+i, 1)
		if r != want {
			t.Errorf("cell (%d, 1) = %q, expected %q", 2+i, r, want)
		}
		if fg, _, _ := style.Decompose(); fg != tcell.PaletteColor(1) {
			t.Errorf("cell (%d, 1) foreground = %v, expected palette red", 2+i, fg)
		}
	}
}

func TestDrawGlyphBlockOutside(t *testing.T) {
	c := NewCanvas(newSimScreen(t, 10, 4))
	tests := []struct {
		name     string
		row, col int
		text     string
	}{
		{"past right", 0, 8, "abc"},
		{"below", 4, 0, "a"},
		{"negative col", 1, -1, "ab"},
	}
	for _, tt := range tests {
		if err := c.DrawGlyphBlock(tt.row, tt.col, tt.text, core.ColorDefault); !errors.Is(err, core.ErrOutOfCanvas) {
			t.Errorf("%s: error = %v, expected ErrOutOfCanvas", tt.name, err)
		}
	}
}

func TestPollKeyNonBlocking(t *testing.T) {
	c := NewCanvas(newSimScreen(t, 10, 4))
	done := make(chan struct{})
	go func() {
		c.PollKey()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("PollKey blocked with no input")
	}
}

func TestPollKeyMapsEvents(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		r    rune
		want core.Action
	}{
		{tcell.KeyRune, 'a', core.ActionLeft},
		{tcell.KeyRune, 'D', core.ActionRight},
		{tcell.KeyRune, ' ', core.ActionFire},
		{tcell.KeyRune, 'r', core.ActionRocket},
		{tcell.KeyLeft, 0, core.ActionLeft},
		{tcell.KeyDown, 0, core.ActionStop},
		{tcell.KeyCtrlC, 0, core.ActionQuit},
	}

	for _, tt := range tests {
		s := newSimScreen(t, 10, 4)
		c := NewCanvas(s)
		s.InjectKey(tcell.KeyRune, 'z', tcell.ModNone) // Unbound, skipped
		s.InjectKey(tt.key, tt.r, tcell.ModNone)
		if got := waitKey(t, c); got != tt.want {
			t.Errorf("key %v %q = %v, expected %v", tt.key, tt.r, got, tt.want)
		}
	}
}

func newTestGame(t *testing.T, s tcell.Screen) *martians.Game {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.EnemyCount = 2
	g := martians.New(cfg)
	w, h := s.Size()
	if err := g.Reset(core.RuntimeConfig{ScreenW: w, ScreenH: h, TickRate: 50, Seed: 3}); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	return g
}

func TestLoopQuits(t *testing.T) {
	s := newSimScreen(t, 60, 20)
	g := newTestGame(t, s)
	c := NewCanvas(s)

	s.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := Loop(ctx, g, c, 50); err != nil {
		t.Fatalf("Loop failed: %v", err)
	}
	if ctx.Err() != nil {
		t.Error("loop ended by timeout, expected quit key")
	}
}

func TestLoopDrawsFrames(t *testing.T) {
	s := newSimScreen(t, 60, 20)
	g := newTestGame(t, s)
	c := NewCanvas(s)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	if err := Loop(ctx, g, c, 50); err != nil {
		t.Fatalf("Loop failed: %v", err)
	}
	if g.State().Frame == 0 {
		t.Error("no frames simulated")
	}
	if r, _, _, _ := s.GetContent(10, 0); r != 'X' {
		t.Errorf("cell (10, 0) = %q, expected the health bar", r)
	}
}

func TestLoopRejectsBadRate(t *testing.T) {
	s := newSimScreen(t, 60, 20)
	if err := Loop(context.Background(), newTestGame(t, s), NewCanvas(s), 0); err == nil {
		t.Error("expected error for zero frame rate")
	}
}

func TestBackendRun(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	b := Backend{NewScreen: func() (tcell.Screen, error) { return sim, nil }}

	cfg := config.DefaultConfig()
	cfg.EnemyCount = 0
	cfg.Timing.GracePeriodSec = 0.1
	g := martians.New(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	// The game is won at once and stops after the grace period.
	if err := b.Run(ctx, g, core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 50, Seed: 1}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if ctx.Err() != nil {
		t.Error("Run ended by timeout, expected grace expiry")
	}
	if g.State().Outcome != core.OutcomeWon {
		t.Errorf("Outcome = %v, expected won", g.State().Outcome)
	}
}

func TestBackendRegistered(t *testing.T) {
	if !registry.Exists("tcell") {
		t.Error("tcell backend not registered")
	}
}
