package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-martians/internal/core"
	"github.com/vovakirdan/tui-martians/internal/registry"
)

const (
	// footerHeight is the number of rows reserved below the play area for help.
	footerHeight = 1

	// maxPending bounds the keys queued between ticks, matching the tcell
	// driver's event buffer. Keys past the bound are dropped.
	maxPending = 64
)

// Model is the Bubble Tea model for running a game.
// The game must already be Reset for the model's dimensions.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	pending  []core.Action // Keys received since the last tick
	err      error
	quitting bool
}

// NewModel creates a Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig) Model {
	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   help.New(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if a := m.keys.Action(msg); a != core.ActionNone && len(m.pending) < maxPending {
			m.pending = append(m.pending, a)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleTick feeds at most one queued action to the game, steps it and
// renders the new frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	in := core.NewInputFrame(core.ActionNone)
	if len(m.pending) > 0 {
		in = core.NewInputFrame(m.pending[0])
		m.pending = m.pending[1:]
	}

	result, err := m.game.Step(in)
	if err != nil {
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}
	if result.Stop {
		m.quitting = true
		return m, tea.Quit
	}

	if err := m.game.Render(m.screen); err != nil {
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// Err returns the error that ended the session, if any.
func (m Model) Err() error {
	return m.err
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run resets the game for the area above the help footer and runs it
// until it stops or ctx is cancelled.
func Run(ctx context.Context, game registry.Game, cfg core.RuntimeConfig) error {
	if cfg.TickRate <= 0 {
		return fmt.Errorf("tui: invalid frame rate %d", cfg.TickRate)
	}
	cfg.ScreenH -= footerHeight
	if err := game.Reset(cfg); err != nil {
		return err
	}

	model := NewModel(game, cfg)
	if err := game.Render(model.screen); err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	final, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("tui: %w", err)
	}
	if fm, ok := final.(Model); ok {
		return fm.Err()
	}
	return nil
}

// Backend runs games through Bubble Tea.
type Backend struct{}

// Title returns the listing description.
func (Backend) Title() string { return "Bubble Tea (lipgloss colors, help footer)" }

// Run implements registry.Backend.
func (Backend) Run(ctx context.Context, g registry.Game, rt core.RuntimeConfig) error {
	return Run(ctx, g, rt)
}

func init() {
	registry.Register("tea", func() registry.Backend { return Backend{} })
}
