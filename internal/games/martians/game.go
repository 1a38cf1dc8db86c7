package martians

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-martians/internal/config"
	"github.com/vovakirdan/tui-martians/internal/core"
)

// Smallest play area in which every sprite spawns inside the screen.
const (
	MinWidth  = 30
	MinHeight = 12
)

// ErrScreenTooSmall is returned by Reset for an area below MinWidth x MinHeight.
var ErrScreenTooSmall = errors.New("screen too small")

const pausedText = "PAUSED"

// Game implements the martians shooter.
type Game struct {
	cfg    config.Config
	logger *log.Logger

	rng     *rand.Rand
	spawner *Spawner
	matchID string

	screenW  int
	screenH  int
	interval time.Duration // Simulated time per tick
	now      time.Duration
	frame    int

	entities   []*Entity
	player     *Entity
	playerDead bool
	healthBar  *Entity
	maxHealth  int
	enemies    []*Entity // Alive enemies, in spawn order
	loseBanner *Entity
	winBanner  *Entity

	outcome  core.Outcome
	banner   string
	exitAt   time.Duration
	paused   bool
	finished bool
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger for match events. The default discards.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// New creates a game using cfg. Call Reset before stepping it.
func New(cfg config.Config, opts ...Option) *Game {
	g := &Game{
		cfg:    cfg,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string { return "martians" }

// Title returns the display name.
func (g *Game) Title() string { return "Martians" }

// Reset builds a new match: the player, the health indicator, the end
// banners and the enemy band.
func (g *Game) Reset(rt core.RuntimeConfig) error {
	if err := g.cfg.Validate(); err != nil {
		return err
	}
	if rt.ScreenW < MinWidth || rt.ScreenH < MinHeight {
		return fmt.Errorf("%w: %dx%d, need at least %dx%d",
			ErrScreenTooSmall, rt.ScreenW, rt.ScreenH, MinWidth, MinHeight)
	}
	maxHealth := int(g.cfg.PlayerHealthMax)
	if err := CheckHealthBarFits(maxHealth, rt.ScreenW); err != nil {
		return err
	}

	interval := g.cfg.FrameInterval()
	if rt.TickRate > 0 {
		interval = time.Second / time.Duration(rt.TickRate)
	}

	g.rng = rand.New(rand.NewSource(rt.Seed))
	g.spawner = NewSpawner(g.cfg, g.rng)
	g.matchID = uuid.New().String()
	g.screenW = rt.ScreenW
	g.screenH = rt.ScreenH
	g.interval = interval
	g.maxHealth = maxHealth
	g.now = 0
	g.frame = 0
	g.outcome = core.OutcomeNone
	g.banner = ""
	g.exitAt = 0
	g.paused = false
	g.finished = false
	g.playerDead = false

	g.player = g.spawner.Player(g.screenW, g.screenH)
	label, bar, err := g.spawner.HealthIndicator(g.cfg.PlayerHealthMax)
	if err != nil {
		return err
	}
	g.healthBar = bar
	g.loseBanner = g.spawner.LoseBanner(g.screenW, g.screenH)
	g.winBanner = g.spawner.WinBanner(g.screenW, g.screenH)
	g.enemies = g.spawner.Enemies(g.cfg.EnemyCount, g.screenW, g.screenH, g.now)

	g.entities = make([]*Entity, 0, len(g.enemies)+8)
	g.entities = append(g.entities, g.player, label, bar)
	g.entities = append(g.entities, g.enemies...)

	g.logger.Info("match started",
		"match", g.matchID,
		"seed", rt.Seed,
		"width", g.screenW,
		"height", g.screenH,
		"enemies", len(g.enemies),
	)
	return nil
}

// Step applies the input polled after the previous frame was drawn, then
// simulates one frame. Stop is set once the player quits or the grace
// period after the end of the match runs out.
func (g *Game) Step(in core.InputFrame) (core.StepResult, error) {
	if g.finished {
		return g.result(), nil
	}

	if g.dispatch(in.Action) {
		g.finish("quit")
		return g.result(), nil
	}
	if g.paused {
		return g.result(), nil
	}
	if g.outcome != core.OutcomeNone && g.now > g.exitAt {
		g.finish("grace period over")
		return g.result(), nil
	}

	if err := g.simulate(); err != nil {
		return g.result(), err
	}
	g.frame++
	g.now += g.interval
	return g.result(), nil
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Stop: g.finished}
}

func (g *Game) finish(reason string) {
	g.finished = true
	g.logger.Info("match closed",
		"match", g.matchID,
		"reason", reason,
		"outcome", g.outcome,
		"frames", g.frame,
	)
}

// simulate runs one frame: collisions, pruning, end check, HUD refresh,
// enemy fire and movement.
func (g *Game) simulate() error {
	before := g.player.Health
	ResolveCollisions(g.entities)
	if !g.playerDead && g.player.Health < before {
		g.logger.Info("player hit", "match", g.matchID, "health", g.player.Health)
	}

	alive, dead := PruneDead(g.entities)
	g.entities = alive
	g.pruneEnemies(dead)
	if dead.Has(g.player) {
		g.playerDead = true
	}

	if g.outcome == core.OutcomeNone {
		g.checkEnd()
	}

	if err := UpdateHealthIndicator(g.healthBar, g.player.Health); err != nil {
		return err
	}

	for _, enemy := range g.enemies {
		if bomb := g.spawner.EnemyShot(enemy, g.now); bomb != nil {
			g.entities = append(g.entities, bomb)
		}
	}

	moved, err := MoveAll(g.entities, g.screenW, g.screenH)
	g.entities = moved
	return err
}

func (g *Game) pruneEnemies(dead EntitySet) {
	kept := g.enemies[:0]
	for _, e := range g.enemies {
		if dead.Has(e) {
			g.logger.Info("enemy destroyed", "match", g.matchID, "id", e.ID(), "kind", e.Kind)
			continue
		}
		kept = append(kept, e)
	}
	clearTail(g.enemies, len(kept))
	g.enemies = kept
}

// checkEnd settles the match. A frame that kills both the player and the
// last enemy counts as a loss.
func (g *Game) checkEnd() {
	switch {
	case g.playerDead:
		g.outcome = core.OutcomeLost
		g.banner = "YOU LOSE"
		g.entities = append(g.entities, g.loseBanner)
	case len(g.enemies) == 0:
		g.outcome = core.OutcomeWon
		g.banner = winText
		g.entities = append(g.entities, g.winBanner)
	default:
		return
	}
	g.exitAt = g.now + g.cfg.Timing.GracePeriod()
	g.logger.Info("match ended", "match", g.matchID, "outcome", g.outcome, "frame", g.frame)
}

// dispatch applies one input action. It returns true on quit.
func (g *Game) dispatch(a core.Action) bool {
	switch a {
	case core.ActionQuit:
		return true
	case core.ActionPause:
		g.paused = !g.paused
		return false
	}
	if g.paused || g.playerDead {
		return false
	}

	switch a {
	case core.ActionLeft:
		g.player.Resume()
		_ = g.player.SetDirection(-1, 0)
	case core.ActionRight:
		g.player.Resume()
		_ = g.player.SetDirection(1, 0)
	case core.ActionStop:
		g.player.Stop()
	case core.ActionFire:
		if laser := g.spawner.Laser(g.player, g.now); laser != nil {
			g.entities = append(g.entities, laser)
			g.logger.Debug("laser fired", "match", g.matchID, "id", laser.ID())
		}
	case core.ActionRocket:
		rocket := g.spawner.Rocket(g.player)
		g.entities = append(g.entities, rocket)
		g.logger.Debug("rocket fired", "match", g.matchID, "id", rocket.ID())
	}
	return false
}

// Render draws the scene in ascending Z order.
func (g *Game) Render(c core.Canvas) error {
	c.Clear()
	for _, e := range SortedByZ(g.entities) {
		if err := e.Draw(c); err != nil {
			return err
		}
	}
	if g.paused {
		_, h := c.Size()
		return core.DrawTextCentered(c, h/2, pausedText, core.ColorBrightYellow)
	}
	return nil
}

// State reports the match status.
func (g *Game) State() core.GameState {
	s := core.GameState{
		Frame:       g.frame,
		Outcome:     g.outcome,
		Banner:      g.banner,
		EnemiesLeft: len(g.enemies),
		Paused:      g.paused,
	}
	if g.player != nil {
		s.PlayerHealth = core.Clamp(g.player.Health, 0, g.maxHealth)
	}
	return s
}

// Entities returns the live entities in insertion order.
func (g *Game) Entities() []*Entity {
	return append([]*Entity(nil), g.entities...)
}

// Player returns the player entity.
func (g *Game) Player() *Entity { return g.player }

// Now returns the simulated match time.
func (g *Game) Now() time.Duration { return g.now }

// MatchID returns the identifier used in log lines for this match.
func (g *Game) MatchID() string { return g.matchID }
