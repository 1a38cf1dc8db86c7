package martians

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/vovakirdan/tui-martians/internal/config"
	"github.com/vovakirdan/tui-martians/internal/core"
)

// Labels shared by entities that must not damage each other.
const (
	LabelPlayer = "P"
	LabelEnemy  = "M"
	LabelLaser  = "B"
	LabelRocket = "R"
	LabelBomb   = "BOMB"
)

const (
	healthLabelText = "HEALTH = "
	healthBarX      = 12
	healthFill      = "X"
	winText         = "GAME WIN ;D"
	bannerZ         = 3
)

// Sprites. Each row is exactly as wide as its entity's box.
var (
	playerSprite = []string{
		"    // ",
		"BBBBBB ",
		"CCCCCCC",
	}
	smallMartianSprite = []string{
		" A ",
		"(0)",
		"III",
	}
	bigMartianSprite = []string{
		"    A    ",
		"   AAA   ",
		`  | " |  `,
		"__| O |__",
		"   Y Y   ",
		"   | |   ",
		"   | |   ",
	}
	rocketSprite = []string{
		" A ",
		"( )",
		"( )",
	}
	loseSprite = []string{
		`/\    /\ `,
		`\/    \/ `,
		`  /--\   `,
		`  |\/|   `,
		`  |/\|   `,
		"   --    ",
		"YOU LOSE ",
	}
)

// Spawner builds every entity in the game. It owns the random source so
// that a seeded game is reproducible.
type Spawner struct {
	cfg    config.Config
	rng    *rand.Rand
	nextID uint64
}

// NewSpawner creates a spawner using cfg for speeds and timings.
func NewSpawner(cfg config.Config, rng *rand.Rand) *Spawner {
	return &Spawner{cfg: cfg, rng: rng}
}

// sprite builds an entity from one of the static sprites above.
func (s *Spawner) sprite(xRadius, yRadius int, rows []string) *Entity {
	e, err := NewEntity(xRadius, yRadius, rows)
	if err != nil {
		panic(fmt.Sprintf("martians: bad sprite: %v", err))
	}
	s.nextID++
	e.id = s.nextID
	return e
}

func (s *Spawner) ball(r rune) *Entity {
	return s.sprite(0, 0, []string{string(r)})
}

// launch sets speed and direction for a projectile that vanishes at the edge.
func launch(e *Entity, speed, dx, dy float64) {
	e.SetSpeed(speed)
	// Directions passed here are non-zero literals.
	_ = e.SetDirection(dx, dy)
	e.Edge = EdgeDisappear
}

// Player creates the tank in the bottom-left corner, facing right.
func (s *Spawner) Player(width, height int) *Entity {
	p := s.sprite(3, 1, playerSprite)
	p.Kind = KindPlayer
	p.Label = LabelPlayer
	p.Health = s.cfg.DefaultHealth
	p.Color = core.ColorGreen
	p.SetSpeed(s.cfg.Speeds.Player)
	_ = p.SetDirection(1, 0)
	p.SetPosition(3, float64(height-4))
	p.Weapon = &Weapon{Reload: s.cfg.Timing.LaserReload()}
	return p
}

// CheckMaxHealth validates a health bar width. It must be a positive odd
// integer so the bar has a centre cell.
func CheckMaxHealth(maxHealth float64) (int, error) {
	if maxHealth != math.Trunc(maxHealth) || math.IsInf(maxHealth, 0) {
		return 0, fmt.Errorf("%w: %v must be an integer", ErrMaxHealth, maxHealth)
	}
	n := int(maxHealth)
	if n <= 0 {
		return 0, fmt.Errorf("%w: %d must be positive", ErrMaxHealth, n)
	}
	if n%2 == 0 {
		return 0, fmt.Errorf("%w: %d must be odd", ErrMaxHealth, n)
	}
	return n, nil
}

// HealthText renders health as fill runes padded to maxHealth cells.
// Health outside [0, maxHealth] is clamped.
func HealthText(health, maxHealth int) string {
	h := core.Clamp(health, 0, maxHealth)
	return strings.Repeat(healthFill, h) + strings.Repeat(" ", maxHealth-h)
}

// HealthIndicator creates the static "HEALTH = " label and the bar that
// UpdateHealthIndicator keeps current. Neither collides.
func (s *Spawner) HealthIndicator(maxHealth float64) (label, bar *Entity, err error) {
	n, err := CheckMaxHealth(maxHealth)
	if err != nil {
		return nil, nil, err
	}

	label = s.sprite(4, 0, []string{healthLabelText})
	label.SetPosition(4, 0)
	label.Collidable = false
	label.Color = core.ColorWhite

	bar = s.sprite(n/2, 0, []string{HealthText(n, n)})
	bar.SetPosition(healthBarX, 0)
	bar.Collidable = false
	bar.Z = bannerZ
	bar.Color = core.ColorBrightRed
	return label, bar, nil
}

// CheckHealthBarFits reports whether a bar for maxHealth stays on a screen
// width cells wide. The bar is centred at healthBarX.
func CheckHealthBarFits(maxHealth, width int) error {
	xr := maxHealth / 2
	if healthBarX-xr < 0 || healthBarX+xr >= width {
		return fmt.Errorf("%w: bar for %d spans columns %d to %d on a %d wide screen",
			ErrMaxHealth, maxHealth, healthBarX-xr, healthBarX+xr, width)
	}
	return nil
}

// UpdateHealthIndicator redraws the bar for the given health.
func UpdateHealthIndicator(bar *Entity, health int) error {
	xr, _ := bar.Radius()
	return bar.SetRows([]string{HealthText(health, 2*xr+1)})
}

// randInt returns a uniform integer in [lo, hi].
func (s *Spawner) randInt(lo, hi int) int {
	return lo + s.rng.Intn(hi-lo+1)
}

// Enemies creates n martians scattered over the upper part of the screen.
// Their shot timers start at now.
func (s *Spawner) Enemies(n, width, height int, now time.Duration) []*Entity {
	enemies := make([]*Entity, 0, n)
	for i := 0; i < n; i++ {
		var m *Entity
		if s.rng.Intn(2) == 0 {
			m = s.sprite(1, 1, smallMartianSprite)
			m.Color = core.ColorBrightGreen
		} else {
			m = s.sprite(4, 3, bigMartianSprite)
			m.Color = core.ColorMagenta
		}
		m.Kind = KindEnemy
		m.Label = LabelEnemy
		m.Health = s.cfg.DefaultHealth

		_, yr := m.Radius()
		x := float64(width)/2 + float64(s.randInt(-(width/3), width/3))
		y := math.Max(float64(height)/3+float64(s.randInt(-(height/4), height/4)), float64(yr+1))
		m.SetPosition(x, y)

		m.SetSpeed(s.cfg.Speeds.Enemy)
		dx := 1.0
		if s.rng.Intn(2) == 0 {
			dx = -1
		}
		_ = m.SetDirection(dx, s.cfg.Speeds.EnemyDrift)

		m.Brain = NewEnemyBrain(s.cfg.Timing.EnemyShotInterval(), now)
		enemies = append(enemies, m)
	}
	return enemies
}

// EnemyShot returns a bomb dropped by enemy, or nil when it holds fire.
// Only enemies with a brain shoot.
func (s *Spawner) EnemyShot(enemy *Entity, now time.Duration) *Entity {
	if enemy.Kind != KindEnemy || enemy.Brain == nil || !enemy.Brain.Ready(now, s.rng) {
		return nil
	}
	x, y, _ := enemy.Position()
	_, yr := enemy.Radius()

	bomb := s.ball('|')
	bomb.Label = LabelBomb
	bomb.Health = 1
	bomb.Color = core.ColorRed
	bomb.SetPosition(x, y+float64(yr)+1)
	launch(bomb, s.cfg.Speeds.Bomb, 0, 1)
	return bomb
}

// Laser returns a laser shot from the player, or nil while reloading.
// It starts up and to the right of the turret so it clears the tank.
func (s *Spawner) Laser(player *Entity, now time.Duration) *Entity {
	if player.Weapon == nil || !player.Weapon.Trigger(now) {
		return nil
	}
	x, y, _ := player.Position()

	laser := s.ball('/')
	laser.Label = LabelLaser
	laser.Health = s.cfg.DefaultHealth
	laser.Color = core.ColorBrightYellow
	laser.SetPosition(x+2, y-2)
	launch(laser, s.cfg.Speeds.Laser, 1, -1)
	return laser
}

// Rocket returns a rocket launched straight up from above the player.
func (s *Spawner) Rocket(player *Entity) *Entity {
	x, y, _ := player.Position()

	rocket := s.sprite(1, 1, rocketSprite)
	rocket.Label = LabelRocket
	rocket.Health = s.cfg.DefaultHealth
	rocket.Color = core.ColorCyan
	rocket.SetPosition(x-2, y-3)
	launch(rocket, s.cfg.Speeds.Rocket, 0, -1)
	return rocket
}

func (s *Spawner) banner(xRadius, yRadius int, rows []string, width, height int) *Entity {
	b := s.sprite(xRadius, yRadius, rows)
	b.Collidable = false
	b.Z = bannerZ
	b.Color = core.ColorYellow
	b.SetPosition(float64(width)/2, float64(height)/2)
	return b
}

// LoseBanner creates the centred "YOU LOSE" banner.
func (s *Spawner) LoseBanner(width, height int) *Entity {
	return s.banner(4, 3, loseSprite, width, height)
}

// WinBanner creates the centred "GAME WIN ;D" banner.
func (s *Spawner) WinBanner(width, height int) *Entity {
	return s.banner(len(winText)/2, 0, []string{winText}, width, height)
}
