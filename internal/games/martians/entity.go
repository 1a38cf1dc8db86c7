// Package martians implements a terminal shooter: a tank at the bottom of
// the screen defends against a band of martians dropping bombs.
//
// Every object in the scene is an Entity. Entity.Kind tags the player and
// the enemies. Firing comes from the optional Weapon and EnemyBrain
// attachments, and only enemies drop bombs.
package martians

import (
	"errors"
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/tui-martians/internal/core"
)

// Sentinel errors returned by entity operations.
var (
	ErrPositionUnset    = errors.New("position not set")
	ErrZeroDirection    = errors.New("direction vector too small")
	ErrAppearance       = errors.New("appearance does not match radius")
	ErrMaxHealth        = errors.New("invalid max health")
	ErrStillOutOfBounds = errors.New("still out of bounds after bounce")
)

// DefaultHealth is the health of a freshly constructed entity.
const DefaultHealth = 5

// minDirection is the shortest direction vector SetDirection accepts.
const minDirection = 0.001

// Kind tags the behaviour an entity carries.
type Kind int

const (
	KindGeneric Kind = iota
	KindPlayer
	KindEnemy
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	default:
		return "generic"
	}
}

// EdgeBehavior decides what happens when a move would leave the play area.
type EdgeBehavior int

const (
	EdgeBounce    EdgeBehavior = iota // Reverse the violating velocity component
	EdgeDisappear                     // Stay put and report removal
)

// Entity is a rectangular object with physics and a text appearance.
// The box spans 2*xRadius+1 by 2*yRadius+1 cells around the position
// rounded to the nearest cell.
type Entity struct {
	Kind       Kind
	Health     int
	Damage     int
	Collidable bool
	Label      string // Entities sharing a label never damage each other
	Z          int    // Draw order, ascending
	Edge       EdgeBehavior
	Color      core.Color

	// Optional behaviour attachments.
	Weapon *Weapon
	Brain  *EnemyBrain

	id     uint64
	x, y   float64
	posSet bool

	speed      float64
	dirX, dirY float64 // Unit direction
	vx, vy     float64
	savedVX    float64
	savedVY    float64

	xRadius, yRadius int
	rows             []string
}

// NewEntity creates an entity from its half-extents and text rows.
// There must be 2*yRadius+1 rows of exactly 2*xRadius+1 runes each.
func NewEntity(xRadius, yRadius int, rows []string) (*Entity, error) {
	if err := checkAppearance(xRadius, yRadius, rows); err != nil {
		return nil, err
	}
	return &Entity{
		Health:     DefaultHealth,
		Damage:     1,
		Collidable: true,
		Z:          1,
		Edge:       EdgeBounce,
		dirX:       1 / math.Sqrt2,
		dirY:       1 / math.Sqrt2,
		xRadius:    xRadius,
		yRadius:    yRadius,
		rows:       append([]string(nil), rows...),
	}, nil
}

func checkAppearance(xRadius, yRadius int, rows []string) error {
	if xRadius < 0 || yRadius < 0 {
		return fmt.Errorf("%w: negative radius %d,%d", ErrAppearance, xRadius, yRadius)
	}
	if want := 2*yRadius + 1; len(rows) != want {
		return fmt.Errorf("%w: got %d rows, expected %d because y radius %d",
			ErrAppearance, len(rows), want, yRadius)
	}
	want := 2*xRadius + 1
	for i, row := range rows {
		if n := utf8.RuneCountInString(row); n != want {
			return fmt.Errorf("%w: row %d is %d runes wide, expected %d because x radius %d",
				ErrAppearance, i, n, want, xRadius)
		}
	}
	return nil
}

// ID returns the identifier assigned by the spawner, or 0.
func (e *Entity) ID() uint64 { return e.id }

// SetPosition places the entity's centre.
func (e *Entity) SetPosition(x, y float64) {
	e.x, e.y = x, y
	e.posSet = true
}

// Position returns the centre. ok is false until SetPosition is called.
func (e *Entity) Position() (x, y float64, ok bool) {
	return e.x, e.y, e.posSet
}

// Radius returns the half-extents.
func (e *Entity) Radius() (xRadius, yRadius int) {
	return e.xRadius, e.yRadius
}

// Rows returns a copy of the appearance.
func (e *Entity) Rows() []string {
	return append([]string(nil), e.rows...)
}

// SetRows replaces the appearance. The new rows must fit the same box.
func (e *Entity) SetRows(rows []string) error {
	if err := checkAppearance(e.xRadius, e.yRadius, rows); err != nil {
		return err
	}
	e.rows = append(e.rows[:0], rows...)
	return nil
}

// Speed returns the scalar speed in cells per tick.
func (e *Entity) Speed() float64 { return e.speed }

// SetSpeed sets the scalar speed and rescales the velocity along the
// current direction.
func (e *Entity) SetSpeed(speed float64) {
	e.speed = speed
	e.vx = speed * e.dirX
	e.vy = speed * e.dirY
}

// SetDirection points the velocity along (dx, dy) with magnitude Speed.
func (e *Entity) SetDirection(dx, dy float64) error {
	n := math.Hypot(dx, dy)
	if n < minDirection {
		return fmt.Errorf("%w: (%v, %v)", ErrZeroDirection, dx, dy)
	}
	e.dirX, e.dirY = dx/n, dy/n
	e.vx = e.speed * e.dirX
	e.vy = e.speed * e.dirY
	return nil
}

// Direction returns the unit direction vector.
func (e *Entity) Direction() (dx, dy float64) { return e.dirX, e.dirY }

// Velocity returns the per-tick displacement.
func (e *Entity) Velocity() (vx, vy float64) { return e.vx, e.vy }

// Stopped reports whether the velocity is zero.
func (e *Entity) Stopped() bool { return e.vx == 0 && e.vy == 0 }

// Stop saves the current velocity and zeroes it. Stopping a stopped
// entity keeps the velocity saved the first time.
func (e *Entity) Stop() {
	if e.Stopped() {
		return
	}
	e.savedVX, e.savedVY = e.vx, e.vy
	e.vx, e.vy = 0, 0
}

// Resume restores the velocity saved by Stop. It does nothing while moving.
func (e *Entity) Resume() {
	if !e.Stopped() {
		return
	}
	e.vx, e.vy = e.savedVX, e.savedVY
}

// Dead reports whether health is exhausted.
func (e *Entity) Dead() bool { return e.Health <= 0 }

func (e *Entity) xInBounds(x float64, width int) bool {
	r := float64(e.xRadius)
	return x-r >= 0 && x+r <= float64(width-1)
}

func (e *Entity) yInBounds(y float64, height int) bool {
	r := float64(e.yRadius)
	return y-r >= 0 && y+r <= float64(height-1)
}

// Move advances the entity by one tick of velocity inside a width x height
// area. It returns false when a Disappear entity would leave the area, in
// which case the position is unchanged.
func (e *Entity) Move(width, height int) (bool, error) {
	if !e.posSet {
		return false, ErrPositionUnset
	}

	xIn := e.xInBounds(e.x+e.vx, width)
	yIn := e.yInBounds(e.y+e.vy, height)
	if xIn && yIn {
		e.x += e.vx
		e.y += e.vy
		return true, nil
	}
	if e.Edge == EdgeDisappear {
		return false, nil
	}

	if !xIn {
		e.vx, e.dirX = -e.vx, -e.dirX
	}
	if !yIn {
		e.vy, e.dirY = -e.vy, -e.dirY
	}
	nx, ny := e.x+e.vx, e.y+e.vy
	if !e.xInBounds(nx, width) || !e.yInBounds(ny, height) {
		return false, fmt.Errorf("%w: entity %d at (%.2f, %.2f) velocity (%.2f, %.2f) in %dx%d",
			ErrStillOutOfBounds, e.id, nx, ny, e.vx, e.vy, width, height)
	}
	e.x, e.y = nx, ny
	return true, nil
}

// Rect returns the cell box the entity covers.
func (e *Entity) Rect() core.Rect {
	return core.RectAround(core.RoundCell(e.x), core.RoundCell(e.y), e.xRadius, e.yRadius)
}

// Draw writes the appearance onto the canvas, top row first.
func (e *Entity) Draw(c core.Canvas) error {
	if !e.posSet {
		return ErrPositionUnset
	}
	r := e.Rect()
	for i, row := range e.rows {
		if err := c.DrawGlyphBlock(r.Y+i, r.X, row, e.Color); err != nil {
			return fmt.Errorf("draw entity %d: %w", e.id, err)
		}
	}
	return nil
}
