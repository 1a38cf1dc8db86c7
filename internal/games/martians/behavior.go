package martians

import (
	"math/rand"
	"time"
)

// Weapon gates player shots behind a reload cooldown measured in
// simulated time.
type Weapon struct {
	Reload time.Duration

	lastShot time.Duration
	fired    bool
}

// Trigger fires if the weapon has reloaded, recording the shot time.
// The first trigger always fires.
func (w *Weapon) Trigger(now time.Duration) bool {
	if w.fired && now < w.lastShot+w.Reload {
		return false
	}
	w.lastShot = now
	w.fired = true
	return true
}

// EnemyBrain decides when an enemy drops a bomb.
type EnemyBrain struct {
	Interval time.Duration // 0 disables shooting

	lastShot time.Duration
}

// NewEnemyBrain creates a brain whose shot timer starts at now.
func NewEnemyBrain(interval, now time.Duration) *EnemyBrain {
	return &EnemyBrain{Interval: interval, lastShot: now}
}

// Ready reports whether a shot fires at now. Each call draws a fresh
// jitter in [-1s, 1s) around the interval, and a successful call
// restarts the timer.
func (b *EnemyBrain) Ready(now time.Duration, rng *rand.Rand) bool {
	if b.Interval == 0 {
		return false
	}
	jitter := time.Duration((rng.Float64()*2 - 1) * float64(time.Second))
	if now > b.lastShot+b.Interval+jitter {
		b.lastShot = now
		return true
	}
	return false
}
