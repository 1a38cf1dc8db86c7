package martians

import (
	"math/rand"
	"testing"
	"time"
)

func TestWeaponTrigger(t *testing.T) {
	w := &Weapon{Reload: time.Second}
	steps := []struct {
		now  time.Duration
		want bool
	}{
		{0, true},
		{0, false},
		{999 * time.Millisecond, false},
		{time.Second, true},
		{1500 * time.Millisecond, false},
		{3 * time.Second, true},
	}
	for i, s := range steps {
		if got := w.Trigger(s.now); got != s.want {
			t.Errorf("step %d: Trigger(%v) = %v, expected %v", i, s.now, got, s.want)
		}
	}
}

func TestWeaponNoReload(t *testing.T) {
	w := &Weapon{}
	for i := 0; i < 3; i++ {
		if !w.Trigger(0) {
			t.Errorf("Trigger %d with zero reload = false, expected true", i)
		}
	}
}

func TestEnemyBrainJitterWindow(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		b := NewEnemyBrain(2*time.Second, 0)
		if b.Ready(time.Second, rng) {
			t.Fatal("fired at the earliest edge of the jitter window")
		}
		if !b.Ready(3*time.Second+time.Millisecond, rng) {
			t.Fatal("did not fire past the latest edge of the jitter window")
		}
	}
}

func TestEnemyBrainDeterministic(t *testing.T) {
	run := func() []int {
		rng := rand.New(rand.NewSource(9))
		b := NewEnemyBrain(2*time.Second, 0)
		var fired []int
		for frame := 0; frame < 100; frame++ {
			if b.Ready(time.Duration(frame)*100*time.Millisecond, rng) {
				fired = append(fired, frame)
			}
		}
		return fired
	}
	a, b := run(), run()
	if len(a) == 0 {
		t.Fatal("brain never fired in 10s")
	}
	if len(a) != len(b) {
		t.Fatalf("runs fired %d and %d times", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("shot %d at frame %d vs %d", i, a[i], b[i])
		}
	}
}
