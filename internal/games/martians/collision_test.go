package martians

import "testing"

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		ax   float64
		ay   float64
		bx   float64
		by   float64
		want bool
	}{
		{"rounded to same cell", 1, 1, 1.2, 1.3, true},
		{"far apart", 1, 1, 5, 5, false},
		{"neighbouring cells", 1, 1, 2, 1, false},
		{"rounds half to even", 2, 2, 2.5, 2.5, true},
		{"rounds away", 2, 2, 2.6, 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newBall(t, tt.ax, tt.ay)
			b := newBall(t, tt.bx, tt.by)
			if got := Overlaps(a, b); got != tt.want {
				t.Errorf("Overlaps = %v, expected %v", got, tt.want)
			}
			if got := Overlaps(b, a); got != tt.want {
				t.Errorf("Overlaps reversed = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestOverlapsTouchingBoxes(t *testing.T) {
	a, _ := NewEntity(1, 1, []string{"...", "...", "..."})
	b, _ := NewEntity(1, 1, []string{"...", "...", "..."})
	a.SetPosition(1, 1)

	b.SetPosition(3, 1) // Shares column 2
	if !Overlaps(a, b) {
		t.Error("boxes sharing an edge column should overlap")
	}
	b.SetPosition(4, 1)
	if Overlaps(a, b) {
		t.Error("boxes one column apart should not overlap")
	}
	b.SetPosition(3, 3) // Shares the corner cell (2, 2)
	if !Overlaps(a, b) {
		t.Error("boxes sharing a corner should overlap")
	}
}

func TestOverlapsNotCollidable(t *testing.T) {
	a := newBall(t, 1, 1)
	b := newBall(t, 1, 1)
	b.Collidable = false
	if Overlaps(a, b) || Overlaps(b, a) {
		t.Error("a non-collidable entity should never overlap")
	}
}

func TestResolveCollisionsDamage(t *testing.T) {
	a := newBall(t, 1, 1)
	b := newBall(t, 1, 1)
	a.Health, a.Damage = 10, 1
	b.Health, b.Damage = 5, 2
	a.Label, b.Label = "P", "M"

	if hits := ResolveCollisions([]*Entity{a, b}); hits != 1 {
		t.Errorf("hits = %d, expected 1", hits)
	}
	if a.Health != 8 || b.Health != 4 {
		t.Errorf("health = %d/%d, expected 8/4", a.Health, b.Health)
	}
}

func TestResolveCollisionsSameLabel(t *testing.T) {
	a := newBall(t, 1, 1)
	b := newBall(t, 1, 1)
	a.Label, b.Label = LabelEnemy, LabelEnemy

	if hits := ResolveCollisions([]*Entity{a, b}); hits != 0 {
		t.Errorf("hits = %d, expected 0", hits)
	}
	if a.Health != DefaultHealth || b.Health != DefaultHealth {
		t.Errorf("health = %d/%d, expected both %d", a.Health, b.Health, DefaultHealth)
	}
}

func TestResolveCollisionsEachPairOnce(t *testing.T) {
	a := newBall(t, 1, 1)
	b := newBall(t, 1, 1)
	c := newBall(t, 1, 1)
	far := newBall(t, 8, 8)
	a.Label, b.Label, c.Label, far.Label = "A", "B", "C", "D"

	if hits := ResolveCollisions([]*Entity{a, b, c, far}); hits != 3 {
		t.Errorf("hits = %d, expected 3", hits)
	}
	for _, e := range []*Entity{a, b, c} {
		if e.Health != DefaultHealth-2 {
			t.Errorf("entity hit by two others has health %d, expected %d", e.Health, DefaultHealth-2)
		}
	}
	if far.Health != DefaultHealth {
		t.Errorf("far entity health = %d, expected %d", far.Health, DefaultHealth)
	}
}

func TestResolveCollisionsDeadStillHits(t *testing.T) {
	// Health changes within one pass do not stop later pairs.
	a := newBall(t, 1, 1)
	b := newBall(t, 1, 1)
	c := newBall(t, 1, 1)
	a.Label, b.Label, c.Label = "A", "B", "C"
	a.Health = 1

	ResolveCollisions([]*Entity{a, b, c})
	if a.Health != -1 {
		t.Errorf("a.Health = %d, expected -1", a.Health)
	}
	if c.Health != DefaultHealth-2 {
		t.Errorf("c.Health = %d, expected %d", c.Health, DefaultHealth-2)
	}
}
