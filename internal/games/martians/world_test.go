package martians

import (
	"errors"
	"testing"
)

func entitiesWithHealth(t *testing.T, health ...int) []*Entity {
	t.Helper()
	out := make([]*Entity, len(health))
	for i, h := range health {
		out[i] = newBall(t, float64(i), 0)
		out[i].Health = h
	}
	return out
}

func TestPruneDead(t *testing.T) {
	tests := []struct {
		name      string
		health    []int
		wantAlive []int // Indexes into the input
	}{
		{"empty", nil, nil},
		{"all alive", []int{1, 2, 3}, []int{0, 1, 2}},
		{"all dead", []int{0, -1, 0}, nil},
		{"dead first", []int{0, 1, 2}, []int{1, 2}},
		{"dead last", []int{1, 2, 0}, []int{0, 1}},
		{"adjacent dead", []int{1, 0, 0, 2}, []int{0, 3}},
		{"alternating alive dead alive", []int{1, 0, 1}, []int{0, 2}},
		{"alternating dead alive dead", []int{0, 1, 0}, []int{1}},
		{"negative health", []int{-5, 3}, []int{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := entitiesWithHealth(t, tt.health...)
			orig := append([]*Entity(nil), in...)

			alive, removed := PruneDead(in)

			if len(alive) != len(tt.wantAlive) {
				t.Fatalf("len(alive) = %d, expected %d", len(alive), len(tt.wantAlive))
			}
			for i, idx := range tt.wantAlive {
				if alive[i] != orig[idx] {
					t.Errorf("alive[%d] is input %d, expected input %d", i, indexOf(orig, alive[i]), idx)
				}
			}

			wantRemoved := 0
			for _, e := range orig {
				if e.Health <= 0 {
					wantRemoved++
					if !removed.Has(e) {
						t.Errorf("dead entity %d missing from removed set", indexOf(orig, e))
					}
				} else if removed.Has(e) {
					t.Errorf("alive entity %d in removed set", indexOf(orig, e))
				}
			}
			if len(removed) != wantRemoved {
				t.Errorf("len(removed) = %d, expected %d", len(removed), wantRemoved)
			}
		})
	}
}

func indexOf(es []*Entity, e *Entity) int {
	for i, x := range es {
		if x == e {
			return i
		}
	}
	return -1
}

func TestMoveAllDropsExited(t *testing.T) {
	stay := newBall(t, 5, 5)
	stay.SetSpeed(1)
	_ = stay.SetDirection(1, 0)

	gone1 := newBall(t, 0, 5)
	gone1.Edge = EdgeDisappear
	gone1.SetSpeed(1)
	_ = gone1.SetDirection(-1, 0)

	gone2 := newBall(t, 5, 0)
	gone2.Edge = EdgeDisappear
	gone2.SetSpeed(1)
	_ = gone2.SetDirection(0, -1)

	bouncer := newBall(t, 9, 9)
	bouncer.SetSpeed(1)
	_ = bouncer.SetDirection(1, 0)

	// Two adjacent removals must not skip the entity after them.
	got, err := MoveAll([]*Entity{stay, gone1, gone2, bouncer}, 10, 10)
	if err != nil {
		t.Fatalf("MoveAll failed: %v", err)
	}
	if len(got) != 2 || got[0] != stay || got[1] != bouncer {
		t.Fatalf("MoveAll kept %d entities, expected [stay bouncer]", len(got))
	}
	if x, y, _ := bouncer.Position(); !near(x, 8) || !near(y, 9) {
		t.Errorf("bouncer at (%v, %v), expected (8, 9)", x, y)
	}
	if x, _, _ := gone1.Position(); x != 0 {
		t.Errorf("removed entity moved to x=%v", x)
	}
}

func TestMoveAllError(t *testing.T) {
	ok := newBall(t, 5, 5)
	unset, _ := NewEntity(0, 0, []string{"?"})
	after := newBall(t, 6, 6)

	got, err := MoveAll([]*Entity{ok, unset, after}, 10, 10)
	if !errors.Is(err, ErrPositionUnset) {
		t.Fatalf("MoveAll() error = %v, expected ErrPositionUnset", err)
	}
	if len(got) != 3 || got[0] != ok || got[1] != unset || got[2] != after {
		t.Errorf("MoveAll on error returned %d entities, expected the original 3 in order", len(got))
	}
}

func TestSortedByZ(t *testing.T) {
	es := entitiesWithHealth(t, 1, 1, 1, 1)
	es[0].Z, es[1].Z, es[2].Z, es[3].Z = 3, 1, 3, 1

	got := SortedByZ(es)
	want := []*Entity{es[1], es[3], es[0], es[2]}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("SortedByZ()[%d] is input %d, expected input %d", i, indexOf(es, got[i]), indexOf(es, want[i]))
		}
	}
	if es[0].Z != 3 || es[1].Z != 1 {
		t.Error("SortedByZ reordered its input")
	}
}
