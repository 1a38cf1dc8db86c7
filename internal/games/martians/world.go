package martians

import "sort"

// EntitySet is an unordered set of entities.
type EntitySet map[*Entity]struct{}

// Has reports whether e is in the set.
func (s EntitySet) Has(e *Entity) bool {
	_, ok := s[e]
	return ok
}

// Add inserts e.
func (s EntitySet) Add(e *Entity) {
	s[e] = struct{}{}
}

// PruneDead removes entities with health <= 0. Survivors keep their
// relative order and share the input's backing array.
func PruneDead(entities []*Entity) ([]*Entity, EntitySet) {
	removed := make(EntitySet)
	alive := entities[:0]
	for _, e := range entities {
		if e.Dead() {
			removed.Add(e)
			continue
		}
		alive = append(alive, e)
	}
	clearTail(entities, len(alive))
	return alive, removed
}

// MoveAll moves every entity and drops the ones that left the area.
// On error the result holds every entity not already dropped, in order.
func MoveAll(entities []*Entity, width, height int) ([]*Entity, error) {
	kept := 0
	for i, e := range entities {
		stays, err := e.Move(width, height)
		if err != nil {
			copy(entities[kept:], entities[i:])
			return entities[:kept+len(entities)-i], err
		}
		if stays {
			entities[kept] = e
			kept++
		}
	}
	clearTail(entities, kept)
	return entities[:kept], nil
}

// SortedByZ returns a copy ordered by ascending Z. Equal Z keeps the
// input order.
func SortedByZ(entities []*Entity) []*Entity {
	out := append([]*Entity(nil), entities...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Z < out[j].Z
	})
	return out
}

// clearTail drops references past n so removed entities can be collected.
func clearTail(entities []*Entity, n int) {
	for i := n; i < len(entities); i++ {
		entities[i] = nil
	}
}
