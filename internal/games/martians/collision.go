package martians

// Overlaps reports whether two collidable entities share at least one cell.
// Touching edges count as overlap.
func Overlaps(a, b *Entity) bool {
	if !a.Collidable || !b.Collidable {
		return false
	}
	return a.Rect().Intersects(b.Rect())
}

// ResolveCollisions checks every unordered pair once. Overlapping entities
// with different labels each lose the other's damage. Damage is read
// before either health changes, so the outcome does not depend on order.
// It returns the number of damaging contacts.
func ResolveCollisions(entities []*Entity) int {
	hits := 0
	for i := 0; i < len(entities); i++ {
		a := entities[i]
		for j := i + 1; j < len(entities); j++ {
			b := entities[j]
			if a.Label == b.Label || !Overlaps(a, b) {
				continue
			}
			da, db := b.Damage, a.Damage
			a.Health -= da
			b.Health -= db
			hits++
		}
	}
	return hits
}
