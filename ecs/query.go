package ecs

// ForEach calls fn for every live entity in a. The entity list is copied
// first, so fn may add or remove components.
func ForEach[A any](w *World, a *SparseSet[A], fn func(Entity, *A)) {
	if w == nil || a == nil || fn == nil {
		return
	}
	for _, e := range snapshot(a.Entities()) {
		va, ok := a.Get(e)
		if !ok || !IsAlive(w, e) {
			continue
		}
		fn(e, va)
	}
}

// ForEach2 calls fn for every live entity present in both a and b.
func ForEach2[A, B any](w *World, a *SparseSet[A], b *SparseSet[B], fn func(Entity, *A, *B)) {
	if w == nil || a == nil || b == nil || fn == nil {
		return
	}
	for _, e := range snapshot(a.Entities()) {
		va, ok := a.Get(e)
		if !ok || !IsAlive(w, e) {
			continue
		}
		vb, ok := b.Get(e)
		if !ok {
			continue
		}
		fn(e, va, vb)
	}
}

// ForEach3 calls fn for every live entity present in a, b and c.
func ForEach3[A, B, C any](w *World, a *SparseSet[A], b *SparseSet[B], c *SparseSet[C], fn func(Entity, *A, *B, *C)) {
	if w == nil || a == nil || b == nil || c == nil || fn == nil {
		return
	}
	for _, e := range snapshot(a.Entities()) {
		va, ok := a.Get(e)
		if !ok || !IsAlive(w, e) {
			continue
		}
		vb, ok := b.Get(e)
		if !ok {
			continue
		}
		vc, ok := c.Get(e)
		if !ok {
			continue
		}
		fn(e, va, vb, vc)
	}
}

// First returns the first live entity in a.
func First[A any](w *World, a *SparseSet[A]) (Entity, bool) {
	if w == nil || a == nil {
		return 0, false
	}
	for _, e := range a.Entities() {
		if IsAlive(w, e) {
			return e, true
		}
	}
	return 0, false
}

func snapshot(ents []Entity) []Entity {
	if len(ents) == 0 {
		return nil
	}
	return append([]Entity(nil), ents...)
}
