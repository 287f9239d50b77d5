package ecs

import "github.com/milk9111/thescene/ecs/component"

func ensureStore[T any](w *World, slot **SparseSet[T]) *SparseSet[T] {
	if *slot == nil {
		s := &SparseSet[T]{}
		*slot = s
		w.removers = append(w.removers, func(e Entity) { s.Remove(e) })
	}
	return *slot
}

// Transforms returns the transform storage.
func (w *World) Transforms() *SparseSet[component.Transform] {
	if w == nil {
		return nil
	}
	return ensureStore(w, &w.transforms)
}

// Sprites returns the sprite storage.
func (w *World) Sprites() *SparseSet[component.Sprite] {
	if w == nil {
		return nil
	}
	return ensureStore(w, &w.sprites)
}

// Animations returns the frame animation storage.
func (w *World) Animations() *SparseSet[component.Animation] {
	if w == nil {
		return nil
	}
	return ensureStore(w, &w.animations)
}

// Players returns the player tuning storage.
func (w *World) Players() *SparseSet[component.Player] {
	if w == nil {
		return nil
	}
	return ensureStore(w, &w.players)
}

// PlayerTags returns the player tag storage.
func (w *World) PlayerTags() *SparseSet[component.PlayerTag] {
	if w == nil {
		return nil
	}
	return ensureStore(w, &w.playerTags)
}

// PlayerStateMachines returns the behavior state storage.
func (w *World) PlayerStateMachines() *SparseSet[component.PlayerStateMachine] {
	if w == nil {
		return nil
	}
	return ensureStore(w, &w.stateMachines)
}

// Inputs returns the input state storage.
func (w *World) Inputs() *SparseSet[component.Input] {
	if w == nil {
		return nil
	}
	return ensureStore(w, &w.inputs)
}

// Interactors returns the interactor storage.
func (w *World) Interactors() *SparseSet[component.Interactor] {
	if w == nil {
		return nil
	}
	return ensureStore(w, &w.interactors)
}

// Interactables returns the interactable storage.
func (w *World) Interactables() *SparseSet[component.Interactable] {
	if w == nil {
		return nil
	}
	return ensureStore(w, &w.interactables)
}

// InRange returns the interactor to interactable edges.
func (w *World) InRange() *SparseSet[component.InRange] {
	if w == nil {
		return nil
	}
	return ensureStore(w, &w.inRange)
}

// Highlights returns the highlight storage.
func (w *World) Highlights() *SparseSet[component.Highlight] {
	if w == nil {
		return nil
	}
	return ensureStore(w, &w.highlights)
}

// Furnishings returns the furnishing storage.
func (w *World) Furnishings() *SparseSet[component.Furnishing] {
	if w == nil {
		return nil
	}
	return ensureStore(w, &w.furnishings)
}

// LoopAudio returns the looping audio storage.
func (w *World) LoopAudio() *SparseSet[component.LoopAudio] {
	if w == nil {
		return nil
	}
	return ensureStore(w, &w.loopAudio)
}

// Listeners returns the audio listener storage.
func (w *World) Listeners() *SparseSet[component.Listener] {
	if w == nil {
		return nil
	}
	return ensureStore(w, &w.listeners)
}

// Footsteps returns the footstep storage.
func (w *World) Footsteps() *SparseSet[component.Footsteps] {
	if w == nil {
		return nil
	}
	return ensureStore(w, &w.footsteps)
}
