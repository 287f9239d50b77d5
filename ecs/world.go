package ecs

import (
	"fmt"

	"github.com/milk9111/thescene/ecs/component"
)

// World owns entities, their typed component stores, the clock, the per-tick
// event queues and the system order. Systems receive it by reference; there is
// no package-level world state.
type World struct {
	entities  entityStore
	scheduler Scheduler
	clock     Clock

	interactions Queue[component.InteractionEvent]
	proximity    Queue[component.ProximityEvent]

	// removers drop an entity from every store created so far.
	removers []func(Entity)

	transforms    *SparseSet[component.Transform]
	sprites       *SparseSet[component.Sprite]
	animations    *SparseSet[component.Animation]
	players       *SparseSet[component.Player]
	playerTags    *SparseSet[component.PlayerTag]
	stateMachines *SparseSet[component.PlayerStateMachine]
	inputs        *SparseSet[component.Input]
	interactors   *SparseSet[component.Interactor]
	interactables *SparseSet[component.Interactable]
	inRange       *SparseSet[component.InRange]
	highlights    *SparseSet[component.Highlight]
	furnishings   *SparseSet[component.Furnishing]
	loopAudio     *SparseSet[component.LoopAudio]
	listeners     *SparseSet[component.Listener]
	footsteps     *SparseSet[component.Footsteps]
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{}
}

// CreateEntity allocates a new entity.
func CreateEntity(w *World) Entity {
	if w == nil {
		return 0
	}
	return w.entities.create()
}

// DestroyEntity removes every component of e and frees its slot.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, remove := range w.removers {
		remove(e)
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func IsAlive(w *World, e Entity) bool {
	return w != nil && w.entities.isAlive(e)
}

// Entities returns every live entity.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	return w.entities.entities()
}

// Add stores value on e in the given store.
func Add[T any](w *World, e Entity, store *SparseSet[T], value *T) error {
	if !IsAlive(w, e) {
		return fmt.Errorf("add %T to %s: %w", value, e, component.ErrEntityNotAlive)
	}
	if value == nil {
		return fmt.Errorf("add %T to %s: %w", value, e, component.ErrNilComponent)
	}
	store.Set(e, value)
	return nil
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if w == nil {
		return
	}
	w.scheduler.Add(s)
}

// Systems returns the registered systems in update order.
func (w *World) Systems() []System {
	if w == nil {
		return nil
	}
	return w.scheduler.Systems()
}

// Tick advances the clock by dt seconds and runs one update.
func (w *World) Tick(dt float64) {
	if w == nil {
		return
	}
	w.clock.Advance(dt)
	w.Update()
}

// Update runs all systems once, then drops this tick's events.
func (w *World) Update() {
	if w == nil {
		return
	}
	w.scheduler.Update(w)
	w.interactions.flush()
	w.proximity.flush()
}

// Clock returns the simulation clock.
func (w *World) Clock() *Clock {
	if w == nil {
		return nil
	}
	return &w.clock
}

// Interactions returns the interaction event queue.
func (w *World) Interactions() *Queue[component.InteractionEvent] {
	if w == nil {
		return nil
	}
	return &w.interactions
}

// ProximityEvents returns the in-range transition queue.
func (w *World) ProximityEvents() *Queue[component.ProximityEvent] {
	if w == nil {
		return nil
	}
	return &w.proximity
}
