package system

import (
	"math/rand/v2"

	"github.com/milk9111/thescene/ecs"
	"github.com/milk9111/thescene/ecs/component"
)

// FootstepSystem plays alternating footstep one-shots while an actor walks.
type FootstepSystem struct {
	spawner component.SoundSpawner
	rng     *rand.Rand
}

func NewFootstepSystem(spawner component.SoundSpawner, rng *rand.Rand) *FootstepSystem {
	return &FootstepSystem{spawner: spawner, rng: rng}
}

func (f *FootstepSystem) Update(w *ecs.World) {
	if f == nil || w == nil {
		return
	}
	dt := w.Clock().Delta()

	ecs.ForEach2(w, w.Footsteps(), w.PlayerStateMachines(), func(_ ecs.Entity, steps *component.Footsteps, sm *component.PlayerStateMachine) {
		if !sm.Behavior().Walking() {
			// The first step after starting to walk again comes quickly.
			steps.Timer = component.NewTimer(steps.DelayPeriod, component.TimerOnce)
			return
		}

		steps.Timer.Tick(dt)
		if !steps.Timer.JustFinished() {
			return
		}

		if pool := steps.Pool(steps.Foot); len(pool) > 0 && f.spawner != nil {
			f.spawner.PlayOneShot(pool[f.pick(len(pool))], steps.Volume)
		}
		steps.Foot = steps.Foot.Other()
		steps.Timer = component.NewTimer(steps.WalkPeriod, component.TimerOnce)
	})
}

func (f *FootstepSystem) pick(n int) int {
	if f.rng != nil {
		return f.rng.IntN(n)
	}
	return rand.IntN(n)
}
