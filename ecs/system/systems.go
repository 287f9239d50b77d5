package system

import (
	"math/rand/v2"

	"github.com/milk9111/thescene/ecs"
	"github.com/milk9111/thescene/ecs/component"
)

// Options carries the collaborators the scene systems need. Nil fields fall
// back to ebiten keys, silence, no hint memory and a time-seeded generator.
type Options struct {
	Keys    KeySource
	Spawner component.SoundSpawner
	Hints   HintRecorder
	Rand    *rand.Rand
	Debug   bool
}

// AddSceneSystems registers every scene system on w in tick order. Proximity
// runs before the state machine, so an action sees the target of the
// positions that were last drawn.
func AddSceneSystems(w *ecs.World, opts Options) {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	w.AddSystem(NewInputSystem(opts.Keys))
	w.AddSystem(NewProximitySystem())
	w.AddSystem(NewPlayerStateSystem(opts.Debug))
	w.AddSystem(NewMovementSystem())
	w.AddSystem(NewFootstepSystem(opts.Spawner, rng))
	w.AddSystem(NewAnimationSystem(rng))
	w.AddSystem(NewFurnishingSystem(opts.Hints, opts.Debug))
	w.AddSystem(NewHighlightSystem())
	w.AddSystem(NewAudioSystem())
	w.AddSystem(NewProximityLogSystem(opts.Debug))
}
