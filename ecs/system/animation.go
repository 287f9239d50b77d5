package system

import (
	"math/rand/v2"

	"github.com/milk9111/thescene/ecs"
	"github.com/milk9111/thescene/ecs/component"
)

// AnimationSystem advances sprite frames on each entity's frame countdown.
// The countdown restarts at 1/fps on every advance, wrapping or not.
type AnimationSystem struct {
	rng *rand.Rand
}

// NewAnimationSystem creates the system; rng drives random frame policies and
// may be nil to use the global source.
func NewAnimationSystem(rng *rand.Rand) *AnimationSystem {
	return &AnimationSystem{rng: rng}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	if a == nil || w == nil {
		return
	}
	dt := w.Clock().Delta()

	ecs.ForEach2(w, w.Animations(), w.Sprites(), func(e ecs.Entity, anim *component.Animation, sprite *component.Sprite) {
		// Single-frame states have nothing to advance.
		if !anim.Active {
			return
		}

		anim.Timer.Tick(dt)
		if !anim.Timer.JustFinished() {
			return
		}

		// A one-shot holds its last frame for a full countdown before it ends.
		if !anim.Loop && sprite.Frame >= anim.Last {
			sprite.Frame = anim.Last
			anim.Finished = true
			anim.Active = false
			return
		}

		sprite.Frame = anim.Next(sprite.Frame, a.rng)
		anim.Timer = component.FrameTimer(anim.FPS)

		if player, ok := w.Players().Get(e); ok {
			sprite.FlipX = player.Facing == component.DirectionLeft
		}
	})
}
