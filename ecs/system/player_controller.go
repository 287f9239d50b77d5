package system

import (
	"log"

	"github.com/milk9111/thescene/ecs"
	"github.com/milk9111/thescene/ecs/component"
)

// idleFidgetPeriod is how often an idle actor turns around.
const idleFidgetPeriod = 5.0

// maxTransitionsPerTick bounds state changes chained from Enter/Update calls.
const maxTransitionsPerTick = 4

// PlayerStateSystem drives the behavior state machine of every player from
// its input edges and emits interaction events when acting in range.
type PlayerStateSystem struct {
	Debug bool
}

func NewPlayerStateSystem(debug bool) *PlayerStateSystem {
	return &PlayerStateSystem{Debug: debug}
}

func (p *PlayerStateSystem) Update(w *ecs.World) {
	if p == nil || w == nil {
		return
	}

	ecs.ForEach3(w, w.PlayerStateMachines(), w.Players(), w.Inputs(), func(e ecs.Entity, sm *component.PlayerStateMachine, player *component.Player, input *component.Input) {
		sprite, ok := w.Sprites().Get(e)
		if !ok {
			return
		}
		anim, ok := w.Animations().Get(e)
		if !ok {
			return
		}

		ctx := p.context(w, e, sm, player, input, sprite, anim)

		if sm.State == nil {
			if sm.Fidget.Duration <= 0 {
				sm.Fidget = component.NewTimer(idleFidgetPeriod, component.TimerRepeating)
			}
			sm.State = playerStateIdle
			sm.State.Enter(ctx)
		}

		sm.State.HandleInput(ctx)
		p.applyPending(e, sm, ctx)
		sm.State.Update(ctx)
		p.applyPending(e, sm, ctx)
	})
}

func (p *PlayerStateSystem) context(
	w *ecs.World,
	e ecs.Entity,
	sm *component.PlayerStateMachine,
	player *component.Player,
	input *component.Input,
	sprite *component.Sprite,
	anim *component.Animation,
) *component.PlayerStateContext {
	return &component.PlayerStateContext{
		Input:  input,
		Player: player,
		Delta:  w.Clock().Delta(),
		ChangeState: func(state component.PlayerState) {
			sm.Pending = state
		},
		PlayClip: func(clip *component.Clip) {
			playClip(sprite, anim, clip)
		},
		AnimationFinished: func() bool {
			return anim.Finished
		},
		SetFlip: func(flip bool) {
			sprite.FlipX = flip
		},
		ToggleFlip: func() {
			sprite.FlipX = !sprite.FlipX
		},
		TickFidget: func(dt float64) bool {
			sm.Fidget.Tick(dt)
			return sm.Fidget.JustFinished()
		},
		ResetFidget: func() {
			sm.Fidget.Reset()
		},
		InRange: func() (string, bool) {
			r, ok := w.InRange().Get(e)
			if !ok {
				return "", false
			}
			return r.ID, true
		},
		Interact: func(id string) {
			w.Interactions().Push(component.InteractionEvent{ID: id})
		},
	}
}

// applyPending performs queued transitions; a state may re-enter itself.
func (p *PlayerStateSystem) applyPending(e ecs.Entity, sm *component.PlayerStateMachine, ctx *component.PlayerStateContext) {
	for i := 0; i < maxTransitionsPerTick && sm.Pending != nil; i++ {
		next := sm.Pending
		sm.Pending = nil
		if p.Debug {
			log.Printf("player %s: %s -> %s", e, sm.State.Name(), next.Name())
		}
		sm.State.Exit(ctx)
		sm.State = next
		sm.State.Enter(ctx)
	}
	sm.Pending = nil
}

// playClip binds clip to the sprite and restarts its frame countdown. A nil
// clip leaves the current image in place and stops animating.
func playClip(sprite *component.Sprite, anim *component.Animation, clip *component.Clip) {
	if clip == nil {
		anim.Active = false
		anim.Finished = true
		return
	}
	sprite.Image = clip.Image
	sprite.Grid = clip.Grid
	sprite.Frame = clip.First
	*anim = clip.Animation()
}
