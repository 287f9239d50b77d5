package system

import (
	"log"

	"github.com/milk9111/thescene/ecs"
	"github.com/milk9111/thescene/ecs/component"
)

// HintRecorder remembers interactables that have been used at least once.
type HintRecorder interface {
	MarkSeen(id string) error
}

// FurnishingSystem toggles furnishings addressed by this tick's interaction
// events between off and running, and couples the audio sink to the state.
type FurnishingSystem struct {
	hints HintRecorder
	Debug bool
}

func NewFurnishingSystem(hints HintRecorder, debug bool) *FurnishingSystem {
	return &FurnishingSystem{hints: hints, Debug: debug}
}

func (f *FurnishingSystem) Update(w *ecs.World) {
	if f == nil || w == nil {
		return
	}

	for _, evt := range w.Interactions().Items() {
		matched := false
		ecs.ForEach(w, w.Furnishings(), func(e ecs.Entity, furn *component.Furnishing) {
			if furn.ID != evt.ID {
				return
			}
			matched = true
			f.toggle(w, e, furn)
		})
		if !matched && f.Debug {
			log.Printf("furnishing: no furnishing for interaction %q", evt.ID)
		}
	}
}

func (f *FurnishingSystem) toggle(w *ecs.World, e ecs.Entity, furn *component.Furnishing) {
	switch furn.State {
	case component.FurnishingOff:
		SetFurnishingState(w, e, furn, component.FurnishingRunning)
	default:
		SetFurnishingState(w, e, furn, component.FurnishingOff)
	}
	// a furnishing that started running has still never been used
	f.clearFirst(w, e, furn.ID)
	if f.Debug {
		log.Printf("furnishing %s: now %s", furn.ID, furn.State)
	}
}

// clearFirst suppresses the highlight for good once a furnishing was used.
func (f *FurnishingSystem) clearFirst(w *ecs.World, e ecs.Entity, id string) {
	ia, ok := w.Interactables().Get(e)
	if !ok || !ia.First {
		return
	}
	ia.First = false
	w.Highlights().Remove(e)
	if f.hints == nil {
		return
	}
	if err := f.hints.MarkSeen(id); err != nil {
		log.Printf("furnishing %s: remember hint: %v", id, err)
	}
}

// SetFurnishingState swaps the sprite, animation and sink of a furnishing to
// match state. Pausing keeps the sink's playback position.
func SetFurnishingState(w *ecs.World, e ecs.Entity, furn *component.Furnishing, state component.FurnishingState) {
	furn.State = state

	clip := furn.Off
	if state == component.FurnishingRunning {
		clip = furn.Running
	}
	sprite, hasSprite := w.Sprites().Get(e)
	anim, hasAnim := w.Animations().Get(e)
	if hasSprite && hasAnim && clip != nil {
		playClip(sprite, anim, clip)
		anim.Active = state == component.FurnishingRunning && clip.First != clip.Last
	} else if hasAnim {
		anim.Active = false
	}

	audio, ok := w.LoopAudio().Get(e)
	if !ok || audio.Sink == nil {
		return
	}
	if state == component.FurnishingRunning {
		audio.Sink.Play()
	} else {
		audio.Sink.Pause()
	}
}
