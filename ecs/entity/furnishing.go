package entity

import (
	"fmt"

	"github.com/milk9111/thescene/ecs"
	"github.com/milk9111/thescene/ecs/component"
	"github.com/milk9111/thescene/ecs/system"
	"github.com/milk9111/thescene/prefabs"
)

func NewFurnishing(w *ecs.World, res Resources, hints HintChecker, name string) (ecs.Entity, error) {
	spec, err := prefabs.LoadFurnishingSpec(name)
	if err != nil {
		return 0, err
	}
	return BuildFurnishing(w, res, hints, spec)
}

// BuildFurnishing creates an interactable scene object that toggles between
// its off and running clips. Its highlight shows until first use unless hints
// remembers it from an earlier run.
func BuildFurnishing(w *ecs.World, res Resources, hints HintChecker, spec prefabs.FurnishingSpec) (ecs.Entity, error) {
	if spec.ID == "" {
		return 0, fmt.Errorf("furnishing %s: missing id", spec.Name)
	}
	if interactableExists(w, spec.ID) {
		return 0, fmt.Errorf("furnishing %s: id %q: %w", spec.Name, spec.ID, component.ErrDuplicateInteractable)
	}

	off, err := buildClip(res, spec.Off)
	if err != nil {
		return 0, fmt.Errorf("furnishing %s: off: %w", spec.Name, err)
	}
	running, err := buildClip(res, spec.Running)
	if err != nil {
		return 0, fmt.Errorf("furnishing %s: running: %w", spec.Name, err)
	}

	var loop *component.LoopAudio
	if spec.Audio != nil && spec.Audio.Clip != "" && res != nil {
		sink, err := res.LoopSink(spec.Audio.Clip, spec.Audio.Volume)
		if err != nil {
			return 0, fmt.Errorf("furnishing %s: audio %q: %w", spec.Name, spec.Audio.Clip, err)
		}
		loop = &component.LoopAudio{Sink: sink, Volume: spec.Audio.Volume, Range: spec.Audio.Range}
	}

	transform := buildTransform(spec.Transform)
	width, height := buildBox(spec.Box, transform.Scale)
	first := hints == nil || !hints.Seen(spec.ID)
	anim := off.Animation()
	anim.Active = false
	furn := &component.Furnishing{
		ID:        spec.ID,
		State:     component.FurnishingOff,
		Off:       off,
		Running:   running,
		BaseScale: transform.Scale,
	}

	e := ecs.CreateEntity(w)
	err = addAll(
		add(w, e, w.Furnishings(), furn),
		add(w, e, w.Transforms(), transform),
		add(w, e, w.Sprites(), spriteFor(off, spec.Layer)),
		add(w, e, w.Animations(), &anim),
		add(w, e, w.Interactables(), &component.Interactable{
			ID:     spec.ID,
			Width:  width,
			Height: height,
			First:  first,
		}),
	)
	if err == nil && loop != nil {
		err = ecs.Add(w, e, w.LoopAudio(), loop)
	}
	if err != nil {
		if loop != nil && loop.Sink != nil {
			loop.Sink.Pause()
		}
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("furnishing %s: %w", spec.Name, err)
	}

	if spec.StartRunning {
		system.SetFurnishingState(w, e, furn, component.FurnishingRunning)
	}
	return e, nil
}

func interactableExists(w *ecs.World, id string) bool {
	found := false
	ecs.ForEach(w, w.Interactables(), func(_ ecs.Entity, ia *component.Interactable) {
		if ia.ID == id {
			found = true
		}
	})
	return found
}
