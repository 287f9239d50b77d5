package entity

import (
	"fmt"

	"github.com/milk9111/thescene/ecs"
	"github.com/milk9111/thescene/ecs/component"
	"github.com/milk9111/thescene/prefabs"
)

// Scene is the set of entities built from one scene prefab.
type Scene struct {
	Title       string
	Help        string
	Player      ecs.Entity
	Furnishings []ecs.Entity
	Backdrops   []ecs.Entity
}

// LoadScene reads a scene prefab and everything it references and builds it
// into w. On error nothing built so far is left behind.
func LoadScene(w *ecs.World, res Resources, hints HintChecker, name string) (*Scene, error) {
	spec, err := prefabs.LoadSceneSpec(name)
	if err != nil {
		return nil, err
	}

	scene := &Scene{Title: spec.Title, Help: spec.Help}
	fail := func(err error) (*Scene, error) {
		UnloadScene(w, scene)
		return nil, fmt.Errorf("scene %s: %w", name, err)
	}

	for _, bd := range spec.Backdrops {
		e, err := BuildBackdrop(w, res, bd)
		if err != nil {
			return fail(err)
		}
		scene.Backdrops = append(scene.Backdrops, e)
	}

	for _, f := range spec.Furnishings {
		e, err := NewFurnishing(w, res, hints, f)
		if err != nil {
			return fail(err)
		}
		scene.Furnishings = append(scene.Furnishings, e)
	}

	if spec.Player != "" {
		pspec, err := prefabs.LoadPlayerSpec(spec.Player)
		if err != nil {
			return fail(err)
		}
		e, err := BuildPlayer(w, res, pspec)
		if err != nil {
			return fail(err)
		}
		scene.Player = e
	}

	return scene, nil
}

// UnloadScene silences and destroys every entity of scene.
func UnloadScene(w *ecs.World, scene *Scene) {
	if w == nil || scene == nil {
		return
	}
	all := make([]ecs.Entity, 0, len(scene.Backdrops)+len(scene.Furnishings)+1)
	all = append(all, scene.Backdrops...)
	all = append(all, scene.Furnishings...)
	if scene.Player.Valid() {
		all = append(all, scene.Player)
	}
	for _, e := range all {
		if audio, ok := w.LoopAudio().Get(e); ok && audio.Sink != nil {
			audio.Sink.Pause()
		}
		ecs.DestroyEntity(w, e)
	}
	scene.Backdrops = nil
	scene.Furnishings = nil
	scene.Player = 0
}

// PlayerPosition returns where the scene's player stands, if it exists.
func (s *Scene) PlayerPosition(w *ecs.World) (component.Transform, bool) {
	if s == nil || !ecs.IsAlive(w, s.Player) {
		return component.Transform{}, false
	}
	t, ok := w.Transforms().Get(s.Player)
	if !ok {
		return component.Transform{}, false
	}
	return *t, true
}
