package entity

import (
	"fmt"

	"github.com/milk9111/thescene/ecs"
	"github.com/milk9111/thescene/ecs/component"
	"github.com/milk9111/thescene/prefabs"
)

// BuildBackdrop creates a static, non-interactive sprite.
func BuildBackdrop(w *ecs.World, res Resources, spec prefabs.BackdropSpec) (ecs.Entity, error) {
	sprite := &component.Sprite{Tint: 1, Layer: spec.Layer}
	if res != nil {
		sprite.Image = res.Image(spec.Sheet)
	}

	e := ecs.CreateEntity(w)
	err := addAll(
		add(w, e, w.Transforms(), buildTransform(spec.Transform)),
		add(w, e, w.Sprites(), sprite),
	)
	if err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("backdrop %s: %w", spec.Name, err)
	}
	return e, nil
}
