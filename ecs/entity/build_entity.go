package entity

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/thescene/ecs"
	"github.com/milk9111/thescene/ecs/component"
	"github.com/milk9111/thescene/prefabs"
)

// Resources hands out the images and looping sounds prefabs refer to by name.
// Image may return nil; the entity is then simply not drawn.
type Resources interface {
	Image(name string) *ebiten.Image
	LoopSink(name string, volume float64) (component.Sink, error)
}

// HintChecker reports interactables that were already used in an earlier run.
type HintChecker interface {
	Seen(id string) bool
}

func buildTransform(spec prefabs.TransformSpec) *component.Transform {
	scale := spec.Scale
	if scale == 0 {
		scale = 1
	}
	t := component.NewTransform(spec.X, spec.Y, scale)
	return &t
}

func buildBox(spec prefabs.BoxSpec, scale float64) (float64, float64) {
	if spec.Scaled {
		return spec.Width * scale, spec.Height * scale
	}
	return spec.Width, spec.Height
}

func buildClip(res Resources, spec prefabs.ClipSpec) (*component.Clip, error) {
	if spec.First < 0 || spec.Last < spec.First {
		return nil, fmt.Errorf("clip %q: bad frame range %d..%d", spec.Sheet, spec.First, spec.Last)
	}
	policy, err := parsePolicy(spec.Policy)
	if err != nil {
		return nil, fmt.Errorf("clip %q: %w", spec.Sheet, err)
	}

	loop := true
	if spec.Loop != nil {
		loop = *spec.Loop
	}

	clip := &component.Clip{
		First:  spec.First,
		Last:   spec.Last,
		FPS:    spec.FPS,
		Loop:   loop,
		Policy: policy,
	}
	if res != nil && spec.Sheet != "" {
		clip.Image = res.Image(spec.Sheet)
	}
	if spec.FrameW > 0 && spec.FrameH > 0 {
		clip.Grid = &component.FrameGrid{FrameW: spec.FrameW, FrameH: spec.FrameH, Columns: spec.Columns}
	}
	return clip, nil
}

func parsePolicy(s string) (component.FramePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "cyclic":
		return component.FrameCyclic, nil
	case "random":
		return component.FrameRandom, nil
	default:
		return 0, fmt.Errorf("unknown frame policy %q", s)
	}
}

func parseDirection(s string) (component.Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "right":
		return component.DirectionRight, nil
	case "left":
		return component.DirectionLeft, nil
	default:
		return 0, fmt.Errorf("unknown direction %q", s)
	}
}

// spriteFor returns a sprite showing the first frame of clip.
func spriteFor(clip *component.Clip, layer int) *component.Sprite {
	return &component.Sprite{
		Image: clip.Image,
		Grid:  clip.Grid,
		Frame: clip.First,
		Tint:  1,
		Layer: layer,
	}
}

// SetEntityTransform moves an entity, keeping its scale.
func SetEntityTransform(w *ecs.World, e ecs.Entity, x, y float64) error {
	t, ok := w.Transforms().Get(e)
	if !ok {
		return fmt.Errorf("entity %s: no transform", e)
	}
	t.Position.X = x
	t.Position.Y = y
	return nil
}

type adder func() error

func addAll(steps ...adder) error {
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

func add[T any](w *ecs.World, e ecs.Entity, store *ecs.SparseSet[T], value *T) adder {
	return func() error {
		return ecs.Add(w, e, store, value)
	}
}
