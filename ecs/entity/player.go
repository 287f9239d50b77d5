package entity

import (
	"fmt"

	"github.com/milk9111/thescene/ecs"
	"github.com/milk9111/thescene/ecs/component"
	"github.com/milk9111/thescene/prefabs"
)

func NewPlayer(w *ecs.World, res Resources) (ecs.Entity, error) {
	spec, err := prefabs.LoadPlayerSpec("player.yaml")
	if err != nil {
		return 0, err
	}
	return BuildPlayer(w, res, spec)
}

func NewPlayerAt(w *ecs.World, res Resources, x, y float64) (ecs.Entity, error) {
	e, err := NewPlayer(w, res)
	if err != nil {
		return 0, err
	}
	if err := SetEntityTransform(w, e, x, y); err != nil {
		return 0, fmt.Errorf("player: override transform: %w", err)
	}
	return e, nil
}

// BuildPlayer creates the controllable actor: it walks, acts, hears spatial
// audio and can come into range of interactables.
func BuildPlayer(w *ecs.World, res Resources, spec prefabs.PlayerSpec) (ecs.Entity, error) {
	stand, err := buildClip(res, spec.Stand)
	if err != nil {
		return 0, fmt.Errorf("player %s: stand: %w", spec.Name, err)
	}
	walk, err := buildClip(res, spec.Walk)
	if err != nil {
		return 0, fmt.Errorf("player %s: walk: %w", spec.Name, err)
	}
	var act *component.Clip
	if spec.Act != nil {
		if act, err = buildClip(res, *spec.Act); err != nil {
			return 0, fmt.Errorf("player %s: act: %w", spec.Name, err)
		}
	}
	facing, err := parseDirection(spec.Facing)
	if err != nil {
		return 0, fmt.Errorf("player %s: %w", spec.Name, err)
	}

	transform := buildTransform(spec.Transform)
	width, height := buildBox(spec.Interactor, transform.Scale)
	anim := stand.Animation()
	sprite := spriteFor(stand, spec.Layer)
	sprite.FlipX = facing == component.DirectionLeft

	e := ecs.CreateEntity(w)
	err = addAll(
		add(w, e, w.PlayerTags(), &component.PlayerTag{}),
		add(w, e, w.Players(), &component.Player{
			Speed:  spec.Speed,
			Facing: facing,
			Stand:  stand,
			Walk:   walk,
			Act:    act,
		}),
		add(w, e, w.Inputs(), &component.Input{}),
		add(w, e, w.PlayerStateMachines(), &component.PlayerStateMachine{}),
		add(w, e, w.Transforms(), transform),
		add(w, e, w.Sprites(), sprite),
		add(w, e, w.Animations(), &anim),
		add(w, e, w.Interactors(), &component.Interactor{Width: width, Height: height}),
		add(w, e, w.Listeners(), &component.Listener{}),
	)
	if err == nil && spec.Footsteps != nil {
		fs := spec.Footsteps
		steps := component.NewFootsteps(fs.WalkPeriod, fs.DelayPeriod, fs.Volume, fs.Left, fs.Right)
		err = ecs.Add(w, e, w.Footsteps(), &steps)
	}
	if err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("player %s: %w", spec.Name, err)
	}
	return e, nil
}
