package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/thescene/ecs"
	"github.com/milk9111/thescene/ecs/component"
)

// KeySource answers key edge queries for the fixed key set.
type KeySource interface {
	IsKeyJustPressed(k component.Key) bool
	IsKeyJustReleased(k component.Key) bool
	IsKeyPressed(k component.Key) bool
}

type InputSystem struct {
	keys KeySource
}

func NewInputSystem(keys KeySource) *InputSystem {
	if keys == nil {
		keys = EbitenKeys{}
	}
	return &InputSystem{keys: keys}
}

func (i *InputSystem) Update(w *ecs.World) {
	if i == nil || w == nil {
		return
	}

	input := component.Input{
		LeftPressed:   i.keys.IsKeyJustPressed(component.KeyLeft),
		LeftReleased:  i.keys.IsKeyJustReleased(component.KeyLeft),
		LeftHeld:      i.keys.IsKeyPressed(component.KeyLeft),
		RightPressed:  i.keys.IsKeyJustPressed(component.KeyRight),
		RightReleased: i.keys.IsKeyJustReleased(component.KeyRight),
		RightHeld:     i.keys.IsKeyPressed(component.KeyRight),
		ActionPressed: i.keys.IsKeyJustPressed(component.KeyAction),
	}

	ecs.ForEach(w, w.Inputs(), func(_ ecs.Entity, in *component.Input) {
		*in = input
	})
}

// EbitenKeys reads the keyboard through ebiten. Arrow keys are primary, with
// A/D and Space as alternates.
type EbitenKeys struct{}

var ebitenKeyMap = map[component.Key][]ebiten.Key{
	component.KeyLeft:   {ebiten.KeyArrowLeft, ebiten.KeyA},
	component.KeyRight:  {ebiten.KeyArrowRight, ebiten.KeyD},
	component.KeyAction: {ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeySpace},
}

func (EbitenKeys) IsKeyJustPressed(k component.Key) bool {
	for _, key := range ebitenKeyMap[k] {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	return false
}

func (EbitenKeys) IsKeyJustReleased(k component.Key) bool {
	for _, key := range ebitenKeyMap[k] {
		if inpututil.IsKeyJustReleased(key) {
			return true
		}
	}
	return false
}

func (EbitenKeys) IsKeyPressed(k component.Key) bool {
	for _, key := range ebitenKeyMap[k] {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}
