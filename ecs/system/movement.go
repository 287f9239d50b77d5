package system

import (
	"github.com/milk9111/thescene/ecs"
	"github.com/milk9111/thescene/ecs/component"
)

// MovementSystem displaces walking actors by speed*dt along their direction.
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

func (m *MovementSystem) Update(w *ecs.World) {
	if m == nil || w == nil {
		return
	}
	dt := w.Clock().Delta()

	ecs.ForEach3(w, w.PlayerStateMachines(), w.Players(), w.Transforms(), func(_ ecs.Entity, sm *component.PlayerStateMachine, player *component.Player, t *component.Transform) {
		switch sm.Behavior() {
		case component.BehaviorWalkingLeft:
			t.Position.X -= player.Speed * dt
		case component.BehaviorWalkingRight:
			t.Position.X += player.Speed * dt
		}
	})
}
