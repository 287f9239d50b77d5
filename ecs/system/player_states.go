package system

import "github.com/milk9111/thescene/ecs/component"

// Player state singletons (avoid allocations on transitions).
var (
	playerStateIdle      component.PlayerState = &playerIdleState{}
	playerStateWalkLeft  component.PlayerState = &playerWalkState{dir: component.DirectionLeft}
	playerStateWalkRight component.PlayerState = &playerWalkState{dir: component.DirectionRight}
	playerStateAct       component.PlayerState = &playerActState{}
)

func walkState(dir component.Direction) component.PlayerState {
	if dir == component.DirectionLeft {
		return playerStateWalkLeft
	}
	return playerStateWalkRight
}

// PlayerStateFor returns the singleton for a behavior.
func PlayerStateFor(b component.Behavior) component.PlayerState {
	switch b {
	case component.BehaviorWalkingLeft:
		return playerStateWalkLeft
	case component.BehaviorWalkingRight:
		return playerStateWalkRight
	case component.BehaviorActing:
		return playerStateAct
	default:
		return playerStateIdle
	}
}

type playerIdleState struct{}

type playerWalkState struct {
	dir component.Direction
}

type playerActState struct{}

// handleCommonInput applies the transitions every state shares: the action key
// always starts acting, a direction key starts walking that way.
func handleCommonInput(ctx *component.PlayerStateContext, current component.PlayerState) bool {
	if ctx.Input.ActionPressed {
		ctx.ChangeState(playerStateAct)
		return true
	}
	for _, dir := range []component.Direction{component.DirectionLeft, component.DirectionRight} {
		if ctx.Input.Pressed(dir) && current != walkState(dir) {
			ctx.ChangeState(walkState(dir))
			return true
		}
	}
	return false
}

// heldDirection returns the direction whose key is down, preferring the way
// the actor already faces.
func heldDirection(ctx *component.PlayerStateContext) (component.Direction, bool) {
	if ctx.Input == nil || ctx.ChangeState == nil {
		return 0, false
	}
	if ctx.Input.Held(ctx.Player.Facing) {
		return ctx.Player.Facing, true
	}
	if opposite := ctx.Player.Facing.Opposite(); ctx.Input.Held(opposite) {
		return opposite, true
	}
	return 0, false
}

func (playerIdleState) Name() string                 { return "idle" }
func (playerIdleState) Behavior() component.Behavior { return component.BehaviorIdle }
func (playerIdleState) Enter(ctx *component.PlayerStateContext) {
	ctx.PlayClip(ctx.Player.Stand)
	ctx.SetFlip(ctx.Player.Facing == component.DirectionLeft)
	ctx.ResetFidget()
	// Coming out of acting with a direction still down resumes walking.
	if dir, ok := heldDirection(ctx); ok {
		ctx.ChangeState(walkState(dir))
	}
}
func (playerIdleState) Exit(ctx *component.PlayerStateContext) {
	ctx.ResetFidget()
}
func (s *playerIdleState) HandleInput(ctx *component.PlayerStateContext) {
	if ctx == nil || ctx.Input == nil || ctx.ChangeState == nil {
		return
	}
	handleCommonInput(ctx, s)
}
func (playerIdleState) Update(ctx *component.PlayerStateContext) {
	if ctx == nil || ctx.TickFidget == nil {
		return
	}
	if ctx.TickFidget(ctx.Delta) {
		ctx.ToggleFlip()
	}
}

func (s *playerWalkState) Name() string { return "walk_" + s.dir.String() }
func (s *playerWalkState) Behavior() component.Behavior {
	if s.dir == component.DirectionLeft {
		return component.BehaviorWalkingLeft
	}
	return component.BehaviorWalkingRight
}
func (s *playerWalkState) Enter(ctx *component.PlayerStateContext) {
	ctx.Player.Facing = s.dir
	// PlayClip rewinds the frame countdown so walking animates right away.
	ctx.PlayClip(ctx.Player.Walk)
	ctx.SetFlip(s.dir == component.DirectionLeft)
}
func (s *playerWalkState) Exit(ctx *component.PlayerStateContext) {}
func (s *playerWalkState) HandleInput(ctx *component.PlayerStateContext) {
	if ctx == nil || ctx.Input == nil || ctx.ChangeState == nil {
		return
	}
	if handleCommonInput(ctx, s) {
		return
	}
	if !ctx.Input.Released(s.dir) {
		return
	}
	// Letting go of the walking key hands over to the other key if it is
	// still down, otherwise the actor stops.
	if ctx.Input.Held(s.dir.Opposite()) {
		ctx.ChangeState(walkState(s.dir.Opposite()))
		return
	}
	if !ctx.Input.Held(s.dir) {
		ctx.ChangeState(playerStateIdle)
	}
}
func (s *playerWalkState) Update(ctx *component.PlayerStateContext) {}

func (playerActState) Name() string                 { return "act" }
func (playerActState) Behavior() component.Behavior { return component.BehaviorActing }
func (playerActState) Enter(ctx *component.PlayerStateContext) {
	if ctx.Player.Act != nil {
		ctx.PlayClip(ctx.Player.Act)
	}
	if ctx.InRange == nil || ctx.Interact == nil {
		return
	}
	if id, ok := ctx.InRange(); ok {
		ctx.Interact(id)
	}
}
func (playerActState) Exit(ctx *component.PlayerStateContext) {}
func (s *playerActState) HandleInput(ctx *component.PlayerStateContext) {
	if ctx == nil || ctx.Input == nil || ctx.ChangeState == nil {
		return
	}
	handleCommonInput(ctx, s)
}
func (playerActState) Update(ctx *component.PlayerStateContext) {
	if ctx == nil || ctx.ChangeState == nil {
		return
	}
	if ctx.Player.Act == nil || ctx.AnimationFinished() {
		ctx.ChangeState(playerStateIdle)
	}
}
