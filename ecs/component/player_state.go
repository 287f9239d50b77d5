package component

// Behavior is the discrete state an actor is in.
type Behavior int

const (
	BehaviorIdle Behavior = iota
	BehaviorWalkingLeft
	BehaviorWalkingRight
	BehaviorActing
)

func (b Behavior) String() string {
	switch b {
	case BehaviorWalkingLeft:
		return "walking_left"
	case BehaviorWalkingRight:
		return "walking_right"
	case BehaviorActing:
		return "acting"
	default:
		return "idle"
	}
}

// Walking reports whether the behavior moves the actor.
func (b Behavior) Walking() bool {
	return b == BehaviorWalkingLeft || b == BehaviorWalkingRight
}

// PlayerState defines the interface for player state machine states.
// Each state owns its own enter/exit, input handling, and update logic.
type PlayerState interface {
	Name() string
	Behavior() Behavior
	Enter(ctx *PlayerStateContext)
	Exit(ctx *PlayerStateContext)
	HandleInput(ctx *PlayerStateContext)
	Update(ctx *PlayerStateContext)
}

// PlayerStateContext provides controlled access to the actor for a state.
// It uses callbacks to avoid tight coupling to the ECS package.
type PlayerStateContext struct {
	Input  *Input
	Player *Player
	Delta  float64

	ChangeState       func(state PlayerState)
	PlayClip          func(clip *Clip)
	AnimationFinished func() bool
	SetFlip           func(flip bool)
	ToggleFlip        func()
	TickFidget        func(dt float64) bool
	ResetFidget       func()
	InRange           func() (string, bool)
	Interact          func(id string)
}

// PlayerStateMachine stores the active and pending states for the player.
type PlayerStateMachine struct {
	State   PlayerState
	Pending PlayerState
	// Fidget flips the idle sprite every period while idle.
	Fidget Timer
}

// Behavior returns the current behavior, idle before the first tick.
func (m *PlayerStateMachine) Behavior() Behavior {
	if m == nil || m.State == nil {
		return BehaviorIdle
	}
	return m.State.Behavior()
}
