package component

// Key is one of the keys the scene reacts to.
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyAction
)

// Input stores per-tick key edges for an entity.
type Input struct {
	LeftPressed   bool
	LeftReleased  bool
	LeftHeld      bool
	RightPressed  bool
	RightReleased bool
	RightHeld     bool
	ActionPressed bool
}

// Pressed reports a key-down edge for the given direction.
func (i *Input) Pressed(d Direction) bool {
	if d == DirectionLeft {
		return i.LeftPressed
	}
	return i.RightPressed
}

// Released reports a key-up edge for the given direction.
func (i *Input) Released(d Direction) bool {
	if d == DirectionLeft {
		return i.LeftReleased
	}
	return i.RightReleased
}

// Held reports whether the key for the given direction is down.
func (i *Input) Held(d Direction) bool {
	if d == DirectionLeft {
		return i.LeftHeld
	}
	return i.RightHeld
}
