package component

// Direction is the way an actor faces. The zero value faces right.
type Direction int

const (
	DirectionRight Direction = iota
	DirectionLeft
)

// Sign returns +1 for right and -1 for left.
func (d Direction) Sign() float64 {
	if d == DirectionLeft {
		return -1
	}
	return 1
}

// Opposite returns the other direction.
func (d Direction) Opposite() Direction {
	if d == DirectionLeft {
		return DirectionRight
	}
	return DirectionLeft
}

func (d Direction) String() string {
	if d == DirectionLeft {
		return "left"
	}
	return "right"
}

// Player holds the tuning and clips of the controllable actor.
type Player struct {
	Speed  float64
	Facing Direction

	Stand *Clip
	Walk  *Clip
	// Act may be nil; acting then ends on the tick it starts.
	Act *Clip
}

// PlayerTag marks the controllable actor.
type PlayerTag struct{}
