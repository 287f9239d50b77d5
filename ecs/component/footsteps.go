package component

// Foot alternates while walking.
type Foot int

const (
	FootLeft Foot = iota
	FootRight
)

// Other returns the opposite foot.
func (f Foot) Other() Foot {
	if f == FootLeft {
		return FootRight
	}
	return FootLeft
}

// Footsteps plays step sounds while an actor walks.
type Footsteps struct {
	Timer Timer
	Foot  Foot

	WalkPeriod  float64
	DelayPeriod float64
	Volume      float64
	LeftPool    []string
	RightPool   []string
}

func NewFootsteps(walkPeriod, delayPeriod, volume float64, left, right []string) Footsteps {
	return Footsteps{
		Timer:       NewTimer(delayPeriod, TimerOnce),
		WalkPeriod:  walkPeriod,
		DelayPeriod: delayPeriod,
		Volume:      volume,
		LeftPool:    left,
		RightPool:   right,
	}
}

// Pool returns the samples for the given foot.
func (f *Footsteps) Pool(foot Foot) []string {
	if foot == FootLeft {
		return f.LeftPool
	}
	return f.RightPool
}
