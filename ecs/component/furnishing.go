package component

// FurnishingState is the binary state of a furnishing.
type FurnishingState int

const (
	FurnishingOff FurnishingState = iota
	FurnishingRunning
)

func (s FurnishingState) String() string {
	if s == FurnishingRunning {
		return "running"
	}
	return "off"
}

// Furnishing is a scene object that toggles between a static off sprite and
// an animated, sounding running state.
type Furnishing struct {
	ID    string
	State FurnishingState

	Off     *Clip
	Running *Clip
	// BaseScale is the neutral transform scale that highlighting pulses around.
	BaseScale float64
}
