package component

import "math/rand/v2"

// FramePolicy picks the next frame when the frame countdown expires.
type FramePolicy int

const (
	// FrameCyclic steps through first..last and wraps.
	FrameCyclic FramePolicy = iota
	// FrameRandom jumps to a random frame in first..last that differs from the current one.
	FrameRandom
)

// Animation is the per-entity frame timing. The frame index itself lives on
// the Sprite so renderers never need to look at it.
type Animation struct {
	First  int
	Last   int
	FPS    float64
	Timer  Timer
	Policy FramePolicy
	Loop   bool

	// Active is false for single-frame states (idle, off); those entities are skipped.
	Active bool
	// Finished is set when a non-looping animation lands on Last.
	Finished bool
}

func NewAnimation(first, last int, fps float64, policy FramePolicy) Animation {
	return Animation{
		First:  first,
		Last:   last,
		FPS:    fps,
		Timer:  FrameTimer(fps),
		Policy: policy,
		Loop:   true,
	}
}

// FrameTimer returns a one-shot countdown of 1/fps seconds.
func FrameTimer(fps float64) Timer {
	if fps <= 0 {
		return NewTimer(0, TimerOnce)
	}
	return NewTimer(1/fps, TimerOnce)
}

// Restart rewinds the countdown so the next frame shows after 1/fps.
func (a *Animation) Restart() {
	a.Timer = FrameTimer(a.FPS)
	a.Finished = false
}

// Next returns the frame that follows index under the animation's policy.
func (a *Animation) Next(index int, rng *rand.Rand) int {
	switch a.Policy {
	case FrameRandom:
		return NextRandomFrame(index, a.First, a.Last, rng)
	default:
		return NextCyclicFrame(index, a.First, a.Last)
	}
}

// NextCyclicFrame returns index+1, wrapping last back to first.
func NextCyclicFrame(index, first, last int) int {
	if index >= last || index < first {
		return first
	}
	return index + 1
}

// NextRandomFrame draws uniformly from first..last until the result differs
// from index. A single-frame range always yields first.
func NextRandomFrame(index, first, last int, rng *rand.Rand) int {
	if first >= last {
		return first
	}
	span := last - first + 1
	for {
		var n int
		if rng != nil {
			n = rng.IntN(span)
		} else {
			n = rand.IntN(span)
		}
		if next := first + n; next != index {
			return next
		}
	}
}
