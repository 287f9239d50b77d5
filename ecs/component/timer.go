package component

// TimerMode selects what happens when a timer reaches its duration.
type TimerMode int

const (
	// TimerOnce stops at its duration and stays finished until reset.
	TimerOnce TimerMode = iota
	// TimerRepeating wraps around and fires again every duration.
	TimerRepeating
)

// Timer counts seconds up to Duration.
type Timer struct {
	Duration float64
	Elapsed  float64
	Mode     TimerMode

	finished     bool
	justFinished bool
}

func NewTimer(duration float64, mode TimerMode) Timer {
	return Timer{Duration: duration, Mode: mode}
}

// Tick advances the timer by dt seconds.
func (t *Timer) Tick(dt float64) {
	t.justFinished = false
	if dt < 0 {
		dt = 0
	}

	if t.Mode == TimerOnce {
		if t.finished {
			return
		}
		t.Elapsed += dt
		if t.Elapsed >= t.Duration {
			t.Elapsed = t.Duration
			t.finished = true
			t.justFinished = true
		}
		return
	}

	t.Elapsed += dt
	if t.Duration <= 0 {
		t.Elapsed = 0
		t.justFinished = true
		return
	}
	if t.Elapsed >= t.Duration {
		for t.Elapsed >= t.Duration {
			t.Elapsed -= t.Duration
		}
		t.justFinished = true
	}
}

// JustFinished reports whether the last Tick crossed the duration.
func (t *Timer) JustFinished() bool {
	return t.justFinished
}

// Finished reports whether a TimerOnce has run out.
func (t *Timer) Finished() bool {
	return t.finished
}

// Reset rewinds the timer to zero, keeping its duration and mode.
func (t *Timer) Reset() {
	t.Elapsed = 0
	t.finished = false
	t.justFinished = false
}

// Remaining returns the seconds left before the timer fires.
func (t *Timer) Remaining() float64 {
	r := t.Duration - t.Elapsed
	if r < 0 {
		return 0
	}
	return r
}
