package ecs

// Clock supplies elapsed and delta time, in seconds, for the current tick.
type Clock struct {
	elapsed float64
	delta   float64
}

// Advance starts a new tick that lasted dt seconds. Negative deltas count as zero.
func (c *Clock) Advance(dt float64) {
	if c == nil {
		return
	}
	if dt < 0 {
		dt = 0
	}
	c.delta = dt
	c.elapsed += dt
}

// Elapsed returns the total simulated time.
func (c *Clock) Elapsed() float64 {
	if c == nil {
		return 0
	}
	return c.elapsed
}

// Delta returns the length of the current tick.
func (c *Clock) Delta() float64 {
	if c == nil {
		return 0
	}
	return c.delta
}
