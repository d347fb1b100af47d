package engine

// Clock accumulates frame deltas into elapsed time.
type Clock struct {
	elapsed float64
	frames  int
}

// Advance adds dt seconds and returns the new elapsed time.
// Negative deltas count as zero so that elapsed time never decreases.
func (c *Clock) Advance(dt float64) float64 {
	if dt > 0 {
		c.elapsed += dt
	}
	c.frames++
	return c.elapsed
}

func (c *Clock) Elapsed() float64 { return c.elapsed }
func (c *Clock) Frames() int      { return c.frames }
