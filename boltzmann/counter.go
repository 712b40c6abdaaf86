package boltzmann

// Counter is the process-wide monotonic vertex counter from spec §5,
// modeled here as explicit, instance-confined state owned by one
// Grammar rather than an ambient package global (DESIGN NOTES §9,
// "Random-number and counter management").
type Counter struct {
	next int
}

// NewCounter returns a counter whose first Next() call yields 0.
func NewCounter() *Counter { return &Counter{} }

// Next returns the next fresh vertex id and advances the counter.
// Successive calls within one sampling attempt yield strictly
// increasing ids (spec §8, scenario 2).
func (c *Counter) Next() int {
	id := c.next
	c.next++
	return id
}

// Peek returns the id Next() would return without advancing.
func (c *Counter) Peek() int { return c.next }
