// Package entities contains the example entities of the encapsulation lab.
// Every entity keeps its state in unexported fields and enforces its
// invariants in its constructor and mutators; a failed mutation leaves the
// entity unchanged.
package entities

// Counter is an unbounded tally that can only move forward.
// Not safe for concurrent use.
type Counter struct {
	count int
}

// NewCounter creates a counter at zero.
func NewCounter() *Counter {
	return &Counter{}
}

// Increment adds one and returns the new count.
func (c *Counter) Increment() int {
	c.count++
	return c.count
}

// Count returns the current count.
func (c *Counter) Count() int {
	return c.count
}
