package barrier

import "fmt"

// Centralized is the simplest barrier: a single shared arrival count and
// sense flag. Cheap and correct for small N, but every arrival touches
// the same cache line, so it doesn't scale past a handful of threads.
type Centralized struct {
	n     int
	count word
	sense word
}

// NewCentralized builds a centralized barrier for n participants.
func NewCentralized(n int) *Centralized {
	if n < 1 {
		panic("barrier: n must be >= 1")
	}
	return &Centralized{n: n}
}

// CentralizedState is one participant's private episode tracking.
type CentralizedState struct {
	expected uint32
}

// NewState returns a fresh per-thread state, expected sense initially 0.
func (c *Centralized) NewState() *CentralizedState {
	return &CentralizedState{}
}

// Wait blocks until all n participants have called Wait for this
// episode, then returns. Safe to call again for the next episode without
// any reset step.
func (c *Centralized) Wait(s *CentralizedState) {
	s.expected ^= allOnes

	prior := faaUint(&c.count, 1)
	if prior == uint32(c.n-1) {
		// last arrival: reset count, then publish the new sense.
		// The store order matters: the next episode must observe
		// count == 0 before it can observe the new sense value.
		storeUint(&c.count, 0)
		storeUint(&c.sense, s.expected)
		return
	}

	for loadUint(&c.sense) != s.expected {
		stall()
	}
}

// Sense returns the barrier's current published sense value, for tests
// and diagnostics only.
func (c *Centralized) Sense() uint32 { return loadUint(&c.sense) }

// Count returns the barrier's current arrival count, for tests and
// diagnostics only.
func (c *Centralized) Count() uint32 { return loadUint(&c.count) }

// String reports the participant count and current sense/count pair.
func (c *Centralized) String() string {
	return fmt.Sprintf("Centralized(n=%d, sense=%d, count=%d)", c.n, c.Sense(), c.Count())
}
