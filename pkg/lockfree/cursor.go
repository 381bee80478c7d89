// Package lockfree provides lock-free primitives for high-performance concurrent processing
package lockfree

import (
	"sync/atomic"
)

// Cursor is a monotonically advancing probe cursor used to derive scan start
// positions. Spreading successive scans across a slot range keeps CAS traffic
// and cache-line contention from concentrating on one hot slot.
type Cursor struct {
	pos      atomic.Uint64
	_padding [7]uint64 //nolint:unused // 56 bytes padding to keep the cursor on its own cache line
}

// Next advances the cursor and returns the next start index in [0, mod).
// mod must be positive.
func (c *Cursor) Next(mod int) int {
	return int((c.pos.Add(1) - 1) % uint64(mod))
}

// Counter provides a lock-free counter for statistics collection
// with atomic operations for thread-safe updates.
type Counter struct {
	value atomic.Uint64
}

// Increment atomically increments the counter by one.
func (c *Counter) Increment() {
	c.value.Add(1)
}

// Add atomically adds the given delta value to the counter.
func (c *Counter) Add(delta uint64) {
	c.value.Add(delta)
}

// Get returns the current value of the counter atomically.
func (c *Counter) Get() uint64 {
	return c.value.Load()
}

// Reset atomically resets the counter to zero.
func (c *Counter) Reset() {
	c.value.Store(0)
}
