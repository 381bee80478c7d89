// Package pool implements a bounded, lock-free object recycler that is
// central to vortex's allocation-avoidance design. It keeps expensive
// reference-type instances circulating between callers instead of letting
// them fall to the garbage collector, with near-zero overhead on the common
// acquire/release path.
//
// # Architecture
//
// A Pool[T] layers three stores, probed cheapest-first:
//
//   - Goroutine-local cell: one instance per scheduler-local cell, touched
//     with no shared-memory atomics at all.
//   - Fast slot: a single hot shared slot claimed with one compare-and-swap,
//     shortcutting the common lightly-contended case.
//   - Backing slot array: size-1 shared slots scanned linearly from a
//     rotating start index, so compare-and-swap attempts and cache-line
//     traffic spread across the array instead of piling onto one slot.
//
// Acquire falls back to the configured factory only after all three stores
// miss; Release publishes in the same order and applies the overflow policy
// (drop, or close via io.Closer with WithDisposeWhenFull) when every slot is
// occupied. No operation blocks, retries, or takes a lock; each is bounded by
// a single scan of the array plus at most one factory call.
//
// # Ordering and Ownership
//
// Reuse order is deliberately unspecified. The pool guarantees only that an
// instance resident in any of its stores has no outstanding holder, enforced
// by the compare-and-swap claim protocol on shared slots and by exclusive
// cell ownership on the local path. The pool does not synchronize the pooled
// object's own state, and releasing an instance twice is undefined.
//
// # Leak Diagnostics
//
// WithLeakTracking weakly associates every acquired instance with a tracker
// recording its acquisition site. An instance reclaimed by the runtime
// without a matching Release is reported through the pool's logger. This is
// a development aid, off by default.
//
// # Usage
//
//	p, err := pool.New(
//	    func() *bytes.Buffer { return bytes.NewBuffer(make([]byte, 0, 4096)) },
//	    pool.WithName[bytes.Buffer]("render"),
//	    pool.WithSize[bytes.Buffer](256),
//	    pool.WithCleanup(func(b *bytes.Buffer) error { b.Reset(); return nil }),
//	)
//	if err != nil {
//	    return err
//	}
//	p.Prefill(32)
//
//	buf := p.Acquire()
//	defer p.Release(buf)
package pool
