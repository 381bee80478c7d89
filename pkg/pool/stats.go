package pool

import (
	"github.com/vortexlabs/vortex/pkg/lockfree"
)

// counters is the pool's internal lock-free statistics block.
type counters struct {
	acquired    lockfree.Counter
	released    lockfree.Counter
	constructed lockfree.Counter

	localHits lockfree.Counter
	fastHits  lockfree.Counter
	slowHits  lockfree.Counter

	overflowDropped  lockfree.Counter
	overflowDisposed lockfree.Counter
	prefilled        lockfree.Counter

	leaksReported     lockfree.Counter
	untrackedReleases lockfree.Counter
}

// Stats is a point-in-time snapshot of pool activity. Individual fields are
// read atomically but the snapshot as a whole is not; under concurrent
// traffic the fields may be mutually inconsistent by a few operations.
type Stats struct {
	// Acquired is the total number of Acquire calls.
	Acquired uint64
	// Released is the total number of non-nil Release calls.
	Released uint64
	// Constructed is the number of factory invocations (misses plus prefill).
	Constructed uint64

	// LocalHits counts acquisitions satisfied by the goroutine-local cell.
	LocalHits uint64
	// FastHits counts acquisitions satisfied by the fast slot.
	FastHits uint64
	// SlowHits counts acquisitions satisfied by the backing slot array.
	SlowHits uint64

	// OverflowDropped counts released instances dropped because the pool was full.
	OverflowDropped uint64
	// OverflowDisposed counts released instances closed because the pool was full.
	OverflowDisposed uint64
	// Prefilled counts instances constructed by Prefill.
	Prefilled uint64

	// LeaksReported counts instances reclaimed without a matching Release.
	LeaksReported uint64
	// UntrackedReleases counts Release calls for instances with no live tracker.
	UntrackedReleases uint64
}

// Reused is the number of acquisitions satisfied from cached storage.
func (s Stats) Reused() uint64 {
	return s.LocalHits + s.FastHits + s.SlowHits
}

// InUse is the approximate number of instances currently checked out.
func (s Stats) InUse() int64 {
	return int64(s.Acquired) - int64(s.Released)
}

// Stats returns a snapshot of the pool's counters.
func (p *Pool[T]) Stats() Stats {
	return Stats{
		Acquired:          p.stats.acquired.Get(),
		Released:          p.stats.released.Get(),
		Constructed:       p.stats.constructed.Get(),
		LocalHits:         p.stats.localHits.Get(),
		FastHits:          p.stats.fastHits.Get(),
		SlowHits:          p.stats.slowHits.Get(),
		OverflowDropped:   p.stats.overflowDropped.Get(),
		OverflowDisposed:  p.stats.overflowDisposed.Get(),
		Prefilled:         p.stats.prefilled.Get(),
		LeaksReported:     p.stats.leaksReported.Get(),
		UntrackedReleases: p.stats.untrackedReleases.Get(),
	}
}
