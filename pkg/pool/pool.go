package pool

import (
	"io"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/vortexlabs/vortex/pkg/lockfree"
	"github.com/vortexlabs/vortex/pkg/logger"
	"github.com/vortexlabs/vortex/pkg/vortexerrors"
)

// DefaultSize is the slot capacity used when no explicit size is configured.
const DefaultSize = 64

// Pool is a bounded, lock-free recycler for instances of *T.
// It never blocks: every operation is a single deterministic attempt bounded
// by one linear scan of the backing slots plus, at worst, a factory call.
//
// Acquire probes the goroutine-local cell, then the fast slot, then the
// backing slot array, and finally falls back to the factory. Release publishes
// in the same order and applies the overflow policy when every slot is
// occupied. Reuse order is unspecified; the only guarantee is that an instance
// resident in the pool is never handed to two callers at once.
//
// A Pool must not be copied after first use.
type Pool[T any] struct {
	name            string
	factory         func() *T
	cleanup         func(*T) error
	disposeWhenFull bool

	// fast is the single hot shared slot, checked before the backing array.
	fast atomic.Pointer[T]

	// slots is the backing array of size-1 shared slots. Slots move
	// empty->occupied and occupied->empty only through successful CAS.
	slots []atomic.Pointer[T]

	// Dedicated probe cursors keep acquire and release scans starting at
	// rotating positions instead of hammering slot zero.
	acquireCursor lockfree.Cursor
	releaseCursor lockfree.Cursor

	// locals caches one instance per scheduler-local cell with no shared
	// atomics on the hit path. Torn down by Close.
	locals sync.Pool
	closed atomic.Bool

	leaks *leakTable[T]
	stats counters
	log   *zap.Logger
}

// localCell holds at most one cached instance. A cell is exclusively owned
// between locals.Get and locals.Put, so its field needs no atomics.
type localCell[T any] struct {
	obj *T
}

// New creates a pool around the given factory.
//
// The factory is required and is invoked whenever Acquire cannot satisfy the
// request from cached storage; a panicking factory propagates to the Acquire
// caller. Behavior is adjusted through options:
//
//	p, err := pool.New(func() *bytes.Buffer { return &bytes.Buffer{} },
//	    pool.WithName[bytes.Buffer]("scratch"),
//	    pool.WithSize[bytes.Buffer](128),
//	    pool.WithCleanup(func(b *bytes.Buffer) error { b.Reset(); return nil }),
//	)
func New[T any](factory func() *T, opts ...Option[T]) (*Pool[T], error) {
	if factory == nil {
		return nil, vortexerrors.New(vortexerrors.ErrorTypeValidation, "pool factory is required")
	}

	o := options[T]{
		name: "pool",
		size: DefaultSize,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if o.size < 1 {
		return nil, vortexerrors.New(vortexerrors.ErrorTypeValidation, "pool size must be at least 1").
			WithDetail("size", o.size)
	}

	log := o.logger
	if log == nil {
		log = logger.With(zap.String("pool", o.name))
	}

	p := &Pool[T]{
		name:            o.name,
		factory:         factory,
		cleanup:         o.cleanup,
		disposeWhenFull: o.disposeWhenFull,
		slots:           make([]atomic.Pointer[T], o.size-1),
		log:             log,
	}
	p.locals.New = func() interface{} {
		return new(localCell[T])
	}
	if o.trackLeaks {
		p.leaks = newLeakTable[T](log, &p.stats)
	}

	return p, nil
}

// Name returns the configured pool name.
func (p *Pool[T]) Name() string {
	return p.name
}

// Acquire returns a recycled instance, or a freshly constructed one when no
// cached instance is available. It never fails itself; a panic raised by the
// factory propagates to the caller with the pool state unaffected.
func (p *Pool[T]) Acquire() *T {
	p.stats.acquired.Increment()

	// Goroutine-local cell: no shared-memory traffic on a hit.
	if !p.closed.Load() {
		cell := p.locals.Get().(*localCell[T])
		obj := cell.obj
		cell.obj = nil
		p.locals.Put(cell)
		if obj != nil {
			p.stats.localHits.Increment()
			p.arm(obj)
			return obj
		}
	}

	// Fast slot: one CAS, racing other acquirers. A lost race falls through.
	if obj := p.fast.Load(); obj != nil {
		if p.fast.CompareAndSwap(obj, nil) {
			p.stats.fastHits.Increment()
			p.arm(obj)
			return obj
		}
	}

	if obj := p.acquireSlow(); obj != nil {
		p.stats.slowHits.Increment()
		p.arm(obj)
		return obj
	}

	obj := p.factory()
	p.stats.constructed.Increment()
	p.arm(obj)
	return obj
}

// acquireSlow scans the backing array once, starting at a rotating index,
// claiming the first occupied slot it wins.
func (p *Pool[T]) acquireSlow() *T {
	n := len(p.slots)
	if n == 0 {
		return nil
	}

	start := p.acquireCursor.Next(n)
	for i := 0; i < n; i++ {
		slot := &p.slots[(start+i)%n]
		if obj := slot.Load(); obj != nil {
			if slot.CompareAndSwap(obj, nil) {
				return obj
			}
		}
	}
	return nil
}

// Release returns an instance to the pool. A nil obj is a no-op. The cleanup
// hook, when configured, runs before publication; if it fails the instance is
// not published and the error is returned, which shrinks effective capacity
// under sustained cleanup failures.
//
// Releasing an instance that is still in use elsewhere, or releasing the same
// instance twice, violates the pool's slot invariant and is undefined.
func (p *Pool[T]) Release(obj *T) error {
	if obj == nil {
		return nil
	}

	p.stats.released.Increment()
	p.disarm(obj)

	if p.cleanup != nil {
		if err := p.cleanup(obj); err != nil {
			return vortexerrors.Wrap(err, vortexerrors.ErrorTypeCleanup, "instance cleanup failed")
		}
	}

	p.publish(obj)
	return nil
}

// publish stores a cleaned instance back into the pool, applying the overflow
// policy when every slot is occupied.
func (p *Pool[T]) publish(obj *T) {
	// Goroutine-local cell first.
	if !p.closed.Load() {
		cell := p.locals.Get().(*localCell[T])
		if cell.obj == nil {
			cell.obj = obj
			p.locals.Put(cell)
			return
		}
		p.locals.Put(cell)
	}

	// Fast slot: only a writer that observed empty attempts the CAS; the
	// loser of a concurrent publish falls through to the array.
	if p.fast.Load() == nil {
		if p.fast.CompareAndSwap(nil, obj) {
			return
		}
	}

	if p.releaseSlow(obj) {
		return
	}

	p.overflow(obj)
}

// releaseSlow scans the backing array once from a rotating start index and
// publishes into the first slot it observes empty and wins.
func (p *Pool[T]) releaseSlow(obj *T) bool {
	n := len(p.slots)
	if n == 0 {
		return false
	}

	start := p.releaseCursor.Next(n)
	for i := 0; i < n; i++ {
		slot := &p.slots[(start+i)%n]
		if slot.Load() == nil {
			if slot.CompareAndSwap(nil, obj) {
				return true
			}
		}
	}
	return false
}

// overflow handles a release that found the pool saturated. The instance is
// dropped for ordinary collection or, when the pool was configured with
// WithDisposeWhenFull and the instance is an io.Closer, closed synchronously.
// This is the only place the pool deterministically finalizes an instance.
func (p *Pool[T]) overflow(obj *T) {
	if p.disposeWhenFull {
		if closer, ok := any(obj).(io.Closer); ok {
			if err := closer.Close(); err != nil {
				p.log.Debug("overflow disposal failed", zap.Error(err))
			}
			p.stats.overflowDisposed.Increment()
			return
		}
	}
	p.stats.overflowDropped.Increment()
}

// Prefill constructs up to count instances and stores them into observed-empty
// slots, fast slot first, to reduce first-use latency. A count <= 0 is a no-op.
//
// Prefill uses plain read-then-write rather than CAS and is meant for warm-up
// before traffic starts. Interleaving it with live Acquire/Release calls may
// silently skip or duplicate fills, transiently overwriting an instance that
// was about to be claimed.
func (p *Pool[T]) Prefill(count int) {
	if count <= 0 {
		return
	}

	if p.fast.Load() == nil {
		p.fast.Store(p.factory())
		p.stats.constructed.Increment()
		p.stats.prefilled.Increment()
		count--
	}

	for i := range p.slots {
		if count == 0 {
			return
		}
		if p.slots[i].Load() == nil {
			p.slots[i].Store(p.factory())
			p.stats.constructed.Increment()
			p.stats.prefilled.Increment()
			count--
		}
	}
}

// Close tears down the goroutine-local cache. Shared slots and instances still
// outstanding are untouched; the pool remains usable without the local layer.
func (p *Pool[T]) Close() {
	p.closed.Store(true)
}
