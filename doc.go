// Package vortex provides a bounded, lock-free object pooling toolkit for
// latency-sensitive Go services.
//
// The core of the module is pool.Pool[T], a fixed-capacity recycler for
// pointer instances that never blocks: acquisition and release are wait-free
// in the common case and fall back to a short lock-free probe under
// contention. Instances that do not fit within the configured capacity are
// dropped (or disposed) rather than queued, so the pool's footprint is
// bounded by construction.
//
// # Architecture
//
// Each pool layers three recycling tiers in front of the user factory:
//
// 1. Goroutine-local cells: a single-instance cache reached without any
// atomic operations, serving tight acquire/release loops on one goroutine.
//
// 2. Fast slot: one shared hot slot claimed and published with a single
// compare-and-swap, covering low-contention cross-goroutine traffic.
//
// 3. Slot array: a fixed array of slots scanned from a rotating cursor so
// that concurrent acquirers and releasers spread across the array instead of
// colliding on one index.
//
// Only when all three tiers miss does the pool invoke the factory.
//
// # Quick Start
//
// Create a pool, acquire and release instances:
//
//	import "github.com/vortexlabs/vortex/pkg/pool"
//
//	type Scratch struct{ buf []byte }
//
//	p, err := pool.New(
//	    func() *Scratch { return &Scratch{buf: make([]byte, 0, 4096)} },
//	    pool.WithName("scratch"),
//	    pool.WithSize(128),
//	    pool.WithCleanup(func(s *Scratch) error {
//	        s.buf = s.buf[:0]
//	        return nil
//	    }),
//	)
//	if err != nil {
//	    return err
//	}
//
//	s := p.Acquire()
//	defer p.Release(s)
//
// Or let the pool manage the lifecycle:
//
//	err = pool.Do(p, func(s *Scratch) error {
//	    s.buf = append(s.buf, payload...)
//	    return flush(s.buf)
//	})
//
// # Key Packages
//
//	pkg/pool         - Bounded lock-free object pool with scoped helpers
//	pkg/bufferpool   - Size-bucketed byte buffer pools built on pkg/pool
//	pkg/json         - JSON codec backed by pooled encode buffers
//	pkg/metrics      - Prometheus collector exposing pool statistics
//	pkg/config       - YAML pool settings with env-var substitution
//	pkg/lockfree     - Padded atomic cursors and counters
//	pkg/logger       - Structured logging built on zap
//	pkg/vortexerrors - Typed error handling with stack capture
//
// # Diagnostics
//
// Pools track acquisition, release, construction, per-tier hit and overflow
// counts through lock-free counters; Stats returns a consistent-enough
// snapshot for dashboards and tests, and metrics.NewCollector exports the
// same numbers to Prometheus.
//
// With WithLeakTracking enabled, instances that become unreachable without a
// matching Release are reported through the pool's logger together with the
// stack that acquired them. Tracking rides on weak references and runtime
// cleanups, so it never extends instance lifetimes.
//
// # Configuration
//
// Pool settings can be declared in YAML and loaded at startup:
//
//	pools:
//	  - name: scratch
//	    size: 128
//	    prefill: 32
//	    track_leaks: true
//	logging:
//	  level: info
//	  encoding: json
//
// Environment variables are supported with ${VAR_NAME} syntax.
package vortex
