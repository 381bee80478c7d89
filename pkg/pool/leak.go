package pool

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
	"weak"

	"go.uber.org/zap"
)

// leakTable is the optional diagnostics layer armed by WithLeakTracking.
// Every acquired instance is weakly associated with a tracker carrying its
// acquisition site; if the runtime reclaims the instance while the tracker is
// still live, the instance was never released and a leak is reported through
// the pool's logger. The weak keys keep the table from pinning outstanding
// instances in memory.
type leakTable[T any] struct {
	log      *zap.Logger
	stats    *counters
	trackers sync.Map // weak.Pointer[T] -> *leakTracker
}

// leakTracker records where an outstanding instance was acquired.
type leakTracker struct {
	origin  string
	cleanup runtime.Cleanup
}

func newLeakTable[T any](log *zap.Logger, stats *counters) *leakTable[T] {
	return &leakTable[T]{
		log:   log,
		stats: stats,
	}
}

// arm associates obj with a fresh tracker. The cleanup fires only if obj is
// reclaimed while its tracker is still registered, i.e. without a Release.
func (lt *leakTable[T]) arm(obj *T) {
	if obj == nil {
		return
	}

	t := &leakTracker{origin: captureOrigin(4)}
	wp := weak.Make(obj)
	lt.trackers.Store(wp, t)
	t.cleanup = runtime.AddCleanup(obj, func(key weak.Pointer[T]) {
		v, ok := lt.trackers.LoadAndDelete(key)
		if !ok {
			return
		}
		lt.stats.leaksReported.Increment()
		lt.log.Warn("pooled instance reclaimed without release",
			zap.String("acquired_at", v.(*leakTracker).origin))
	}, wp)
}

// disarm disposes the tracker for obj. It returns false when no tracker was
// found, which means the instance was never tracked or was released twice.
func (lt *leakTable[T]) disarm(obj *T) bool {
	v, ok := lt.trackers.LoadAndDelete(weak.Make(obj))
	if !ok {
		return false
	}
	v.(*leakTracker).cleanup.Stop()
	return true
}

// forget silently retires the tracker for obj, if any.
func (lt *leakTable[T]) forget(obj *T) {
	if v, ok := lt.trackers.LoadAndDelete(weak.Make(obj)); ok {
		v.(*leakTracker).cleanup.Stop()
	}
}

// arm registers obj with the leak table when diagnostics are enabled.
func (p *Pool[T]) arm(obj *T) {
	if p.leaks != nil {
		p.leaks.arm(obj)
	}
}

// disarm disposes obj's tracker when diagnostics are enabled, reporting a
// release that has no matching tracked acquisition.
func (p *Pool[T]) disarm(obj *T) {
	if p.leaks == nil {
		return
	}
	if !p.leaks.disarm(obj) {
		p.stats.untrackedReleases.Increment()
		p.log.Warn("released instance was not tracked")
	}
}

// ForgetTracked intentionally retires leak tracking for an instance the caller
// will not return to the pool, for example when swapping it for a larger
// replacement. The optional replacement is armed in its place. No slot state
// is touched, and the call is a no-op unless the pool was constructed with
// WithLeakTracking.
func (p *Pool[T]) ForgetTracked(old, replacement *T) {
	if p.leaks == nil {
		return
	}
	if old != nil {
		p.leaks.forget(old)
	}
	if replacement != nil {
		p.leaks.arm(replacement)
	}
}

// captureOrigin formats the caller stack, skipping the given number of frames.
func captureOrigin(skip int) string {
	pcs := make([]uintptr, 16)
	n := runtime.Callers(skip, pcs)
	if n == 0 {
		return "unknown"
	}

	var b strings.Builder
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		fmt.Fprintf(&b, "%s %s:%d\n", frame.Function, frame.File, frame.Line)
		if !more {
			break
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}
