package pool

import (
	"go.uber.org/zap"
)

// Option configures a Pool at construction time.
type Option[T any] func(*options[T])

type options[T any] struct {
	name            string
	size            int
	cleanup         func(*T) error
	disposeWhenFull bool
	trackLeaks      bool
	logger          *zap.Logger
}

// WithName sets the pool name used in logs and metrics labels.
func WithName[T any](name string) Option[T] {
	return func(o *options[T]) {
		o.name = name
	}
}

// WithSize sets the total slot capacity: one fast slot plus size-1 backing
// slots. Size must be at least 1; New rejects anything smaller. The
// goroutine-local cells are a strict addition on top of this capacity.
func WithSize[T any](size int) Option[T] {
	return func(o *options[T]) {
		o.size = size
	}
}

// WithCleanup sets a hook invoked on every Release before the instance becomes
// visible to future Acquire calls. A non-nil error aborts publication and is
// returned to the Release caller. The hook may run concurrently across
// goroutines and must be safe for concurrent invocation.
func WithCleanup[T any](cleanup func(*T) error) Option[T] {
	return func(o *options[T]) {
		o.cleanup = cleanup
	}
}

// WithDisposeWhenFull makes a saturated pool close overflowed instances that
// implement io.Closer instead of dropping them for garbage collection.
func WithDisposeWhenFull[T any]() Option[T] {
	return func(o *options[T]) {
		o.disposeWhenFull = true
	}
}

// WithLeakTracking arms leak diagnostics: every acquired instance is weakly
// associated with a tracker that reports through the pool's logger if the
// instance is reclaimed without a matching Release. Intended for development
// and test builds; it adds per-operation overhead and is off by default.
func WithLeakTracking[T any]() Option[T] {
	return func(o *options[T]) {
		o.trackLeaks = true
	}
}

// WithLogger sets the logger used for leak reports and overflow disposal
// diagnostics. Defaults to the global logger tagged with the pool name.
func WithLogger[T any](log *zap.Logger) Option[T] {
	return func(o *options[T]) {
		o.logger = log
	}
}
