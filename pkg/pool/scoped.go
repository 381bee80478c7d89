package pool

// Do acquires an instance, invokes fn with it, and releases the instance on
// every exit path, including a panic inside fn. It returns fn's error or, when
// fn succeeds, any cleanup error raised by the release.
//
//	err := p.Do(func(b *bytes.Buffer) error {
//	    b.WriteString("payload")
//	    return send(b.Bytes())
//	})
func (p *Pool[T]) Do(fn func(*T) error) (err error) {
	obj := p.Acquire()
	defer func() {
		if relErr := p.Release(obj); relErr != nil && err == nil {
			err = relErr
		}
	}()
	return fn(obj)
}

// DoWithCleanup behaves like Do but additionally runs cleanupFn on every exit
// path before the instance is released, for per-call teardown that does not
// belong in the pool-wide cleanup hook.
func (p *Pool[T]) DoWithCleanup(fn func(*T) error, cleanupFn func(*T)) (err error) {
	obj := p.Acquire()
	defer func() {
		if cleanupFn != nil {
			cleanupFn(obj)
		}
		if relErr := p.Release(obj); relErr != nil && err == nil {
			err = relErr
		}
	}()
	return fn(obj)
}

// Scoped acquires an instance from p, invokes fn with the caller's state and
// the instance, and releases the instance on every exit path. The state
// parameter avoids closure allocation on hot call sites.
func Scoped[T, S any](p *Pool[T], state S, fn func(S, *T) error) (err error) {
	obj := p.Acquire()
	defer func() {
		if relErr := p.Release(obj); relErr != nil && err == nil {
			err = relErr
		}
	}()
	return fn(state, obj)
}
