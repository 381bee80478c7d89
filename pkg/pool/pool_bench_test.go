package pool

import (
	"testing"
)

type payload struct {
	data [256]byte
}

func BenchmarkAcquireRelease(b *testing.B) {
	p, err := New(func() *payload { return &payload{} }, WithSize[payload](64))
	if err != nil {
		b.Fatal(err)
	}
	p.Prefill(64)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		obj := p.Acquire()
		if err := p.Release(obj); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAcquireReleaseParallel(b *testing.B) {
	p, err := New(func() *payload { return &payload{} }, WithSize[payload](256))
	if err != nil {
		b.Fatal(err)
	}
	p.Prefill(256)
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			obj := p.Acquire()
			if err := p.Release(obj); err != nil {
				b.Fatal(err)
			}
		}
	})
}

func BenchmarkAcquireReleaseContended(b *testing.B) {
	// Capacity 2 forces most traffic through the fast slot and a single
	// backing slot, exercising the CAS race paths.
	p, err := New(func() *payload { return &payload{} }, WithSize[payload](2))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			obj := p.Acquire()
			if err := p.Release(obj); err != nil {
				b.Fatal(err)
			}
		}
	})
}

func BenchmarkBaselineAllocate(b *testing.B) {
	for i := 0; i < b.N; i++ {
		obj := &payload{}
		_ = obj
	}
}
