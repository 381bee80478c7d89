package pool_test

import (
	"bytes"
	"fmt"

	"github.com/vortexlabs/vortex/pkg/pool"
)

// Example demonstrates the basic acquire/release round trip.
func Example() {
	p, err := pool.New(
		func() *bytes.Buffer { return bytes.NewBuffer(make([]byte, 0, 1024)) },
		pool.WithName[bytes.Buffer]("render"),
		pool.WithSize[bytes.Buffer](64),
		pool.WithCleanup(func(b *bytes.Buffer) error { b.Reset(); return nil }),
	)
	if err != nil {
		panic(err)
	}

	buf := p.Acquire()
	defer p.Release(buf)

	buf.WriteString("hello, pool")
	fmt.Println(buf.String())

	// Output:
	// hello, pool
}

// ExamplePool_Do shows release-on-all-paths via the scoped helper.
func ExamplePool_Do() {
	p, err := pool.New(
		func() *bytes.Buffer { return &bytes.Buffer{} },
		pool.WithCleanup(func(b *bytes.Buffer) error { b.Reset(); return nil }),
	)
	if err != nil {
		panic(err)
	}

	err = p.Do(func(b *bytes.Buffer) error {
		b.WriteString("scoped")
		fmt.Println(b.String())
		return nil
	})
	if err != nil {
		panic(err)
	}

	// Output:
	// scoped
}

// ExamplePool_Prefill warms the pool before traffic starts.
func ExamplePool_Prefill() {
	constructed := 0
	p, err := pool.New(
		func() *bytes.Buffer { constructed++; return &bytes.Buffer{} },
		pool.WithSize[bytes.Buffer](8),
	)
	if err != nil {
		panic(err)
	}

	p.Prefill(4)
	fmt.Println(constructed)

	// Output:
	// 4
}
