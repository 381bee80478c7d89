// Package json provides high-performance JSON serialization backed by the
// vortex buffer recycler. Encoding buffers circulate through a bounded pool
// instead of being reallocated per call, which keeps steady-state marshal
// traffic allocation-free apart from the returned payload.
package json

import (
	"bytes"
	"io"

	gojson "github.com/goccy/go-json"

	"github.com/vortexlabs/vortex/pkg/pool"
)

// encodeBuffers recycles the scratch buffers used by Marshal.
var encodeBuffers = mustPool(pool.New(
	func() *bytes.Buffer {
		return bytes.NewBuffer(make([]byte, 0, 4096))
	},
	pool.WithName[bytes.Buffer]("json_encode_buffers"),
	pool.WithCleanup(func(b *bytes.Buffer) error {
		b.Reset()
		return nil
	}),
))

func mustPool[T any](p *pool.Pool[T], err error) *pool.Pool[T] {
	if err != nil {
		panic(err)
	}
	return p
}

// Marshal encodes v to JSON using a pooled scratch buffer. The returned slice
// is freshly allocated and safe to retain.
func Marshal(v interface{}) ([]byte, error) {
	buf := encodeBuffers.Acquire()
	defer func() { _ = encodeBuffers.Release(buf) }()

	if err := gojson.NewEncoder(buf).Encode(v); err != nil {
		return nil, err
	}

	b := buf.Bytes()
	// Encoder.Encode terminates the payload with a newline.
	if n := len(b); n > 0 && b[n-1] == '\n' {
		b = b[:n-1]
	}

	out := make([]byte, len(b))
	copy(out, b)
	return out, nil
}

// MarshalWrite encodes v directly to w, avoiding the intermediate copy that
// Marshal performs.
func MarshalWrite(w io.Writer, v interface{}) error {
	return gojson.NewEncoder(w).Encode(v)
}

// Unmarshal decodes data into v.
func Unmarshal(data []byte, v interface{}) error {
	return gojson.Unmarshal(data, v)
}

// BufferStats reports the encode buffer pool's recycling counters.
func BufferStats() pool.Stats {
	return encodeBuffers.Stats()
}
