package json

import (
	"bytes"
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRecord struct {
	ID    string            `json:"id"`
	Value float64           `json:"value"`
	Tags  []string          `json:"tags"`
	Meta  map[string]string `json:"meta,omitempty"`
}

func sample(i int) *testRecord {
	return &testRecord{
		ID:    "rec",
		Value: float64(i) * 1.5,
		Tags:  []string{"a", "b"},
		Meta:  map[string]string{"source": "test"},
	}
}

func TestMarshalMatchesStdlib(t *testing.T) {
	rec := sample(3)

	got, err := Marshal(rec)
	require.NoError(t, err)

	want, err := json.Marshal(rec)
	require.NoError(t, err)

	assert.JSONEq(t, string(want), string(got))
}

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	rec := sample(7)

	data, err := Marshal(rec)
	require.NoError(t, err)

	var decoded testRecord
	require.NoError(t, Unmarshal(data, &decoded))
	assert.Equal(t, *rec, decoded)
}

func TestMarshalResultIsRetainable(t *testing.T) {
	first, err := Marshal(sample(1))
	require.NoError(t, err)
	snapshot := string(first)

	// Subsequent marshals reuse the scratch buffer; the earlier result must
	// not be clobbered.
	for i := 0; i < 10; i++ {
		_, err := Marshal(sample(i + 100))
		require.NoError(t, err)
	}
	assert.Equal(t, snapshot, string(first))
}

func TestMarshalReusesBuffers(t *testing.T) {
	before := BufferStats()
	for i := 0; i < 50; i++ {
		_, err := Marshal(sample(i))
		require.NoError(t, err)
	}
	after := BufferStats()

	assert.Equal(t, after.Acquired-before.Acquired, uint64(50))
	assert.Less(t, after.Constructed-before.Constructed, uint64(50),
		"expected most marshals to reuse a pooled buffer")
}

func TestMarshalWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, MarshalWrite(&buf, sample(2)))

	var decoded testRecord
	require.NoError(t, Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, *sample(2), decoded)
}

func TestMarshalError(t *testing.T) {
	_, err := Marshal(func() {})
	require.Error(t, err)
}

func TestMarshalConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				data, err := Marshal(sample(i))
				if err != nil {
					t.Error(err)
					return
				}
				var decoded testRecord
				if err := Unmarshal(data, &decoded); err != nil {
					t.Error(err)
					return
				}
			}
		}()
	}
	wg.Wait()
}
