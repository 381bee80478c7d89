package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/vortexlabs/vortex/pkg/pool"
)

type item struct {
	n int
}

func newItemPool(t *testing.T, name string) *pool.Pool[item] {
	t.Helper()
	p, err := pool.New(func() *item { return &item{} },
		pool.WithName[item](name),
		pool.WithSize[item](8),
	)
	require.NoError(t, err)
	return p
}

func TestCollectorExportsPoolCounters(t *testing.T) {
	p := newItemPool(t, "widgets")
	c := NewCollector(p)

	obj := p.Acquire()
	require.NoError(t, p.Release(obj))
	p.Acquire()

	expected := `
# HELP vortex_pool_acquired_total Total number of acquisitions
# TYPE vortex_pool_acquired_total counter
vortex_pool_acquired_total{pool="widgets"} 2
# HELP vortex_pool_released_total Total number of releases
# TYPE vortex_pool_released_total counter
vortex_pool_released_total{pool="widgets"} 1
`
	err := testutil.CollectAndCompare(c, strings.NewReader(expected),
		"vortex_pool_acquired_total", "vortex_pool_released_total")
	require.NoError(t, err)
}

func TestCollectorMetricCount(t *testing.T) {
	p := newItemPool(t, "widgets")
	c := NewCollector(p)

	// 9 descriptors: hits carries 3 series and overflow 2, so 12 series total.
	require.Equal(t, 12, testutil.CollectAndCount(c))
}

func TestRegisterAddsPool(t *testing.T) {
	a := newItemPool(t, "a")
	b := newItemPool(t, "b")

	c := NewCollector(a)
	c.Register(b)

	require.Equal(t, 24, testutil.CollectAndCount(c))
}

func TestCollectorLint(t *testing.T) {
	p := newItemPool(t, "widgets")
	problems, err := testutil.CollectAndLint(NewCollector(p))
	require.NoError(t, err)
	require.Empty(t, problems)
}
