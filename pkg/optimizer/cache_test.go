package optimizer

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCostCacheComputesOnce(t *testing.T) {
	cache := NewCostCache()
	var computed atomic.Int64

	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cost, err := cache.GetOrCompute(1, 2, func() (float64, error) {
				computed.Add(1)
				return 42, nil
			})
			assert.NoError(t, err)
			assert.Equal(t, 42.0, cost)
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), computed.Load())
	assert.Equal(t, int64(1), cache.Misses())
	assert.Equal(t, int64(63), cache.Hits())
	assert.Equal(t, 1, cache.Len())

	cost, ok := cache.Get(1, 2)
	assert.True(t, ok)
	assert.Equal(t, 42.0, cost)
	_, ok = cache.Get(2, 1)
	assert.False(t, ok)
}

func TestCostCacheDoesNotStoreErrors(t *testing.T) {
	cache := NewCostCache()
	boom := errors.New("boom")

	_, err := cache.GetOrCompute(1, 2, func() (float64, error) { return 0, boom })
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, cache.Len())

	cost, err := cache.GetOrCompute(1, 2, func() (float64, error) { return 7, nil })
	require.NoError(t, err)
	assert.Equal(t, 7.0, cost)
}

func TestCachedOracleSecondLookupIsCached(t *testing.T) {
	inner := newCountingOracle()
	oracle := NewCachedOracle(inner, NewCostCache())

	first, err := oracle.Cost(context.Background(), 3, 7)
	require.NoError(t, err)
	second, err := oracle.Cost(context.Background(), 3, 7)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, inner.calls[pairKey{3, 7}])
	assert.Equal(t, int64(1), oracle.GetCache().Hits())
}
