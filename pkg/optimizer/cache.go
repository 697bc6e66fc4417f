package optimizer

import (
	"strconv"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"
)

type pairKey struct {
	demand  int64
	station int64
}

func (k pairKey) String() string {
	return strconv.FormatInt(k.demand, 10) + ":" + strconv.FormatInt(k.station, 10)
}

// CostCache memoizes (demand, station) travel times for one optimization run.
// readers proceed concurrently; concurrent misses on the same key share one computation.
type CostCache struct {
	mu     sync.RWMutex
	costs  map[pairKey]float64
	group  singleflight.Group
	hits   atomic.Int64
	misses atomic.Int64
}

func NewCostCache() *CostCache {
	return &CostCache{
		costs: make(map[pairKey]float64),
	}
}

func (c *CostCache) lookup(key pairKey) (float64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	cost, ok := c.costs[key]
	return cost, ok
}

// GetOrCompute. compute runs at most once per key over the lifetime of the cache, failed computations are not stored.
func (c *CostCache) GetOrCompute(demand, station int64, compute func() (float64, error)) (float64, error) {
	key := pairKey{demand: demand, station: station}
	if cost, ok := c.lookup(key); ok {
		c.hits.Add(1)
		return cost, nil
	}

	computed := false
	v, err, _ := c.group.Do(key.String(), func() (interface{}, error) {
		// an earlier flight may have finished between lookup and Do
		if cost, ok := c.lookup(key); ok {
			return cost, nil
		}
		cost, err := compute()
		if err != nil {
			return 0.0, err
		}
		computed = true
		c.mu.Lock()
		c.costs[key] = cost
		c.mu.Unlock()
		return cost, nil
	})
	if err != nil {
		return 0, err
	}
	if computed {
		c.misses.Add(1)
	} else {
		c.hits.Add(1)
	}
	return v.(float64), nil
}

func (c *CostCache) Get(demand, station int64) (float64, bool) {
	return c.lookup(pairKey{demand: demand, station: station})
}

func (c *CostCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.costs)
}

func (c *CostCache) Hits() int64 {
	return c.hits.Load()
}

// Misses. number of computed entries
func (c *CostCache) Misses() int64 {
	return c.misses.Load()
}
