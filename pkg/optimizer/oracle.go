package optimizer

import (
	"context"

	"github.com/lintang-b-s/navigatorx-stations/pkg"
	"github.com/lintang-b-s/navigatorx-stations/pkg/engine/search"
)

// Oracle returns the travel time (second) from a demand point to a station.
type Oracle interface {
	Cost(ctx context.Context, demand, station int64) (float64, error)
}

// SearchOracle answers with a shortest-time search. unreachable stations cost NO_PATH_PENALTY_SECONDS.
type SearchOracle struct {
	searcher  *search.Searcher
	strategy  search.Strategy
	heuristic search.Heuristic
}

func NewSearchOracle(searcher *search.Searcher, strategy search.Strategy, heuristic search.Heuristic) *SearchOracle {
	return &SearchOracle{
		searcher:  searcher,
		strategy:  strategy,
		heuristic: heuristic,
	}
}

func (o *SearchOracle) Cost(ctx context.Context, demand, station int64) (float64, error) {
	res, err := o.searcher.Run(ctx, o.strategy, demand, station, o.heuristic)
	if err != nil {
		return 0, err
	}
	if !res.Found() {
		return pkg.NO_PATH_PENALTY_SECONDS, nil
	}
	return res.Cost, nil
}

// CachedOracle. oracle lookups through a CostCache shared by every individual of a run.
type CachedOracle struct {
	oracle Oracle
	cache  *CostCache
}

func NewCachedOracle(oracle Oracle, cache *CostCache) *CachedOracle {
	return &CachedOracle{
		oracle: oracle,
		cache:  cache,
	}
}

func (o *CachedOracle) Cost(ctx context.Context, demand, station int64) (float64, error) {
	return o.cache.GetOrCompute(demand, station, func() (float64, error) {
		return o.oracle.Cost(ctx, demand, station)
	})
}

func (o *CachedOracle) GetCache() *CostCache {
	return o.cache
}
