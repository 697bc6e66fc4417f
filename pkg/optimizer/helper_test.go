package optimizer

import (
	"context"
	"sync"
	"testing"

	da "github.com/lintang-b-s/navigatorx-stations/pkg/datastructure"
	"github.com/lintang-b-s/navigatorx-stations/pkg/engine/search"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// countingOracle. cost = |d - s| * 10, records how many times every pair was asked.
type countingOracle struct {
	mu    sync.Mutex
	calls map[pairKey]int
}

func newCountingOracle() *countingOracle {
	return &countingOracle{calls: make(map[pairKey]int)}
}

func (o *countingOracle) Cost(ctx context.Context, demand, station int64) (float64, error) {
	o.mu.Lock()
	o.calls[pairKey{demand, station}]++
	o.mu.Unlock()
	d := demand - station
	if d < 0 {
		d = -d
	}
	return float64(d) * 10, nil
}

func (o *countingOracle) maxCalls() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	max := 0
	for _, c := range o.calls {
		if c > max {
			max = c
		}
	}
	return max
}

// A <-> B (100s each way), B -> C 50s, C -> B 80s. D isolated.
func stationGraph(t *testing.T) *da.Graph {
	t.Helper()
	vs := []da.Intersection{
		da.NewIntersection(1, 0.000, 0),
		da.NewIntersection(2, 0.005, 0),
		da.NewIntersection(3, 0.007, 0),
		da.NewIntersection(4, 0.100, 0.1),
	}
	es := []da.Segment{
		da.NewSegment(1, 2, 1000, 36),
		da.NewSegment(2, 1, 1000, 36),
		da.NewSegment(2, 3, 500, 36),
		da.NewSegment(3, 2, 800, 36),
	}
	g, err := da.NewGraph(vs, es)
	require.NoError(t, err)
	return g
}

func stationOracle(t *testing.T) *SearchOracle {
	g := stationGraph(t)
	return NewSearchOracle(search.NewSearcher(g, zap.NewNop()), search.AStar, search.NewGeodesicHeuristic(g.MaxSpeed()))
}

func demandsABC() []Demand {
	return []Demand{{ID: 1, Weight: 1}, {ID: 2, Weight: 1}, {ID: 3, Weight: 2}}
}

func poolOf(demands []Demand) []int64 {
	ids := make([]int64, 0, len(demands))
	for _, d := range demands {
		ids = append(ids, d.ID)
	}
	return ids
}
