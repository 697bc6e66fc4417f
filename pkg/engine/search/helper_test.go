package search

import (
	"testing"

	da "github.com/lintang-b-s/navigatorx-stations/pkg/datastructure"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type rawSegment struct {
	from, to        int64
	distance, speed float64
}

func buildGraph(t *testing.T, coords map[int64][2]float64, segs []rawSegment) *da.Graph {
	t.Helper()
	vs := make([]da.Intersection, 0, len(coords))
	for id, c := range coords {
		vs = append(vs, da.NewIntersection(id, c[0], c[1]))
	}
	es := make([]da.Segment, 0, len(segs))
	for _, s := range segs {
		es = append(es, da.NewSegment(s.from, s.to, s.distance, s.speed))
	}
	g, err := da.NewGraph(vs, es)
	require.NoError(t, err)
	return g
}

// A -> B -> C (100s + 50s), D isolated. coordinates are close enough for the geodesic bound to stay admissible.
func abcdGraph(t *testing.T) *da.Graph {
	return buildGraph(t, map[int64][2]float64{
		1: {0.000, 0},
		2: {0.005, 0},
		3: {0.007, 0},
		4: {0.100, 0.1},
	}, []rawSegment{
		{1, 2, 1000, 36},
		{2, 3, 500, 36},
	})
}

func newTestSearcher(g *da.Graph) *Searcher {
	return NewSearcher(g, zap.NewNop())
}
