package landmark

import (
	"context"
	"math/rand"
	"testing"

	"github.com/lintang-b-s/navigatorx-stations/pkg"
	da "github.com/lintang-b-s/navigatorx-stations/pkg/datastructure"
	"github.com/lintang-b-s/navigatorx-stations/pkg/engine/search"
	"github.com/lintang-b-s/navigatorx-stations/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// 1 -> 2 -> 3 -> 4 line (100s each) plus 4 -> 1 (50s), 5 isolated.
func lineGraph(t *testing.T) *da.Graph {
	t.Helper()
	g, err := da.NewGraph([]da.Intersection{
		da.NewIntersection(1, 0.00, 0), da.NewIntersection(2, 0.01, 0),
		da.NewIntersection(3, 0.02, 0), da.NewIntersection(4, 0.03, 0),
		da.NewIntersection(5, 0.5, 0.5),
	}, []da.Segment{
		da.NewSegment(1, 2, 1000, 36), da.NewSegment(2, 3, 1000, 36),
		da.NewSegment(3, 4, 1000, 36), da.NewSegment(4, 1, 500, 36),
	})
	require.NoError(t, err)
	return g
}

func TestDijkstraShortestPath(t *testing.T) {
	g := lineGraph(t)
	lm := NewLandmark()
	require.NoError(t, lm.PreprocessALT(2, g, 2, zap.NewNop()))

	tests := []struct {
		name     string
		reversed bool
		want     map[int64]float64
	}{
		{
			name: "forward from 1",
			want: map[int64]float64{1: 0, 2: 100, 3: 200, 4: 300},
		},
		{
			name:     "backward to 1",
			reversed: true,
			want:     map[int64]float64{1: 0, 4: 50, 3: 150, 2: 250},
		},
	}

	reverse := make(map[int64][]da.Segment)
	g.ForIntersections(func(v da.Intersection) {
		for _, e := range g.Neighbors(v.GetID()) {
			reverse[e.GetDestination()] = append(reverse[e.GetDestination()], e)
		}
	})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDijkstra(g, lm.index, reverse, tt.reversed)
			sp := d.ShortestPath(1)
			for id, want := range tt.want {
				assert.InDelta(t, want, sp[lm.index[id]], 1e-9, "intersection %d", id)
			}
			assert.GreaterOrEqual(t, sp[lm.index[5]], pkg.INF_WEIGHT)
			assert.Equal(t, 4, d.NumSettledNodes())
		})
	}
}

func TestSelectLandmarks(t *testing.T) {
	g := lineGraph(t)
	lm := NewLandmark()

	landmarks := lm.SelectLandmarks(4, g)
	assert.NotEmpty(t, landmarks)
	seen := make(map[int64]struct{})
	for _, id := range landmarks {
		_, dup := seen[id]
		assert.False(t, dup, "duplicate landmark %d", id)
		seen[id] = struct{}{}
		assert.True(t, g.HasState(id))
	}
	// the far away intersection is extreme towards north-east
	assert.Contains(t, landmarks, int64(5))

	assert.Empty(t, lm.SelectLandmarks(0, g))
}

func TestPreprocessALTTooManyLandmarks(t *testing.T) {
	err := NewLandmark().PreprocessALT(MaxLandmarks+1, lineGraph(t), 1, zap.NewNop())
	assert.ErrorIs(t, err, util.ErrBadParamInput)
}

func TestFindTighestLowerBound(t *testing.T) {
	g := lineGraph(t)
	lm := NewLandmark()
	require.NoError(t, lm.PreprocessALT(4, g, 2, zap.NewNop()))

	tests := []struct {
		name string
		u, t int64
		cost float64
	}{
		{name: "1 to 4", u: 1, t: 4, cost: 300},
		{name: "4 to 3", u: 4, t: 3, cost: 250},
		{name: "same", u: 2, t: 2, cost: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lb := lm.FindTighestLowerBound(tt.u, tt.t)
			assert.GreaterOrEqual(t, lb, 0.0)
			assert.LessOrEqual(t, lb, tt.cost+1e-9)
		})
	}

	// unreachable or unknown intersections give no information
	assert.Equal(t, 0.0, lm.FindTighestLowerBound(1, 5))
	assert.Equal(t, 0.0, lm.FindTighestLowerBound(1, 42))
}

func TestALTMatchesUniformCostSearch(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	const n = 12
	for trial := 0; trial < 10; trial++ {
		ivs := make([]da.Intersection, n)
		for i := 0; i < n; i++ {
			ivs[i] = da.NewIntersection(int64(i), rng.Float64()*0.05, rng.Float64()*0.05)
		}
		segs := make([]da.Segment, 0)
		for u := 0; u < n; u++ {
			for v := 0; v < n; v++ {
				if u == v || rng.Float64() > 0.25 {
					continue
				}
				segs = append(segs, da.NewSegment(int64(u), int64(v), 100+rng.Float64()*2000, 30+rng.Float64()*60))
			}
		}
		g, err := da.NewGraph(ivs, segs)
		require.NoError(t, err)

		lm := NewLandmark()
		require.NoError(t, lm.PreprocessALT(4, g, 2, zap.NewNop()))
		s := search.NewSearcher(g, zap.NewNop())

		for from := int64(0); from < n; from++ {
			for to := int64(0); to < n; to++ {
				want, err := s.Run(context.Background(), search.AStar, from, to, search.ZeroHeuristic{})
				require.NoError(t, err)
				got, err := s.Run(context.Background(), search.AStar, from, to, lm)
				require.NoError(t, err)

				require.Equal(t, want.Status, got.Status, "trial %d %d->%d", trial, from, to)
				if want.Found() {
					assert.InDelta(t, want.Cost, got.Cost, 1e-6, "trial %d %d->%d", trial, from, to)
				}
			}
		}
	}
}
