package search

import (
	"testing"

	da "github.com/lintang-b-s/navigatorx-stations/pkg/datastructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(f Frontier) []int64 {
	ids := []int64{}
	for !f.IsEmpty() {
		ids = append(ids, f.ExtractNext().GetState().GetID())
	}
	return ids
}

func TestFrontierOrdering(t *testing.T) {
	goal := da.NewIntersection(100, 0, 0)
	root := newRootNode(da.NewIntersection(0, 0, 0))
	child := func(id int64, cost float64) *Node {
		return newChildNode(root, da.NewIntersection(id, 0, 0), da.NewSegment(0, id, cost*10, 36))
	}

	testCases := []struct {
		name     string
		strategy Strategy
		want     []int64
	}{
		{name: "fifo", strategy: BreadthFirst, want: []int64{3, 1, 2, 5}},
		{name: "lifo", strategy: DepthFirst, want: []int64{5, 2, 1, 3}},
		// equal priorities are ordered by state id
		{name: "astar", strategy: AStar, want: []int64{2, 5, 1, 3}},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewFrontier(tt.strategy, ZeroHeuristic{}, goal)
			require.NoError(t, err)
			assert.True(t, f.IsEmpty())

			f.Insert(child(3, 7))
			f.Insert(child(1, 5))
			f.Insert(child(2, 1))
			f.Insert(child(5, 1))
			assert.Equal(t, 4, f.Len())

			assert.Equal(t, tt.want, drain(f))
			assert.Nil(t, f.ExtractNext())
		})
	}
}

type tableHeuristic map[int64]float64

func (h tableHeuristic) Estimate(current, goal da.Intersection) float64 { return h[current.GetID()] }
func (h tableHeuristic) Admissible() bool                               { return false }
func (h tableHeuristic) Name() string                                   { return "table" }

func TestGreedyFrontierIgnoresCost(t *testing.T) {
	goal := da.NewIntersection(100, 0, 0)
	root := newRootNode(da.NewIntersection(0, 0, 0))
	f, err := NewFrontier(GreedyBestFirst, tableHeuristic{1: 10, 2: 1, 3: 1}, goal)
	require.NoError(t, err)

	f.Insert(newChildNode(root, da.NewIntersection(1, 0, 0), da.NewSegment(0, 1, 1, 36)))
	f.Insert(newChildNode(root, da.NewIntersection(3, 0, 0), da.NewSegment(0, 3, 9999, 36)))
	f.Insert(newChildNode(root, da.NewIntersection(2, 0, 0), da.NewSegment(0, 2, 9999, 36)))

	assert.Equal(t, []int64{2, 3, 1}, drain(f))
}

func TestFifoFrontierCompaction(t *testing.T) {
	f := newFifoFrontier()
	root := newRootNode(da.NewIntersection(0, 0, 0))
	for i := 0; i < 5000; i++ {
		f.Insert(newChildNode(root, da.NewIntersection(int64(i), 0, 0), da.NewSegment(0, int64(i), 1, 36)))
	}
	for i := 0; i < 5000; i++ {
		require.Equal(t, int64(i), f.ExtractNext().GetState().GetID())
		if i == 2500 {
			f.Insert(newChildNode(root, da.NewIntersection(9999, 0, 0), da.NewSegment(0, 9999, 1, 36)))
		}
	}
	assert.Equal(t, int64(9999), f.ExtractNext().GetState().GetID())
	assert.True(t, f.IsEmpty())
}

func TestParseStrategy(t *testing.T) {
	for name, want := range map[string]Strategy{"bfs": BreadthFirst, "DFS": DepthFirst, "greedy": GreedyBestFirst,
		"astar": AStar, "": AStar} {
		got, err := ParseStrategy(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseStrategy("dijkstra2")
	assert.Error(t, err)
	assert.Equal(t, "astar", AStar.String())
}
