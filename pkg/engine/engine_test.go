package engine

import (
	"context"
	"testing"

	"github.com/lintang-b-s/navigatorx-stations/pkg"
	"github.com/lintang-b-s/navigatorx-stations/pkg/engine/search"
	"github.com/lintang-b-s/navigatorx-stations/pkg/optimizer"
	"github.com/lintang-b-s/navigatorx-stations/pkg/problem"
	"github.com/lintang-b-s/navigatorx-stations/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func int64Ptr(v int64) *int64 {
	return &v
}

// A <-> B (100s), B -> C 50s, C -> B 80s, D isolated.
func testProblem() *problem.Problem {
	return &problem.Problem{
		Address: "test",
		Intersections: []problem.Intersection{
			{Identifier: 1, Longitude: 0.000, Latitude: 0},
			{Identifier: 2, Longitude: 0.005, Latitude: 0},
			{Identifier: 3, Longitude: 0.007, Latitude: 0},
			{Identifier: 4, Longitude: 0.100, Latitude: 0.1},
		},
		Segments: []problem.Segment{
			{Origin: 1, Destination: 2, Distance: 1000, Speed: 36},
			{Origin: 2, Destination: 1, Distance: 1000, Speed: 36},
			{Origin: 2, Destination: 3, Distance: 500, Speed: 36},
			{Origin: 3, Destination: 2, Distance: 800, Speed: 36},
		},
		Initial:        int64Ptr(1),
		Final:          int64Ptr(3),
		Candidates:     [][]float64{{1, 1}, {2, 1}, {3, 2}},
		NumberStations: 1,
	}
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngineFromProblem(testProblem(), zap.NewNop(), 16)
	require.NoError(t, err)
	return e
}

func TestRunSearchCached(t *testing.T) {
	e := newTestEngine(t)

	res, err := e.RunSearch(context.Background(), search.AStar, 1, 3, "geodesic")
	require.NoError(t, err)
	assert.True(t, res.Found())
	assert.Equal(t, []int64{1, 2, 3}, res.Path)
	assert.InDelta(t, 150.0, res.Cost, 1e-9)
	assert.InDelta(t, 1500.0, PathDistance(res), 1e-9)
	assert.Equal(t, 1, e.RouteCacheLen())

	again, err := e.RunSearch(context.Background(), search.AStar, 1, 3, "")
	require.NoError(t, err)
	assert.Same(t, res, again)
	assert.Equal(t, 1, e.RouteCacheLen())

	_, err = e.RunSearch(context.Background(), search.BreadthFirst, 1, 3, "geodesic")
	require.NoError(t, err)
	assert.Equal(t, 2, e.RouteCacheLen())
}

func TestRunSearchErrors(t *testing.T) {
	e := newTestEngine(t)

	_, err := e.RunSearch(context.Background(), search.AStar, 1, 3, "manhattan")
	assert.ErrorIs(t, err, util.ErrBadParamInput)

	_, err = e.RunSearch(context.Background(), search.AStar, 1, 42, "")
	assert.ErrorIs(t, err, util.ErrUnknownState)

	res, err := e.RunSearch(context.Background(), search.AStar, 1, 4, "")
	require.NoError(t, err)
	assert.Equal(t, search.EXHAUSTED, res.Status)
	assert.Equal(t, pkg.INF_WEIGHT, res.Cost)
	assert.Zero(t, PathDistance(res))
}

func TestRunSearchLandmark(t *testing.T) {
	e := newTestEngine(t)

	res, err := e.RunSearch(context.Background(), search.AStar, 3, 1, "landmark")
	require.NoError(t, err)
	assert.True(t, res.Found())
	assert.Equal(t, []int64{3, 2, 1}, res.Path)
	assert.InDelta(t, 180.0, res.Cost, 1e-9)

	lm, err := e.Landmarks()
	require.NoError(t, err)
	assert.NotEmpty(t, lm.GetLandmarks())

	// "alt" is the same heuristic, so it hits the same cache entry
	again, err := e.RunSearch(context.Background(), search.AStar, 3, 1, "alt")
	require.NoError(t, err)
	assert.Same(t, res, again)
}

func TestOptimizeStations(t *testing.T) {
	e := newTestEngine(t)
	demands, err := e.GetProblem().Demands()
	require.NoError(t, err)

	cfg := optimizer.DefaultConfig()
	cfg.PopulationSize = 6
	cfg.MaxGenerations = 20
	cfg.MutationProb = 0.5

	var calls int
	res, err := e.OptimizeStations(context.Background(), demands, 1, cfg, optimizer.Genetic,
		func(step, total int, best float64) { calls++ })
	require.NoError(t, err)
	assert.Equal(t, []int64{3}, res.Selected)
	assert.InDelta(t, 50.0, res.Fitness, 1e-9)
	assert.Equal(t, res.Generations, calls)

	_, err = e.OptimizeStations(context.Background(), []optimizer.Demand{{ID: 77, Weight: 1}}, 1, cfg,
		optimizer.Genetic, nil)
	assert.ErrorIs(t, err, util.ErrUnknownState)

	_, err = e.OptimizeStations(context.Background(), demands, 5, cfg, optimizer.RandomSampling, nil)
	assert.ErrorIs(t, err, util.ErrInvalidConfig)
}

func TestSnapAndCoordinates(t *testing.T) {
	e := newTestEngine(t)

	v, _, err := e.SnapToIntersection(0.0001, 0.0049)
	require.NoError(t, err)
	assert.Equal(t, int64(2), v.GetID())

	_, _, err = e.SnapToIntersection(45, 90)
	assert.ErrorIs(t, err, util.ErrNotFound)

	coords := e.PathCoordinates([]int64{1, 99, 3})
	require.Len(t, coords, 2)
	assert.Equal(t, 0.007, coords[1].Lon)
}

func TestParseSearchOptions(t *testing.T) {
	strategy, heuristic, err := ParseSearchOptions("bfs", " Geodesic ")
	require.NoError(t, err)
	assert.Equal(t, search.BreadthFirst, strategy)
	assert.Equal(t, "geodesic", heuristic)

	_, _, err = ParseSearchOptions("dijkstra", "")
	assert.ErrorIs(t, err, util.ErrBadParamInput)
}

func TestStronglyConnectedComponents(t *testing.T) {
	e := newTestEngine(t)
	scc := e.GetSCC()
	// {1,2,3} and the isolated 4
	assert.Equal(t, 2, scc.NumberOfComponents())
	assert.True(t, scc.SameComponent(1, 3))
	assert.False(t, scc.SameComponent(1, 4))
}
