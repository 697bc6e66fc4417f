package usecases

import (
	"context"
	"testing"

	"github.com/lintang-b-s/navigatorx-stations/pkg/engine"
	"github.com/lintang-b-s/navigatorx-stations/pkg/optimizer"
	"github.com/lintang-b-s/navigatorx-stations/pkg/problem"
	"github.com/lintang-b-s/navigatorx-stations/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testEngine(t *testing.T, candidates [][]float64, numberStations int) *engine.Engine {
	t.Helper()
	p := &problem.Problem{
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
		Candidates:     candidates,
		NumberStations: numberStations,
	}
	e, err := engine.NewEngineFromProblem(p, zap.NewNop(), 16)
	require.NoError(t, err)
	return e
}

func testConfig() optimizer.Config {
	cfg := optimizer.DefaultConfig()
	cfg.PopulationSize = 6
	cfg.MaxGenerations = 20
	cfg.MutationProb = 0.5
	cfg.RandomTrials = 30
	return cfg
}

func TestSearchService(t *testing.T) {
	ss := NewSearchService(zap.NewNop(), testEngine(t, nil, 0))

	tests := []struct {
		name      string
		origin    int64
		dest      int64
		strategy  string
		heuristic string
		found     bool
		cost      float64
		dist      float64
		wantErr   error
	}{
		{name: "astar geodesic", origin: 1, dest: 3, strategy: "astar", heuristic: "geodesic", found: true, cost: 150, dist: 1500},
		{name: "uniform cost", origin: 3, dest: 1, strategy: "astar", heuristic: "zero", found: true, cost: 180, dist: 1800},
		{name: "landmark", origin: 3, dest: 1, strategy: "astar", heuristic: "landmark", found: true, cost: 180, dist: 1800},
		{name: "no path", origin: 1, dest: 4, strategy: "bfs", found: false},
		{name: "bad strategy", origin: 1, dest: 3, strategy: "zigzag", wantErr: util.ErrBadParamInput},
		{name: "unknown goal", origin: 1, dest: 9, wantErr: util.ErrUnknownState},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, pl, dist, err := ss.Search(context.Background(), tt.origin, tt.dest, tt.strategy, tt.heuristic)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.found, res.Found())
			if !tt.found {
				assert.Empty(t, pl)
				assert.Zero(t, dist)
				return
			}
			assert.NotEmpty(t, pl)
			assert.InDelta(t, tt.cost, res.Cost, 1e-9)
			assert.InDelta(t, tt.dist, dist, 1e-9)
		})
	}

	v, _, err := ss.Snap(0, 0.0069)
	require.NoError(t, err)
	assert.Equal(t, int64(3), v.GetID())
}

func TestStationServiceDefaults(t *testing.T) {
	ss := NewStationService(zap.NewNop(), testEngine(t, [][]float64{{1, 1}, {2, 1}, {3, 2}}, 1), testConfig())

	res, stations, err := ss.OptimizeStations(context.Background(), nil, 0, "", ss.BaseConfig())
	require.NoError(t, err)
	assert.Equal(t, []int64{3}, res.Selected)
	require.Len(t, stations, 1)
	assert.Equal(t, int64(3), stations[0].GetID())
	assert.Equal(t, "genetic", res.Method)

	res, _, err = ss.OptimizeStations(context.Background(), [][]float64{{1, 1}, {2, 1}}, 0, "random", ss.BaseConfig())
	require.NoError(t, err)
	assert.Equal(t, "random", res.Method)
	assert.Len(t, res.Selected, 1)
}

func TestStationServiceErrors(t *testing.T) {
	empty := NewStationService(zap.NewNop(), testEngine(t, nil, 0), testConfig())

	tests := []struct {
		name       string
		ss         *StationService
		candidates [][]float64
		number     int
		method     string
		wantErr    error
	}{
		{name: "no candidates", ss: empty, number: 1, wantErr: util.ErrBadParamInput},
		{name: "no number", ss: empty, candidates: [][]float64{{1, 1}}, wantErr: util.ErrBadParamInput},
		{name: "bad method", ss: empty, candidates: [][]float64{{1, 1}}, number: 1, method: "annealing",
			wantErr: util.ErrInvalidConfig},
		{name: "bad pair", ss: empty, candidates: [][]float64{{1}}, number: 1, wantErr: util.ErrBadParamInput},
		{name: "unknown candidate", ss: empty, candidates: [][]float64{{42, 1}}, number: 1,
			wantErr: util.ErrUnknownState},
		{name: "too many stations", ss: empty, candidates: [][]float64{{1, 1}}, number: 2,
			wantErr: util.ErrInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := tt.ss.OptimizeStations(context.Background(), tt.candidates, tt.number, tt.method,
				tt.ss.BaseConfig())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
