package optimizer

import (
	"context"
	"testing"

	"github.com/lintang-b-s/navigatorx-stations/pkg"
	"github.com/lintang-b-s/navigatorx-stations/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchOracle(t *testing.T) {
	oracle := stationOracle(t)

	cost, err := oracle.Cost(context.Background(), 1, 3)
	require.NoError(t, err)
	assert.InDelta(t, 150.0, cost, 1e-9)

	cost, err = oracle.Cost(context.Background(), 1, 4)
	require.NoError(t, err)
	assert.Equal(t, pkg.NO_PATH_PENALTY_SECONDS, cost)

	_, err = oracle.Cost(context.Background(), 1, 99)
	assert.ErrorIs(t, err, util.ErrUnknownState)
}

func TestEvaluatorWeightedAverage(t *testing.T) {
	ev, err := NewEvaluator(stationOracle(t), demandsABC(), WeightedAverage)
	require.NoError(t, err)
	assert.Equal(t, 4.0, ev.TotalWeight())

	testCases := []struct {
		name     string
		stations []int64
		want     float64
	}{
		// (0*1 + 100*1 + 180*2) / 4
		{name: "station A", stations: []int64{1}, want: 115},
		// (100*1 + 0*1 + 80*2) / 4
		{name: "station B", stations: []int64{2}, want: 65},
		// (150*1 + 50*1 + 0*2) / 4
		{name: "station C", stations: []int64{3}, want: 50},
		// (0 + 50 + 0) / 4
		{name: "stations A,C", stations: []int64{1, 3}, want: 12.5},
		// unreachable station: every demand except D pays the penalty
		{name: "station D", stations: []int64{4}, want: pkg.NO_PATH_PENALTY_SECONDS},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ev.Fitness(context.Background(), tt.stations)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}

	_, err = ev.Fitness(context.Background(), nil)
	assert.ErrorIs(t, err, util.ErrInvalidConfig)
}

func TestEvaluatorWorstCase(t *testing.T) {
	ev, err := NewEvaluator(stationOracle(t), demandsABC(), WorstCase)
	require.NoError(t, err)

	got, err := ev.Fitness(context.Background(), []int64{3})
	require.NoError(t, err)
	assert.InDelta(t, 150.0, got, 1e-9)
}

func TestNewEvaluatorInvalid(t *testing.T) {
	oracle := newCountingOracle()
	_, err := NewEvaluator(oracle, nil, WeightedAverage)
	assert.ErrorIs(t, err, util.ErrInvalidConfig)
	_, err = NewEvaluator(oracle, []Demand{{ID: 1, Weight: 0}}, WeightedAverage)
	assert.ErrorIs(t, err, util.ErrInvalidConfig)
	_, err = NewEvaluator(oracle, []Demand{{ID: 1, Weight: -1}, {ID: 2, Weight: 3}}, WeightedAverage)
	assert.ErrorIs(t, err, util.ErrInvalidConfig)
}
