package optimizer

import (
	"context"
	"math"

	"github.com/lintang-b-s/navigatorx-stations/pkg/util"
)

// Demand is a traffic source; its weight scales its contribution to the fitness.
type Demand struct {
	ID     int64   `json:"id"`
	Weight float64 `json:"weight"`
}

type Evaluator struct {
	oracle      Oracle
	demands     []Demand
	totalWeight float64
	aggregation Aggregation
}

func NewEvaluator(oracle Oracle, demands []Demand, aggregation Aggregation) (*Evaluator, error) {
	if len(demands) == 0 {
		return nil, util.WrapErrorf(nil, util.ErrInvalidConfig, "no demand points")
	}
	total := 0.0
	for _, d := range demands {
		if d.Weight < 0 || math.IsNaN(d.Weight) {
			return nil, util.WrapErrorf(nil, util.ErrInvalidConfig, "demand %d has negative weight %f", d.ID, d.Weight)
		}
		total += d.Weight
	}
	if total <= 0 {
		return nil, util.WrapErrorf(nil, util.ErrInvalidConfig, "sum of demand weights must be positive")
	}
	return &Evaluator{
		oracle:      oracle,
		demands:     demands,
		totalWeight: total,
		aggregation: aggregation,
	}, nil
}

func (ev *Evaluator) TotalWeight() float64 {
	return ev.totalWeight
}

// nearest. min over the stations of the travel time from demand.
func (ev *Evaluator) nearest(ctx context.Context, demand int64, stations []int64) (float64, error) {
	best := math.Inf(1)
	for _, s := range stations {
		cost, err := ev.oracle.Cost(ctx, demand, s)
		if err != nil {
			return 0, err
		}
		if cost < best {
			best = cost
		}
	}
	return best, nil
}

// Fitness of a station set, lower is better.
func (ev *Evaluator) Fitness(ctx context.Context, stations []int64) (float64, error) {
	if len(stations) == 0 {
		return 0, util.WrapErrorf(nil, util.ErrInvalidConfig, "empty station set")
	}

	switch ev.aggregation {
	case WorstCase:
		worst := 0.0
		for _, d := range ev.demands {
			if d.Weight == 0 {
				continue
			}
			t, err := ev.nearest(ctx, d.ID, stations)
			if err != nil {
				return 0, err
			}
			worst = math.Max(worst, t)
		}
		return worst, nil
	default:
		sum := 0.0
		for _, d := range ev.demands {
			t, err := ev.nearest(ctx, d.ID, stations)
			if err != nil {
				return 0, err
			}
			sum += d.Weight * t
		}
		return sum / ev.totalWeight, nil
	}
}

func (ev *Evaluator) Evaluate(ctx context.Context, ind *Individual) error {
	f, err := ev.Fitness(ctx, ind.selected)
	if err != nil {
		return err
	}
	ind.setFitness(f)
	return nil
}
