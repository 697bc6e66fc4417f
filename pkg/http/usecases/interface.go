package usecases

import (
	"context"

	da "github.com/lintang-b-s/navigatorx-stations/pkg/datastructure"
	"github.com/lintang-b-s/navigatorx-stations/pkg/engine/search"
	"github.com/lintang-b-s/navigatorx-stations/pkg/geo"
	"github.com/lintang-b-s/navigatorx-stations/pkg/optimizer"
	"github.com/lintang-b-s/navigatorx-stations/pkg/problem"
)

type SearchEngine interface {
	RunSearch(ctx context.Context, strategy search.Strategy, origin, goal int64, heuristicName string) (*search.Result, error)
	SnapToIntersection(lat, lon float64) (da.Intersection, float64, error)
	PathCoordinates(path []int64) []geo.Coordinate
}

type StationEngine interface {
	GetGraph() *da.Graph
	GetProblem() *problem.Problem
	OptimizeStations(ctx context.Context, demands []optimizer.Demand, stationCount int, cfg optimizer.Config,
		method optimizer.Method, progress optimizer.ProgressFunc) (*optimizer.Result, error)
}
