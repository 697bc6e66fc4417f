package controllers

import (
	"context"

	da "github.com/lintang-b-s/navigatorx-stations/pkg/datastructure"
	"github.com/lintang-b-s/navigatorx-stations/pkg/engine/search"
	"github.com/lintang-b-s/navigatorx-stations/pkg/optimizer"
)

type SearchService interface {
	Search(ctx context.Context, origin, destination int64, strategy, heuristic string) (*search.Result, string, float64, error)
	Snap(lat, lon float64) (da.Intersection, float64, error)
}

type StationService interface {
	BaseConfig() optimizer.Config
	OptimizeStations(ctx context.Context, candidates [][]float64, numberStations int, method string,
		cfg optimizer.Config) (*optimizer.Result, []da.Intersection, error)
}
