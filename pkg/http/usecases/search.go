package usecases

import (
	"context"

	da "github.com/lintang-b-s/navigatorx-stations/pkg/datastructure"
	"github.com/lintang-b-s/navigatorx-stations/pkg/engine"
	"github.com/lintang-b-s/navigatorx-stations/pkg/engine/search"
	"github.com/lintang-b-s/navigatorx-stations/pkg/geo"
	"go.uber.org/zap"
)

type SearchService struct {
	log    *zap.Logger
	engine SearchEngine
}

func NewSearchService(log *zap.Logger, engine SearchEngine) *SearchService {
	return &SearchService{
		log:    log,
		engine: engine,
	}
}

// Search. result, encoded polyline of the path and its length in meter. a missing path is not an error.
func (ss *SearchService) Search(ctx context.Context, origin, destination int64, strategyName,
	heuristicName string) (*search.Result, string, float64, error) {
	strategy, heuristic, err := engine.ParseSearchOptions(strategyName, heuristicName)
	if err != nil {
		return nil, "", 0, err
	}

	res, err := ss.engine.RunSearch(ctx, strategy, origin, destination, heuristic)
	if err != nil {
		return nil, "", 0, err
	}
	if !res.Found() {
		return res, "", 0, nil
	}

	pathPolyline := geo.PolylineFromCoords(ss.engine.PathCoordinates(res.Path))
	return res, pathPolyline, engine.PathDistance(res), nil
}

func (ss *SearchService) Snap(lat, lon float64) (da.Intersection, float64, error) {
	return ss.engine.SnapToIntersection(lat, lon)
}
