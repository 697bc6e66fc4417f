package usecases

import (
	"context"

	da "github.com/lintang-b-s/navigatorx-stations/pkg/datastructure"
	"github.com/lintang-b-s/navigatorx-stations/pkg/optimizer"
	"github.com/lintang-b-s/navigatorx-stations/pkg/problem"
	"github.com/lintang-b-s/navigatorx-stations/pkg/util"
	"go.uber.org/zap"
)

type StationService struct {
	log     *zap.Logger
	engine  StationEngine
	baseCfg optimizer.Config
}

func NewStationService(log *zap.Logger, engine StationEngine, baseCfg optimizer.Config) *StationService {
	return &StationService{
		log:     log,
		engine:  engine,
		baseCfg: baseCfg,
	}
}

func (ss *StationService) BaseConfig() optimizer.Config {
	return ss.baseCfg
}

// OptimizeStations. candidates and numberStations default to the ones of the loaded problem.
func (ss *StationService) OptimizeStations(ctx context.Context, candidates [][]float64, numberStations int,
	methodName string, cfg optimizer.Config) (*optimizer.Result, []da.Intersection, error) {
	method, err := optimizer.ParseMethod(methodName)
	if err != nil {
		return nil, nil, err
	}

	loaded := ss.engine.GetProblem()
	if len(candidates) == 0 {
		candidates = loaded.Candidates
	}
	if numberStations == 0 {
		numberStations = loaded.NumberStations
	}
	if len(candidates) == 0 {
		return nil, nil, util.WrapErrorf(nil, util.ErrBadParamInput, "no candidates given and none in the problem")
	}
	if numberStations == 0 {
		return nil, nil, util.WrapErrorf(nil, util.ErrBadParamInput, "number_stations is required")
	}

	demands, err := (&problem.Problem{Candidates: candidates}).Demands()
	if err != nil {
		return nil, nil, err
	}

	res, err := ss.engine.OptimizeStations(ctx, demands, numberStations, cfg, method, nil)
	if err != nil {
		return nil, nil, err
	}

	graph := ss.engine.GetGraph()
	stations := make([]da.Intersection, 0, len(res.Selected))
	for _, id := range res.Selected {
		if v, ok := graph.State(id); ok {
			stations = append(stations, v)
		}
	}
	return res, stations, nil
}
