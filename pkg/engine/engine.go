package engine

import (
	"context"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/lintang-b-s/navigatorx-stations/pkg"
	da "github.com/lintang-b-s/navigatorx-stations/pkg/datastructure"
	"github.com/lintang-b-s/navigatorx-stations/pkg/engine/search"
	"github.com/lintang-b-s/navigatorx-stations/pkg/geo"
	"github.com/lintang-b-s/navigatorx-stations/pkg/landmark"
	"github.com/lintang-b-s/navigatorx-stations/pkg/optimizer"
	"github.com/lintang-b-s/navigatorx-stations/pkg/problem"
	"github.com/lintang-b-s/navigatorx-stations/pkg/spatialindex"
	"github.com/lintang-b-s/navigatorx-stations/pkg/util"
	"go.uber.org/zap"
)

// initial snapping radius, km
const snapRadius = 0.2

type routeCacheKey struct {
	strategy  search.Strategy
	heuristic string
	origin    int64
	goal      int64
}

// Engine owns the road network of one problem and answers search and station placement queries over it.
type Engine struct {
	log          *zap.Logger
	problem      *problem.Problem
	graph        *da.Graph
	searcher     *search.Searcher
	spatialIndex *spatialindex.Rtree
	scc          *da.SCC
	routeCache   *lru.Cache[routeCacheKey, *search.Result]

	// ALT preprocessing runs on the first "landmark" query
	landmarkOnce sync.Once
	lm           *landmark.Landmark
	lmErr        error
}

// NewEngine. load problemFilePath and build the engine over its graph.
func NewEngine(problemFilePath string, logger *zap.Logger, cacheCapacity int) (*Engine, error) {
	logger.Info("Reading problem from ", zap.String("problemFilePath", problemFilePath))
	p, err := problem.ReadProblem(problemFilePath)
	if err != nil {
		return nil, err
	}
	return NewEngineFromProblem(p, logger, cacheCapacity)
}

func NewEngineFromProblem(p *problem.Problem, logger *zap.Logger, cacheCapacity int) (*Engine, error) {
	graph, err := p.Graph()
	if err != nil {
		return nil, err
	}
	logger.Info("Road network loaded", zap.String("address", p.Address),
		zap.Int("intersections", graph.NumberOfIntersections()), zap.Int("segments", graph.NumberOfSegments()),
		zap.Float64("max_speed_kmh", graph.MaxSpeed()))

	if cacheCapacity <= 0 {
		cacheCapacity = pkg.DEFAULT_ROUTE_CACHE_CAPACITY
	}
	routeCache, err := lru.New[routeCacheKey, *search.Result](cacheCapacity)
	if err != nil {
		return nil, err
	}

	rt := spatialindex.NewRtree()
	rt.Build(graph, logger)

	scc := graph.RunKosaraju()
	if scc.NumberOfComponents() > 1 {
		logger.Warn("Road network is not strongly connected, some queries have no path",
			zap.Int("components", scc.NumberOfComponents()))
	}

	return &Engine{
		log:          logger,
		problem:      p,
		graph:        graph,
		searcher:     search.NewSearcher(graph, logger),
		spatialIndex: rt,
		scc:          scc,
		routeCache:   routeCache,
	}, nil
}

func (e *Engine) GetGraph() *da.Graph {
	return e.graph
}

func (e *Engine) GetProblem() *problem.Problem {
	return e.problem
}

func (e *Engine) GetSearcher() *search.Searcher {
	return e.searcher
}

func (e *Engine) GetSCC() *da.SCC {
	return e.scc
}

// RunSearch. origin -> goal with the given strategy and heuristic name. results are cached by
// (strategy, heuristic, origin, goal) and shared between callers, they must not be modified.
func (e *Engine) RunSearch(ctx context.Context, strategy search.Strategy, origin, goal int64,
	heuristicName string) (*search.Result, error) {
	heuristic, err := e.heuristic(heuristicName)
	if err != nil {
		return nil, err
	}

	key := routeCacheKey{
		strategy:  strategy,
		heuristic: heuristic.Name(),
		origin:    origin,
		goal:      goal,
	}
	if res, ok := e.routeCache.Get(key); ok {
		return res, nil
	}

	res, err := e.searcher.Run(ctx, strategy, origin, goal, heuristic)
	if err != nil {
		return nil, err
	}
	e.routeCache.Add(key, res)
	return res, nil
}

// heuristic. "landmark" / "alt" resolve to the ALT lower bounds of this graph, other names to search.NewHeuristic.
func (e *Engine) heuristic(name string) (search.Heuristic, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "landmark", "alt":
		return e.Landmarks()
	default:
		return search.NewHeuristic(name, e.graph)
	}
}

// Landmarks. ALT heuristic over pkg.DEFAULT_LANDMARKS landmarks, computed once.
func (e *Engine) Landmarks() (*landmark.Landmark, error) {
	e.landmarkOnce.Do(func() {
		lm := landmark.NewLandmark()
		e.lmErr = lm.PreprocessALT(pkg.DEFAULT_LANDMARKS, e.graph, pkg.DEFAULT_WORKERS, e.log)
		e.lm = lm
	})
	if e.lmErr != nil {
		return nil, e.lmErr
	}
	return e.lm, nil
}

func (e *Engine) RouteCacheLen() int {
	return e.routeCache.Len()
}

// OptimizeStations. choose stationCount of the demand points as stations. travel times come from A* with the
// geodesic heuristic.
func (e *Engine) OptimizeStations(ctx context.Context, demands []optimizer.Demand, stationCount int,
	cfg optimizer.Config, method optimizer.Method, progress optimizer.ProgressFunc) (*optimizer.Result, error) {
	pool := make([]int64, 0, len(demands))
	for _, d := range demands {
		if !e.graph.HasState(d.ID) {
			return nil, util.WrapErrorf(nil, util.ErrUnknownState, "candidate intersection %d not in graph", d.ID)
		}
		pool = append(pool, d.ID)
	}
	if len(pool) > 1 {
		for _, id := range pool[1:] {
			if !e.scc.SameComponent(pool[0], id) {
				e.log.Warn("Candidates span several strongly connected components, unreachable pairs cost the no-path penalty",
					zap.Int64("candidate", id), zap.Float64("penalty_seconds", pkg.NO_PATH_PENALTY_SECONDS))
				break
			}
		}
	}

	oracle := optimizer.NewSearchOracle(e.searcher, search.AStar, search.NewGeodesicHeuristic(e.graph.MaxSpeed()))
	opt, err := optimizer.NewOptimizer(e.log, oracle, demands, pool, stationCount, cfg)
	if err != nil {
		return nil, err
	}
	if progress != nil {
		opt.SetProgressFunc(progress)
	}
	return opt.Run(ctx, method)
}

// SnapToIntersection. nearest intersection to (lat, lon) and its distance in km.
func (e *Engine) SnapToIntersection(lat, lon float64) (da.Intersection, float64, error) {
	v, dist, ok := e.spatialIndex.Nearest(lat, lon, snapRadius)
	if !ok {
		return da.Intersection{}, 0, util.WrapErrorf(nil, util.ErrNotFound, "no intersection near %f,%f", lat, lon)
	}
	return v, dist, nil
}

// PathCoordinates. coordinates of a path of intersection ids, unknown ids are skipped.
func (e *Engine) PathCoordinates(path []int64) []geo.Coordinate {
	coords := make([]geo.Coordinate, 0, len(path))
	for _, id := range path {
		v, ok := e.graph.State(id)
		if !ok {
			continue
		}
		coords = append(coords, geo.NewCoordinate(v.GetLat(), v.GetLon()))
	}
	return coords
}

// PathDistance. sum of the segment lengths (meter) taken by a FOUND result, 0 otherwise.
func PathDistance(res *search.Result) float64 {
	if res == nil || !res.Found() {
		return 0
	}
	dist := 0.0
	for _, seg := range res.Goal.Actions() {
		dist += seg.GetDistance()
	}
	return dist
}

// ParseSearchOptions. strategy and heuristic names as used by the CLI and the HTTP API.
func ParseSearchOptions(strategyName, heuristicName string) (search.Strategy, string, error) {
	strategy, err := search.ParseStrategy(strategyName)
	if err != nil {
		return 0, "", err
	}
	return strategy, strings.ToLower(strings.TrimSpace(heuristicName)), nil
}
