package search

import (
	"context"
	"time"

	"github.com/lintang-b-s/navigatorx-stations/pkg"
	da "github.com/lintang-b-s/navigatorx-stations/pkg/datastructure"
	"github.com/lintang-b-s/navigatorx-stations/pkg/util"
	"go.uber.org/zap"
)

type Status uint8

const (
	RUNNING Status = iota
	FOUND
	EXHAUSTED
)

func (s Status) String() string {
	switch s {
	case RUNNING:
		return "RUNNING"
	case FOUND:
		return "FOUND"
	case EXHAUSTED:
		return "EXHAUSTED"
	default:
		return "UNKNOWN"
	}
}

// how many loop iterations between two context checks
const ctxCheckInterval = 256

type Result struct {
	Status    Status
	Goal      *Node // nil when EXHAUSTED
	Path      []int64
	Cost      float64 // second, pkg.INF_WEIGHT when EXHAUSTED
	Depth     int
	Generated int // children created
	Expanded  int // nodes whose neighbors were enumerated
	Explored  int // nodes extracted from the frontier and tested for goal
	Elapsed   time.Duration
}

func (r *Result) Found() bool {
	return r.Status == FOUND
}

// Searcher runs graph searches over a read-only graph. safe for concurrent use.
type Searcher struct {
	graph *da.Graph
	log   *zap.Logger
}

func NewSearcher(graph *da.Graph, log *zap.Logger) *Searcher {
	return &Searcher{
		graph: graph,
		log:   log,
	}
}

func (s *Searcher) GetGraph() *da.Graph {
	return s.graph
}

// Run. generic graph search from origin to goal with the frontier selected by strategy.
// "no path" is returned as an EXHAUSTED result, not as an error. unknown origin/goal is a precondition error.
func (s *Searcher) Run(ctx context.Context, strategy Strategy, origin, goal int64, heuristic Heuristic) (*Result, error) {
	originState, ok := s.graph.State(origin)
	if !ok {
		return nil, util.WrapErrorf(nil, util.ErrUnknownState, "origin intersection %d not in graph", origin)
	}
	goalState, ok := s.graph.State(goal)
	if !ok {
		return nil, util.WrapErrorf(nil, util.ErrUnknownState, "goal intersection %d not in graph", goal)
	}

	if heuristic == nil {
		heuristic = ZeroHeuristic{}
	}
	if strategy == AStar && !heuristic.Admissible() {
		s.log.Warn("A* with a non-admissible heuristic, path may not be optimal",
			zap.String("heuristic", heuristic.Name()))
	}

	frontier, err := NewFrontier(strategy, heuristic, goalState)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	res := &Result{Status: RUNNING}
	closed := make(map[int64]struct{})

	frontier.Insert(newRootNode(originState))

	for iter := 0; res.Status == RUNNING; iter++ {
		if iter%ctxCheckInterval == 0 && util.StopConcurrentOperation(ctx) {
			return nil, ctx.Err()
		}

		if frontier.IsEmpty() {
			res.Status = EXHAUSTED
			break
		}

		current := frontier.ExtractNext()
		res.Explored++

		if current.GetState().GetID() == goal {
			res.Status = FOUND
			res.Goal = current
			break
		}

		curID := current.GetState().GetID()
		if _, visited := closed[curID]; visited {
			continue
		}
		closed[curID] = struct{}{}

		res.Expanded++
		for _, seg := range s.graph.Neighbors(curID) {
			next, _ := s.graph.State(seg.GetDestination())
			frontier.Insert(newChildNode(current, next, seg))
			res.Generated++
		}
	}

	res.Elapsed = time.Since(start)
	if res.Status == FOUND {
		res.Path = res.Goal.Path()
		res.Cost = res.Goal.GetCost()
		res.Depth = res.Goal.GetDepth()
	} else {
		res.Cost = pkg.INF_WEIGHT
	}

	if pkg.DEBUG {
		s.log.Debug("search finished", zap.String("strategy", strategy.String()),
			zap.Int64("origin", origin), zap.Int64("goal", goal), zap.String("status", res.Status.String()),
			zap.Float64("cost", res.Cost), zap.Int("generated", res.Generated), zap.Int("expanded", res.Expanded),
			zap.Int("explored", res.Explored), zap.Duration("elapsed", res.Elapsed))
	}
	return res, nil
}

// NearestOf. one query per goal, returns the cheapest FOUND result (or an EXHAUSTED result when no goal is reachable).
func (s *Searcher) NearestOf(ctx context.Context, strategy Strategy, origin int64, goals []int64,
	heuristic Heuristic) (int64, *Result, error) {
	var (
		best     *Result
		bestGoal int64
	)
	for _, goal := range goals {
		res, err := s.Run(ctx, strategy, origin, goal, heuristic)
		if err != nil {
			return 0, nil, err
		}
		if best == nil || (res.Found() && (!best.Found() || res.Cost < best.Cost)) {
			best = res
			bestGoal = goal
		}
	}
	if best == nil {
		return 0, nil, util.WrapErrorf(nil, util.ErrBadParamInput, "empty goal set")
	}
	return bestGoal, best, nil
}
