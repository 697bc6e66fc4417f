package optimizer

import (
	"context"
	"math"
	"time"

	"github.com/lintang-b-s/navigatorx-stations/pkg/concurrent"
	"github.com/lintang-b-s/navigatorx-stations/pkg/util"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

type Result struct {
	Selected    []int64       `json:"selected"`
	Fitness     float64       `json:"fitness"`
	Method      string        `json:"method"`
	Generations int           `json:"generations"`
	Converged   bool          `json:"converged"`
	Evaluations int           `json:"evaluations"`
	CacheHits   int64         `json:"cache_hits"`
	CacheMisses int64         `json:"cache_misses"`
	History     []float64     `json:"history"` // best fitness after each generation / trial
	Elapsed     time.Duration `json:"elapsed"`
}

// ProgressFunc is called after each generation (genetic) or trial batch (random) with the best fitness so far.
type ProgressFunc func(step, total int, best float64)

// Optimizer chooses stationCount stations out of pool. one Optimizer = one run: it owns the cost cache.
type Optimizer struct {
	log          *zap.Logger
	evaluator    *Evaluator
	cache        *CostCache
	pool         []int64
	stationCount int
	cfg          Config
	rng          *rand.Rand
	evaluations  int
	progress     ProgressFunc
}

// NewOptimizer. oracle is wrapped with a fresh CostCache, so pairwise costs are shared by every individual of this run.
func NewOptimizer(log *zap.Logger, oracle Oracle, demands []Demand, pool []int64, stationCount int,
	cfg Config) (*Optimizer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seen := make(map[int64]struct{}, len(pool))
	uniquePool := make([]int64, 0, len(pool))
	for _, id := range pool {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		uniquePool = append(uniquePool, id)
	}
	if stationCount < 1 || stationCount > len(uniquePool) {
		return nil, util.WrapErrorf(nil, util.ErrInvalidConfig,
			"number of stations must be in [1, %d], got %d", len(uniquePool), stationCount)
	}

	cache := NewCostCache()
	evaluator, err := NewEvaluator(NewCachedOracle(oracle, cache), demands, cfg.Aggregation)
	if err != nil {
		return nil, err
	}

	return &Optimizer{
		log:          log,
		evaluator:    evaluator,
		cache:        cache,
		pool:         uniquePool,
		stationCount: stationCount,
		cfg:          cfg,
		rng:          rand.New(rand.NewSource(cfg.Seed)),
	}, nil
}

func (o *Optimizer) SetProgressFunc(progress ProgressFunc) {
	o.progress = progress
}

func (o *Optimizer) GetCache() *CostCache {
	return o.cache
}

func (o *Optimizer) Run(ctx context.Context, method Method) (*Result, error) {
	if method == RandomSampling {
		return o.RandomSearch(ctx)
	}
	return o.Genetic(ctx)
}

// randomIndividual. uniform random subset of the pool, partial fisher-yates.
func (o *Optimizer) randomIndividual() *Individual {
	ids := make([]int64, len(o.pool))
	copy(ids, o.pool)
	for i := 0; i < o.stationCount; i++ {
		j := i + o.rng.Intn(len(ids)-i)
		ids[i], ids[j] = ids[j], ids[i]
	}
	return NewIndividual(ids[:o.stationCount])
}

// evaluate the individuals that have no fitness yet over the worker pool.
func (o *Optimizer) evaluate(ctx context.Context, pop []*Individual) error {
	pending := make([]*Individual, 0, len(pop))
	for _, ind := range pop {
		if !ind.Evaluated() {
			pending = append(pending, ind)
		}
	}

	errs := concurrent.Map(o.cfg.Workers, pending, func(ind *Individual) error {
		if util.StopConcurrentOperation(ctx) {
			return ctx.Err()
		}
		return o.evaluator.Evaluate(ctx, ind)
	})
	o.evaluations += len(pending)

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func (o *Optimizer) newResult(method Method, best *Individual, history []float64, start time.Time) *Result {
	return &Result{
		Selected:    best.Selected(),
		Fitness:     best.Fitness(),
		Method:      method.String(),
		Generations: len(history),
		Evaluations: o.evaluations,
		CacheHits:   o.cache.Hits(),
		CacheMisses: o.cache.Misses(),
		History:     history,
		Elapsed:     time.Since(start),
	}
}

// RandomSearch. best of cfg.RandomTrials uniformly random station sets.
func (o *Optimizer) RandomSearch(ctx context.Context) (*Result, error) {
	start := time.Now()
	o.log.Info("Starting random sampling station search...", zap.Int("trials", o.cfg.RandomTrials),
		zap.Int("stations", o.stationCount), zap.Int("pool", len(o.pool)))

	var best *Individual
	history := make([]float64, 0, o.cfg.RandomTrials)

	batchSize := o.cfg.Workers * 4
	for done := 0; done < o.cfg.RandomTrials; {
		if util.StopConcurrentOperation(ctx) {
			return nil, ctx.Err()
		}
		n := int(math.Min(float64(batchSize), float64(o.cfg.RandomTrials-done)))
		batch := make([]*Individual, n)
		for i := range batch {
			batch[i] = o.randomIndividual()
		}
		if err := o.evaluate(ctx, batch); err != nil {
			return nil, err
		}
		for _, ind := range batch {
			if best == nil || ind.Fitness() < best.Fitness() {
				best = ind
			}
			history = append(history, best.Fitness())
		}
		done += n
		if o.progress != nil {
			o.progress(done, o.cfg.RandomTrials, best.Fitness())
		}
	}

	res := o.newResult(RandomSampling, best, history, start)
	o.log.Info("Random sampling finished", zap.Int64s("selected", res.Selected), zap.Float64("fitness", res.Fitness),
		zap.Int("evaluations", res.Evaluations), zap.Int64("cache_misses", res.CacheMisses),
		zap.Duration("elapsed", res.Elapsed))
	return res, nil
}
