package optimizer

import (
	"context"
	"time"

	"github.com/lintang-b-s/navigatorx-stations/pkg"
	"github.com/lintang-b-s/navigatorx-stations/pkg/util"
	"go.uber.org/zap"
)

/*
Genetic. steady elitist genetic algorithm over fixed-size station sets:

 1. random initial population, evaluated.
 2. per generation: tournament selection of the mating pool, single-point crossover of consecutive pairs
    (with size repair), per-gene swap mutation, offspring evaluation, then parents+offspring are truncated
    to the best PopulationSize individuals.
 3. stop when fewer than 10% of the individuals changed from the previous generation, or after MaxGenerations.

the best individual seen is returned; with elitist truncation it is also the best of the last population.
*/
func (o *Optimizer) Genetic(ctx context.Context) (*Result, error) {
	start := time.Now()
	n := o.cfg.PopulationSize
	o.log.Info("Starting genetic station search...", zap.Int("population", n),
		zap.Int("stations", o.stationCount), zap.Int("pool", len(o.pool)),
		zap.Float64("crossover_prob", o.cfg.CrossoverProb), zap.Float64("mutation_prob", o.cfg.MutationProb))

	population := make([]*Individual, n)
	for i := range population {
		population[i] = o.randomIndividual()
	}
	if err := o.evaluate(ctx, population); err != nil {
		return nil, err
	}
	sortByFitness(population)
	best := population[0].clone()

	history := make([]float64, 0, o.cfg.MaxGenerations)
	converged := false
	for gen := 1; gen <= o.cfg.MaxGenerations; gen++ {
		if util.StopConcurrentOperation(ctx) {
			return nil, ctx.Err()
		}

		matingPool := o.tournamentSelection(population, o.cfg.matingPoolSize())
		offspring := o.reproduce(matingPool)
		if err := o.evaluate(ctx, offspring); err != nil {
			return nil, err
		}

		next := make([]*Individual, 0, len(population)+len(offspring))
		next = append(next, population...)
		next = append(next, offspring...)
		sortByFitness(next)
		next = next[:n]

		if next[0].Fitness() < best.Fitness() {
			best = next[0].clone()
		}
		history = append(history, best.Fitness())

		changed := churn(population, next)
		population = next

		if pkg.DEBUG {
			o.log.Debug("generation", zap.Int("generation", gen), zap.Float64("best", best.Fitness()),
				zap.Int("churn", changed))
		}
		if o.progress != nil {
			o.progress(gen, o.cfg.MaxGenerations, best.Fitness())
		}

		if float64(changed) < pkg.CONVERGENCE_CHURN_RATIO*float64(n) {
			converged = true
			break
		}
	}

	res := o.newResult(Genetic, best, history, start)
	res.Converged = converged
	o.log.Info("Genetic station search finished", zap.Int64s("selected", res.Selected),
		zap.Float64("fitness", res.Fitness), zap.Int("generations", res.Generations), zap.Bool("converged", converged),
		zap.Int("evaluations", res.Evaluations), zap.Int64("cache_misses", res.CacheMisses),
		zap.Duration("elapsed", res.Elapsed))
	return res, nil
}

// tournamentSelection. size winners, each the fittest of TournamentSize individuals drawn with replacement.
func (o *Optimizer) tournamentSelection(population []*Individual, size int) []*Individual {
	selected := make([]*Individual, 0, size)
	for i := 0; i < size; i++ {
		winner := population[o.rng.Intn(len(population))]
		for k := 1; k < o.cfg.TournamentSize; k++ {
			challenger := population[o.rng.Intn(len(population))]
			if challenger.Fitness() < winner.Fitness() {
				winner = challenger
			}
		}
		selected = append(selected, winner)
	}
	return selected
}

// reproduce. consecutive pairs of the mating pool produce two children each; an odd last parent is only mutated.
func (o *Optimizer) reproduce(matingPool []*Individual) []*Individual {
	offspring := make([]*Individual, 0, len(matingPool))
	for i := 0; i+1 < len(matingPool); i += 2 {
		a, b := matingPool[i].selected, matingPool[i+1].selected
		if o.rng.Float64() < o.cfg.CrossoverProb {
			a, b = o.crossover(a, b)
		}
		offspring = append(offspring, o.mutate(a), o.mutate(b))
	}
	if len(matingPool)%2 == 1 {
		offspring = append(offspring, o.mutate(matingPool[len(matingPool)-1].selected))
	}
	return offspring
}

// crossover. single cut point over the sorted id sequences; children are repaired back to stationCount ids.
func (o *Optimizer) crossover(a, b []int64) ([]int64, []int64) {
	if len(a) < 2 {
		return a, b
	}
	cut := 1 + o.rng.Intn(len(a)-1)

	childA := make([]int64, 0, len(a))
	childA = append(childA, a[:cut]...)
	childA = append(childA, b[cut:]...)

	childB := make([]int64, 0, len(b))
	childB = append(childB, b[:cut]...)
	childB = append(childB, a[cut:]...)

	return o.repair(childA), o.repair(childB)
}

// repair. drop duplicate ids, then remove random excess or fill the deficit with random unselected pool ids.
func (o *Optimizer) repair(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, o.stationCount)
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	for len(out) > o.stationCount {
		i := o.rng.Intn(len(out))
		out[i] = out[len(out)-1]
		out = out[:len(out)-1]
	}

	if len(out) < o.stationCount {
		free := make([]int64, 0, len(o.pool)-len(out))
		for _, id := range o.pool {
			if _, ok := seen[id]; !ok {
				free = append(free, id)
			}
		}
		for len(out) < o.stationCount {
			j := o.rng.Intn(len(free))
			out = append(out, free[j])
			free[j] = free[len(free)-1]
			free = free[:len(free)-1]
		}
	}
	return out
}

// mutate. each gene is swapped for a random unselected pool id with probability MutationProb.
func (o *Optimizer) mutate(ids []int64) *Individual {
	genes := make([]int64, len(ids))
	copy(genes, ids)

	selected := make(map[int64]struct{}, len(genes))
	for _, id := range genes {
		selected[id] = struct{}{}
	}
	free := make([]int64, 0, len(o.pool)-len(genes))
	for _, id := range o.pool {
		if _, ok := selected[id]; !ok {
			free = append(free, id)
		}
	}

	for i := range genes {
		if len(free) == 0 {
			break
		}
		if o.rng.Float64() >= o.cfg.MutationProb {
			continue
		}
		j := o.rng.Intn(len(free))
		genes[i], free[j] = free[j], genes[i]
	}
	return NewIndividual(genes)
}

// churn. number of individuals of next that are not in prev (multiset difference by key).
func churn(prev, next []*Individual) int {
	count := make(map[string]int, len(prev))
	for _, ind := range prev {
		count[ind.Key()]++
	}
	changed := 0
	for _, ind := range next {
		k := ind.Key()
		if count[k] > 0 {
			count[k]--
			continue
		}
		changed++
	}
	return changed
}
