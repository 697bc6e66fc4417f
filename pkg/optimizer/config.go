package optimizer

import (
	"fmt"
	"strings"

	"github.com/lintang-b-s/navigatorx-stations/pkg"
	"github.com/lintang-b-s/navigatorx-stations/pkg/util"
	"github.com/spf13/viper"
)

// Aggregation combines the per-demand nearest-station times into one fitness. lower is better for every policy.
type Aggregation uint8

const (
	// sum_d w_d * min_s t(d,s) / sum_d w_d
	WeightedAverage Aggregation = iota
	// max_d min_s t(d,s) over demands with positive weight
	WorstCase
)

func (a Aggregation) String() string {
	switch a {
	case WeightedAverage:
		return "weighted_average"
	case WorstCase:
		return "worst_case"
	default:
		return fmt.Sprintf("aggregation(%d)", uint8(a))
	}
}

func ParseAggregation(name string) (Aggregation, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "weighted_average", "average":
		return WeightedAverage, nil
	case "worst_case", "worst", "max":
		return WorstCase, nil
	default:
		return 0, util.WrapErrorf(nil, util.ErrInvalidConfig, "unknown aggregation %q", name)
	}
}

type Method uint8

const (
	Genetic Method = iota
	RandomSampling
)

func (m Method) String() string {
	if m == RandomSampling {
		return "random"
	}
	return "genetic"
}

func ParseMethod(name string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "genetic", "ga":
		return Genetic, nil
	case "random", "random_sampling":
		return RandomSampling, nil
	default:
		return 0, util.WrapErrorf(nil, util.ErrInvalidConfig, "unknown optimization method %q", name)
	}
}

type Config struct {
	PopulationSize int         `json:"population_size"`
	MatingPoolSize int         `json:"mating_pool_size"` // 0 = PopulationSize
	MaxGenerations int         `json:"max_generations"`
	CrossoverProb  float64     `json:"crossover_prob"`
	MutationProb   float64     `json:"mutation_prob"` // per gene
	TournamentSize int         `json:"tournament_size"`
	RandomTrials   int         `json:"random_trials"`
	Workers        int         `json:"workers"`
	Seed           uint64      `json:"seed"`
	Aggregation    Aggregation `json:"-"`
}

func DefaultConfig() Config {
	return Config{
		PopulationSize: pkg.DEFAULT_POPULATION_SIZE,
		MaxGenerations: pkg.DEFAULT_MAX_GENERATIONS,
		CrossoverProb:  pkg.DEFAULT_CROSSOVER_PROB,
		MutationProb:   pkg.DEFAULT_MUTATION_PROB,
		TournamentSize: pkg.DEFAULT_TOURNAMENT_SIZE,
		RandomTrials:   pkg.DEFAULT_RANDOM_TRIALS,
		Workers:        pkg.DEFAULT_WORKERS,
		Seed:           42,
		Aggregation:    WeightedAverage,
	}
}

// ConfigFromViper. GA_* keys, see util.SetConfigDefaults.
func ConfigFromViper() (Config, error) {
	agg, err := ParseAggregation(viper.GetString("GA_AGGREGATION"))
	if err != nil {
		return Config{}, err
	}
	cfg := Config{
		PopulationSize: viper.GetInt("GA_POPULATION_SIZE"),
		MatingPoolSize: viper.GetInt("GA_MATING_POOL_SIZE"),
		MaxGenerations: viper.GetInt("GA_MAX_GENERATIONS"),
		CrossoverProb:  viper.GetFloat64("GA_CROSSOVER_PROB"),
		MutationProb:   viper.GetFloat64("GA_MUTATION_PROB"),
		TournamentSize: viper.GetInt("GA_TOURNAMENT_SIZE"),
		RandomTrials:   viper.GetInt("GA_RANDOM_TRIALS"),
		Workers:        viper.GetInt("GA_WORKERS"),
		Seed:           viper.GetUint64("GA_SEED"),
		Aggregation:    agg,
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch {
	case c.PopulationSize < 2:
		return util.WrapErrorf(nil, util.ErrInvalidConfig, "population size must be at least 2, got %d", c.PopulationSize)
	case c.MatingPoolSize < 0:
		return util.WrapErrorf(nil, util.ErrInvalidConfig, "mating pool size must not be negative, got %d", c.MatingPoolSize)
	case c.MaxGenerations < 1:
		return util.WrapErrorf(nil, util.ErrInvalidConfig, "max generations must be at least 1, got %d", c.MaxGenerations)
	case c.CrossoverProb < 0 || c.CrossoverProb > 1:
		return util.WrapErrorf(nil, util.ErrInvalidConfig, "crossover probability must be in [0,1], got %f", c.CrossoverProb)
	case c.MutationProb < 0 || c.MutationProb > 1:
		return util.WrapErrorf(nil, util.ErrInvalidConfig, "mutation probability must be in [0,1], got %f", c.MutationProb)
	case c.TournamentSize < 1:
		return util.WrapErrorf(nil, util.ErrInvalidConfig, "tournament size must be at least 1, got %d", c.TournamentSize)
	case c.RandomTrials < 1:
		return util.WrapErrorf(nil, util.ErrInvalidConfig, "random trials must be at least 1, got %d", c.RandomTrials)
	case c.Workers < 1:
		return util.WrapErrorf(nil, util.ErrInvalidConfig, "workers must be at least 1, got %d", c.Workers)
	}
	return nil
}

func (c Config) matingPoolSize() int {
	if c.MatingPoolSize == 0 {
		return c.PopulationSize
	}
	return c.MatingPoolSize
}
