package pkg

const (
	INF_WEIGHT float64 = 1e15

	// cost assigned to a demand point that cannot reach any station (5 hours)
	NO_PATH_PENALTY_SECONDS = 3600.0 * 5

	KMH_TO_MS = 1000.0 / 3600.0
)

// genetic algorithm defaults
const (
	DEFAULT_POPULATION_SIZE      = 50
	DEFAULT_MAX_GENERATIONS      = 200
	DEFAULT_CROSSOVER_PROB       = 0.8
	DEFAULT_MUTATION_PROB        = 0.05
	DEFAULT_TOURNAMENT_SIZE      = 2
	DEFAULT_RANDOM_TRIALS        = 100
	DEFAULT_WORKERS              = 4
	CONVERGENCE_CHURN_RATIO      = 0.1
	DEFAULT_ROUTE_CACHE_CAPACITY = 1 << 12 // 4096
	DEFAULT_LANDMARKS            = 8
)

const (
	DEBUG = false
)
