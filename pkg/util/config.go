package util

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

func ReadConfig() error {
	SetConfigDefaults()
	viper.SetConfigName("config")
	viper.AddConfigPath("./data/")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// defaults + env only
			return nil
		}
		return fmt.Errorf("fatal error config file: %w", err)
	}
	return nil
}

func SetConfigDefaults() {
	viper.SetDefault("API_PORT", 6060)
	viper.SetDefault("API_TIMEOUT", "1000s")
	viper.SetDefault("HTTP_SERVER_READ_TIMEOUT", "30s")
	viper.SetDefault("HTTP_SERVER_WRITE_TIMEOUT", "30s")
	viper.SetDefault("HTTP_SERVER_IDLE_TIMEOUT", "120s")
	viper.SetDefault("HTTP_SERVER_READ_HEADER_TIMEOUT", "10s")
	viper.SetDefault("RATE_LIMIT_ENABLED", true)
	viper.SetDefault("RATE_LIMIT_RPS", 20.0)
	viper.SetDefault("RATE_LIMIT_BURST", 40)

	viper.SetDefault("PROBLEM_PATH", "./data/problem.json")
	viper.SetDefault("ROUTE_CACHE_CAPACITY", 4096)

	viper.SetDefault("GA_POPULATION_SIZE", 50)
	viper.SetDefault("GA_MATING_POOL_SIZE", 0)
	viper.SetDefault("GA_MAX_GENERATIONS", 200)
	viper.SetDefault("GA_CROSSOVER_PROB", 0.8)
	viper.SetDefault("GA_MUTATION_PROB", 0.05)
	viper.SetDefault("GA_TOURNAMENT_SIZE", 2)
	viper.SetDefault("GA_RANDOM_TRIALS", 100)
	viper.SetDefault("GA_WORKERS", 4)
	viper.SetDefault("GA_SEED", 42)
	viper.SetDefault("GA_AGGREGATION", "weighted_average")
}
