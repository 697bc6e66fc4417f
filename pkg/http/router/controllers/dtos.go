package controllers

import (
	da "github.com/lintang-b-s/navigatorx-stations/pkg/datastructure"
	"github.com/lintang-b-s/navigatorx-stations/pkg/engine/search"
	"github.com/lintang-b-s/navigatorx-stations/pkg/optimizer"
	"github.com/lintang-b-s/navigatorx-stations/pkg/util"
)

type searchRequest struct {
	Origin      int64  `json:"origin"`
	Destination int64  `json:"destination"`
	Strategy    string `json:"strategy" validate:"omitempty,oneof=bfs dfs greedy astar"`
	Heuristic   string `json:"heuristic" validate:"omitempty,oneof=geodesic euclidean zero none landmark alt"`
}

type searchResponse struct {
	Status      string  `json:"status"`
	Found       bool    `json:"found"`
	Path        []int64 `json:"path"`
	Polyline    string  `json:"polyline"`
	Cost        float64 `json:"cost"`         // second
	CostMinutes float64 `json:"cost_minutes"` // rounded
	Distance    float64 `json:"distance"`     // meter
	Depth       int     `json:"depth"`
	Generated   int     `json:"generated"`
	Expanded    int     `json:"expanded"`
	Explored    int     `json:"explored"`
	ElapsedMs   float64 `json:"elapsed_ms"`
}

func NewSearchResponse(res *search.Result, polyline string, dist float64) searchResponse {
	path := res.Path
	if path == nil {
		path = []int64{}
	}
	resp := searchResponse{
		Status:    res.Status.String(),
		Found:     res.Found(),
		Path:      path,
		Polyline:  polyline,
		Distance:  util.RoundFloat(dist, 2),
		Depth:     res.Depth,
		Generated: res.Generated,
		Expanded:  res.Expanded,
		Explored:  res.Explored,
		ElapsedMs: util.RoundFloat(float64(res.Elapsed.Microseconds())/1000, 3),
	}
	if res.Found() {
		resp.Cost = util.RoundFloat(res.Cost, 3)
		resp.CostMinutes = util.RoundFloat(util.SecondsToMinutes(res.Cost), 2)
	} else {
		resp.Cost = -1
		resp.CostMinutes = -1
	}
	return resp
}

type snapRequest struct {
	Lat float64 `json:"lat" validate:"min=-90,max=90"`
	Lon float64 `json:"lon" validate:"min=-180,max=180"`
}

type intersectionResponse struct {
	ID  int64   `json:"id"`
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func newIntersectionResponse(v da.Intersection) intersectionResponse {
	return intersectionResponse{ID: v.GetID(), Lat: v.GetLat(), Lon: v.GetLon()}
}

type snapResponse struct {
	Intersection intersectionResponse `json:"intersection"`
	DistanceKm   float64              `json:"distance_km"`
}

type gaConfigRequest struct {
	PopulationSize *int     `json:"population_size" validate:"omitempty,min=2,max=10000"`
	MatingPoolSize *int     `json:"mating_pool_size" validate:"omitempty,min=0,max=10000"`
	MaxGenerations *int     `json:"max_generations" validate:"omitempty,min=1,max=100000"`
	CrossoverProb  *float64 `json:"crossover_prob" validate:"omitempty,min=0,max=1"`
	MutationProb   *float64 `json:"mutation_prob" validate:"omitempty,min=0,max=1"`
	TournamentSize *int     `json:"tournament_size" validate:"omitempty,min=1"`
	RandomTrials   *int     `json:"random_trials" validate:"omitempty,min=1,max=1000000"`
	Seed           *uint64  `json:"seed"`
	Aggregation    *string  `json:"aggregation" validate:"omitempty,oneof=weighted_average worst_case"`
}

// apply. overrides set fields of cfg.
func (r *gaConfigRequest) apply(cfg optimizer.Config) (optimizer.Config, error) {
	if r == nil {
		return cfg, nil
	}
	if r.PopulationSize != nil {
		cfg.PopulationSize = *r.PopulationSize
	}
	if r.MatingPoolSize != nil {
		cfg.MatingPoolSize = *r.MatingPoolSize
	}
	if r.MaxGenerations != nil {
		cfg.MaxGenerations = *r.MaxGenerations
	}
	if r.CrossoverProb != nil {
		cfg.CrossoverProb = *r.CrossoverProb
	}
	if r.MutationProb != nil {
		cfg.MutationProb = *r.MutationProb
	}
	if r.TournamentSize != nil {
		cfg.TournamentSize = *r.TournamentSize
	}
	if r.RandomTrials != nil {
		cfg.RandomTrials = *r.RandomTrials
	}
	if r.Seed != nil {
		cfg.Seed = *r.Seed
	}
	if r.Aggregation != nil {
		agg, err := optimizer.ParseAggregation(*r.Aggregation)
		if err != nil {
			return cfg, err
		}
		cfg.Aggregation = agg
	}
	return cfg, nil
}

type stationsRequest struct {
	NumberStations int              `json:"number_stations" validate:"omitempty,min=1"`
	Method         string           `json:"method" validate:"omitempty,oneof=genetic random"`
	Candidates     [][]float64      `json:"candidates" validate:"omitempty,dive,len=2"`
	Config         *gaConfigRequest `json:"config"`
}

type stationsResponse struct {
	Selected       []int64                `json:"selected"`
	Stations       []intersectionResponse `json:"stations"`
	Fitness        float64                `json:"fitness"` // second
	FitnessMinutes float64                `json:"fitness_minutes"`
	Method         string                 `json:"method"`
	Generations    int                    `json:"generations"`
	Converged      bool                   `json:"converged"`
	Evaluations    int                    `json:"evaluations"`
	CacheHits      int64                  `json:"cache_hits"`
	CacheMisses    int64                  `json:"cache_misses"`
	History        []float64              `json:"history"`
	ElapsedMs      float64                `json:"elapsed_ms"`
}

func NewStationsResponse(res *optimizer.Result, stations []da.Intersection) stationsResponse {
	out := make([]intersectionResponse, 0, len(stations))
	for _, s := range stations {
		out = append(out, newIntersectionResponse(s))
	}
	return stationsResponse{
		Selected:       res.Selected,
		Stations:       out,
		Fitness:        util.RoundFloat(res.Fitness, 3),
		FitnessMinutes: util.RoundFloat(util.SecondsToMinutes(res.Fitness), 2),
		Method:         res.Method,
		Generations:    res.Generations,
		Converged:      res.Converged,
		Evaluations:    res.Evaluations,
		CacheHits:      res.CacheHits,
		CacheMisses:    res.CacheMisses,
		History:        res.History,
		ElapsedMs:      util.RoundFloat(float64(res.Elapsed.Microseconds())/1000, 3),
	}
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
