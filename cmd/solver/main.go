package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/k0kubun/go-ansi"
	"github.com/lintang-b-s/navigatorx-stations/pkg/engine"
	"github.com/lintang-b-s/navigatorx-stations/pkg/logger"
	"github.com/lintang-b-s/navigatorx-stations/pkg/optimizer"
	"github.com/lintang-b-s/navigatorx-stations/pkg/util"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	problemPath   = flag.String("problem", "", "problem file (.json, .json.bz2, .yaml), defaults to PROBLEM_PATH")
	strategyName  = flag.String("strategy", "astar", "search strategy: bfs | dfs | greedy | astar")
	heuristicName = flag.String("heuristic", "geodesic", "heuristic: geodesic | euclidean | zero | landmark")
	mode          = flag.String("mode", "search", "search: initial -> final query, stations: station placement")
	methodName    = flag.String("method", "genetic", "station placement method: genetic | random")
	stations      = flag.Int("stations", 0, "number of stations, defaults to number_stations of the problem")
)

func main() {
	flag.Parse()
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if err := util.ReadConfig(); err != nil {
		logger.Fatal("read config", zap.Error(err))
	}
	path := *problemPath
	if path == "" {
		path = viper.GetString("PROBLEM_PATH")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	navEngine, err := engine.NewEngine(path, logger, viper.GetInt("ROUTE_CACHE_CAPACITY"))
	if err != nil {
		logger.Fatal("load problem", zap.Error(err))
	}

	var out interface{}
	switch *mode {
	case "search":
		out, err = runSearch(ctx, navEngine)
	case "stations":
		out, err = runStations(ctx, navEngine)
	default:
		err = util.WrapErrorf(nil, util.ErrBadParamInput, "unknown mode %q", *mode)
	}
	if err != nil {
		logger.Fatal("solver failed", zap.Error(err))
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		logger.Fatal("write result", zap.Error(err))
	}
}

type searchOutput struct {
	Address   string  `json:"address"`
	Strategy  string  `json:"strategy"`
	Heuristic string  `json:"heuristic"`
	Status    string  `json:"status"`
	Path      []int64 `json:"path"`
	Cost      float64 `json:"cost"`
	Distance  float64 `json:"distance"`
	Depth     int     `json:"depth"`
	Generated int     `json:"generated"`
	Expanded  int     `json:"expanded"`
	Explored  int     `json:"explored"`
	Elapsed   string  `json:"elapsed"`
}

func runSearch(ctx context.Context, navEngine *engine.Engine) (*searchOutput, error) {
	p := navEngine.GetProblem()
	origin, goal, err := p.Query()
	if err != nil {
		return nil, err
	}
	strategy, heuristic, err := engine.ParseSearchOptions(*strategyName, *heuristicName)
	if err != nil {
		return nil, err
	}

	res, err := navEngine.RunSearch(ctx, strategy, origin, goal, heuristic)
	if err != nil {
		return nil, err
	}
	return &searchOutput{
		Address:   p.Address,
		Strategy:  strategy.String(),
		Heuristic: heuristic,
		Status:    res.Status.String(),
		Path:      res.Path,
		Cost:      res.Cost,
		Distance:  engine.PathDistance(res),
		Depth:     res.Depth,
		Generated: res.Generated,
		Expanded:  res.Expanded,
		Explored:  res.Explored,
		Elapsed:   res.Elapsed.String(),
	}, nil
}

func runStations(ctx context.Context, navEngine *engine.Engine) (*optimizer.Result, error) {
	p := navEngine.GetProblem()
	demands, err := p.Demands()
	if err != nil {
		return nil, err
	}
	stationCount := *stations
	if stationCount == 0 {
		stationCount = p.NumberStations
	}

	method, err := optimizer.ParseMethod(*methodName)
	if err != nil {
		return nil, err
	}
	cfg, err := optimizer.ConfigFromViper()
	if err != nil {
		return nil, err
	}

	total := cfg.MaxGenerations
	if method == optimizer.RandomSampling {
		total = cfg.RandomTrials
	}
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(ansi.NewAnsiStderr()),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(30),
		progressbar.OptionSetDescription(fmt.Sprintf("[cyan]%s[reset] placing %d stations...", method, stationCount)),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	res, err := navEngine.OptimizeStations(ctx, demands, stationCount, cfg, method,
		func(step, total int, best float64) {
			_ = bar.Set(step)
			bar.Describe(fmt.Sprintf("[cyan]%s[reset] best %.2f min", method, util.SecondsToMinutes(best)))
		})
	_ = bar.Finish()
	fmt.Fprintln(os.Stderr)
	return res, err
}
