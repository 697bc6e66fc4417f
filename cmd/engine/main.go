package main

import (
	"context"
	"errors"
	"flag"
	"net/http"

	"github.com/lintang-b-s/navigatorx-stations/pkg/engine"
	http_api "github.com/lintang-b-s/navigatorx-stations/pkg/http"
	"github.com/lintang-b-s/navigatorx-stations/pkg/http/usecases"
	"github.com/lintang-b-s/navigatorx-stations/pkg/logger"
	"github.com/lintang-b-s/navigatorx-stations/pkg/optimizer"
	"github.com/lintang-b-s/navigatorx-stations/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	problemPath = flag.String("problem", "", "problem file (.json, .json.bz2, .yaml), overrides PROBLEM_PATH")
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
	if *problemPath != "" {
		viper.Set("PROBLEM_PATH", *problemPath)
	}

	navEngine, err := engine.NewEngine(viper.GetString("PROBLEM_PATH"), logger, viper.GetInt("ROUTE_CACHE_CAPACITY"))
	if err != nil {
		logger.Fatal("load problem", zap.Error(err))
	}
	gaConfig, err := optimizer.ConfigFromViper()
	if err != nil {
		logger.Fatal("optimizer config", zap.Error(err))
	}

	searchService := usecases.NewSearchService(logger, navEngine)
	stationService := usecases.NewStationService(logger, navEngine, gaConfig)

	ctx, cleanup, err := NewContext()
	if err != nil {
		panic(err)
	}

	api := http_api.NewServer(logger)
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- api.Use(ctx, searchService, stationService)
	}()

	go func() {
		signal := http_api.GracefulShutdown()
		logger.Info("Shutting down", zap.String("signal", signal.String()))
		cleanup()
	}()

	if err := <-serverErr; err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Navigatorx Stations server failed", zap.Error(err))
		return
	}
	logger.Info("Navigatorx Stations Server Stopped")
}

func NewContext() (context.Context, func(), error) {
	ctx, cancel := context.WithCancel(context.Background())
	cb := func() {
		cancel()
	}

	return ctx, cb, nil
}
