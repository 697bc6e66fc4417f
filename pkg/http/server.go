package http

import (
	"context"

	http_router "github.com/lintang-b-s/navigatorx-stations/pkg/http/router"
	"github.com/lintang-b-s/navigatorx-stations/pkg/http/router/controllers"
	http_server "github.com/lintang-b-s/navigatorx-stations/pkg/http/server"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Server struct {
	Log *zap.Logger
}

func NewServer(log *zap.Logger) *Server {
	return &Server{Log: log}
}

// Use. serve the api until ctx is done or the listener fails. settings come from viper (API_*, RATE_LIMIT_*).
func (s *Server) Use(
	ctx context.Context,
	searchService controllers.SearchService,
	stationService controllers.StationService,
) error {
	config := http_server.Config{
		Port:    viper.GetInt("API_PORT"),
		Timeout: viper.GetDuration("API_TIMEOUT"),
	}
	rateLimit := http_router.RateLimit{
		Enabled: viper.GetBool("RATE_LIMIT_ENABLED"),
		RPS:     viper.GetFloat64("RATE_LIMIT_RPS"),
		Burst:   viper.GetInt("RATE_LIMIT_BURST"),
	}

	api := http_router.NewAPI(s.Log)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return api.Run(gctx, config, rateLimit, searchService, stationService)
	})

	return g.Wait()
}
