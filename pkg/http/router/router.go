package router

import (
	"context"
	"fmt"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/justinas/alice"
	"github.com/lintang-b-s/navigatorx-stations/pkg/http/router/controllers"
	router_helper "github.com/lintang-b-s/navigatorx-stations/pkg/http/router/routerhelper"
	http_server "github.com/lintang-b-s/navigatorx-stations/pkg/http/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

type RateLimit struct {
	Enabled bool
	RPS     float64
	Burst   int
}

type API struct {
	log      *zap.Logger
	registry *prometheus.Registry
	metrics  *controllers.Metrics
}

func NewAPI(log *zap.Logger) *API {
	registry := prometheus.NewRegistry()
	return &API{
		log:      log,
		registry: registry,
		metrics:  controllers.NewMetrics(registry),
	}
}

//	@title			Navigatorx Stations API
//	@version		1.0
//	@description	Uninformed and informed search over a road network, and charging station placement.

//	@license.name	BSD License
//	@license.url	https://opensource.org/license/bsd-2-clause

// @host		localhost
// @BasePath	/api
func (api *API) Handler(searchService controllers.SearchService, stationService controllers.StationService,
	rateLimit RateLimit) http.Handler {
	router := httprouter.New()

	corsHandler := cors.New(cors.Options{ //nolint:gocritic // ignore
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300, //nolint:mnd // ignore
	})

	router.GET("/doc/*any", swaggerHandler)
	router.Handler(http.MethodGet, "/metrics", promhttp.HandlerFor(api.registry, promhttp.HandlerOpts{}))

	group := router_helper.NewRouteGroup(router, "/api")
	navigatorRoutes := controllers.New(searchService, stationService, api.metrics, api.log)
	navigatorRoutes.Routes(group)

	mwChain := []alice.Constructor{corsHandler.Handler, EnforceJSONHandler, api.recoverPanic,
		RealIP, Heartbeat("healthz"), Logger(api.log), Prometheus(api.metrics)}
	if rateLimit.Enabled {
		mwChain = append(mwChain, Limit(rateLimit.RPS, rateLimit.Burst))
	}
	return alice.New(mwChain...).Then(router)
}

func (api *API) Run(
	ctx context.Context,
	config http_server.Config,
	rateLimit RateLimit,
	searchService controllers.SearchService,
	stationService controllers.StationService,
) error {
	api.log.Info("Run httprouter API")

	srv := http_server.New(ctx, api.Handler(searchService, stationService, rateLimit), config)
	api.log.Info(fmt.Sprintf("API run on port %d", config.Port))

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		api.log.Info("HTTP server stopped", zap.Error(err))
		return err
	case <-ctx.Done():
		api.log.Info("Context canceled, shutting down server")
		_ = srv.Shutdown(context.Background())
		return ctx.Err()
	}
}

func swaggerHandler(res http.ResponseWriter, req *http.Request, p httprouter.Params) {
	httpSwagger.WrapHandler(res, req)
}
