package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/julienschmidt/httprouter"
	helper "github.com/lintang-b-s/navigatorx-stations/pkg/http/router/routerhelper"
	"go.uber.org/zap"
)

type navigationAPI struct {
	searchService  SearchService
	stationService StationService
	metrics        *Metrics
	log            *zap.Logger
	validate       *validator.Validate
	trans          ut.Translator
}

func New(searchService SearchService, stationService StationService, metrics *Metrics,
	log *zap.Logger) *navigationAPI {
	validate := validator.New()
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(validate, trans)

	return &navigationAPI{
		searchService:  searchService,
		stationService: stationService,
		metrics:        metrics,
		log:            log,
		validate:       validate,
		trans:          trans,
	}
}

func (api *navigationAPI) Routes(group *helper.RouteGroup) {
	group.GET("/search", api.search)
	group.GET("/snap", api.snap)
	group.POST("/stations", api.stations)
}

// search
//
//	@Summary		point to point search between two intersections.
//	@Tags			navigations
//	@Param			origin		query	int		true	"origin intersection id"
//	@Param			destination	query	int		true	"destination intersection id"
//	@Param			strategy	query	string	false	"bfs | dfs | greedy | astar"
//	@Param			heuristic	query	string	false	"geodesic | euclidean | zero | landmark"
//	@Produce		application/json
//	@Router			/search [get]
//	@Success		200	{object}	searchResponse
//	@Failure		400	{object}	errorResponse
//	@Failure		404	{object}	errorResponse
//	@Failure		500	{object}	errorResponse
func (api *navigationAPI) search(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var (
		request searchRequest
		err     error
	)

	query := r.URL.Query()

	request.Origin, err = strconv.ParseInt(query.Get("origin"), 10, 64)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("origin is required and must be a valid intersection id"))
		return
	}
	request.Destination, err = strconv.ParseInt(query.Get("destination"), 10, 64)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("destination is required and must be a valid intersection id"))
		return
	}
	request.Strategy = query.Get("strategy")
	request.Heuristic = query.Get("heuristic")

	if err := api.validateRequest(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	res, pathPolyline, dist, err := api.searchService.Search(r.Context(), request.Origin, request.Destination,
		request.Strategy, request.Heuristic)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	strategy := request.Strategy
	if strategy == "" {
		strategy = "astar"
	}
	api.metrics.SearchQueryCount.WithLabelValues(strategy, res.Status.String()).Inc()

	headers := make(http.Header)
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewSearchResponse(res, pathPolyline, dist)},
		headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

// snap
//
//	@Summary		nearest intersection to a coordinate.
//	@Tags			navigations
//	@Param			lat	query	number	true	"latitude"
//	@Param			lon	query	number	true	"longitude"
//	@Produce		application/json
//	@Router			/snap [get]
//	@Success		200	{object}	snapResponse
//	@Failure		400	{object}	errorResponse
//	@Failure		404	{object}	errorResponse
func (api *navigationAPI) snap(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var (
		request snapRequest
		err     error
	)

	query := r.URL.Query()

	request.Lat, err = strconv.ParseFloat(query.Get("lat"), 64)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("lat is required and must be a valid float"))
		return
	}
	request.Lon, err = strconv.ParseFloat(query.Get("lon"), 64)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("lon is required and must be a valid float"))
		return
	}
	if err := api.validateRequest(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	v, dist, err := api.searchService.Snap(request.Lat, request.Lon)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": snapResponse{
		Intersection: newIntersectionResponse(v),
		DistanceKm:   dist,
	}}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

// stations
//
//	@Summary		choose the stations minimizing the weighted travel time of the candidates.
//	@Tags			stations
//	@Param			body	body	stationsRequest	true	"number of stations, method, candidates and optimizer settings"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/stations [post]
//	@Success		200	{object}	stationsResponse
//	@Failure		400	{object}	errorResponse
//	@Failure		404	{object}	errorResponse
//	@Failure		500	{object}	errorResponse
func (api *navigationAPI) stations(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var request stationsRequest

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		api.BadRequestResponse(w, r, fmt.Errorf("invalid request body: %w", err))
		return
	}
	if err := r.Body.Close(); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}

	if err := api.validateRequest(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	cfg, err := request.Config.apply(api.stationService.BaseConfig())
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	res, stations, err := api.stationService.OptimizeStations(r.Context(), request.Candidates,
		request.NumberStations, request.Method, cfg)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}
	api.metrics.StationRunCount.WithLabelValues(res.Method).Inc()

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewStationsResponse(res, stations)}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}
