package search

import (
	"strings"

	da "github.com/lintang-b-s/navigatorx-stations/pkg/datastructure"
	"github.com/lintang-b-s/navigatorx-stations/pkg/geo"
	"github.com/lintang-b-s/navigatorx-stations/pkg/util"
)

/*
Heuristic estimates the remaining travel time (second) from current to goal.

A* only returns minimum-cost paths when the heuristic is admissible (never overestimates).
GreedyBestFirst tolerates any heuristic since it gives no cost guarantee anyway.
BreadthFirst & DepthFirst ignore the heuristic.
*/
type Heuristic interface {
	Estimate(current, goal da.Intersection) float64
	Admissible() bool
	Name() string
}

// GeodesicHeuristic. great-circle distance divided by the maximum segment speed of the graph.
// no segment can be traversed faster than maxSpeed, so the estimate is a lower bound of the travel time.
type GeodesicHeuristic struct {
	maxSpeed float64 // m/s
}

func NewGeodesicHeuristic(maxSpeedKmh float64) *GeodesicHeuristic {
	return &GeodesicHeuristic{maxSpeed: util.KmhToMetersPerSecond(maxSpeedKmh)}
}

func (h *GeodesicHeuristic) Estimate(current, goal da.Intersection) float64 {
	if h.maxSpeed <= 0 {
		return 0
	}
	dist := geo.CalculateGeodesicDistance(current.GetLat(), current.GetLon(), goal.GetLat(), goal.GetLon())
	return dist / h.maxSpeed
}

func (h *GeodesicHeuristic) Admissible() bool {
	return true
}

func (h *GeodesicHeuristic) Name() string {
	return "geodesic"
}

// EuclideanHeuristic. manhattan distance over raw lat/lon degrees divided by max speed in km/h.
// units do not match the segment cost, so it can overestimate: only for GreedyBestFirst.
type EuclideanHeuristic struct {
	maxSpeed float64 // km/h
}

func NewEuclideanHeuristic(maxSpeedKmh float64) *EuclideanHeuristic {
	return &EuclideanHeuristic{maxSpeed: maxSpeedKmh}
}

func (h *EuclideanHeuristic) Estimate(current, goal da.Intersection) float64 {
	if h.maxSpeed <= 0 {
		return 0
	}
	return geo.CalculateDegreeDistance(current.GetLat(), current.GetLon(), goal.GetLat(), goal.GetLon()) / h.maxSpeed
}

func (h *EuclideanHeuristic) Admissible() bool {
	return false
}

func (h *EuclideanHeuristic) Name() string {
	return "euclidean"
}

// ZeroHeuristic turns A* into uniform-cost search.
type ZeroHeuristic struct{}

func (ZeroHeuristic) Estimate(current, goal da.Intersection) float64 {
	return 0
}

func (ZeroHeuristic) Admissible() bool {
	return true
}

func (ZeroHeuristic) Name() string {
	return "zero"
}

// NewHeuristic. build a heuristic by name, calibrated on the graph max speed.
func NewHeuristic(name string, graph *da.Graph) (Heuristic, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "geodesic":
		return NewGeodesicHeuristic(graph.MaxSpeed()), nil
	case "euclidean":
		return NewEuclideanHeuristic(graph.MaxSpeed()), nil
	case "zero", "none":
		return ZeroHeuristic{}, nil
	default:
		return nil, util.WrapErrorf(nil, util.ErrBadParamInput, "unknown heuristic %q", name)
	}
}
