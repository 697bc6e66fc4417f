package spatialindex

import (
	"math"

	da "github.com/lintang-b-s/navigatorx-stations/pkg/datastructure"
	"github.com/lintang-b-s/navigatorx-stations/pkg/geo"
	"github.com/tidwall/rtree"
	"go.uber.org/zap"
)

// maximum radius (km) tried by Nearest before giving up
const maxSnapRadius = 50.0

type Rtree struct {
	tr    *rtree.RTreeG[da.Intersection]
	count int
}

func NewRtree() *Rtree {
	var tr rtree.RTreeG[da.Intersection]
	return &Rtree{
		tr: &tr,
	}
}

// Build. one point leaf per intersection.
func (rt *Rtree) Build(graph *da.Graph, log *zap.Logger) {
	log.Info("Building R-tree spatial index...", zap.Int("intersections", graph.NumberOfIntersections()))
	graph.ForIntersections(func(v da.Intersection) {
		p := [2]float64{v.GetLon(), v.GetLat()}
		rt.tr.Insert(p, p, v)
		rt.count++
	})
	log.Info("R-tree spatial index built.")
}

func (rt *Rtree) Len() int {
	return rt.count
}

// SearchWithinRadius search for all intersections within radius (in km) from the query point (qLat, qLon).
func (rt *Rtree) SearchWithinRadius(qLat, qLon, radius float64) []da.Intersection {
	// box corners are on the diagonal, radius*sqrt2 away
	lowerLat, lowerLon := geo.GetDestinationPoint(qLat, qLon, 225, radius*math.Sqrt2)
	upperLat, upperLon := geo.GetDestinationPoint(qLat, qLon, 45, radius*math.Sqrt2)

	results := make([]da.Intersection, 0, 10)
	rt.tr.Search([2]float64{lowerLon, lowerLat}, [2]float64{upperLon, upperLat},
		func(min, max [2]float64, data da.Intersection) bool {
			if geo.CalculateHaversineDistance(qLat, qLon, data.GetLat(), data.GetLon()) <= radius {
				results = append(results, data)
			}
			return true
		})
	return results
}

// Nearest. closest intersection to (qLat, qLon) by haversine distance, the search box doubles from radius
// until something is found. ties go to the smaller id.
func (rt *Rtree) Nearest(qLat, qLon, radius float64) (da.Intersection, float64, bool) {
	if rt.count == 0 {
		return da.Intersection{}, 0, false
	}
	if radius <= 0 {
		radius = 0.1
	}

	for ; radius <= maxSnapRadius; radius *= 2 {
		cands := rt.SearchWithinRadius(qLat, qLon, radius)
		if len(cands) == 0 {
			continue
		}

		best, bestDist := cands[0], math.Inf(1)
		for _, c := range cands {
			d := geo.CalculateHaversineDistance(qLat, qLon, c.GetLat(), c.GetLon())
			if d < bestDist || (d == bestDist && c.GetID() < best.GetID()) {
				best, bestDist = c, d
			}
		}
		return best, bestDist, true
	}
	return da.Intersection{}, 0, false
}
