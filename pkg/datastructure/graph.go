package datastructure

import (
	"math"
	"sort"

	"github.com/lintang-b-s/navigatorx-stations/pkg/util"
)

// Intersection is a search state: a road intersection with its coordinates.
type Intersection struct {
	id  int64
	lon float64
	lat float64
}

func NewIntersection(id int64, lon, lat float64) Intersection {
	return Intersection{
		id:  id,
		lon: lon,
		lat: lat,
	}
}

func (v Intersection) GetID() int64 {
	return v.id
}

func (v Intersection) GetLat() float64 {
	return v.lat
}

func (v Intersection) GetLon() float64 {
	return v.lon
}

// Segment is a directed, timed road segment between two intersections.
type Segment struct {
	origin      int64
	destination int64
	distance    float64 // meter
	speed       float64 // km/h
	cost        float64 // second
}

// NewSegment. cost = distance (meter) / speed (m/s). Speed is validated by NewGraph.
func NewSegment(origin, destination int64, distance, speed float64) Segment {
	cost := math.Inf(1)
	if speed > 0 {
		cost = distance / util.KmhToMetersPerSecond(speed)
	}
	return Segment{
		origin:      origin,
		destination: destination,
		distance:    distance,
		speed:       speed,
		cost:        cost,
	}
}

func (e Segment) GetOrigin() int64 {
	return e.origin
}

func (e Segment) GetDestination() int64 {
	return e.destination
}

func (e Segment) GetDistance() float64 {
	return e.distance
}

func (e Segment) GetSpeed() float64 {
	return e.speed
}

// GetCost. travel time in seconds
func (e Segment) GetCost() float64 {
	return e.cost
}

// Graph is read-only after NewGraph and safe to share between concurrent searches.
type Graph struct {
	intersections map[int64]Intersection
	adjacency     map[int64][]Segment
	ids           []int64 // sorted intersection ids
	maxSpeed      float64 // km/h
	numSegments   int
}

// NewGraph. build the intersection & adjacency mappings. outgoing segments of every origin are sorted by destination id
// so that expansion order is deterministic.
func NewGraph(intersections []Intersection, segments []Segment) (*Graph, error) {
	g := &Graph{
		intersections: make(map[int64]Intersection, len(intersections)),
		adjacency:     make(map[int64][]Segment),
		ids:           make([]int64, 0, len(intersections)),
		numSegments:   len(segments),
	}

	for _, v := range intersections {
		if _, ok := g.intersections[v.id]; ok {
			return nil, util.WrapErrorf(nil, util.ErrMalformedGraph, "duplicate intersection %d", v.id)
		}
		g.intersections[v.id] = v
		g.ids = append(g.ids, v.id)
	}
	sort.Slice(g.ids, func(i, j int) bool { return g.ids[i] < g.ids[j] })

	for _, e := range segments {
		if _, ok := g.intersections[e.origin]; !ok {
			return nil, util.WrapErrorf(nil, util.ErrMalformedGraph, "segment %d->%d references unknown origin",
				e.origin, e.destination)
		}
		if _, ok := g.intersections[e.destination]; !ok {
			return nil, util.WrapErrorf(nil, util.ErrMalformedGraph, "segment %d->%d references unknown destination",
				e.origin, e.destination)
		}
		if !(e.speed > 0) {
			return nil, util.WrapErrorf(nil, util.ErrMalformedGraph, "segment %d->%d has non-positive speed %f",
				e.origin, e.destination, e.speed)
		}
		if e.distance < 0 || math.IsNaN(e.distance) {
			return nil, util.WrapErrorf(nil, util.ErrMalformedGraph, "segment %d->%d has negative distance %f",
				e.origin, e.destination, e.distance)
		}

		g.adjacency[e.origin] = append(g.adjacency[e.origin], e)
		if e.speed > g.maxSpeed {
			g.maxSpeed = e.speed
		}
	}

	for origin := range g.adjacency {
		out := g.adjacency[origin]
		sort.SliceStable(out, func(i, j int) bool { return out[i].destination < out[j].destination })
	}

	return g, nil
}

// Neighbors. outgoing segments of id ordered by destination id. the returned slice must not be modified.
func (g *Graph) Neighbors(id int64) []Segment {
	return g.adjacency[id]
}

func (g *Graph) State(id int64) (Intersection, bool) {
	v, ok := g.intersections[id]
	return v, ok
}

func (g *Graph) HasState(id int64) bool {
	_, ok := g.intersections[id]
	return ok
}

// MaxSpeed. maximum segment speed in km/h
func (g *Graph) MaxSpeed() float64 {
	return g.maxSpeed
}

func (g *Graph) NumberOfIntersections() int {
	return len(g.ids)
}

func (g *Graph) NumberOfSegments() int {
	return g.numSegments
}

// Intersections. all intersections sorted by id
func (g *Graph) Intersections() []Intersection {
	vs := make([]Intersection, 0, len(g.ids))
	for _, id := range g.ids {
		vs = append(vs, g.intersections[id])
	}
	return vs
}

func (g *Graph) ForIntersections(handle func(v Intersection)) {
	for _, id := range g.ids {
		handle(g.intersections[id])
	}
}
