package problem

import (
	"math"

	da "github.com/lintang-b-s/navigatorx-stations/pkg/datastructure"
	"github.com/lintang-b-s/navigatorx-stations/pkg/optimizer"
	"github.com/lintang-b-s/navigatorx-stations/pkg/util"
)

type Intersection struct {
	Identifier int64   `json:"identifier" yaml:"identifier"`
	Longitude  float64 `json:"longitude" yaml:"longitude"`
	Latitude   float64 `json:"latitude" yaml:"latitude"`
}

type Segment struct {
	Origin      int64   `json:"origin" yaml:"origin"`
	Destination int64   `json:"destination" yaml:"destination"`
	Distance    float64 `json:"distance" yaml:"distance"` // meter
	Speed       float64 `json:"speed" yaml:"speed"`       // km/h
}

// Problem is a road network plus an optional point-to-point query and an optional station placement instance.
// candidates are [intersection id, weight] pairs.
type Problem struct {
	Address        string         `json:"address" yaml:"address"`
	Intersections  []Intersection `json:"intersections" yaml:"intersections"`
	Segments       []Segment      `json:"segments" yaml:"segments"`
	Initial        *int64         `json:"initial,omitempty" yaml:"initial,omitempty"`
	Final          *int64         `json:"final,omitempty" yaml:"final,omitempty"`
	Candidates     [][]float64    `json:"candidates,omitempty" yaml:"candidates,omitempty"`
	NumberStations int            `json:"number_stations,omitempty" yaml:"number_stations,omitempty"`
}

func (p *Problem) Graph() (*da.Graph, error) {
	intersections := make([]da.Intersection, 0, len(p.Intersections))
	for _, v := range p.Intersections {
		intersections = append(intersections, da.NewIntersection(v.Identifier, v.Longitude, v.Latitude))
	}
	segments := make([]da.Segment, 0, len(p.Segments))
	for _, e := range p.Segments {
		segments = append(segments, da.NewSegment(e.Origin, e.Destination, e.Distance, e.Speed))
	}
	return da.NewGraph(intersections, segments)
}

// Query. initial and final intersection of the point-to-point search.
func (p *Problem) Query() (int64, int64, error) {
	if p.Initial == nil || p.Final == nil {
		return 0, 0, util.WrapErrorf(nil, util.ErrBadParamInput, "problem %q has no initial/final intersection", p.Address)
	}
	return *p.Initial, *p.Final, nil
}

func (p *Problem) HasStations() bool {
	return len(p.Candidates) > 0
}

// Demands. candidates as weighted demand points, in file order.
func (p *Problem) Demands() ([]optimizer.Demand, error) {
	demands := make([]optimizer.Demand, 0, len(p.Candidates))
	for i, c := range p.Candidates {
		if len(c) != 2 {
			return nil, util.WrapErrorf(nil, util.ErrBadParamInput,
				"candidate %d must be a [id, weight] pair, got %d values", i, len(c))
		}
		if c[0] != math.Trunc(c[0]) {
			return nil, util.WrapErrorf(nil, util.ErrBadParamInput, "candidate %d has a non integer id %v", i, c[0])
		}
		demands = append(demands, optimizer.Demand{ID: int64(c[0]), Weight: c[1]})
	}
	return demands, nil
}

// CandidateIDs. ids of the candidate intersections, in file order.
func (p *Problem) CandidateIDs() ([]int64, error) {
	demands, err := p.Demands()
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(demands))
	for _, d := range demands {
		ids = append(ids, d.ID)
	}
	return ids, nil
}
