package datastructure

import "math"

// BoundingBox. smallest lat/lon box containing every intersection of a graph.
type BoundingBox struct {
	minLat, minLon float64
	maxLat, maxLon float64
}

func NewBoundingBox(minLat, minLon, maxLat, maxLon float64) *BoundingBox {
	return &BoundingBox{minLat: minLat,
		minLon: minLon,
		maxLat: maxLat,
		maxLon: maxLon}
}

func (b *BoundingBox) GetMinLat() float64 {
	return b.minLat
}

func (b *BoundingBox) GetMinLon() float64 {
	return b.minLon
}

func (b *BoundingBox) GetMaxLat() float64 {
	return b.maxLat
}

func (b *BoundingBox) GetMaxLon() float64 {
	return b.maxLon
}

// Center. midpoint (lat, lon) of the box.
func (b *BoundingBox) Center() (float64, float64) {
	return (b.minLat + b.maxLat) / 2.0, (b.minLon + b.maxLon) / 2.0
}

func (b *BoundingBox) Contains(lat, lon float64) bool {
	return lat >= b.minLat && lat <= b.maxLat && lon >= b.minLon && lon <= b.maxLon
}

// BoundingBox. nil for a graph without intersections.
func (g *Graph) BoundingBox() *BoundingBox {
	if len(g.ids) == 0 {
		return nil
	}
	minLat, minLon := math.MaxFloat64, math.MaxFloat64
	maxLat, maxLon := -math.MaxFloat64, -math.MaxFloat64
	for _, v := range g.intersections {
		minLat = math.Min(minLat, v.GetLat())
		minLon = math.Min(minLon, v.GetLon())
		maxLat = math.Max(maxLat, v.GetLat())
		maxLon = math.Max(maxLon, v.GetLon())
	}
	return NewBoundingBox(minLat, minLon, maxLat, maxLon)
}
