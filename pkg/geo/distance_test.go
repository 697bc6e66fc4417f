package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistances(t *testing.T) {
	tests := []struct {
		name           string
		latOne, lonOne float64
		latTwo, lonTwo float64
		wantKm         float64
		deltaKm        float64
	}{
		{name: "same point", latOne: -7.55, lonOne: 110.8, latTwo: -7.55, lonTwo: 110.8, wantKm: 0, deltaKm: 1e-9},
		{name: "one degree of longitude at the equator", latOne: 0, lonOne: 0, latTwo: 0, lonTwo: 1, wantKm: 111.19, deltaKm: 0.01},
		{name: "one degree of latitude", latOne: 10, lonOne: 20, latTwo: 11, lonTwo: 20, wantKm: 111.19, deltaKm: 0.01},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hav := CalculateHaversineDistance(tt.latOne, tt.lonOne, tt.latTwo, tt.lonTwo)
			assert.InDelta(t, tt.wantKm, hav, tt.deltaKm)

			geodesic := CalculateGeodesicDistance(tt.latOne, tt.lonOne, tt.latTwo, tt.lonTwo)
			assert.InDelta(t, hav*1000, geodesic, 1)
		})
	}

	assert.Equal(t, 2.0, CalculateDegreeDistance(0, 0, 1, -1))
}

func TestGetDestinationPoint(t *testing.T) {
	lat, lon := GetDestinationPoint(0, 0, 90, 111.19)
	assert.InDelta(t, 0.0, lat, 1e-6)
	assert.InDelta(t, 1.0, lon, 1e-3)

	lat, lon = GetDestinationPoint(-7.55, 110.8, 45, 2)
	assert.InDelta(t, 2.0, CalculateHaversineDistance(-7.55, 110.8, lat, lon), 1e-6)

	_, lon = GetDestinationPoint(0, 179.9, 90, 111.19)
	assert.InDelta(t, -179.1, lon, 1e-3)
}

func TestPolylineFromCoords(t *testing.T) {
	// example from the encoded polyline algorithm format documentation
	got := PolylineFromCoords([]Coordinate{
		NewCoordinate(38.5, -120.2), NewCoordinate(40.7, -120.95), NewCoordinate(43.252, -126.453),
	})
	assert.Equal(t, "_p~iF~ps|U_ulLnnqC_mqNvxq`@", got)
	assert.Equal(t, "", PolylineFromCoords(nil))
}
