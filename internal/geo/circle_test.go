package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCirclePolygon(t *testing.T) {
	center := Coordinate{Lon: 76.9383, Lat: 43.6011}
	ring := CirclePolygon(center, 5000, 36)

	assert.Len(t, ring, 37)

	// First and last vertex sit at the same sampled angle.
	first, last := ring[0], ring[len(ring)-1]
	assert.InDelta(t, first.Lon, last.Lon, 1e-9)
	assert.InDelta(t, first.Lat, last.Lat, 1e-9)

	// Centroid of the unique vertices approximates the center.
	var sumLon, sumLat float64
	for _, c := range ring[:36] {
		sumLon += c.Lon
		sumLat += c.Lat
	}
	assert.InDelta(t, center.Lon, sumLon/36, 1e-6)
	assert.InDelta(t, center.Lat, sumLat/36, 1e-6)

	// Latitude extent matches the angular radius.
	wantDLat := 5000.0 / EarthRadius * (180 / math.Pi)
	var maxLat float64 = -90
	for _, c := range ring {
		if c.Lat > maxLat {
			maxLat = c.Lat
		}
	}
	assert.InDelta(t, center.Lat+wantDLat, maxLat, 1e-6)
}

func TestCirclePolygonDefaultVertices(t *testing.T) {
	ring := CirclePolygon(Coordinate{Lon: 10, Lat: 50}, 1000, 0)
	assert.Len(t, ring, DefaultCircleVertices+1)
}

func TestRingClose(t *testing.T) {
	open := Ring{{Lon: 0, Lat: 0}, {Lon: 1, Lat: 0}, {Lon: 1, Lat: 1}}
	closed := open.Close()

	assert.True(t, closed.Closed())
	assert.Len(t, closed, 4)
	assert.Equal(t, closed[0], closed[3])

	// Closing an already closed ring is a no-op.
	assert.Len(t, closed.Close(), 4)
}
