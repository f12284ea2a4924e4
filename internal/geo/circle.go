package geo

import "math"

// EarthRadius is the mean equatorial radius in meters, used for the
// planar radius-to-degrees conversion.
const EarthRadius = 6378137.0

// DefaultCircleVertices is the number of unique vertices a synthesized
// circle ring carries before the closing repeat.
const DefaultCircleVertices = 36

// CirclePolygon approximates a circle of radiusMeters around center with
// a closed ring of vertices+1 points. The longitude delta is stretched by
// the meridian convergence at the center latitude, so the result
// degrades near the poles.
func CirclePolygon(center Coordinate, radiusMeters float64, vertices int) Ring {
	if vertices <= 0 {
		vertices = DefaultCircleVertices
	}

	dLat := radiusMeters / EarthRadius * (180 / math.Pi)
	dLon := dLat / math.Cos(center.Lat*math.Pi/180)

	ring := make(Ring, 0, vertices+1)
	for i := 0; i <= vertices; i++ {
		angle := 2 * math.Pi * float64(i) / float64(vertices)
		ring = append(ring, Coordinate{
			Lon: center.Lon + dLon*math.Cos(angle),
			Lat: center.Lat + dLat*math.Sin(angle),
		})
	}

	return ring
}
