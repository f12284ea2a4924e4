// Package geo handles geographic data structures and coordinate conversions.
package geo

// Coordinate is a position in decimal degrees. Negative latitude is the
// southern hemisphere, negative longitude the western.
type Coordinate struct {
	Lon float64
	Lat float64
}

// Ring is an ordered sequence of boundary coordinates. A closed ring
// repeats its first coordinate at the end.
type Ring []Coordinate

// Closed reports whether the ring ends where it starts.
func (r Ring) Closed() bool {
	if len(r) < 2 {
		return false
	}
	return r[0] == r[len(r)-1]
}

// Close appends the first coordinate if the ring does not already end
// with it.
func (r Ring) Close() Ring {
	if len(r) == 0 || r.Closed() {
		return r
	}
	return append(r, r[0])
}
