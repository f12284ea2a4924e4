// Package shape infers the original geometry behind an ordered list of
// coordinate samples taken from a rendered shape: a circle rendered as a
// dense ring, a rectangle, a simple polygon, or an arbitrary path. The
// thresholds are empirically tuned against real zone data; recalibrate
// the constants, not the decision order.
package shape

import (
	"math"
	"strconv"
	"strings"

	"github.com/dmlukin/airzones/internal/geo"
)

// Classification thresholds.
const (
	// ClosureTolerance is the max distance in degrees between first and
	// last sample for the shape to count as closed.
	ClosureTolerance = 1e-4

	// CircleRelVariance is the relative variance of centroid distances
	// below which a closed ring is taken for a circle.
	CircleRelVariance = 0.005

	// ParallelTolerance bounds the 2D cross product of opposite edges in
	// the rectangle test.
	ParallelTolerance = 1e-5

	// DenseLineSamples is the sample count above which a closed line
	// stroke is assumed to be a circle without the variance test. Dense
	// closed strokes in the source data are always circles.
	DenseLineSamples = 50

	// MetersPerDegree converts mean angular radius to meters.
	MetersPerDegree = 111000.0

	// downsampleTarget is the rough point count a reduced set aims for.
	downsampleTarget = 10
)

// Hint tells the classifier how the sample was rendered.
type Hint string

const (
	HintNone    Hint = ""
	HintPolygon Hint = "polygon" // filled shape
	HintLine    Hint = "line"    // open stroke
)

// Kind is the inferred shape category.
type Kind string

const (
	Point          Kind = "point"
	Circle         Kind = "circle"
	Rectangle      Kind = "rectangle"
	Polygon        Kind = "polygon"
	ComplexPolygon Kind = "complex_polygon"
	Path           Kind = "path"
)

// Sample is one coordinate taken from a rendered shape. It is evidence,
// not a validated vertex: no uniqueness or closure is guaranteed.
type Sample struct {
	Lon float64
	Lat float64
	Alt float64
}

// Result is a terminal classification. Points holds the reduced display
// set for every kind except Circle, which carries center and radius
// instead.
type Result struct {
	Kind         Kind
	Points       []Sample
	Center       geo.Coordinate
	RadiusMeters float64
}

// Classify decides the most likely original shape for an ordered sample
// list. Each check is terminal and their order is load-bearing:
// reordering changes the outcome on ambiguous inputs such as sparse
// near-circular polygons.
func Classify(samples []Sample, hint Hint) Result {
	if len(samples) < 4 {
		return Result{Kind: Point, Points: samples}
	}

	closed := isClosed(samples)

	// Dense closed strokes are circles in the observed data, even when
	// sampling noise would push the variance test past its threshold.
	if len(samples) > DenseLineSamples && hint == HintLine && closed {
		center, radius := fitCircle(samples)
		return Result{Kind: Circle, Center: center, RadiusMeters: radius}
	}

	center := centroid(samples)
	mean, relVariance := distanceSpread(samples, center)

	if (closed && len(samples) > 10) || hint == HintPolygon {
		if relVariance < CircleRelVariance {
			return Result{Kind: Circle, Center: center, RadiusMeters: mean * MetersPerDegree}
		}
	}

	if len(samples) == 5 && closed && isRectangle(samples) {
		return Result{Kind: Rectangle, Points: samples[:4]}
	}

	if len(samples) < 10 {
		return Result{Kind: Polygon, Points: samples}
	}

	if len(samples) > 10 {
		kind := Path
		if closed {
			kind = ComplexPolygon
		}
		return Result{Kind: kind, Points: downsample(samples, closed)}
	}

	kind := Polygon
	if !closed {
		kind = Path
	}
	return Result{Kind: kind, Points: samples}
}

// ParseSamples reads whitespace-separated "lon,lat[,alt]" tokens, the
// coordinate list format of rendered vector shapes. Malformed tokens are
// skipped; altitude defaults to 0.
func ParseSamples(text string) []Sample {
	var samples []Sample

	for _, token := range strings.Fields(text) {
		parts := strings.Split(token, ",")
		if len(parts) < 2 {
			continue
		}

		lon, err1 := strconv.ParseFloat(parts[0], 64)
		lat, err2 := strconv.ParseFloat(parts[1], 64)
		if err1 != nil || err2 != nil {
			continue
		}

		s := Sample{Lon: lon, Lat: lat}
		if len(parts) > 2 {
			s.Alt, _ = strconv.ParseFloat(parts[2], 64)
		}
		samples = append(samples, s)
	}

	return samples
}

func isClosed(samples []Sample) bool {
	first, last := samples[0], samples[len(samples)-1]
	return math.Hypot(first.Lon-last.Lon, first.Lat-last.Lat) < ClosureTolerance
}

func centroid(samples []Sample) geo.Coordinate {
	var sumLon, sumLat float64
	for _, s := range samples {
		sumLon += s.Lon
		sumLat += s.Lat
	}

	n := float64(len(samples))
	return geo.Coordinate{Lon: sumLon / n, Lat: sumLat / n}
}

// distanceSpread returns the mean distance of samples from center and
// the relative variance of those distances (variance over squared mean),
// the circularity signal.
func distanceSpread(samples []Sample, center geo.Coordinate) (mean, relVariance float64) {
	distances := make([]float64, len(samples))
	for i, s := range samples {
		distances[i] = math.Hypot(s.Lon-center.Lon, s.Lat-center.Lat)
		mean += distances[i]
	}
	mean /= float64(len(samples))

	var variance float64
	for _, d := range distances {
		variance += (d - mean) * (d - mean)
	}
	variance /= float64(len(samples))

	if mean == 0 {
		return 0, math.Inf(1)
	}
	return mean, variance / (mean * mean)
}

func fitCircle(samples []Sample) (geo.Coordinate, float64) {
	center := centroid(samples)
	mean, _ := distanceSpread(samples, center)
	return center, mean * MetersPerDegree
}

// isRectangle tests the first four points as corners: both pairs of
// opposite edges must be parallel.
func isRectangle(samples []Sample) bool {
	var edges [4][2]float64
	for i := 0; i < 4; i++ {
		next := (i + 1) % 4
		edges[i][0] = samples[next].Lon - samples[i].Lon
		edges[i][1] = samples[next].Lat - samples[i].Lat
	}

	cross02 := math.Abs(edges[0][0]*edges[2][1] - edges[0][1]*edges[2][0])
	cross13 := math.Abs(edges[1][0]*edges[3][1] - edges[1][1]*edges[3][0])

	return cross02 < ParallelTolerance && cross13 < ParallelTolerance
}

// downsample strides through the samples keeping roughly 8-12 of them.
// For closed shapes the original last point is re-appended when the
// stride skips it, preserving closure.
func downsample(samples []Sample, closed bool) []Sample {
	stride := len(samples) / downsampleTarget
	if stride < 1 {
		stride = 1
	}

	reduced := make([]Sample, 0, downsampleTarget+2)
	for i := 0; i < len(samples); i += stride {
		reduced = append(reduced, samples[i])
	}

	last := samples[len(samples)-1]
	if closed && reduced[len(reduced)-1] != last {
		reduced = append(reduced, last)
	}

	return reduced
}
