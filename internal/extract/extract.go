// Package extract pulls coordinate definitions out of free-text zone
// descriptions. Two token layouts occur in the source tables: the
// standard one ("N433604 E0765618") and a reversed one with trailing
// direction letters ("460755N 0805610E"). A definition may instead be a
// circle, marked by an R=<meters> or R-<meters> radius token.
package extract

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/dmlukin/airzones/internal/dms"
	"github.com/dmlukin/airzones/internal/geo"
)

// DefaultRadius is assumed when a radius token carries no usable value.
const DefaultRadius = 5000.0

// ErrNoCoordinates reports that neither layout matched anything in the
// input. Batch drivers count these and move on; it never aborts a run.
var ErrNoCoordinates = errors.New("extract: no coordinate pairs found")

// Regex pattern captures: 1=lat digits, 2=N/S, 3=lon digits, 4=E/W
var reversedRegex = regexp.MustCompile(`(\d{6})([NS])[ \-]?(\d{7})([EW])`)

// Regex pattern captures: 1=N/S, 2=lat digits, 3=E/W, 4=lon digits
var standardRegex = regexp.MustCompile(`([NS])[ \-]?(\d{6})[ \-,]*([EW])[ \-]?(\d{7})`)

var (
	radiusRegex = regexp.MustCompile(`R[=-](\d+)`)
	spaceRegex  = regexp.MustCompile(`\s+`)
)

// Definition is the parsed geometry of one zone description: either a
// closed polygon ring or a circle given by center and radius.
type Definition struct {
	Ring   geo.Ring
	Center geo.Coordinate
	Radius float64
	Circle bool
}

// Parse scans raw text for coordinate pairs and an optional radius
// token. For circles only the first matched pair is kept, as the
// center; for polygons every pair becomes a ring vertex and the ring is
// closed. Returns ErrNoCoordinates when nothing matches.
func Parse(raw string) (Definition, error) {
	text := Normalize(raw)

	var def Definition
	if strings.Contains(text, "R=") || strings.Contains(text, "R-") {
		def.Circle = true
		def.Radius = parseRadius(text)
	}

	pairs := matchPairs(text)
	if len(pairs) == 0 {
		return Definition{}, ErrNoCoordinates
	}

	coords := make(geo.Ring, 0, len(pairs))
	for _, p := range pairs {
		lat, err := dms.Decode(p.latToken)
		if err != nil {
			return Definition{}, err
		}
		lon, err := dms.Decode(p.lonToken)
		if err != nil {
			return Definition{}, err
		}
		coords = append(coords, geo.Coordinate{Lon: lon, Lat: lat})
	}

	if def.Circle {
		def.Center = coords[0]
		return def, nil
	}

	def.Ring = coords.Close()
	return def, nil
}

// Normalize collapses irregular whitespace and replaces the Cyrillic
// look-alike "Е" with Latin "E" so the layout patterns match.
func Normalize(raw string) string {
	text := strings.ReplaceAll(raw, "Е", "E")
	return spaceRegex.ReplaceAllString(strings.TrimSpace(text), " ")
}

type pair struct {
	latToken string
	lonToken string
}

// matchPairs tries the reversed layout first and falls back to the
// standard one. The layouts are mutually exclusive per input; matches
// are never merged across them.
func matchPairs(text string) []pair {
	var pairs []pair

	for _, m := range reversedRegex.FindAllStringSubmatch(text, -1) {
		pairs = append(pairs, pair{latToken: m[2] + m[1], lonToken: m[4] + m[3]})
	}
	if len(pairs) > 0 {
		return pairs
	}

	for _, m := range standardRegex.FindAllStringSubmatch(text, -1) {
		pairs = append(pairs, pair{latToken: m[1] + m[2], lonToken: m[3] + m[4]})
	}

	return pairs
}

func parseRadius(text string) float64 {
	m := radiusRegex.FindStringSubmatch(text)
	if m == nil {
		return DefaultRadius
	}

	meters, err := strconv.ParseFloat(m[1], 64)
	if err != nil || meters <= 0 {
		return DefaultRadius
	}

	return meters
}
