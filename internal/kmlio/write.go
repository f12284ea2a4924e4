// Package kmlio reads and writes the KML rendering of zone geometry.
// Writing goes through the go-kml element builder; reading uses plain
// encoding/xml structs because go-kml has no unmarshal support.
package kmlio

import (
	"image/color"
	"io"
	"strconv"

	"github.com/dmlukin/airzones/internal/config"
	"github.com/dmlukin/airzones/internal/zones"

	"github.com/twpayne/go-kml/v2"
)

const zoneStyleID = "zoneStyle"

// Write renders every zone as a styled Polygon placemark in a single
// Document sharing one style.
func Write(w io.Writer, list []zones.Zone, style config.Style) error {
	children := make([]kml.Element, 0, len(list)+1)
	children = append(children, kml.SharedStyle(
		zoneStyleID,
		kml.LineStyle(
			kml.Color(parseColor(style.LineColor, 255)),
			kml.Width(style.LineWidth),
		),
		kml.PolyStyle(
			kml.Color(parseColor(style.FillColor, style.FillOpacity)),
		),
	))

	for i := range list {
		z := &list[i]

		coords := make([]kml.Coordinate, 0, len(z.Ring))
		for _, c := range z.Ring {
			coords = append(coords, kml.Coordinate{Lon: c.Lon, Lat: c.Lat})
		}

		children = append(children, kml.Placemark(
			kml.Name(z.Name),
			kml.Description(z.Description()),
			kml.StyleURL("#"+zoneStyleID),
			kml.Polygon(
				kml.OuterBoundaryIs(
					kml.LinearRing(
						kml.Coordinates(coords...),
					),
				),
			),
		))
	}

	return kml.KML(kml.Document(children...)).WriteIndent(w, "", "  ")
}

// parseColor reads an RRGGBB hex string; unparseable input falls back
// to red, the historical zone color.
func parseColor(hex string, alpha uint8) color.Color {
	if len(hex) != 6 {
		return color.RGBA{R: 255, A: alpha}
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{R: 255, A: alpha}
	}

	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: alpha,
	}
}
