package kmlio

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/dmlukin/airzones/internal/shape"
)

// Placemark is one named shape pulled from a KML file: its coordinate
// samples plus the rendering hint the classifier needs (filled polygon
// vs open stroke).
type Placemark struct {
	Name    string
	Samples []shape.Sample
	Hint    shape.Hint
}

type kmlFile struct {
	XMLName  xml.Name    `xml:"kml"`
	Document kmlDocument `xml:"Document"`
}

type kmlDocument struct {
	Folders    []kmlFolder    `xml:"Folder"`
	Placemarks []kmlPlacemark `xml:"Placemark"`
}

type kmlFolder struct {
	Folders    []kmlFolder    `xml:"Folder"`
	Placemarks []kmlPlacemark `xml:"Placemark"`
}

type kmlPlacemark struct {
	Name       string         `xml:"name"`
	Polygon    *kmlPolygon    `xml:"Polygon"`
	LineString *kmlLineString `xml:"LineString"`
}

type kmlPolygon struct {
	Coordinates string `xml:"outerBoundaryIs>LinearRing>coordinates"`
}

type kmlLineString struct {
	Coordinates string `xml:"coordinates"`
}

// Read parses a KML document into placemarks, walking nested folders.
// Placemarks without a name or without Polygon/LineString geometry are
// dropped.
func Read(r io.Reader) ([]Placemark, error) {
	var file kmlFile
	if err := xml.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("kmlio: parse: %w", err)
	}

	var marks []Placemark
	marks = appendPlacemarks(marks, file.Document.Placemarks)
	for _, folder := range file.Document.Folders {
		marks = appendFolder(marks, folder)
	}

	return marks, nil
}

func appendFolder(marks []Placemark, folder kmlFolder) []Placemark {
	marks = appendPlacemarks(marks, folder.Placemarks)
	for _, sub := range folder.Folders {
		marks = appendFolder(marks, sub)
	}
	return marks
}

func appendPlacemarks(marks []Placemark, raw []kmlPlacemark) []Placemark {
	for _, p := range raw {
		if p.Name == "" {
			continue
		}

		var text string
		hint := shape.HintNone
		switch {
		case p.Polygon != nil:
			text = p.Polygon.Coordinates
			hint = shape.HintPolygon
		case p.LineString != nil:
			text = p.LineString.Coordinates
			hint = shape.HintLine
		default:
			continue
		}

		marks = append(marks, Placemark{
			Name:    p.Name,
			Samples: shape.ParseSamples(text),
			Hint:    hint,
		})
	}

	return marks
}
