package geo

// GeoJSONFeatureCollection represents a collection of geographic features.
// It follows the standard GeoJSON structure.
type GeoJSONFeatureCollection struct {
	Type     string           `json:"type" yaml:"type"`
	Features []GeoJSONFeature `json:"features" yaml:"features"`
}

// GeoJSONFeature represents a single geographic feature with geometry and properties.
type GeoJSONFeature struct {
	Properties map[string]interface{} `json:"properties" yaml:"properties"`
	Type       string                 `json:"type" yaml:"type"`
	Geometry   GeoJSONGeometry        `json:"geometry" yaml:"geometry"`
}

// GeoJSONGeometry represents the geometry of a feature (Point, Polygon, etc.).
// Coordinates nesting depends on Type: [lon, lat] for Point, a list of
// rings of [lon, lat] pairs for Polygon.
type GeoJSONGeometry struct {
	Type        string      `json:"type" yaml:"type"`
	Coordinates interface{} `json:"coordinates" yaml:"coordinates"`
}

// PointGeometry builds a GeoJSON Point geometry.
func PointGeometry(c Coordinate) GeoJSONGeometry {
	return GeoJSONGeometry{
		Type:        "Point",
		Coordinates: []float64{c.Lon, c.Lat},
	}
}

// PolygonGeometry builds a GeoJSON Polygon geometry with a single outer ring.
func PolygonGeometry(r Ring) GeoJSONGeometry {
	outer := make([][]float64, 0, len(r))
	for _, c := range r {
		outer = append(outer, []float64{c.Lon, c.Lat})
	}

	return GeoJSONGeometry{
		Type:        "Polygon",
		Coordinates: [][][]float64{outer},
	}
}
