package server

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/dmlukin/airzones/assets"
	"github.com/dmlukin/airzones/internal/zones"

	"github.com/rs/zerolog/log"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/html"
)

// ServerContext holds dependencies for request handlers. Everything is
// rendered once at startup; handlers only serve bytes.
type ServerContext struct {
	IndexHTML []byte
	GeoJSON   []byte
	ZoneList  []byte
}

// zoneInfo is the /api/zones list entry.
type zoneInfo struct {
	Name          string  `json:"name"`
	AltitudeRange string  `json:"altitude_range,omitempty"`
	AltitudeLimit string  `json:"altitude_limit,omitempty"`
	Schedule      string  `json:"schedule,omitempty"`
	Circle        bool    `json:"circle,omitempty"`
	RadiusMeters  float64 `json:"radius_m,omitempty"`
	Vertices      int     `json:"vertices"`
}

// NewServerContext prepares the served payloads from a processed batch.
func NewServerContext(list []zones.Zone) (*ServerContext, error) {
	log.Info().Int("zones", len(list)).Msg("Initializing server context")

	geojson, err := json.Marshal(zones.FeatureCollection(list))
	if err != nil {
		return nil, fmt.Errorf("marshal geojson: %w", err)
	}

	infos := make([]zoneInfo, 0, len(list))
	for i := range list {
		z := &list[i]
		infos = append(infos, zoneInfo{
			Name:          z.Name,
			AltitudeRange: z.AltitudeRange,
			AltitudeLimit: z.AltitudeLimit,
			Schedule:      z.Schedule,
			Circle:        z.Circle,
			RadiusMeters:  z.Radius,
			Vertices:      len(z.Ring),
		})
	}

	zoneList, err := json.Marshal(infos)
	if err != nil {
		return nil, fmt.Errorf("marshal zone list: %w", err)
	}

	m := minify.New()
	m.AddFunc("text/html", html.Minify)

	var index bytes.Buffer
	if err := m.Minify("text/html", &index, bytes.NewReader(assets.Index)); err != nil {
		log.Warn().Err(err).Msg("Index minification failed, serving raw page")
		index.Reset()
		index.Write(assets.Index)
	}

	return &ServerContext{
		IndexHTML: index.Bytes(),
		GeoJSON:   geojson,
		ZoneList:  zoneList,
	}, nil
}
