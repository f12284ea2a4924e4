// Package zones handles ingestion and batch processing of zone records.
// Records come from the table-extraction stage as JSON objects with
// numbered columns: "1" name, "2" coordinate definition, "3" altitude
// range, "4" altitude limit, "5" schedule.
package zones

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/dmlukin/airzones/internal/config"
	"github.com/dmlukin/airzones/internal/extract"
	"github.com/dmlukin/airzones/internal/geo"

	"github.com/rs/zerolog/log"
)

// Descriptor is one source record. It is consumed once by processing and
// carries no parsed state.
type Descriptor struct {
	Name          string
	Coordinates   string
	AltitudeRange string
	AltitudeLimit string
	Schedule      string
	SourceFile    string
}

// Zone is a processed record: the descriptor plus its resolved geometry.
// Ring is always populated; for circles Center and Radius are set too.
type Zone struct {
	Descriptor
	Ring   geo.Ring
	Center geo.Coordinate
	Radius float64
	Circle bool
}

// Description assembles the human-readable zone annotation.
func (z *Zone) Description() string {
	return fmt.Sprintf("Altitude: %s\nLimit: %s\nSchedule: %s",
		z.AltitudeRange, z.AltitudeLimit, z.Schedule)
}

// Batch is the outcome of processing a record list. Failed counts
// records whose coordinate text matched no layout; Skipped counts
// excluded or incomplete records that never reached parsing.
type Batch struct {
	Zones   []Zone
	Failed  int
	Skipped int
}

// LoadFile reads descriptors from a zones JSON file.
func LoadFile(path string) ([]Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Column values may arrive as strings, numbers or nulls depending on
	// how the source table was read, so decode loosely and coerce.
	var records []map[string]interface{}
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	descs := make([]Descriptor, 0, len(records))
	for _, rec := range records {
		descs = append(descs, Descriptor{
			Name:          field(rec, "1"),
			Coordinates:   field(rec, "2"),
			AltitudeRange: field(rec, "3"),
			AltitudeLimit: field(rec, "4"),
			Schedule:      field(rec, "5"),
			SourceFile:    field(rec, "source_file"),
		})
	}

	return descs, nil
}

func field(rec map[string]interface{}, key string) string {
	v, ok := rec[key]
	if !ok || v == nil {
		return ""
	}

	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	default:
		return strings.TrimSpace(fmt.Sprint(t))
	}
}

// Process resolves the geometry of every usable descriptor. Records are
// independent, so they are fanned out to workers; results keep input
// order. A record that fails to parse is logged and counted, never
// fatal.
func Process(descs []Descriptor, cfg *config.Config, concurrency int) Batch {
	if concurrency <= 0 {
		concurrency = 1
	}

	results := make([]*Zone, len(descs))
	failed := make([]bool, len(descs))
	jobs := make(chan int, len(descs))

	var skipped int
	for i, d := range descs {
		if d.Name == "" || d.Coordinates == "" {
			skipped++
			continue
		}
		if excluded(d.Name, cfg.ExclusionMarkers) {
			log.Debug().Str("zone", d.Name).Msg("Skipping excluded zone")
			skipped++
			continue
		}
		jobs <- i
	}
	close(jobs)

	var wg sync.WaitGroup
	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				zone, err := resolve(descs[i], cfg)
				if err != nil {
					log.Warn().
						Str("zone", descs[i].Name).
						Str("coordinates", descs[i].Coordinates).
						Msg("Failed to parse coordinates")
					failed[i] = true
					continue
				}
				results[i] = &zone
			}
		}()
	}
	wg.Wait()

	batch := Batch{Skipped: skipped}
	for i := range results {
		switch {
		case results[i] != nil:
			batch.Zones = append(batch.Zones, *results[i])
		case failed[i]:
			batch.Failed++
		}
	}

	return batch
}

// resolve turns one descriptor into a zone with concrete geometry.
func resolve(d Descriptor, cfg *config.Config) (Zone, error) {
	def, err := extract.Parse(d.Coordinates)
	if err != nil {
		return Zone{}, err
	}

	zone := Zone{Descriptor: d}
	if def.Circle {
		zone.Circle = true
		zone.Center = def.Center
		zone.Radius = def.Radius
		if zone.Radius <= 0 {
			zone.Radius = cfg.DefaultRadius
		}
		zone.Ring = geo.CirclePolygon(zone.Center, zone.Radius, cfg.CircleVertices)
	} else {
		zone.Ring = def.Ring
	}

	return zone, nil
}

func excluded(name string, markers []string) bool {
	for _, marker := range markers {
		if marker != "" && strings.Contains(name, marker) {
			return true
		}
	}
	return false
}

// FeatureCollection renders processed zones as GeoJSON for the viewer.
func FeatureCollection(list []Zone) geo.GeoJSONFeatureCollection {
	fc := geo.GeoJSONFeatureCollection{
		Type:     "FeatureCollection",
		Features: make([]geo.GeoJSONFeature, 0, len(list)),
	}

	for i := range list {
		z := &list[i]
		props := map[string]interface{}{
			"name":     z.Name,
			"altitude": z.AltitudeRange,
			"limit":    z.AltitudeLimit,
			"schedule": z.Schedule,
		}
		if z.Circle {
			props["radius_m"] = z.Radius
		}

		fc.Features = append(fc.Features, geo.GeoJSONFeature{
			Type:       "Feature",
			Geometry:   geo.PolygonGeometry(z.Ring),
			Properties: props,
		})
	}

	return fc
}
