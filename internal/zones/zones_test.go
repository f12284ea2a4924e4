package zones

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dmlukin/airzones/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeZonesFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "zones.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeZonesFile(t, `[
		{"1": "UAR-1", "2": "N433604 E0765618", "3": "GND-FL100", "4": 4500, "5": null, "source_file": "a.xls"},
		{"1": "UAR-2", "2": "460755N 0805610E"}
	]`)

	descs, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, descs, 2)

	assert.Equal(t, "UAR-1", descs[0].Name)
	assert.Equal(t, "N433604 E0765618", descs[0].Coordinates)
	assert.Equal(t, "GND-FL100", descs[0].AltitudeRange)
	assert.Equal(t, "4500", descs[0].AltitudeLimit)
	assert.Empty(t, descs[0].Schedule)
	assert.Equal(t, "a.xls", descs[0].SourceFile)
}

func TestProcess(t *testing.T) {
	descs := []Descriptor{
		{Name: "POLY", Coordinates: "N433604 E0765618 N440000 E0770000 N434500 E0764500"},
		{Name: "CIRCLE", Coordinates: "N433604 E0765618 R=5000"},
		{Name: "BROKEN", Coordinates: "not a coordinate"},
		{Name: "", Coordinates: "N433604 E0765618"},
		{Name: "GONE Исключена приказом 17", Coordinates: "N433604 E0765618"},
		{Name: "NO-COORDS"},
	}

	batch := Process(descs, config.Default(), 4)

	require.Len(t, batch.Zones, 2)
	assert.Equal(t, 1, batch.Failed)
	assert.Equal(t, 3, batch.Skipped)

	// Input order survives the worker fan-out.
	assert.Equal(t, "POLY", batch.Zones[0].Name)
	assert.Equal(t, "CIRCLE", batch.Zones[1].Name)

	poly := batch.Zones[0]
	assert.False(t, poly.Circle)
	assert.True(t, poly.Ring.Closed())

	circle := batch.Zones[1]
	assert.True(t, circle.Circle)
	assert.Equal(t, 5000.0, circle.Radius)
	assert.Len(t, circle.Ring, 37)
}

func TestProcessSerialMatchesConcurrent(t *testing.T) {
	descs := []Descriptor{
		{Name: "A", Coordinates: "N433604 E0765618"},
		{Name: "B", Coordinates: "460755N 0805610E"},
	}

	serial := Process(descs, config.Default(), 0)
	concurrent := Process(descs, config.Default(), 8)

	assert.Equal(t, serial, concurrent)
}

func TestFeatureCollection(t *testing.T) {
	batch := Process([]Descriptor{
		{Name: "CIRCLE", Coordinates: "N433604 E0765618 R=1000", AltitudeRange: "GND-FL50"},
	}, config.Default(), 1)
	require.Len(t, batch.Zones, 1)

	fc := FeatureCollection(batch.Zones)
	require.Len(t, fc.Features, 1)

	f := fc.Features[0]
	assert.Equal(t, "FeatureCollection", fc.Type)
	assert.Equal(t, "Polygon", f.Geometry.Type)
	assert.Equal(t, "CIRCLE", f.Properties["name"])
	assert.Equal(t, 1000.0, f.Properties["radius_m"])
}
