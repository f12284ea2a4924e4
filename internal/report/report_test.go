package report

import (
	"math"
	"strings"
	"testing"

	"github.com/dmlukin/airzones/internal/kmlio"
	"github.com/dmlukin/airzones/internal/shape"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func circleMark(name string) kmlio.Placemark {
	samples := make([]shape.Sample, 0, 60)
	for i := 0; i < 60; i++ {
		angle := 2 * math.Pi * float64(i) / 59
		samples = append(samples, shape.Sample{
			Lon: 71.66 + 0.01*math.Cos(angle),
			Lat: 51.15 + 0.01*math.Sin(angle),
		})
	}
	return kmlio.Placemark{Name: name, Samples: samples, Hint: shape.HintLine}
}

func polygonMark(name string) kmlio.Placemark {
	return kmlio.Placemark{
		Name: name,
		Samples: []shape.Sample{
			{Lon: 76.93833333333333, Lat: 43.60111111111111}, // E0765618 N433604
			{Lon: 77.0, Lat: 43.60111111111111},
			{Lon: 77.0, Lat: 43.65},
			{Lon: 76.93833333333333, Lat: 43.60111111111111},
		},
		Hint: shape.HintPolygon,
	}
}

func TestBuild(t *testing.T) {
	sections := Build([]kmlio.Placemark{circleMark("Khan Shatyr"), polygonMark("UAR-1")})
	require.Len(t, sections, 2)

	circle := sections[0]
	assert.True(t, circle.Circle)
	assert.Equal(t, shape.Circle, circle.Kind)
	assert.Equal(t, "N510900", circle.CenterLat)
	assert.Equal(t, "E0713936", circle.CenterLon)
	assert.NotEmpty(t, circle.RadiusM)

	poly := sections[1]
	assert.False(t, poly.Circle)
	require.Len(t, poly.Rows, 4)
	assert.Equal(t, "N433604", poly.Rows[0].Lat)
	assert.Equal(t, "E0765618", poly.Rows[0].Lon)
}

func TestRenderMarkdown(t *testing.T) {
	var buf strings.Builder
	err := Render(&buf, []kmlio.Placemark{circleMark("Khan Shatyr"), polygonMark("UAR-1")}, "markdown")
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "## Zone: Khan Shatyr")
	assert.Contains(t, out, "Type: Circle")
	assert.Contains(t, out, "| 1 | N433604 | E0765618 |")
}

func TestRenderHTML(t *testing.T) {
	var buf strings.Builder
	err := Render(&buf, []kmlio.Placemark{polygonMark("UAR-1")}, "html")
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "UAR-1")
	assert.Contains(t, out, "N433604")
	// Minified output drops the formatting newlines.
	assert.NotContains(t, out, "\n<tr>")
}

func TestRenderUnknownFormat(t *testing.T) {
	err := Render(&strings.Builder{}, nil, "docx")
	assert.Error(t, err)
}
