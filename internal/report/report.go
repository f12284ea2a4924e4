// Package report renders classified zone shapes as a human-readable
// coordinate document in Markdown or HTML.
package report

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/dmlukin/airzones/internal/dms"
	"github.com/dmlukin/airzones/internal/kmlio"
	"github.com/dmlukin/airzones/internal/shape"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/html"
)

// Section is one zone entry of the report.
type Section struct {
	Index  int
	Name   string
	Kind   shape.Kind
	Circle bool

	// Circle fields, DMS-formatted center and radius in whole meters.
	CenterLat string
	CenterLon string
	RadiusM   string

	// Coordinate table rows for every other kind.
	Rows []Row
}

// Row is one numbered coordinate of a section table.
type Row struct {
	Index int
	Lat   string
	Lon   string
}

// Build classifies each placemark and lays out its report section.
func Build(marks []kmlio.Placemark) []Section {
	sections := make([]Section, 0, len(marks))

	for i, m := range marks {
		res := shape.Classify(m.Samples, m.Hint)

		section := Section{
			Index: i + 1,
			Name:  m.Name,
			Kind:  res.Kind,
		}

		if res.Kind == shape.Circle {
			section.Circle = true
			section.CenterLat = dms.Encode(res.Center.Lat, dms.Latitude)
			section.CenterLon = dms.Encode(res.Center.Lon, dms.Longitude)
			section.RadiusM = fmt.Sprintf("%.0f", res.RadiusMeters)
		} else {
			section.Rows = make([]Row, 0, len(res.Points))
			for j, p := range res.Points {
				section.Rows = append(section.Rows, Row{
					Index: j + 1,
					Lat:   dms.Encode(p.Lat, dms.Latitude),
					Lon:   dms.Encode(p.Lon, dms.Longitude),
				})
			}
		}

		sections = append(sections, section)
	}

	return sections
}

var markdownTemplate = template.Must(template.New("markdown").Parse(`# Zones and coordinates

## Zone list

{{range .}}{{.Index}}. {{.Name}}
{{end}}
{{range .}}## Zone: {{.Name}}

{{if .Circle}}Type: Circle

Center: {{.CenterLat}} {{.CenterLon}}

Radius: {{.RadiusM}} m
{{else}}Type: {{.Kind}}

| # | Latitude (DMS) | Longitude (DMS) |
|---|----------------|-----------------|
{{range .Rows}}| {{.Index}} | {{.Lat}} | {{.Lon}} |
{{end}}{{end}}
{{end}}`))

var htmlTemplate = template.Must(template.New("html").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Zones and coordinates</title></head>
<body>
<h1>Zones and coordinates</h1>
<h2>Zone list</h2>
<ol>
{{range .}}  <li>{{.Name}}</li>
{{end}}</ol>
{{range .}}<h2>Zone: {{.Name}}</h2>
{{if .Circle}}<p><b>Type:</b> Circle</p>
<p><b>Center:</b> {{.CenterLat}} {{.CenterLon}}</p>
<p><b>Radius:</b> {{.RadiusM}} m</p>
{{else}}<p><b>Type:</b> {{.Kind}}</p>
<table border="1">
<tr><th>#</th><th>Latitude (DMS)</th><th>Longitude (DMS)</th></tr>
{{range .Rows}}<tr><td>{{.Index}}</td><td>{{.Lat}}</td><td>{{.Lon}}</td></tr>
{{end}}</table>
{{end}}{{end}}</body>
</html>`))

// Render writes the report for the given placemarks. Format is
// "markdown" or "html"; HTML output is minified.
func Render(w io.Writer, marks []kmlio.Placemark, format string) error {
	sections := Build(marks)

	switch format {
	case "markdown", "md", "":
		return markdownTemplate.Execute(w, sections)
	case "html":
		var buf strings.Builder
		if err := htmlTemplate.Execute(&buf, sections); err != nil {
			return err
		}

		m := minify.New()
		m.AddFunc("text/html", html.Minify)
		return m.Minify("text/html", w, strings.NewReader(buf.String()))
	default:
		return fmt.Errorf("report: unknown format %q", format)
	}
}
