// Package preview rasterizes zone rings into a quick-look image. The
// output is a flat equirectangular plot meant for eyeballing a batch,
// not for measurement.
package preview

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/dmlukin/airzones/internal/geo"

	xdraw "golang.org/x/image/draw"
)

// Rendering is supersampled at this factor and scaled down for cheap
// antialiasing.
const superSample = 2

var (
	background = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	outline    = color.RGBA{R: 200, A: 255}
)

// Render draws every ring into a square image of the given side length.
// The viewport is the padded bounding box of all rings.
func Render(rings []geo.Ring, side int) (image.Image, error) {
	if side <= 0 {
		side = 1024
	}

	minLon, minLat := math.Inf(1), math.Inf(1)
	maxLon, maxLat := math.Inf(-1), math.Inf(-1)
	var points int
	for _, ring := range rings {
		for _, c := range ring {
			minLon = math.Min(minLon, c.Lon)
			maxLon = math.Max(maxLon, c.Lon)
			minLat = math.Min(minLat, c.Lat)
			maxLat = math.Max(maxLat, c.Lat)
			points++
		}
	}
	if points == 0 {
		return nil, errors.New("preview: no coordinates to draw")
	}

	// Pad 5% so edge vertices stay visible, guarding degenerate extents.
	spanLon := maxLon - minLon
	spanLat := maxLat - minLat
	if spanLon <= 0 {
		spanLon = 0.01
	}
	if spanLat <= 0 {
		spanLat = 0.01
	}
	minLon -= spanLon * 0.05
	minLat -= spanLat * 0.05
	spanLon *= 1.1
	spanLat *= 1.1

	canvasSide := side * superSample
	canvas := image.NewRGBA(image.Rect(0, 0, canvasSide, canvasSide))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	scale := float64(canvasSide - 1)
	project := func(c geo.Coordinate) (float64, float64) {
		x := (c.Lon - minLon) / spanLon * scale
		// Image Y grows downward, latitude grows upward.
		y := (1 - (c.Lat-minLat)/spanLat) * scale
		return x, y
	}

	for _, ring := range rings {
		for i := 0; i+1 < len(ring); i++ {
			x0, y0 := project(ring[i])
			x1, y1 := project(ring[i+1])
			plotLine(canvas, x0, y0, x1, y1)
		}
	}

	out := image.NewRGBA(image.Rect(0, 0, side, side))
	xdraw.CatmullRom.Scale(out, out.Bounds(), canvas, canvas.Bounds(), draw.Over, nil)

	return out, nil
}

// plotLine samples the segment once per pixel of its longer axis.
func plotLine(img *image.RGBA, x0, y0, x1, y1 float64) {
	steps := int(math.Max(math.Abs(x1-x0), math.Abs(y1-y0))) + 1

	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := int(math.Round(x0 + t*(x1-x0)))
		y := int(math.Round(y0 + t*(y1-y0)))
		img.Set(x, y, outline)
	}
}
