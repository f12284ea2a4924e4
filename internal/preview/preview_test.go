package preview

import (
	"image/color"
	"testing"

	"github.com/dmlukin/airzones/internal/geo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	ring := geo.CirclePolygon(geo.Coordinate{Lon: 76.94, Lat: 43.6}, 5000, 36)

	img, err := Render([]geo.Ring{ring}, 128)
	require.NoError(t, err)

	bounds := img.Bounds()
	assert.Equal(t, 128, bounds.Dx())
	assert.Equal(t, 128, bounds.Dy())

	// Something darker than the background must have been drawn.
	found := false
	for y := bounds.Min.Y; y < bounds.Max.Y && !found; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			if r < 0xff00 || g < 0xff00 || b < 0xff00 {
				found = true
				break
			}
		}
	}
	assert.True(t, found, "render left the canvas blank")

	// Corners stay background: the circle never touches them.
	c := color.RGBAModel.Convert(img.At(0, 0)).(color.RGBA)
	assert.Equal(t, uint8(255), c.R)
	assert.Equal(t, uint8(255), c.G)
}

func TestRenderEmpty(t *testing.T) {
	_, err := Render(nil, 64)
	assert.Error(t, err)
}
