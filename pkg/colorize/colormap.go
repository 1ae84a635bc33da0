package colorize

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/philipparndt/colorcif/pkg/palette"
)

// ColormapMapper colors tags with a named colormap
type ColormapMapper struct {
	cmap palette.Colormap
}

// NewColormapMapper creates a mapper evaluating cmap
func NewColormapMapper(cmap palette.Colormap) *ColormapMapper {
	return &ColormapMapper{cmap: cmap}
}

// Name returns the colormap name
func (m *ColormapMapper) Name() string {
	return m.cmap.Name()
}

// Normalize rescales tags linearly to [0, 1]
func Normalize(tags []int) ([]float64, error) {
	lo, hi, err := tagRange(tags)
	if err != nil {
		return nil, err
	}

	grid := make([]float64, len(tags))
	for i, tag := range tags {
		grid[i] = (float64(tag) - float64(lo)) / (float64(hi) - float64(lo))
	}
	return grid, nil
}

// Map returns one color per tag; alpha returned by the colormap is dropped
func (m *ColormapMapper) Map(tags []int) ([]colorful.Color, error) {
	if len(tags) == 0 {
		return nil, nil
	}

	grid, err := Normalize(tags)
	if err != nil {
		return nil, err
	}

	colors := make([]colorful.Color, len(tags))
	for i, x := range grid {
		colors[i] = rgbOnly(m.cmap.At(x))
	}
	return colors, nil
}

// rgbOnly keeps the red, green and blue channels of c, un-premultiplied
func rgbOnly(c color.Color) colorful.Color {
	if cf, ok := c.(colorful.Color); ok {
		return cf
	}
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return colorful.Color{
		R: float64(n.R) / 0xffff,
		G: float64(n.G) / 0xffff,
		B: float64(n.B) / 0xffff,
	}
}
