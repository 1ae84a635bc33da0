package viewer

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"sync"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	legendFontSize = 11
	legendPadding  = 4
)

var (
	legendFontOnce sync.Once
	legendFont     *truetype.Font
	legendFontErr  error
)

func loadLegendFont() (*truetype.Font, error) {
	legendFontOnce.Do(func() {
		legendFont, legendFontErr = freetype.ParseFont(goregular.TTF)
	})
	return legendFont, legendFontErr
}

// drawLegend draws a column of color swatches with their labels into the
// top left corner of img
func drawLegend(img *image.RGBA, entries []LegendEntry) error {
	f, err := loadLegendFont()
	if err != nil {
		return fmt.Errorf("failed to load legend font: %w", err)
	}

	face := truetype.NewFace(f, &truetype.Options{
		Size:    legendFontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()

	metrics := face.Metrics()
	lineHeight := metrics.Height.Ceil()
	ascent := metrics.Ascent.Ceil()
	swatch := ascent

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: face,
	}

	for i, entry := range entries {
		top := legendPadding + i*(lineHeight+legendPadding/2)
		if top+lineHeight > img.Bounds().Max.Y {
			break
		}

		r, g, b := entry.Color.Clamped().RGB255()
		rect := image.Rect(legendPadding, top, legendPadding+swatch, top+swatch)
		draw.Draw(img, rect, image.NewUniform(color.RGBA{r, g, b, 255}), image.Point{}, draw.Src)

		d.Dot = freetype.Pt(legendPadding*2+swatch, top+ascent)
		d.DrawString(entry.Label)
	}
	return nil
}
