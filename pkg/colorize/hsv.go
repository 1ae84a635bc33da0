package colorize

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Default saturation and value of the hue mapper
const (
	DefaultSaturation = 0.9
	DefaultValue      = 0.9
)

// HSVToRGB converts hue h in [0, 360) and saturation s, value v in [0, 1]
// to an RGB color.
func HSVToRGB(h, s, v float64) (colorful.Color, error) {
	if v == 0 {
		return colorful.Color{R: 0, G: 0, B: 0}, nil
	}
	if s == 0 {
		return colorful.Color{R: v, G: v, B: v}, nil
	}
	if math.IsNaN(h) {
		return colorful.Color{}, &HueRangeError{Hue: h}
	}

	sector := math.Floor(h / 60)
	f := h/60 - sector
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	switch sector {
	case 0:
		return colorful.Color{R: v, G: t, B: p}, nil
	case 1:
		return colorful.Color{R: q, G: v, B: p}, nil
	case 2:
		return colorful.Color{R: p, G: v, B: t}, nil
	case 3:
		return colorful.Color{R: p, G: q, B: v}, nil
	case 4:
		return colorful.Color{R: t, G: p, B: v}, nil
	case 5:
		return colorful.Color{R: v, G: p, B: q}, nil
	default:
		return colorful.Color{}, &HueRangeError{Hue: h}
	}
}

// HueMapper spreads tags over the hue circle at fixed saturation and value
type HueMapper struct {
	saturation float64
	value      float64
}

// NewHueMapper creates a hue mapper; s and v must lie in (0, 1]
func NewHueMapper(s, v float64) (*HueMapper, error) {
	if !(s > 0 && s <= 1) {
		return nil, fmt.Errorf("saturation %v must be in (0, 1]", s)
	}
	if !(v > 0 && v <= 1) {
		return nil, fmt.Errorf("value %v must be in (0, 1]", v)
	}
	return &HueMapper{saturation: s, value: v}, nil
}

// Name returns "hsv"
func (m *HueMapper) Name() string {
	return "hsv"
}

// Hues rescales tags linearly to hue degrees: min -> 0, max -> 359
func Hues(tags []int) ([]float64, error) {
	lo, hi, err := tagRange(tags)
	if err != nil {
		return nil, err
	}

	hues := make([]float64, len(tags))
	for i, tag := range tags {
		hues[i] = (float64(tag) - float64(lo)) * 359 / (float64(hi) - float64(lo))
	}
	return hues, nil
}

// Map returns one color per tag
func (m *HueMapper) Map(tags []int) ([]colorful.Color, error) {
	if len(tags) == 0 {
		return nil, nil
	}

	hues, err := Hues(tags)
	if err != nil {
		return nil, err
	}

	byTag := make(map[int]colorful.Color)
	colors := make([]colorful.Color, len(tags))
	for i, tag := range tags {
		c, ok := byTag[tag]
		if !ok {
			c, err = HSVToRGB(hues[i], m.saturation, m.value)
			if err != nil {
				return nil, fmt.Errorf("tag %d: %w", tag, err)
			}
			byTag[tag] = c
		}
		colors[i] = c
	}
	return colors, nil
}
