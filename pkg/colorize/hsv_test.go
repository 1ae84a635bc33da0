package colorize

import (
	"errors"
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertColor(t *testing.T, expected, actual colorful.Color) {
	t.Helper()
	assert.InDelta(t, expected.R, actual.R, 1e-9, "red")
	assert.InDelta(t, expected.G, actual.G, 1e-9, "green")
	assert.InDelta(t, expected.B, actual.B, 1e-9, "blue")
}

func TestHSVToRGBSpecialCases(t *testing.T) {
	c, err := HSVToRGB(123, 0.5, 0)
	require.NoError(t, err)
	assert.Equal(t, colorful.Color{}, c)

	c, err = HSVToRGB(123, 0, 0.7)
	require.NoError(t, err)
	assert.Equal(t, colorful.Color{R: 0.7, G: 0.7, B: 0.7}, c)
}

func TestHSVToRGBSectors(t *testing.T) {
	// p = 0.09, q and t depend on the fractional part
	tests := []struct {
		hue      float64
		expected colorful.Color
	}{
		{0, colorful.Color{R: 0.9, G: 0.09, B: 0.09}},
		{60, colorful.Color{R: 0.9, G: 0.9, B: 0.09}},
		{120, colorful.Color{R: 0.09, G: 0.9, B: 0.09}},
		{180, colorful.Color{R: 0.09, G: 0.9, B: 0.9}},
		{240, colorful.Color{R: 0.09, G: 0.09, B: 0.9}},
		{300, colorful.Color{R: 0.9, G: 0.09, B: 0.9}},
		{30, colorful.Color{R: 0.9, G: 0.495, B: 0.09}},
	}

	for _, tt := range tests {
		c, err := HSVToRGB(tt.hue, 0.9, 0.9)
		require.NoError(t, err)
		assertColor(t, tt.expected, c)
	}
}

func TestHSVToRGBMatchesColorful(t *testing.T) {
	for h := 0.0; h < 360; h += 7.25 {
		c, err := HSVToRGB(h, 0.6, 0.8)
		require.NoError(t, err)
		assertColor(t, colorful.Hsv(h, 0.6, 0.8), c)
	}
}

func TestHSVToRGBOutOfRange(t *testing.T) {
	for _, h := range []float64{-1, 360, 720, math.NaN()} {
		_, err := HSVToRGB(h, 0.9, 0.9)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrHueOutOfRange), "hue %v", h)

		var herr *HueRangeError
		assert.True(t, errors.As(err, &herr))
	}
}

func TestNewHueMapperValidation(t *testing.T) {
	for _, sv := range [][2]float64{{0, 0.5}, {0.5, 0}, {1.1, 0.5}, {0.5, 1.1}, {math.NaN(), 0.5}} {
		_, err := NewHueMapper(sv[0], sv[1])
		assert.Error(t, err, "s=%v v=%v", sv[0], sv[1])
	}

	m, err := NewHueMapper(1, 1)
	require.NoError(t, err)
	assert.Equal(t, "hsv", m.Name())
}

func TestHues(t *testing.T) {
	hues, err := Hues([]int{0, 10, 20})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 179.5, 359}, hues, 1e-12)

	_, err = Hues([]int{5, 5, 5})
	assert.ErrorIs(t, err, ErrDegenerateRange)
}

func TestHueMapperReferenceExample(t *testing.T) {
	m, err := NewHueMapper(0.9, 0.9)
	require.NoError(t, err)

	colors, err := m.Map([]int{0, 10, 20})
	require.NoError(t, err)
	require.Len(t, colors, 3)

	// sector 0: (v, t, p)
	assertColor(t, colorful.Color{R: 0.9, G: 0.09, B: 0.09}, colors[0])
	// sector 2 at 179.5°: (p, v, t), f = 0.991666...
	assertColor(t, colorful.Color{R: 0.09, G: 0.9, B: 0.89325}, colors[1])
	// sector 5 at 359°: (v, p, q), f = 0.983333...
	assertColor(t, colorful.Color{R: 0.9, G: 0.09, B: 0.1035}, colors[2])
}

func TestHueMapperExtremes(t *testing.T) {
	m, err := NewHueMapper(DefaultSaturation, DefaultValue)
	require.NoError(t, err)

	tags := []int{7, 3, 12, 3, 9}
	colors, err := m.Map(tags)
	require.NoError(t, err)

	h, _, _ := colors[1].Hsv()
	assert.InDelta(t, 0, h, 1e-6, "minimum tag has hue 0")
	h, _, _ = colors[2].Hsv()
	assert.InDelta(t, 359, h, 1e-6, "maximum tag has hue 359")
}

func TestHueMapperWideTagRange(t *testing.T) {
	tags := []int{math.MinInt, 0, math.MaxInt}

	hues, err := Hues(tags)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 179.5, 359}, hues, 1e-9)

	m, err := NewHueMapper(DefaultSaturation, DefaultValue)
	require.NoError(t, err)
	colors, err := m.Map(tags)
	require.NoError(t, err)
	require.Len(t, colors, 3)
	assertColor(t, colorful.Color{R: 0.9, G: 0.09, B: 0.09}, colors[0])

	grid, err := Normalize(tags)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 0.5, 1}, grid, 1e-12)
}

func TestHueMapperEqualTagsEqualColors(t *testing.T) {
	m, err := NewHueMapper(DefaultSaturation, DefaultValue)
	require.NoError(t, err)

	tags := []int{4, 1, 4, 9, 1, 4}
	colors, err := m.Map(tags)
	require.NoError(t, err)

	assert.Equal(t, colors[0], colors[2])
	assert.Equal(t, colors[0], colors[5])
	assert.Equal(t, colors[1], colors[4])
	assert.NotEqual(t, colors[0], colors[1])
}

func TestHueMapperIdempotent(t *testing.T) {
	m, err := NewHueMapper(0.7, 0.95)
	require.NoError(t, err)

	tags := []int{0, 2, 5, 5, 11, 3}
	first, err := m.Map(tags)
	require.NoError(t, err)
	second, err := m.Map(tags)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestHueMapperDegenerate(t *testing.T) {
	m, err := NewHueMapper(DefaultSaturation, DefaultValue)
	require.NoError(t, err)

	colors, err := m.Map([]int{5, 5, 5})
	assert.ErrorIs(t, err, ErrDegenerateRange)
	assert.Nil(t, colors)
}

func TestHueMapperEmpty(t *testing.T) {
	m, err := NewHueMapper(DefaultSaturation, DefaultValue)
	require.NoError(t, err)

	colors, err := m.Map(nil)
	require.NoError(t, err)
	assert.Empty(t, colors)
}
