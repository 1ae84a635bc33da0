package colorize

import (
	"errors"
	"image/color"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/colorcif/pkg/palette"
)

// fixedMapper records what it was asked to map
type fixedMapper struct {
	calls [][]int
	err   error
}

func (m *fixedMapper) Name() string { return "fixed" }

func (m *fixedMapper) Map(tags []int) ([]colorful.Color, error) {
	m.calls = append(m.calls, append([]int(nil), tags...))
	if m.err != nil {
		return nil, m.err
	}
	colors := make([]colorful.Color, len(tags))
	for i, tag := range tags {
		colors[i] = colorful.Color{R: float64(tag) / 100}
	}
	return colors, nil
}

func TestClassify(t *testing.T) {
	mask := Classify([]int{8, 14, 14, 8}, DefaultSentinel)
	assert.Equal(t, []bool{false, true, true, false}, mask)

	assert.Empty(t, Classify(nil, DefaultSentinel))
}

func TestSelectAll(t *testing.T) {
	m := &fixedMapper{}
	colors, err := Select([]int{0, 1, 2, 3}, []int{8, 14, 14, 8}, All, DefaultSentinel, m)
	require.NoError(t, err)

	require.Len(t, m.calls, 1)
	assert.Equal(t, []int{0, 1, 2, 3}, m.calls[0])
	assert.Len(t, colors, 4)
	assert.InDelta(t, 0.03, colors[3].R, 1e-12)
}

func TestSelectHighlightPrimary(t *testing.T) {
	m := &fixedMapper{}
	tags := []int{0, 1, 2, 3}
	species := []int{8, 14, 14, 8}

	colors, err := Select(tags, species, HighlightPrimary, DefaultSentinel, m)
	require.NoError(t, err)
	require.Len(t, colors, 4)

	require.Len(t, m.calls, 1)
	assert.Equal(t, []int{1, 2}, m.calls[0], "only the primary group is mapped, in order")

	assert.Equal(t, Neutral, colors[0])
	assert.Equal(t, Neutral, colors[3])
	assert.InDelta(t, 0.01, colors[1].R, 1e-12)
	assert.InDelta(t, 0.02, colors[2].R, 1e-12)
}

func TestSelectHighlightSecondary(t *testing.T) {
	m := &fixedMapper{}
	tags := []int{0, 1, 2, 3}
	species := []int{8, 14, 14, 8}

	colors, err := Select(tags, species, HighlightSecondary, DefaultSentinel, m)
	require.NoError(t, err)

	require.Len(t, m.calls, 1)
	assert.Equal(t, []int{0, 3}, m.calls[0])

	assert.Equal(t, Neutral, colors[1])
	assert.Equal(t, Neutral, colors[2])
	assert.InDelta(t, 0.03, colors[3].R, 1e-12)
}

func TestSelectHighlightWithHueMapper(t *testing.T) {
	m, err := NewHueMapper(DefaultSaturation, DefaultValue)
	require.NoError(t, err)

	colors, err := Select([]int{0, 1, 2, 3}, []int{8, 14, 14, 8}, HighlightPrimary, DefaultSentinel, m)
	require.NoError(t, err)

	assert.Equal(t, colors[0], colors[3])
	assert.Equal(t, Neutral, colors[0])

	h, _, _ := colors[1].Hsv()
	assert.InDelta(t, 0, h, 1e-6)
	h, _, _ = colors[2].Hsv()
	assert.InDelta(t, 359, h, 1e-6)
}

func TestSelectEmptyGroup(t *testing.T) {
	m := &fixedMapper{}
	colors, err := Select([]int{0, 1}, []int{14, 14}, HighlightSecondary, DefaultSentinel, m)
	require.NoError(t, err)

	assert.Empty(t, m.calls)
	assert.Equal(t, []colorful.Color{Neutral, Neutral}, colors)
}

func TestSelectDegenerateGroup(t *testing.T) {
	m, err := NewHueMapper(DefaultSaturation, DefaultValue)
	require.NoError(t, err)

	// both primary atoms share tag 1
	_, err = Select([]int{0, 1, 1, 2}, []int{8, 14, 14, 8}, HighlightPrimary, DefaultSentinel, m)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDegenerateRange)
	assert.Contains(t, err.Error(), "primary group")
}

func TestSelectErrors(t *testing.T) {
	m := &fixedMapper{}

	_, err := Select([]int{0, 1}, []int{8}, All, DefaultSentinel, m)
	assert.ErrorIs(t, err, ErrLengthMismatch)

	_, err = Select([]int{0, 1}, []int{8, 14}, Mode(42), DefaultSentinel, m)
	assert.Error(t, err)

	boom := errors.New("boom")
	_, err = Select([]int{0, 1}, []int{8, 14}, All, DefaultSentinel, &fixedMapper{err: boom})
	assert.ErrorIs(t, err, boom)
}

func TestSelectCustomSentinel(t *testing.T) {
	m := &fixedMapper{}
	_, err := Select([]int{0, 1, 2}, []int{8, 14, 14}, HighlightSecondary, 14, m)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, m.calls[0])
}

func TestModeFromFlags(t *testing.T) {
	mode, err := ModeFromFlags(false, false)
	require.NoError(t, err)
	assert.Equal(t, All, mode)

	mode, err = ModeFromFlags(true, false)
	require.NoError(t, err)
	assert.Equal(t, HighlightPrimary, mode)

	mode, err = ModeFromFlags(false, true)
	require.NoError(t, err)
	assert.Equal(t, HighlightSecondary, mode)

	_, err = ModeFromFlags(true, true)
	assert.ErrorIs(t, err, ErrConflictingHighlight)
}

func TestParseMode(t *testing.T) {
	for _, mode := range []Mode{All, HighlightPrimary, HighlightSecondary} {
		parsed, err := ParseMode(mode.String())
		require.NoError(t, err)
		assert.Equal(t, mode, parsed)
	}

	parsed, err := ParseMode("PRIMARY")
	require.NoError(t, err)
	assert.Equal(t, HighlightPrimary, parsed)

	_, err = ParseMode("tetrahedral")
	assert.Error(t, err)

	assert.Equal(t, "Mode(7)", Mode(7).String())
}

func TestNormalize(t *testing.T) {
	grid, err := Normalize([]int{2, 4, 6, 4})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 0.5, 1, 0.5}, grid, 1e-12)

	_, err = Normalize(nil)
	assert.ErrorIs(t, err, ErrDegenerateRange)
	_, err = Normalize([]int{3, 3})
	assert.ErrorIs(t, err, ErrDegenerateRange)
}

func TestColormapMapper(t *testing.T) {
	cmap, err := palette.Lookup("gray")
	require.NoError(t, err)

	m := NewColormapMapper(cmap)
	assert.Equal(t, "gray", m.Name())

	colors, err := m.Map([]int{0, 5, 10, 5})
	require.NoError(t, err)
	require.Len(t, colors, 4)

	assert.Equal(t, colors[1], colors[3])
	assert.NotEqual(t, colors[0], colors[2])

	_, err = m.Map([]int{1, 1})
	assert.ErrorIs(t, err, ErrDegenerateRange)
}

func TestColormapMapperIdempotent(t *testing.T) {
	cmap, err := palette.Lookup("viridis")
	require.NoError(t, err)
	m := NewColormapMapper(cmap)

	tags := []int{3, 0, 7, 3, 12, 0}
	first, err := m.Map(tags)
	require.NoError(t, err)
	second, err := m.Map(tags)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, first[0], first[3])
	assert.Equal(t, first[1], first[5])
}

func TestSelectHighlightPrimaryColormap(t *testing.T) {
	cmap, err := palette.Lookup("viridis")
	require.NoError(t, err)
	m := NewColormapMapper(cmap)

	tags := []int{0, 1, 2, 3, 4, 5}
	species := []int{8, 14, 14, 8, 14, 8}

	colors, err := Select(tags, species, HighlightPrimary, DefaultSentinel, m)
	require.NoError(t, err)
	require.Len(t, colors, 6)

	primary, err := m.Map([]int{1, 2, 4})
	require.NoError(t, err)
	assert.Equal(t, primary, []colorful.Color{colors[1], colors[2], colors[4]})

	for _, i := range []int{0, 3, 5} {
		assert.Equal(t, Neutral, colors[i], "atom %d", i)
	}
}

// alphaColormap returns translucent colors to check that alpha is dropped
type alphaColormap struct{}

func (alphaColormap) Name() string { return "alpha" }

func (alphaColormap) At(t float64) color.Color {
	return color.NRGBA{R: uint8(255 * t), G: 0, B: 255, A: 128}
}

func TestColormapMapperDropsAlpha(t *testing.T) {
	m := NewColormapMapper(alphaColormap{})
	colors, err := m.Map([]int{0, 1})
	require.NoError(t, err)

	assert.InDelta(t, 0, colors[0].R, 1e-9)
	assert.InDelta(t, 1, colors[0].B, 1e-9)
	assert.InDelta(t, 1, colors[1].R, 1e-9)
	assert.InDelta(t, 1, colors[1].B, 1e-9)
}

func TestMapperFor(t *testing.T) {
	m, err := MapperFor("", DefaultSaturation, DefaultValue)
	require.NoError(t, err)
	assert.IsType(t, &HueMapper{}, m)

	m, err = MapperFor("viridis", DefaultSaturation, DefaultValue)
	require.NoError(t, err)
	assert.Equal(t, "viridis", m.Name())

	_, err = MapperFor("no-such-map", DefaultSaturation, DefaultValue)
	assert.ErrorIs(t, err, palette.ErrUnknownColormap)
}
