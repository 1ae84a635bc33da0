// Package colorize assigns one color per atom from its symmetry site tag.
//
// Two mappers turn a sequence of integer tags into colors: HueMapper sweeps
// the hue circle at fixed saturation and value, ColormapMapper evaluates a
// named colormap. Both rescale the tags linearly between their minimum and
// maximum, so equal tags always get equal colors and a group whose tags are
// all equal fails with ErrDegenerateRange.
//
// Select decides which atoms are passed to the mapper. In highlight modes
// the atoms are split by species into a primary and a secondary group; the
// group that is not highlighted is painted Neutral.
package colorize

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/philipparndt/colorcif/pkg/palette"
)

// Mapper converts a sequence of site tags into colors, one per tag
type Mapper interface {
	Name() string
	Map(tags []int) ([]colorful.Color, error)
}

// MapperFor returns the hue mapper when colormap is empty and the named
// colormap mapper otherwise.
func MapperFor(colormap string, s, v float64) (Mapper, error) {
	if colormap == "" {
		return NewHueMapper(s, v)
	}

	cmap, err := palette.Lookup(colormap)
	if err != nil {
		return nil, err
	}
	return NewColormapMapper(cmap), nil
}

func tagRange(tags []int) (lo, hi int, err error) {
	if len(tags) == 0 {
		return 0, 0, fmt.Errorf("%w: no tags", ErrDegenerateRange)
	}

	lo, hi = tags[0], tags[0]
	for _, t := range tags[1:] {
		lo = min(lo, t)
		hi = max(hi, t)
	}
	if lo == hi {
		return 0, 0, fmt.Errorf("%w: all %d tags equal %d", ErrDegenerateRange, len(tags), lo)
	}
	return lo, hi, nil
}
