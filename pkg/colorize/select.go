package colorize

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultSentinel is the atomic number of the secondary group (oxygen)
const DefaultSentinel = 8

// Neutral is the color of atoms outside the highlighted group
var Neutral = colorful.Color{R: 0.8, G: 0.8, B: 0.8}

// Classify returns the classification mask: true for atoms of the primary
// group (species differs from sentinel), false for the secondary group.
func Classify(species []int, sentinel int) []bool {
	mask := make([]bool, len(species))
	for i, z := range species {
		mask[i] = z != sentinel
	}
	return mask
}

// Select returns one color per atom. tags and species are per-atom site
// tags and atomic numbers. In All mode every tag goes through the mapper;
// in the highlight modes only the highlighted group does, in order, and
// the other group is Neutral.
func Select(tags, species []int, mode Mode, sentinel int, mapper Mapper) ([]colorful.Color, error) {
	if len(tags) != len(species) {
		return nil, fmt.Errorf("%w: %d tags, %d species", ErrLengthMismatch, len(tags), len(species))
	}

	if mode == All {
		return mapper.Map(tags)
	}

	var highlight bool
	switch mode {
	case HighlightPrimary:
		highlight = true
	case HighlightSecondary:
		highlight = false
	default:
		return nil, fmt.Errorf("unknown mode %v", mode)
	}

	mask := Classify(species, sentinel)
	colors := make([]colorful.Color, len(tags))

	var group []int
	var index []int
	for i, inPrimary := range mask {
		if inPrimary == highlight {
			group = append(group, tags[i])
			index = append(index, i)
		} else {
			colors[i] = Neutral
		}
	}

	if len(group) == 0 {
		return colors, nil
	}

	mapped, err := mapper.Map(group)
	if err != nil {
		return nil, fmt.Errorf("%s group: %w", mode, err)
	}
	for k, i := range index {
		colors[i] = mapped[k]
	}
	return colors, nil
}
