// Package palette provides named colormaps: continuous functions from
// [0, 1] to a color.
package palette

import (
	"errors"
	"fmt"
	"image/color"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrUnknownColormap is returned by Lookup for names that are not registered
var ErrUnknownColormap = errors.New("unknown colormap")

// reversedSuffix selects the reversed variant of a colormap, e.g. "viridis_r"
const reversedSuffix = "_r"

// Colormap maps normalized values in [0, 1] to colors
type Colormap interface {
	Name() string
	At(t float64) color.Color
}

// Linear interpolates between equally spaced color stops in RGB
type Linear struct {
	name  string
	stops []colorful.Color
}

// NewLinear creates a colormap from hex color stops such as "#3b4cc0"
func NewLinear(name string, hexStops ...string) (*Linear, error) {
	if len(hexStops) < 2 {
		return nil, fmt.Errorf("colormap %s needs at least 2 stops", name)
	}

	stops := make([]colorful.Color, len(hexStops))
	for i, h := range hexStops {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, fmt.Errorf("colormap %s: invalid stop %q: %w", name, h, err)
		}
		stops[i] = c
	}
	return &Linear{name: name, stops: stops}, nil
}

func mustLinear(name string, hexStops ...string) *Linear {
	cm, err := NewLinear(name, hexStops...)
	if err != nil {
		panic(err)
	}
	return cm
}

// Name returns the registered name of the colormap
func (c *Linear) Name() string {
	return c.name
}

// At returns the color at position t; values outside [0, 1] are clamped
func (c *Linear) At(t float64) color.Color {
	return c.Color(t)
}

// Color is At without the color.Color boxing
func (c *Linear) Color(t float64) colorful.Color {
	if t <= 0 {
		return c.stops[0]
	}
	if t >= 1 {
		return c.stops[len(c.stops)-1]
	}

	idx := t * float64(len(c.stops)-1)
	lower := int(idx)
	upper := lower + 1
	if upper >= len(c.stops) {
		upper = len(c.stops) - 1
	}

	frac := idx - float64(lower)
	return c.stops[lower].BlendRgb(c.stops[upper], frac).Clamped()
}

// Reversed returns the colormap evaluated at 1-t
func (c *Linear) Reversed() *Linear {
	stops := make([]colorful.Color, len(c.stops))
	for i, s := range c.stops {
		stops[len(stops)-1-i] = s
	}
	return &Linear{name: c.name + reversedSuffix, stops: stops}
}

// Lookup returns the colormap registered under name. A "_r" suffix selects
// the reversed colormap.
func Lookup(name string) (Colormap, error) {
	if cm, ok := registry[name]; ok {
		return cm, nil
	}
	if base, ok := strings.CutSuffix(name, reversedSuffix); ok {
		if cm, ok := registry[base]; ok {
			return cm.Reversed(), nil
		}
	}
	return nil, fmt.Errorf("%w: %q (see 'colorcif colormaps')", ErrUnknownColormap, name)
}

// Names returns the registered colormap names in sorted order
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
