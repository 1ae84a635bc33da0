// Package config holds the render and coloring settings of colorcif and
// loads them from TOML files.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/philipparndt/colorcif/pkg/cif"
	"github.com/philipparndt/colorcif/pkg/colorize"
	"github.com/philipparndt/colorcif/pkg/palette"
	"github.com/philipparndt/colorcif/pkg/symmetry"
	"github.com/philipparndt/colorcif/pkg/viewer"
)

// Output backends
const (
	BackendPNG = "png"
	BackendPOV = "pov"
)

// Config is the complete configuration of one run
type Config struct {
	Render RenderConfig `toml:"render"`
	Color  ColorConfig  `toml:"color"`
}

// RenderConfig controls the image
type RenderConfig struct {
	Backend       string  `toml:"backend"`
	Texture       string  `toml:"texture"`
	Rotation      string  `toml:"rotation"`
	Width         int     `toml:"width"`
	CameraDist    float64 `toml:"camera_dist"`
	ShowCell      bool    `toml:"show_cell"`
	CellLineWidth float64 `toml:"cell_line_width"`
	Background    string  `toml:"background"`
	Transparent   bool    `toml:"transparent"`
	Supersample   int     `toml:"supersample"`
	Legend        bool    `toml:"legend"`
}

// ColorConfig controls how atoms are colored
type ColorConfig struct {
	Colormap           string  `toml:"colormap"`
	Mode               string  `toml:"mode"` // all, primary or secondary
	Saturation         float64 `toml:"saturation"`
	Value              float64 `toml:"value"`
	Sentinel           string  `toml:"sentinel"`
	HighlightPrimary   bool    `toml:"t_atoms"`
	HighlightSecondary bool    `toml:"o_atoms"`
	Tolerance          float64 `toml:"tolerance"`
}

// Default returns the built-in configuration
func Default() *Config {
	opts := viewer.DefaultOptions()
	return &Config{
		Render: RenderConfig{
			Backend:       BackendPNG,
			Texture:       viewer.DefaultTexture,
			Rotation:      opts.Rotation,
			Width:         opts.Width,
			CameraDist:    opts.CameraDist,
			CellLineWidth: opts.CellLineWidth,
			Background:    "#ffffff",
			Supersample:   opts.Supersample,
		},
		Color: ColorConfig{
			Saturation: colorize.DefaultSaturation,
			Value:      colorize.DefaultValue,
			Sentinel:   "O",
			Tolerance:  symmetry.DefaultTolerance,
		},
	}
}

// Load reads a TOML file on top of the defaults. Keys that do not belong
// to the configuration are an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return nil, fmt.Errorf("config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}

	return cfg, nil
}

// Validate checks the configuration for values that cannot be used
func (c *Config) Validate() error {
	var errs []error

	if c.Render.Backend != BackendPNG && c.Render.Backend != BackendPOV {
		errs = append(errs, fmt.Errorf("invalid backend %q (expected %s or %s)", c.Render.Backend, BackendPNG, BackendPOV))
	}
	if !slices.Contains(viewer.TextureNames(), c.Render.Texture) {
		errs = append(errs, fmt.Errorf("invalid texture %q (available: %s)", c.Render.Texture, strings.Join(viewer.TextureNames(), ", ")))
	}
	if _, err := c.RenderOptions(); err != nil {
		errs = append(errs, err)
	}

	if c.Color.Colormap != "" {
		if _, err := palette.Lookup(c.Color.Colormap); err != nil {
			errs = append(errs, err)
		}
	}
	if !(c.Color.Saturation > 0 && c.Color.Saturation <= 1) {
		errs = append(errs, fmt.Errorf("saturation %v must be in (0, 1]", c.Color.Saturation))
	}
	if !(c.Color.Value > 0 && c.Color.Value <= 1) {
		errs = append(errs, fmt.Errorf("value %v must be in (0, 1]", c.Color.Value))
	}
	if _, err := c.SentinelNumber(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Mode(); err != nil {
		errs = append(errs, err)
	}
	if c.Color.Tolerance <= 0 {
		errs = append(errs, fmt.Errorf("tolerance %v must be positive", c.Color.Tolerance))
	}

	return errors.Join(errs...)
}

// Mode returns the coloring mode selected by the mode key or the highlight
// switches. Both may be set only when they agree.
func (c *Config) Mode() (colorize.Mode, error) {
	switches, err := colorize.ModeFromFlags(c.Color.HighlightPrimary, c.Color.HighlightSecondary)
	if err != nil || c.Color.Mode == "" {
		return switches, err
	}

	mode, err := colorize.ParseMode(c.Color.Mode)
	if err != nil {
		return colorize.All, err
	}
	if switches != colorize.All && switches != mode {
		return colorize.All, fmt.Errorf("%w: mode %s, highlight %s", colorize.ErrConflictingHighlight, mode, switches)
	}
	return mode, nil
}

// SentinelNumber returns the atomic number of the secondary species
func (c *Config) SentinelNumber() (int, error) {
	element, ok := cif.LookupElement(c.Color.Sentinel)
	if !ok {
		return 0, fmt.Errorf("unknown sentinel element %q", c.Color.Sentinel)
	}
	return element.Number, nil
}

// Mapper returns the color mapper selected by the colormap setting
func (c *Config) Mapper() (colorize.Mapper, error) {
	return colorize.MapperFor(c.Color.Colormap, c.Color.Saturation, c.Color.Value)
}

// RenderOptions converts the render settings to viewer options
func (c *Config) RenderOptions() (viewer.Options, error) {
	opts := viewer.DefaultOptions()
	opts.Rotation = c.Render.Rotation
	opts.Width = c.Render.Width
	opts.CameraDist = c.Render.CameraDist
	opts.ShowCell = c.Render.ShowCell
	opts.CellLineWidth = c.Render.CellLineWidth
	opts.Transparent = c.Render.Transparent
	opts.Supersample = c.Render.Supersample
	opts.Legend = c.Render.Legend

	bg, err := colorful.Hex(c.Render.Background)
	if err != nil {
		return opts, fmt.Errorf("invalid background %q: %w", c.Render.Background, err)
	}
	opts.Background = bg

	if err := opts.Validate(); err != nil {
		return opts, err
	}
	return opts, nil
}
