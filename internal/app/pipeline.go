// Package app runs the colorcif pipeline: load a structure, tag its sites,
// color the atoms and render the result.
package app

import (
	"context"
	"fmt"
	"image"
	"io"
	"path/filepath"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/philipparndt/colorcif/internal/config"
	"github.com/philipparndt/colorcif/pkg/cif"
	"github.com/philipparndt/colorcif/pkg/colorize"
	"github.com/philipparndt/colorcif/pkg/povray"
	"github.com/philipparndt/colorcif/pkg/viewer"
)

// fallbackRadius is used for elements without a covalent radius
const fallbackRadius = 0.5

// Pipeline renders structure files with one configuration
type Pipeline struct {
	cfg        *config.Config
	log        io.Writer
	verbose    bool
	povrayOpts []povray.Option
}

// Option configures a Pipeline
type Option func(*Pipeline)

// WithLog sets the progress output and whether it is shown
func WithLog(w io.Writer, verbose bool) Option {
	return func(p *Pipeline) {
		p.log = w
		p.verbose = verbose
	}
}

// WithPovray passes options to the POV-Ray renderer
func WithPovray(opts ...povray.Option) Option {
	return func(p *Pipeline) {
		p.povrayOpts = append(p.povrayOpts, opts...)
	}
}

// NewPipeline validates cfg and creates a pipeline
func NewPipeline(cfg *config.Config, opts ...Option) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	p := &Pipeline{cfg: cfg, log: io.Discard}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Logf prints a progress line when verbose output is enabled
func (p *Pipeline) Logf(format string, args ...any) {
	if p.verbose {
		fmt.Fprintf(p.log, format+"\n", args...)
	}
}

// Result describes one finished run
type Result struct {
	Output string      // written image or scene
	Image  *image.RGBA // built-in renderer only
	Atoms  int
	Sites  int
	Mode   colorize.Mode
	Mapper string
}

// Run renders input to output; an empty output selects DefaultOutput
func (p *Pipeline) Run(ctx context.Context, input, output string) (*Result, error) {
	if output == "" {
		output = DefaultOutput(input, p.cfg.Render.Backend)
	}

	p.Logf("Reading %s", input)
	loaded, err := Load(input, p.cfg.Color.Tolerance)
	if err != nil {
		return nil, err
	}
	p.Logf("Expanded %d sites to %d atoms, %d distinct sites (%d symmetry operations)",
		len(loaded.Structure.Sites), len(loaded.Atoms), loaded.Sites, len(loaded.Ops))

	colors, err := p.Colors(loaded)
	if err != nil {
		return nil, err
	}

	mode, _ := p.cfg.Mode()
	mapper, _ := p.cfg.Mapper()
	result := &Result{
		Output: output,
		Atoms:  len(loaded.Atoms),
		Sites:  loaded.Sites,
		Mode:   mode,
		Mapper: mapper.Name(),
	}

	scene, err := p.Scene(loaded, colors)
	if err != nil {
		return nil, err
	}
	opts, err := p.cfg.RenderOptions()
	if err != nil {
		return nil, err
	}

	switch p.cfg.Render.Backend {
	case config.BackendPOV:
		p.Logf("Rendering %s with POV-Ray", output)
		renderer := povray.NewRenderer(filepath.Dir(output), p.povrayOpts...)
		files, err := renderer.Render(ctx, scene, opts, filepath.Base(output))
		if err != nil {
			return nil, err
		}
		result.Output = files.Scene
		p.Logf("Wrote %s, %s and %s", files.Scene, files.INI, files.Image)

	default:
		p.Logf("Rendering %s (%d x supersampled)", output, opts.Supersample)
		img, err := viewer.Render(scene, opts)
		if err != nil {
			return nil, err
		}
		if err := viewer.WritePNG(output, img); err != nil {
			return nil, err
		}
		result.Image = img
		p.Logf("Wrote %s (%dx%d)", output, img.Bounds().Dx(), img.Bounds().Dy())
	}

	return result, nil
}

// Colors assigns one color per atom according to the configured mode and
// mapper
func (p *Pipeline) Colors(loaded *Loaded) ([]colorful.Color, error) {
	mode, err := p.cfg.Mode()
	if err != nil {
		return nil, err
	}
	sentinel, err := p.cfg.SentinelNumber()
	if err != nil {
		return nil, err
	}
	mapper, err := p.cfg.Mapper()
	if err != nil {
		return nil, err
	}

	p.Logf("Coloring %s atoms with %s", mode, mapper.Name())
	colors, err := colorize.Select(loaded.Tags(), loaded.Numbers(), mode, sentinel, mapper)
	if err != nil {
		return nil, fmt.Errorf("failed to color atoms: %w", err)
	}
	return colors, nil
}

// Scene builds the renderer input from colored atoms
func (p *Pipeline) Scene(loaded *Loaded, colors []colorful.Color) (*viewer.Scene, error) {
	if len(colors) != len(loaded.Atoms) {
		return nil, fmt.Errorf("%w: %d colors for %d atoms", colorize.ErrLengthMismatch, len(colors), len(loaded.Atoms))
	}

	scene := &viewer.Scene{
		Spheres: make([]viewer.Sphere, len(loaded.Atoms)),
		Cell:    loaded.Lattice,
	}
	for i, atom := range loaded.Atoms {
		scene.Spheres[i] = viewer.Sphere{
			Center:  atom.Position,
			Radius:  elementRadius(atom.Number),
			Color:   colors[i],
			Texture: p.cfg.Render.Texture,
		}
	}

	mode, _ := p.cfg.Mode()
	sentinel, _ := p.cfg.SentinelNumber()
	scene.Legend = legend(loaded, colors, mode, sentinel)

	return scene, nil
}

func elementRadius(z int) float64 {
	if e, ok := cif.ElementByNumber(z); ok && e.CovalentRadius > 0 {
		return e.CovalentRadius
	}
	return fallbackRadius
}

// legend lists the first atom of every mapped site
func legend(loaded *Loaded, colors []colorful.Color, mode colorize.Mode, sentinel int) []viewer.LegendEntry {
	mask := colorize.Classify(loaded.Numbers(), sentinel)

	var entries []viewer.LegendEntry
	seen := make(map[int]bool)
	for i, atom := range loaded.Atoms {
		if seen[atom.Tag] {
			continue
		}
		seen[atom.Tag] = true

		switch {
		case mode == colorize.HighlightPrimary && !mask[i]:
			continue
		case mode == colorize.HighlightSecondary && mask[i]:
			continue
		}
		entries = append(entries, viewer.LegendEntry{Label: atom.Label, Color: colors[i]})
	}
	return entries
}
