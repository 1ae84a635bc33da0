package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/philipparndt/colorcif/internal/config"
	"github.com/philipparndt/colorcif/pkg/palette"
	"github.com/philipparndt/colorcif/pkg/viewer"
)

// renderFlags are the flags shared by the commands that render
type renderFlags struct {
	config      string
	texture     string
	tAtoms      bool
	oAtoms      bool
	colormap    string
	output      string
	backend     string
	rotation    string
	width       int
	showCell    bool
	transparent bool
	legend      bool
	sentinel    string
	saturation  float64
	value       float64
	tolerance   float64
	watch       bool
	verbose     bool
}

func addRenderFlags(cmd *cobra.Command, f *renderFlags) {
	defaults := config.Default()
	flags := cmd.Flags()

	flags.StringVar(&f.config, "config", "", "TOML configuration file")
	flags.StringVarP(&f.texture, "texture", "t", defaults.Render.Texture,
		"Atom texture ("+strings.Join(viewer.CLITextures, ", ")+")")
	flags.BoolVarP(&f.tAtoms, "t-atoms", "T", false, "Highlight only the different T-atoms (all atoms except the sentinel species)")
	flags.BoolVarP(&f.oAtoms, "o-atoms", "O", false, "Highlight only atoms of the sentinel species (oxygen by default)")
	flags.StringVarP(&f.colormap, "colormap", "c", "", "Colormap instead of the hue circle (see 'colorcif colormaps')")
	flags.StringVarP(&f.output, "output", "o", "", "Output file (default: input name with .png or .pov)")
	flags.StringVar(&f.backend, "backend", defaults.Render.Backend, "Renderer: png (built-in) or pov (POV-Ray)")
	flags.StringVar(&f.rotation, "rotation", defaults.Render.Rotation, "View rotation, e.g. \"10x,-20y,0z\"")
	flags.IntVar(&f.width, "width", defaults.Render.Width, "Image width in pixels")
	flags.BoolVar(&f.showCell, "show-cell", false, "Draw the unit cell")
	flags.BoolVar(&f.transparent, "transparent", false, "Transparent background")
	flags.BoolVar(&f.legend, "legend", false, "Draw a legend of the colored sites")
	flags.StringVar(&f.sentinel, "sentinel", defaults.Color.Sentinel, "Element separating T-atoms from the rest")
	flags.Float64Var(&f.saturation, "saturation", defaults.Color.Saturation, "Saturation of the hue colors, in (0, 1]")
	flags.Float64Var(&f.value, "value", defaults.Color.Value, "Value (brightness) of the hue colors, in (0, 1]")
	flags.Float64Var(&f.tolerance, "tolerance", defaults.Color.Tolerance, "Fractional distance below which positions coincide")
	flags.BoolVarP(&f.watch, "watch", "w", false, "Render again whenever the input file changes")
	flags.BoolVarP(&f.verbose, "verbose", "v", false, "Print progress")

	cmd.MarkFlagsMutuallyExclusive("t-atoms", "o-atoms")

	_ = cmd.RegisterFlagCompletionFunc("texture", cobra.FixedCompletions(viewer.CLITextures, cobra.ShellCompDirectiveNoFileComp))
	_ = cmd.RegisterFlagCompletionFunc("colormap", cobra.FixedCompletions(palette.Names(), cobra.ShellCompDirectiveNoFileComp))
	_ = cmd.RegisterFlagCompletionFunc("backend", cobra.FixedCompletions([]string{config.BackendPNG, config.BackendPOV}, cobra.ShellCompDirectiveNoFileComp))
	_ = cmd.MarkFlagFilename("config", "toml")
}

// load builds the configuration: defaults, then the config file, then the
// flags given on the command line
func (f *renderFlags) load(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if f.config != "" {
		loaded, err := config.Load(f.config)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	changed := cmd.Flags().Changed
	if changed("texture") {
		cfg.Render.Texture = f.texture
	}
	if changed("backend") {
		cfg.Render.Backend = f.backend
	}
	if changed("rotation") {
		cfg.Render.Rotation = f.rotation
	}
	if changed("width") {
		cfg.Render.Width = f.width
	}
	if changed("show-cell") {
		cfg.Render.ShowCell = f.showCell
	}
	if changed("transparent") {
		cfg.Render.Transparent = f.transparent
	}
	if changed("legend") {
		cfg.Render.Legend = f.legend
	}
	if changed("colormap") {
		cfg.Color.Colormap = f.colormap
	}
	if changed("sentinel") {
		cfg.Color.Sentinel = f.sentinel
	}
	if changed("saturation") {
		cfg.Color.Saturation = f.saturation
	}
	if changed("value") {
		cfg.Color.Value = f.value
	}
	if changed("tolerance") {
		cfg.Color.Tolerance = f.tolerance
	}
	if changed("t-atoms") || changed("o-atoms") {
		cfg.Color.Mode = ""
		cfg.Color.HighlightPrimary = f.tAtoms
		cfg.Color.HighlightSecondary = f.oAtoms
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
