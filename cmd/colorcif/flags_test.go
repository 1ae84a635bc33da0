package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/colorcif/internal/config"
	"github.com/philipparndt/colorcif/pkg/cif/ciftest"
	"github.com/philipparndt/colorcif/pkg/colorize"
	"github.com/philipparndt/colorcif/pkg/palette"
)

func newRenderCommand(t *testing.T, args ...string) (*cobra.Command, *renderFlags) {
	t.Helper()
	f := &renderFlags{}
	cmd := &cobra.Command{Use: "test"}
	addRenderFlags(cmd, f)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd, f
}

func TestLoadDefaults(t *testing.T) {
	cmd, f := newRenderCommand(t)

	cfg, err := f.load(cmd)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadFlags(t *testing.T) {
	cmd, f := newRenderCommand(t,
		"-t", "glass", "-T", "-c", "viridis", "--width", "640",
		"--backend", "pov", "--show-cell", "--rotation", "90x,0y,0z")

	cfg, err := f.load(cmd)
	require.NoError(t, err)
	assert.Equal(t, "glass", cfg.Render.Texture)
	assert.Equal(t, "viridis", cfg.Color.Colormap)
	assert.Equal(t, 640, cfg.Render.Width)
	assert.Equal(t, config.BackendPOV, cfg.Render.Backend)
	assert.True(t, cfg.Render.ShowCell)
	assert.Equal(t, "90x,0y,0z", cfg.Render.Rotation)

	mode, err := cfg.Mode()
	require.NoError(t, err)
	assert.Equal(t, colorize.HighlightPrimary, mode)
}

func TestLoadFlagsOverrideConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "colorcif.toml")
	content := `
[render]
texture = "vmd"
width = 300

[color]
mode = "secondary"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cmd, f := newRenderCommand(t, "--config", path, "--width", "500", "-T")

	cfg, err := f.load(cmd)
	require.NoError(t, err)
	assert.Equal(t, "vmd", cfg.Render.Texture, "kept from file")
	assert.Equal(t, 500, cfg.Render.Width, "flag wins")

	mode, err := cfg.Mode()
	require.NoError(t, err)
	assert.Equal(t, colorize.HighlightPrimary, mode, "-T replaces the mode from the file")
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"texture", []string{"-t", "wood"}},
		{"colormap", []string{"-c", "rainbowish"}},
		{"backend", []string{"--backend", "svg"}},
		{"saturation", []string{"--saturation", "0"}},
		{"sentinel", []string{"--sentinel", "Xx"}},
		{"rotation", []string{"--rotation", "10q"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, f := newRenderCommand(t, tt.args...)
			_, err := f.load(cmd)
			assert.Error(t, err)
		})
	}
}

func TestHighlightFlagsExclusive(t *testing.T) {
	cmd, _ := newRenderCommand(t, "-T", "-O")
	assert.Error(t, cmd.ValidateFlagGroups())
}

func TestColormapsCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)

	require.NoError(t, runColormaps(cmd, nil))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Len(t, lines, len(palette.Names()))
	assert.Contains(t, out.String(), "gray")
	assert.Contains(t, out.String(), "#000000 -> #ffffff")
}

func TestInfoCommand(t *testing.T) {
	path := ciftest.WriteFile(t, "p-1.cif", ciftest.Triclinic)

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)

	require.NoError(t, runInfo(cmd, []string{path}))

	text := out.String()
	assert.Contains(t, text, "Symmetry operations: 2")
	assert.Contains(t, text, "Unit cell: 7")
	assert.Contains(t, text, "Distinct sites (4):")
	assert.Contains(t, text, "Occ")
	assert.Regexp(t, `Si1\s+Si\s+2\s+1\.00`, text)
}
