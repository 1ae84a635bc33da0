package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/colorcif/version"
)

var rootFlags renderFlags

var rootCmd = &cobra.Command{
	Use:   "colorcif <file.cif>",
	Short: "Render crystal structures with symmetry-distinct atoms in distinct colors",
	Long: `colorcif reads a CIF file, expands the asymmetric unit with the symmetry
operations of the space group and gives every symmetry-distinct atom site its
own color. The colored structure is rendered to a PNG image, or written as a
POV-Ray scene and raytraced by povray.

Colors are spread over the hue circle, or taken from a colormap (-c).
With -T only atoms that are not oxygen (T-atoms) are colored, with -O only the
oxygen atoms; the other atoms are drawn in light gray.`,
	Args:          cobra.ExactArgs(1),
	Version:       version.GetFullVersion(),
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRender(cmd, args, &rootFlags)
	},
}

func init() {
	addRenderFlags(rootCmd, &rootFlags)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
