package main

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"

	"github.com/philipparndt/colorcif/pkg/palette"
)

var colormapsCmd = &cobra.Command{
	Use:   "colormaps",
	Short: "List the colormaps accepted by --colormap",
	Long:  "List the colormaps accepted by --colormap with their end colors. Append _r to a name to reverse it.",
	Args:  cobra.NoArgs,
	RunE:  runColormaps,
}

func init() {
	rootCmd.AddCommand(colormapsCmd)
}

func runColormaps(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for _, name := range palette.Names() {
		cmap, err := palette.Lookup(name)
		if err != nil {
			return err
		}

		lo, _ := colorful.MakeColor(cmap.At(0))
		hi, _ := colorful.MakeColor(cmap.At(1))
		fmt.Fprintf(out, "%-10s %s -> %s\n", name, lo.Hex(), hi.Hex())
	}
	return nil
}
