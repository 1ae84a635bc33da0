package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/colorcif/internal/app"
	"github.com/philipparndt/colorcif/pkg/analysis"
	"github.com/philipparndt/colorcif/pkg/symmetry"
)

var (
	infoTolerance float64
	infoElement   string
)

var infoCmd = &cobra.Command{
	Use:   "info <file.cif>",
	Short: "Display the symmetry-distinct sites of a CIF file",
	Long:  "Show the cell, space group and every symmetry-distinct site with its multiplicity in the unit cell.",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)

	infoCmd.Flags().Float64Var(&infoTolerance, "tolerance", symmetry.DefaultTolerance, "Fractional distance below which positions coincide")
	infoCmd.Flags().StringVarP(&infoElement, "element", "e", "", "Only list sites of this element")
}

func runInfo(cmd *cobra.Command, args []string) error {
	filename := args[0]

	loaded, err := app.Load(filename, infoTolerance)
	if err != nil {
		return err
	}

	result, err := analysis.AnalyzeStructure(loaded.Structure, loaded.Atoms)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "CIF File Information")
	fmt.Fprintln(out, "====================")
	if result.Name != "" {
		fmt.Fprintf(out, "Name: %s\n", result.Name)
	}
	fmt.Fprintf(out, "File: %s\n\n", filename)

	fmt.Fprintln(out, "Cell:")
	fmt.Fprintf(out, "  %s\n", analysis.FormatCell(result.Cell))
	fmt.Fprintf(out, "  Volume: %.4f Å³\n", result.Volume)
	fmt.Fprintf(out, "  Extent: %s Å\n", analysis.FormatVector(result.Dimensions))
	if result.SpaceGroup != "" {
		fmt.Fprintf(out, "  Space group: %s", result.SpaceGroup)
		if result.SpaceGroupNumber > 0 {
			fmt.Fprintf(out, " (No. %d)", result.SpaceGroupNumber)
		}
		fmt.Fprintln(out)
	}
	fmt.Fprintf(out, "  Symmetry operations: %d\n\n", result.SymOpCount)

	fmt.Fprintln(out, "Atoms:")
	fmt.Fprintf(out, "  Asymmetric unit: %d\n", len(loaded.Structure.Sites))
	fmt.Fprintf(out, "  Unit cell: %d\n", result.AtomCount)
	for _, sp := range result.Species {
		fmt.Fprintf(out, "    %-3s %d\n", sp.Symbol, sp.Count)
	}
	fmt.Fprintf(out, "  Shortest distance: %.4f Å\n\n", result.MinDistance)

	sites := result.Sites
	if infoElement != "" {
		sites = analysis.FindSitesBySymbol(result, infoElement)
	}

	fmt.Fprintf(out, "Distinct sites (%d):\n", len(sites))
	fmt.Fprintf(out, "  %4s  %-8s %-3s %5s %5s  %s\n", "Tag", "Label", "El", "Mult", "Occ", "Position")
	for _, site := range sites {
		fmt.Fprintf(out, "  %4d  %-8s %-3s %5d %5.2f  %s\n",
			site.Tag, site.Label, site.Symbol, site.Multiplicity, site.Occupancy, analysis.FormatVector(site.Frac))
	}
	return nil
}
