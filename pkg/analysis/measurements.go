package analysis

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/philipparndt/colorcif/pkg/cif"
	"github.com/philipparndt/colorcif/pkg/geometry"
)

// SiteSummary describes one symmetry-distinct site of the unit cell
type SiteSummary struct {
	Tag          int
	Label        string
	Symbol       string
	Number       int
	Multiplicity int
	Occupancy    float64          // of the asymmetric unit site, 1 when not given
	Frac         geometry.Vector3 // first atom carrying the tag
}

// SpeciesCount is the number of atoms of one element in the unit cell
type SpeciesCount struct {
	Symbol string
	Number int
	Count  int
}

// StructureResult contains measurements of an expanded crystal structure
type StructureResult struct {
	Name             string
	SpaceGroup       string
	SpaceGroupNumber int
	Cell             geometry.CellParameters
	Volume           float64
	Dimensions       geometry.Vector3 // cartesian extent of the unit cell
	AtomCount        int
	SymOpCount       int
	Sites            []SiteSummary  // sorted by tag
	Species          []SpeciesCount // sorted by atomic number
	MinDistance      float64        // shortest interatomic distance (minimum image)
}

// AnalyzeStructure summarizes a structure and its tagged, expanded atoms
func AnalyzeStructure(s *cif.Structure, atoms []cif.Atom) (*StructureResult, error) {
	lattice, err := s.Lattice()
	if err != nil {
		return nil, err
	}

	result := &StructureResult{
		Name:             s.Name,
		SpaceGroup:       s.SpaceGroup,
		SpaceGroupNumber: s.SpaceGroupNumber,
		Cell:             s.Cell,
		Volume:           lattice.Volume(),
		AtomCount:        len(atoms),
		SymOpCount:       len(s.SymOps),
	}

	bbox := geometry.NewBoundingBox()
	for _, corner := range lattice.Corners() {
		bbox.Extend(corner)
	}
	result.Dimensions = bbox.Size()

	occupancy := make(map[string]float64, len(s.Sites))
	for _, site := range s.Sites {
		occupancy[site.Label] = site.Occupancy
	}

	sites := make(map[int]*SiteSummary)
	species := make(map[int]*SpeciesCount)
	for _, atom := range atoms {
		site, ok := sites[atom.Tag]
		if !ok {
			site = &SiteSummary{
				Tag:       atom.Tag,
				Label:     atom.Label,
				Symbol:    atom.Symbol,
				Number:    atom.Number,
				Occupancy: 1,
				Frac:      atom.Frac,
			}
			if occ, ok := occupancy[atom.Label]; ok {
				site.Occupancy = occ
			}
			sites[atom.Tag] = site
		}
		site.Multiplicity++

		sp, ok := species[atom.Number]
		if !ok {
			sp = &SpeciesCount{Symbol: atom.Symbol, Number: atom.Number}
			species[atom.Number] = sp
		}
		sp.Count++
	}

	for _, site := range sites {
		result.Sites = append(result.Sites, *site)
	}
	sort.Slice(result.Sites, func(i, j int) bool {
		return result.Sites[i].Tag < result.Sites[j].Tag
	})

	for _, sp := range species {
		result.Species = append(result.Species, *sp)
	}
	sort.Slice(result.Species, func(i, j int) bool {
		return result.Species[i].Number < result.Species[j].Number
	})

	result.MinDistance = minDistance(lattice, atoms)

	return result, nil
}

// minDistance returns the shortest minimum-image distance between two
// atoms, or 0 for fewer than two atoms
func minDistance(lattice *geometry.Lattice, atoms []cif.Atom) float64 {
	if len(atoms) < 2 {
		return 0
	}

	shortest := math.MaxFloat64
	for i := range atoms {
		for j := i + 1; j < len(atoms); j++ {
			d := atoms[j].Frac.Sub(atoms[i].Frac)
			d = d.Sub(d.Round())
			shortest = math.Min(shortest, lattice.ToCartesian(d).Length())
		}
	}
	return shortest
}

// FindSitesBySymbol returns the sites of one element
func FindSitesBySymbol(result *StructureResult, symbol string) []SiteSummary {
	var sites []SiteSummary
	for _, site := range result.Sites {
		if strings.EqualFold(site.Symbol, symbol) {
			sites = append(sites, site)
		}
	}
	return sites
}

// FormatCell formats the six cell parameters
func FormatCell(p geometry.CellParameters) string {
	return fmt.Sprintf("a=%.4f b=%.4f c=%.4f alpha=%.2f beta=%.2f gamma=%.2f",
		p.A, p.B, p.C, p.Alpha, p.Beta, p.Gamma)
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
