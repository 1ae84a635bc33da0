package app

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/philipparndt/colorcif/internal/config"
	"github.com/philipparndt/colorcif/pkg/cif"
	"github.com/philipparndt/colorcif/pkg/geometry"
	"github.com/philipparndt/colorcif/pkg/symmetry"
)

// Loaded is a structure expanded to its full unit cell, with site tags
type Loaded struct {
	Structure *cif.Structure
	Ops       []symmetry.Op
	Atoms     []cif.Atom
	Sites     int // number of distinct tags
	Lattice   *geometry.Lattice
}

// IsStructureFile reports whether path names a file colorcif can read
func IsStructureFile(path string) bool {
	lower := strings.ToLower(path)
	return strings.HasSuffix(lower, ".cif") || strings.HasSuffix(lower, ".cif.gz")
}

// Load reads a CIF file, expands the asymmetric unit and tags the sites
func Load(path string, tol float64) (*Loaded, error) {
	if !IsStructureFile(path) {
		return nil, fmt.Errorf("unsupported file type: %s (expected .cif or .cif.gz)", filepath.Ext(path))
	}

	s, err := cif.ReadFile(path)
	if err != nil {
		return nil, err
	}

	ops, err := symmetry.ParseOps(s.SymOps)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	lattice, err := s.Lattice()
	if err != nil {
		return nil, fmt.Errorf("%s: invalid cell: %w", path, err)
	}

	atoms, err := symmetry.Expand(s, ops, tol)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	sites := symmetry.TagAtoms(ops, atoms, tol)

	return &Loaded{
		Structure: s,
		Ops:       ops,
		Atoms:     atoms,
		Sites:     sites,
		Lattice:   lattice,
	}, nil
}

// Tags returns the site tag of every atom
func (l *Loaded) Tags() []int {
	tags := make([]int, len(l.Atoms))
	for i, atom := range l.Atoms {
		tags[i] = atom.Tag
	}
	return tags
}

// Numbers returns the atomic number of every atom
func (l *Loaded) Numbers() []int {
	numbers := make([]int, len(l.Atoms))
	for i, atom := range l.Atoms {
		numbers[i] = atom.Number
	}
	return numbers
}

// DefaultOutput derives the output path from the input path: the .cif or
// .cif.gz extension is replaced by .png, or .pov for the POV-Ray backend
func DefaultOutput(input, backend string) string {
	ext := ".png"
	if backend == config.BackendPOV {
		ext = ".pov"
	}

	base := input
	lower := strings.ToLower(base)
	if strings.HasSuffix(lower, ".gz") {
		base = base[:len(base)-len(".gz")]
	}
	return strings.TrimSuffix(base, filepath.Ext(base)) + ext
}
