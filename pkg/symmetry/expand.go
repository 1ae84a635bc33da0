package symmetry

import (
	"fmt"

	"github.com/philipparndt/colorcif/pkg/cif"
	"github.com/philipparndt/colorcif/pkg/geometry"
)

// DefaultTolerance is the fractional distance under which two positions coincide
const DefaultTolerance = 1e-3

// Wrap maps a fractional position into [0, 1). Components within tol of 1
// become 0 so that 0.99999 and 0 are stored the same way.
func Wrap(v geometry.Vector3, tol float64) geometry.Vector3 {
	w := v.Sub(v.Floor())
	fix := func(x float64) float64 {
		if x > 1-tol {
			return 0
		}
		return x
	}
	return geometry.NewVector3(fix(w.X), fix(w.Y), fix(w.Z))
}

// PeriodicDistance returns the largest component of the shortest
// fractional difference between a and b under lattice translations.
func PeriodicDistance(a, b geometry.Vector3) float64 {
	d := a.Sub(b)
	return d.Sub(d.Round()).MaxAbs()
}

// Expand applies every operation to every site of the asymmetric unit and
// returns the atoms of the full unit cell. Images of a site follow the site
// in operation order; positions already occupied (within tol) are skipped.
func Expand(s *cif.Structure, ops []Op, tol float64) ([]cif.Atom, error) {
	if tol <= 0 {
		tol = DefaultTolerance
	}
	lattice, err := s.Lattice()
	if err != nil {
		return nil, fmt.Errorf("invalid cell: %w", err)
	}

	atoms := make([]cif.Atom, 0, len(s.Sites)*len(ops))
	for _, site := range s.Sites {
		for _, op := range ops {
			frac := Wrap(op.Apply(site.Frac), tol)
			if occupied(atoms, frac, tol) {
				continue
			}
			atoms = append(atoms, cif.Atom{
				Label:    site.Label,
				Symbol:   site.Symbol,
				Number:   site.Number,
				Frac:     frac,
				Position: lattice.ToCartesian(frac),
				Tag:      -1,
			})
		}
	}

	return atoms, nil
}

func occupied(atoms []cif.Atom, frac geometry.Vector3, tol float64) bool {
	for i := range atoms {
		if PeriodicDistance(atoms[i].Frac, frac) < tol {
			return true
		}
	}
	return false
}

// TagSites tags symmetry-equivalent positions with the same integer.
// Tags count up from 0 in order of first appearance: the first untagged
// position starts a new tag, and every position that an operation maps it
// onto shares that tag.
func TagSites(ops []Op, positions []geometry.Vector3, tol float64) []int {
	if tol <= 0 {
		tol = DefaultTolerance
	}

	tags := make([]int, len(positions))
	for i := range tags {
		tags[i] = -1
	}

	next := 0
	for i, p := range positions {
		if tags[i] >= 0 {
			continue
		}
		tags[i] = next

		for _, op := range ops {
			image := op.Apply(p)
			for j := i + 1; j < len(positions); j++ {
				if tags[j] < 0 && PeriodicDistance(image, positions[j]) < tol {
					tags[j] = next
				}
			}
		}
		next++
	}

	return tags
}

// TagAtoms assigns site tags to the atoms in place and returns the number of
// distinct sites.
func TagAtoms(ops []Op, atoms []cif.Atom, tol float64) int {
	positions := make([]geometry.Vector3, len(atoms))
	for i := range atoms {
		positions[i] = atoms[i].Frac
	}

	tags := TagSites(ops, positions, tol)
	distinct := 0
	for i := range atoms {
		atoms[i].Tag = tags[i]
		distinct = max(distinct, tags[i]+1)
	}
	return distinct
}
