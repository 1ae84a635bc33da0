package cif

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/philipparndt/colorcif/pkg/geometry"
)

// Site is one atom site of the asymmetric unit as listed in the file
type Site struct {
	Label     string
	Symbol    string
	Number    int
	Frac      geometry.Vector3
	Occupancy float64
}

// Atom is one atom of the expanded unit cell
type Atom struct {
	Label    string // label of the site this atom was generated from
	Symbol   string
	Number   int
	Frac     geometry.Vector3
	Position geometry.Vector3
	Tag      int
}

// Structure is the crystal structure described by one data block
type Structure struct {
	Name             string
	Cell             geometry.CellParameters
	SpaceGroup       string
	SpaceGroupNumber int
	SymOps           []string
	Sites            []Site
}

// Lattice returns the cell matrix of the structure
func (s *Structure) Lattice() (*geometry.Lattice, error) {
	return geometry.NewLattice(s.Cell)
}

var (
	symopNames = []string{
		"_symmetry_equiv_pos_as_xyz",
		"_space_group_symop_operation_xyz",
		"_space_group_symop.operation_xyz",
	}
	spaceGroupNames = []string{
		"_symmetry_space_group_name_h-m",
		"_space_group_name_h-m_alt",
		"_space_group.name_h-m_alt",
	}
	spaceGroupNumberNames = []string{
		"_symmetry_int_tables_number",
		"_space_group_it_number",
		"_space_group.it_number",
	}
)

// Parse reads the first data block of a CIF document
func Parse(r io.Reader) (*Structure, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read CIF data: %w", err)
	}

	tokens, err := tokenize(data)
	if err != nil {
		return nil, err
	}

	block, err := parseBlock(tokens)
	if err != nil {
		return nil, err
	}

	return NewStructure(block)
}

// NewStructure extracts cell, symmetry and atom sites from a data block
func NewStructure(block *Block) (*Structure, error) {
	s := &Structure{Name: block.Name}

	cellFields := []struct {
		name string
		dst  *float64
	}{
		{"_cell_length_a", &s.Cell.A},
		{"_cell_length_b", &s.Cell.B},
		{"_cell_length_c", &s.Cell.C},
		{"_cell_angle_alpha", &s.Cell.Alpha},
		{"_cell_angle_beta", &s.Cell.Beta},
		{"_cell_angle_gamma", &s.Cell.Gamma},
	}
	for _, f := range cellFields {
		raw, ok := block.Item(f.name)
		if !ok {
			raw, ok = block.Item(strings.Replace(f.name, "_cell_", "_cell.", 1))
		}
		if !ok {
			if strings.Contains(f.name, "angle") {
				*f.dst = 90
				continue
			}
			return nil, fmt.Errorf("missing %s", f.name)
		}
		v, err := ParseNumber(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", f.name, err)
		}
		*f.dst = v
	}

	if v, ok := block.FirstItem(spaceGroupNames...); ok {
		s.SpaceGroup = strings.TrimSpace(v)
	}
	if v, ok := block.FirstItem(spaceGroupNumberNames...); ok {
		if n, err := strconv.Atoi(v); err == nil {
			s.SpaceGroupNumber = n
		}
	}

	s.SymOps = symmetryOperations(block)

	sites, err := atomSites(block)
	if err != nil {
		return nil, err
	}
	s.Sites = sites

	return s, nil
}

// symmetryOperations returns the listed operations, or the identity
func symmetryOperations(block *Block) []string {
	for _, name := range symopNames {
		if loop := block.FindLoop(name); loop != nil {
			col := loop.Column(name)
			ops := make([]string, 0, len(loop.Rows))
			for _, row := range loop.Rows {
				ops = append(ops, row[col])
			}
			return ops
		}
		if v, ok := block.Item(name); ok {
			return []string{v}
		}
	}
	return []string{"x,y,z"}
}

func atomSites(block *Block) ([]Site, error) {
	loop := block.FindLoop("_atom_site_fract_x")
	prefix := "_atom_site_"
	if loop == nil {
		loop = block.FindLoop("_atom_site.fract_x")
		prefix = "_atom_site."
	}
	if loop == nil {
		return nil, ErrNoAtoms
	}

	col := func(name string) int { return loop.Column(prefix + name) }
	label, symbol, occupancy := col("label"), col("type_symbol"), col("occupancy")
	fx, fy, fz := col("fract_x"), col("fract_y"), col("fract_z")
	if fy < 0 || fz < 0 {
		return nil, fmt.Errorf("atom site loop lacks fractional coordinates")
	}
	if label < 0 && symbol < 0 {
		return nil, fmt.Errorf("atom site loop has neither labels nor type symbols")
	}

	sites := make([]Site, 0, len(loop.Rows))
	for i, row := range loop.Rows {
		site := Site{Occupancy: 1}
		if label >= 0 {
			site.Label = row[label]
		}

		source := site.Label
		if symbol >= 0 && !isMissing(row[symbol]) {
			source = row[symbol]
		}
		element, ok := ElementFromLabel(source)
		if !ok {
			return nil, fmt.Errorf("atom site %d: unknown element %q", i+1, source)
		}
		site.Symbol = element.Symbol
		site.Number = element.Number
		if site.Label == "" {
			site.Label = fmt.Sprintf("%s%d", element.Symbol, i+1)
		}

		var xyz [3]float64
		for k, c := range []int{fx, fy, fz} {
			v, err := ParseNumber(row[c])
			if err != nil {
				return nil, fmt.Errorf("atom site %s: invalid coordinate: %w", site.Label, err)
			}
			xyz[k] = v
		}
		site.Frac = geometry.NewVector3(xyz[0], xyz[1], xyz[2])

		if occupancy >= 0 && !isMissing(row[occupancy]) {
			v, err := ParseNumber(row[occupancy])
			if err != nil {
				return nil, fmt.Errorf("atom site %s: invalid occupancy: %w", site.Label, err)
			}
			site.Occupancy = v
		}

		sites = append(sites, site)
	}

	if len(sites) == 0 {
		return nil, ErrNoAtoms
	}
	return sites, nil
}

func isMissing(v string) bool {
	return v == "?" || v == "."
}

// ParseNumber parses a CIF number, dropping a standard uncertainty
// suffix such as the "(3)" in "5.4307(3)".
func ParseNumber(s string) (float64, error) {
	if i := strings.IndexByte(s, '('); i >= 0 {
		s = s[:i]
	}
	if isMissing(s) {
		return 0, fmt.Errorf("missing value %q", s)
	}
	return strconv.ParseFloat(s, 64)
}
