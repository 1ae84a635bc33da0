// Package ciftest holds small CIF documents shared by the tests of
// several packages.
package ciftest

import (
	"os"
	"path/filepath"
	"testing"
)

// Triclinic is a P -1 structure with two Si and two O sites.
// It expands to 7 atoms: Si1 x2, Si2 x2, O1 x2 and O2 x1 (O2 sits on an
// inversion centre).
const Triclinic = `# test structure
data_p-1_silicate
_cell_length_a    5.0000(2)
_cell_length_b    6.0000
_cell_length_c    7.0000
_cell_angle_alpha 90
_cell_angle_beta  100.5
_cell_angle_gamma 90
_symmetry_space_group_name_H-M 'P -1'
_symmetry_Int_Tables_number 2

loop_
_symmetry_equiv_pos_as_xyz
  'x, y, z'
  '-x, -y, -z'

loop_
_atom_site_label
_atom_site_type_symbol
_atom_site_fract_x
_atom_site_fract_y
_atom_site_fract_z
_atom_site_occupancy
Si1 Si4+ 0.1000 0.2000 0.3000 1.0
Si2 Si   0.3000 0.3000 0.1000 1.0
O1  O2-  0.2500 0.0000 0.1000 1.0
O2  O    0.5000 0.5000 0.5000 .
`

// TriclinicTags are the site tags of the expanded Triclinic cell
var TriclinicTags = []int{0, 0, 1, 1, 2, 2, 3}

// TriclinicNumbers are the atomic numbers of the expanded Triclinic cell
var TriclinicNumbers = []int{14, 14, 14, 14, 8, 8, 8}

// SingleSite is a P1 cell holding one atom; it cannot be colored by a
// mapper because every tag is equal.
const SingleSite = `data_single
_cell_length_a 3.0
_cell_length_b 3.0
_cell_length_c 3.0
loop_
_atom_site_label
_atom_site_fract_x
_atom_site_fract_y
_atom_site_fract_z
Cu1 0 0 0
`

// WriteFile writes content to name inside a temporary directory and
// returns the full path.
func WriteFile(t testing.TB, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}
