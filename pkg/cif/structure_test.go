package cif_test

import (
	"bytes"
	"compress/gzip"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/colorcif/pkg/cif"
	"github.com/philipparndt/colorcif/pkg/cif/ciftest"
	"github.com/philipparndt/colorcif/pkg/geometry"
)

func TestParseTriclinic(t *testing.T) {
	s, err := cif.Parse(strings.NewReader(ciftest.Triclinic))
	require.NoError(t, err)

	assert.Equal(t, "p-1_silicate", s.Name)
	assert.Equal(t, "P -1", s.SpaceGroup)
	assert.Equal(t, 2, s.SpaceGroupNumber)
	assert.Equal(t, []string{"x, y, z", "-x, -y, -z"}, s.SymOps)

	expectedCell := geometry.CellParameters{A: 5, B: 6, C: 7, Alpha: 90, Beta: 100.5, Gamma: 90}
	if diff := cmp.Diff(expectedCell, s.Cell); diff != "" {
		t.Errorf("cell mismatch (-want +got):\n%s", diff)
	}

	expectedSites := []cif.Site{
		{Label: "Si1", Symbol: "Si", Number: 14, Frac: geometry.NewVector3(0.1, 0.2, 0.3), Occupancy: 1},
		{Label: "Si2", Symbol: "Si", Number: 14, Frac: geometry.NewVector3(0.3, 0.3, 0.1), Occupancy: 1},
		{Label: "O1", Symbol: "O", Number: 8, Frac: geometry.NewVector3(0.25, 0, 0.1), Occupancy: 1},
		{Label: "O2", Symbol: "O", Number: 8, Frac: geometry.NewVector3(0.5, 0.5, 0.5), Occupancy: 1},
	}
	if diff := cmp.Diff(expectedSites, s.Sites); diff != "" {
		t.Errorf("sites mismatch (-want +got):\n%s", diff)
	}
}

func TestParseDefaults(t *testing.T) {
	s, err := cif.Parse(strings.NewReader(ciftest.SingleSite))
	require.NoError(t, err)

	assert.Equal(t, []string{"x,y,z"}, s.SymOps)
	assert.Equal(t, 90.0, s.Cell.Alpha)
	require.Len(t, s.Sites, 1)
	assert.Equal(t, "Cu", s.Sites[0].Symbol)
	assert.Equal(t, 29, s.Sites[0].Number)
}

func TestParseQuotedAndTextFields(t *testing.T) {
	doc := `data_quoted
_publ_section_title
;
 A multi-line
 title with loop_ inside
;
_chemical_name_common "it's quoted"
_cell_length_a 1
_cell_length_b 1
_cell_length_c 1
loop_
_space_group_symop_operation_xyz
"x,y,z" # comment after value
'-x,-y,-z'
loop_
_atom_site_label
_atom_site_fract_x
_atom_site_fract_y
_atom_site_fract_z
'Na 1' 0.1 0.1 0.1
`
	s, err := cif.Parse(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, []string{"x,y,z", "-x,-y,-z"}, s.SymOps)
	require.Len(t, s.Sites, 1)
	assert.Equal(t, "Na 1", s.Sites[0].Label)
	assert.Equal(t, "Na", s.Sites[0].Symbol)
}

func TestParseOnlyFirstBlock(t *testing.T) {
	doc := ciftest.SingleSite + "\ndata_second\n_cell_length_a 9\n"

	s, err := cif.Parse(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, "single", s.Name)
	assert.Equal(t, 3.0, s.Cell.A)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		line int
	}{
		{"no block", "_cell_length_a 1\n", 0},
		{"unterminated quote", "data_x\n_title 'open\n", 2},
		{"unterminated text", "data_x\n_title\n;\nnever closed\n", 3},
		{"ragged loop", "data_x\nloop_\n_a\n_b\n1 2 3\n", 3},
		{"missing value", "data_x\n_cell_length_a\n_cell_length_b 2\n", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := cif.Parse(strings.NewReader(tt.doc))
			require.Error(t, err)

			var perr *cif.ParseError
			require.True(t, errors.As(err, &perr), "expected ParseError, got %T", err)
			assert.Equal(t, tt.line, perr.Line)
		})
	}
}

func TestParseNoAtoms(t *testing.T) {
	doc := "data_empty\n_cell_length_a 1\n_cell_length_b 1\n_cell_length_c 1\n"

	_, err := cif.Parse(strings.NewReader(doc))
	assert.ErrorIs(t, err, cif.ErrNoAtoms)
}

func TestParseNumber(t *testing.T) {
	v, err := cif.ParseNumber("5.4307(3)")
	require.NoError(t, err)
	assert.InDelta(t, 5.4307, v, 1e-12)

	_, err = cif.ParseNumber("?")
	assert.Error(t, err)
}

func TestReadFile(t *testing.T) {
	path := ciftest.WriteFile(t, "triclinic.cif", ciftest.Triclinic)

	s, err := cif.ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, s.Sites, 4)
}

func TestReadFileGzip(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(ciftest.Triclinic))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	path := filepath.Join(t.TempDir(), "triclinic.cif.gz")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	s, err := cif.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "p-1_silicate", s.Name)
}

func TestReadFileErrors(t *testing.T) {
	_, err := cif.ReadFile(filepath.Join(t.TempDir(), "missing.cif"))
	assert.Error(t, err)

	empty := ciftest.WriteFile(t, "empty.cif", "")
	_, err = cif.ReadFile(empty)
	assert.Error(t, err)
}

func TestElementFromLabel(t *testing.T) {
	tests := map[string]string{
		"Si4+": "Si",
		"O1":   "O",
		"O2-":  "O",
		"Ca2a": "Ca",
		"SI3":  "Si",
		"OW1":  "O",
		"Cs":   "Cs",
	}
	for label, symbol := range tests {
		e, ok := cif.ElementFromLabel(label)
		if assert.True(t, ok, label) {
			assert.Equal(t, symbol, e.Symbol, label)
		}
	}

	_, ok := cif.ElementFromLabel("123")
	assert.False(t, ok)
}

func TestElementByNumber(t *testing.T) {
	e, ok := cif.ElementByNumber(8)
	require.True(t, ok)
	assert.Equal(t, "O", e.Symbol)

	_, ok = cif.ElementByNumber(0)
	assert.False(t, ok)
	_, ok = cif.ElementByNumber(500)
	assert.False(t, ok)
}
