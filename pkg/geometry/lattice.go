package geometry

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// CellParameters holds the six unit cell parameters (lengths in Å, angles in degrees)
type CellParameters struct {
	A, B, C            float64
	Alpha, Beta, Gamma float64
}

// Lattice converts between fractional and cartesian coordinates.
// Rows of the matrix are the cell vectors a, b and c.
type Lattice struct {
	m   *mat.Dense
	inv *mat.Dense
}

// cosDeg avoids the 6e-17 residue of cos(90°)
func cosDeg(deg float64) float64 {
	if deg == 90 {
		return 0
	}
	return math.Cos(deg * math.Pi / 180)
}

// NewLattice builds the cell matrix with a along x and b in the xy plane
func NewLattice(p CellParameters) (*Lattice, error) {
	if p.A <= 0 || p.B <= 0 || p.C <= 0 {
		return nil, fmt.Errorf("invalid cell lengths: %.4f %.4f %.4f", p.A, p.B, p.C)
	}

	ca, cb, cg := cosDeg(p.Alpha), cosDeg(p.Beta), cosDeg(p.Gamma)
	sg := math.Sin(p.Gamma * math.Pi / 180)
	if math.Abs(sg) < 1e-10 {
		return nil, fmt.Errorf("invalid cell angle gamma: %.4f", p.Gamma)
	}

	cy := (ca - cb*cg) / sg
	cz2 := 1 - cb*cb - cy*cy
	if cz2 <= 0 {
		return nil, fmt.Errorf("cell angles %.4f %.4f %.4f do not form a valid cell", p.Alpha, p.Beta, p.Gamma)
	}

	m := mat.NewDense(3, 3, []float64{
		p.A, 0, 0,
		p.B * cg, p.B * sg, 0,
		p.C * cb, p.C * cy, p.C * math.Sqrt(cz2),
	})

	return newLatticeFromMatrix(m)
}

// NewLatticeFromVectors builds a lattice from explicit cell vectors
func NewLatticeFromVectors(a, b, c Vector3) (*Lattice, error) {
	m := mat.NewDense(3, 3, []float64{
		a.X, a.Y, a.Z,
		b.X, b.Y, b.Z,
		c.X, c.Y, c.Z,
	})
	return newLatticeFromMatrix(m)
}

func newLatticeFromMatrix(m *mat.Dense) (*Lattice, error) {
	var inv mat.Dense
	if err := inv.Inverse(m); err != nil {
		return nil, fmt.Errorf("singular cell matrix: %w", err)
	}
	return &Lattice{m: m, inv: &inv}, nil
}

// Vectors returns the cell vectors a, b and c
func (l *Lattice) Vectors() [3]Vector3 {
	var vs [3]Vector3
	for i := 0; i < 3; i++ {
		vs[i] = NewVector3(l.m.At(i, 0), l.m.At(i, 1), l.m.At(i, 2))
	}
	return vs
}

// Volume returns the unit cell volume
func (l *Lattice) Volume() float64 {
	return math.Abs(mat.Det(l.m))
}

// ToCartesian converts a fractional position to cartesian coordinates
func (l *Lattice) ToCartesian(frac Vector3) Vector3 {
	return mulRow(l.m, frac)
}

// ToFractional converts a cartesian position to fractional coordinates
func (l *Lattice) ToFractional(cart Vector3) Vector3 {
	return mulRow(l.inv, cart)
}

// Corners returns the eight corners of the unit cell in cartesian coordinates,
// indexed by the bit pattern (a, b, c) of the fractional corner.
func (l *Lattice) Corners() [8]Vector3 {
	var corners [8]Vector3
	for i := 0; i < 8; i++ {
		frac := NewVector3(float64(i&1), float64(i>>1&1), float64(i>>2&1))
		corners[i] = l.ToCartesian(frac)
	}
	return corners
}

// Edges returns the twelve unit cell edges as pairs of corner indices
func Edges() [12][2]int {
	return [12][2]int{
		{0, 1}, {2, 3}, {4, 5}, {6, 7}, // along a
		{0, 2}, {1, 3}, {4, 6}, {5, 7}, // along b
		{0, 4}, {1, 5}, {2, 6}, {3, 7}, // along c
	}
}

// mulRow computes the row vector product v * m
func mulRow(m *mat.Dense, v Vector3) Vector3 {
	x := mat.NewVecDense(3, []float64{v.X, v.Y, v.Z})
	var out mat.VecDense
	out.MulVec(m.T(), x)
	return NewVector3(out.AtVec(0), out.AtVec(1), out.AtVec(2))
}
