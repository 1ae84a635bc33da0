// Package symmetry expands an asymmetric unit with its space group
// operations and tags symmetry-equivalent atoms.
package symmetry

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/philipparndt/colorcif/pkg/geometry"
)

// Op is a symmetry operation x' = Rot*x + Trans on fractional coordinates
type Op struct {
	Rot   [3][3]float64
	Trans geometry.Vector3
}

// IdentityOp returns x,y,z
func IdentityOp() Op {
	return Op{Rot: [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}}
}

// Apply transforms a fractional position
func (o Op) Apply(v geometry.Vector3) geometry.Vector3 {
	return geometry.Vector3{
		X: o.Rot[0][0]*v.X + o.Rot[0][1]*v.Y + o.Rot[0][2]*v.Z + o.Trans.X,
		Y: o.Rot[1][0]*v.X + o.Rot[1][1]*v.Y + o.Rot[1][2]*v.Z + o.Trans.Y,
		Z: o.Rot[2][0]*v.X + o.Rot[2][1]*v.Y + o.Rot[2][2]*v.Z + o.Trans.Z,
	}
}

// ParseOp parses an operation in xyz notation, e.g. "-x+y, 1/2+z, -y".
func ParseOp(s string) (Op, error) {
	parts := strings.Split(strings.Join(strings.Fields(s), ""), ",")
	if len(parts) != 3 {
		return Op{}, fmt.Errorf("symmetry operation %q: expected 3 components, got %d", s, len(parts))
	}

	var op Op
	var trans [3]float64
	for row, part := range parts {
		if part == "" {
			return Op{}, fmt.Errorf("symmetry operation %q: empty component", s)
		}
		if err := parseComponent(strings.ToLower(part), &op.Rot[row], &trans[row]); err != nil {
			return Op{}, fmt.Errorf("symmetry operation %q: %w", s, err)
		}
	}
	op.Trans = geometry.NewVector3(trans[0], trans[1], trans[2])

	return op, nil
}

// ParseOps parses a list of operations
func ParseOps(ss []string) ([]Op, error) {
	ops := make([]Op, 0, len(ss))
	for _, s := range ss {
		op, err := ParseOp(s)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	if len(ops) == 0 {
		ops = append(ops, IdentityOp())
	}
	return ops, nil
}

// parseComponent reads terms like "-x", "+1/2", "2y" or "0.25" of one row
func parseComponent(s string, rot *[3]float64, trans *float64) error {
	i := 0
	for i < len(s) {
		sign := 1.0
		if s[i] == '+' || s[i] == '-' {
			if s[i] == '-' {
				sign = -1
			}
			i++
		}

		start := i
		for i < len(s) && strings.IndexByte("0123456789./", s[i]) >= 0 {
			i++
		}
		number := s[start:i]

		if i < len(s) && strings.IndexByte("xyz", s[i]) >= 0 {
			coef := 1.0
			if number != "" {
				v, err := parseFraction(number)
				if err != nil {
					return err
				}
				coef = v
			}
			rot[s[i]-'x'] += sign * coef
			i++
			continue
		}

		if number == "" {
			return fmt.Errorf("unexpected %q in %q", s[i:], s)
		}
		v, err := parseFraction(number)
		if err != nil {
			return err
		}
		*trans += sign * v
	}
	return nil
}

func parseFraction(s string) (float64, error) {
	if num, den, ok := strings.Cut(s, "/"); ok {
		n, err := strconv.ParseFloat(num, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid number %q", s)
		}
		d, err := strconv.ParseFloat(den, 64)
		if err != nil || d == 0 {
			return 0, fmt.Errorf("invalid fraction %q", s)
		}
		return n / d, nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return v, nil
}
