package geometry

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Matrix3 is a 3x3 matrix acting on row vectors (v' = v * M)
type Matrix3 [3][3]float64

// Identity returns the identity matrix
func Identity() Matrix3 {
	return Matrix3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// Mul returns m * other
func (m Matrix3) Mul(other Matrix3) Matrix3 {
	var result Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				result[i][j] += m[i][k] * other[k][j]
			}
		}
	}
	return result
}

// Apply transforms a row vector by the matrix
func (m Matrix3) Apply(v Vector3) Vector3 {
	return Vector3{
		X: v.X*m[0][0] + v.Y*m[1][0] + v.Z*m[2][0],
		Y: v.X*m[0][1] + v.Y*m[1][1] + v.Z*m[2][1],
		Z: v.X*m[0][2] + v.Y*m[1][2] + v.Z*m[2][2],
	}
}

// AxisRotation returns the rotation by angle degrees around an axis (0=X, 1=Y, 2=Z)
func AxisRotation(axis int, degrees float64) Matrix3 {
	a := degrees * math.Pi / 180
	s, c := math.Sin(a), math.Cos(a)

	switch axis {
	case 0:
		return Matrix3{{1, 0, 0}, {0, c, s}, {0, -s, c}}
	case 1:
		return Matrix3{{c, 0, -s}, {0, 1, 0}, {s, 0, c}}
	default:
		return Matrix3{{c, s, 0}, {-s, c, 0}, {0, 0, 1}}
	}
}

// ParseRotation parses a rotation string like "10x,-20y,0z".
// Rotations are applied in the order given.
func ParseRotation(s string) (Matrix3, error) {
	rotation := Identity()

	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		axis := strings.IndexByte("xyz", strings.ToLower(part[len(part)-1:])[0])
		if axis < 0 {
			return Identity(), fmt.Errorf("invalid rotation %q: axis must be x, y or z", part)
		}

		angle, err := strconv.ParseFloat(strings.TrimSpace(part[:len(part)-1]), 64)
		if err != nil {
			return Identity(), fmt.Errorf("invalid rotation angle %q: %w", part, err)
		}

		rotation = rotation.Mul(AxisRotation(axis, angle))
	}

	return rotation, nil
}
