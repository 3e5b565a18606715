package kinematics

import "math"

// Mat4 is a 4x4 homogeneous transform stored row-major in a flat array,
// indexed as m[row*4+col].
type Mat4 [16]float64

// Identity returns the identity transform
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mul returns the matrix product a*b
func Mul(a, b Mat4) Mat4 {
	var c Mat4
	for r := 0; r < 4; r++ {
		for col := 0; col < 4; col++ {
			sum := 0.0
			for k := 0; k < 4; k++ {
				sum += a[r*4+k] * b[k*4+col]
			}
			c[r*4+col] = sum
		}
	}
	return c
}

// Translate returns a pure translation transform
func Translate(x, y, z float64) Mat4 {
	t := Identity()
	t[3] = x
	t[7] = y
	t[11] = z
	return t
}

// RotateY returns a rotation about the Y axis by rad radians.
// It rotates +X toward -Z; call sites negate the angle so a positive
// joint value lifts the arm toward +Z.
func RotateY(rad float64) Mat4 {
	c, s := math.Cos(rad), math.Sin(rad)
	return Mat4{
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// RotateZ returns a rotation about the Z axis by rad radians
func RotateZ(rad float64) Mat4 {
	c, s := math.Cos(rad), math.Sin(rad)
	return Mat4{
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Position extracts the translation column of the transform
func (m Mat4) Position() Vector3 {
	return Vector3{X: m[3], Y: m[7], Z: m[11]}
}
