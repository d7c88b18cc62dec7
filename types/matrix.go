package types

import "golang.org/x/image/math/f32"

// A 4x4 matrix stored in row-major order. Vectors are treated as columns so
// that m.Mul4(n) applies n first in local space.
type Mat4 f32.Mat4

// Create an identity matrix.
func Ident4() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Create a translation matrix.
func Translate4(t Vec3) Mat4 {
	return Mat4{
		1, 0, 0, t[0],
		0, 1, 0, t[1],
		0, 0, 1, t[2],
		0, 0, 0, 1,
	}
}

// Create a scale matrix with per-axis factors.
func Scale4(s Vec3) Mat4 {
	return Mat4{
		s[0], 0, 0, 0,
		0, s[1], 0, 0,
		0, 0, s[2], 0,
		0, 0, 0, 1,
	}
}

// Create a matrix that scales by factor along an arbitrary axis. The axis is
// normalized first. AxisScale4(-1, axis) mirrors across the plane whose
// normal is axis.
func AxisScale4(factor float32, axis Vec3) Mat4 {
	n := axis.Normalize()
	k := factor - 1.0
	return Mat4{
		1 + k*n[0]*n[0], k*n[0]*n[1], k*n[0]*n[2], 0,
		k*n[1]*n[0], 1 + k*n[1]*n[1], k*n[1]*n[2], 0,
		k*n[2]*n[0], k*n[2]*n[1], 1 + k*n[2]*n[2], 0,
		0, 0, 0, 1,
	}
}

// Multiply two 4x4 matrices.
func (m Mat4) Mul4(m2 Mat4) Mat4 {
	var out Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[row*4+k] * m2[k*4+col]
			}
			out[row*4+col] = sum
		}
	}
	return out
}

// Transform a Vec4 by the matrix.
func (m Mat4) Mul4x1(v Vec4) Vec4 {
	return Vec4{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2] + m[3]*v[3],
		m[4]*v[0] + m[5]*v[1] + m[6]*v[2] + m[7]*v[3],
		m[8]*v[0] + m[9]*v[1] + m[10]*v[2] + m[11]*v[3],
		m[12]*v[0] + m[13]*v[1] + m[14]*v[2] + m[15]*v[3],
	}
}

// Flatten the matrix into a row-major float32 slice.
func (m Mat4) Floats() []float32 {
	out := make([]float32, 16)
	copy(out, m[:])
	return out
}
