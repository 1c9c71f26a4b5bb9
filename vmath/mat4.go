package vmath

import "math"

// Mat4 is a 4x4 homogeneous transformation matrix in row-major order:
//
//	| m0  m1  m2  m3  |
//	| m4  m5  m6  m7  |
//	| m8  m9  m10 m11 |
//	| m12 m13 m14 m15 |
//
// Points are column vectors, so translation lives in m3, m7 and m11.
type Mat4 [16]float64

// Identity returns the identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translate creates a translation matrix.
func Translate(v Vec3) Mat4 {
	m := Identity()
	m[3], m[7], m[11] = v.X, v.Y, v.Z
	return m
}

// Scale creates a uniform scaling matrix.
func Scale(s float64) Mat4 {
	return ScaleXYZ(s, s, s)
}

// ScaleXYZ creates a per-axis scaling matrix.
func ScaleXYZ(x, y, z float64) Mat4 {
	m := Identity()
	m[0], m[5], m[10] = x, y, z
	return m
}

// RotateX creates a rotation about the X axis (angle in radians).
func RotateX(angle float64) Mat4 {
	s, c := math.Sincos(angle)
	return Mat4{
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1,
	}
}

// RotateY creates a rotation about the Y axis (angle in radians).
func RotateY(angle float64) Mat4 {
	s, c := math.Sincos(angle)
	return Mat4{
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// RotateZ creates a rotation about the Z axis (angle in radians).
func RotateZ(angle float64) Mat4 {
	s, c := math.Sincos(angle)
	return Mat4{
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// RotateDegrees creates the rotation Rz·Ry·Rx for angles given in degrees,
// so X is applied first.
func RotateDegrees(x, y, z float64) Mat4 {
	return RotateZ(Radians(z)).Multiply(RotateY(Radians(y))).Multiply(RotateX(Radians(x)))
}

// RotateAxis creates a rotation of angle radians about an arbitrary axis.
// A zero axis yields the identity.
func RotateAxis(axis Vec3, angle float64) Mat4 {
	a := axis.Normalize()
	if a == (Vec3{}) {
		return Identity()
	}
	s, c := math.Sincos(angle)
	t := 1 - c
	return Mat4{
		t*a.X*a.X + c, t*a.X*a.Y - s*a.Z, t*a.X*a.Z + s*a.Y, 0,
		t*a.X*a.Y + s*a.Z, t*a.Y*a.Y + c, t*a.Y*a.Z - s*a.X, 0,
		t*a.X*a.Z - s*a.Y, t*a.Y*a.Z + s*a.X, t*a.Z*a.Z + c, 0,
		0, 0, 0, 1,
	}
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// About returns m applied about the fixed point k: T(k) * m * T(-k).
func About(k Vec3, m Mat4) Mat4 {
	return Translate(k).Multiply(m).Multiply(Translate(k.Neg()))
}

// Multiply returns m * o. Applied to a point, o acts first.
func (m Mat4) Multiply(o Mat4) Mat4 {
	var r Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += m[i*4+k] * o[k*4+j]
			}
			r[i*4+j] = sum
		}
	}
	return r
}

// TransformPoint applies m to p with w=1, dividing by the resulting w when
// it is neither zero nor one.
func (m Mat4) TransformPoint(p Vec3) Vec3 {
	x := m[0]*p.X + m[1]*p.Y + m[2]*p.Z + m[3]
	y := m[4]*p.X + m[5]*p.Y + m[6]*p.Z + m[7]
	z := m[8]*p.X + m[9]*p.Y + m[10]*p.Z + m[11]
	w := m[12]*p.X + m[13]*p.Y + m[14]*p.Z + m[15]
	if w != 0 && w != 1 {
		inv := 1 / w
		x, y, z = x*inv, y*inv, z*inv
	}
	return Vec3{X: x, Y: y, Z: z}
}

// TransformVector applies only the upper 3x3 part of m.
func (m Mat4) TransformVector(v Vec3) Vec3 {
	return Vec3{
		X: m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		Y: m[4]*v.X + m[5]*v.Y + m[6]*v.Z,
		Z: m[8]*v.X + m[9]*v.Y + m[10]*v.Z,
	}
}

// Translation returns the translation column.
func (m Mat4) Translation() Vec3 {
	return Vec3{X: m[3], Y: m[7], Z: m[11]}
}

// Transpose returns the transposed matrix.
func (m Mat4) Transpose() Mat4 {
	var r Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			r[j*4+i] = m[i*4+j]
		}
	}
	return r
}

// Determinant returns the determinant of m.
func (m Mat4) Determinant() float64 {
	_, det := m.invert()
	return det
}

// Invert returns the inverse of m.
// If m is singular, the identity matrix is returned.
func (m Mat4) Invert() Mat4 {
	inv, det := m.invert()
	if det == 0 {
		return Identity()
	}
	return inv
}

// invert runs Gauss-Jordan elimination with partial pivoting and returns
// the inverse together with the determinant.
func (m Mat4) invert() (Mat4, float64) {
	a := m
	inv := Identity()
	det := 1.0
	for col := 0; col < 4; col++ {
		pivot := col
		for r := col + 1; r < 4; r++ {
			if math.Abs(a[r*4+col]) > math.Abs(a[pivot*4+col]) {
				pivot = r
			}
		}
		if math.Abs(a[pivot*4+col]) < 1e-300 {
			return Identity(), 0
		}
		if pivot != col {
			for k := 0; k < 4; k++ {
				a[col*4+k], a[pivot*4+k] = a[pivot*4+k], a[col*4+k]
				inv[col*4+k], inv[pivot*4+k] = inv[pivot*4+k], inv[col*4+k]
			}
			det = -det
		}
		p := a[col*4+col]
		det *= p
		for k := 0; k < 4; k++ {
			a[col*4+k] /= p
			inv[col*4+k] /= p
		}
		for r := 0; r < 4; r++ {
			if r == col {
				continue
			}
			f := a[r*4+col]
			if f == 0 {
				continue
			}
			for k := 0; k < 4; k++ {
				a[r*4+k] -= f * a[col*4+k]
				inv[r*4+k] -= f * inv[col*4+k]
			}
		}
	}
	return inv, det
}

// IsIdentity reports whether m is the identity within Epsilon.
func (m Mat4) IsIdentity() bool {
	return m.ApproxEqual(Identity(), Epsilon)
}

// ApproxEqual reports whether every element of m and o differs by at most eps.
func (m Mat4) ApproxEqual(o Mat4, eps float64) bool {
	for i := range m {
		if math.Abs(m[i]-o[i]) > eps {
			return false
		}
	}
	return true
}
