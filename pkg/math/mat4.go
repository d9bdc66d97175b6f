package math

import "math"

// Mat4 is a 4x4 matrix in column-major order (OpenGL compatible).
// Layout: [m0 m4 m8  m12]
//
//	[m1 m5 m9  m13]
//	[m2 m6 m10 m14]
//	[m3 m7 m11 m15]
type Mat4 [16]float32

// Radians converts degrees to radians. All angle parameters in this
// package are degrees, matching the camera's yaw/pitch convention.
func Radians(deg float32) float32 {
	return deg * math.Pi / 180
}

// Identity returns an identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// FromRows builds a matrix from 16 coefficients given in row-major reading
// order. They are stored transposed so that m.Mul and TransformPoint follow
// the standard column-vector convention.
func FromRows(r [16]float32) Mat4 {
	var m Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			m[col*4+row] = r[row*4+col]
		}
	}
	return m
}

// LookAt returns the view matrix for a camera at eye looking toward target.
// The camera basis is dir = normalize(eye - target) (the camera looks down
// -dir), right = normalize(up x dir), camUp = dir x right. The basis vectors
// form the first three rows; the fourth column is the eye projected onto the
// basis, negated.
func LookAt(eye, target, up Vec3) Mat4 {
	dir := eye.Sub(target).Normalize()
	right := up.Cross(dir).Normalize()
	camUp := dir.Cross(right)

	return Mat4{
		right.X, camUp.X, dir.X, 0,
		right.Y, camUp.Y, dir.Y, 0,
		right.Z, camUp.Z, dir.Z, 0,
		-right.Mul(eye).Sum(), -camUp.Mul(eye).Sum(), -dir.Mul(eye).Sum(), 1,
	}
}

// Perspective returns a perspective projection matrix. fovX is the
// *horizontal* field of view in degrees; the vertical extent is derived from
// the aspect ratio (width/height). Points on the near plane map to z = -1
// after the perspective divide, points on the far plane to z = +1.
func Perspective(fovX, aspect, near, far float32) Mat4 {
	tangent := float32(math.Tan(float64(Radians(fovX)) / 2))
	right := near * tangent
	top := right / aspect

	return Mat4{
		near / right, 0, 0, 0,
		0, near / top, 0, 0,
		0, 0, (far + near) / (near - far), -1,
		0, 0, 2 * far * near / (near - far), 0,
	}
}

// Translate accumulates the deltas into the translation column in place.
// It composes only with prior translations, not with rotation or scale
// already present in the matrix.
func (m *Mat4) Translate(dx, dy, dz float32) {
	m[12] += dx
	m[13] += dy
	m[14] += dz
}

// RotateX applies a rotation about the X axis in place by scaling the two
// diagonal cells of the (y,z) block and overwriting the off-diagonal cells.
// This is not a general composition: it is only meaningful on a matrix that
// is identity, a pure scale, or a pure translation. Use RotationX and Mul
// for true composition.
func (m *Mat4) RotateX(deg float32) {
	c := float32(math.Cos(float64(Radians(deg))))
	s := float32(math.Sin(float64(Radians(deg))))
	m[5] *= c
	m[10] *= c
	m[6] = s
	m[9] = -s
}

// RotateY applies a rotation about the Y axis in place. Same restricted
// semantics as RotateX.
func (m *Mat4) RotateY(deg float32) {
	c := float32(math.Cos(float64(Radians(deg))))
	s := float32(math.Sin(float64(Radians(deg))))
	m[0] *= c
	m[10] *= c
	m[8] = s
	m[2] = -s
}

// RotateZ applies a rotation about the Z axis in place. Same restricted
// semantics as RotateX.
func (m *Mat4) RotateZ(deg float32) {
	c := float32(math.Cos(float64(Radians(deg))))
	s := float32(math.Sin(float64(Radians(deg))))
	m[0] *= c
	m[5] *= c
	m[1] = s
	m[4] = -s
}

// RotationX returns a rotation matrix about the X axis.
func RotationX(deg float32) Mat4 {
	c := float32(math.Cos(float64(Radians(deg))))
	s := float32(math.Sin(float64(Radians(deg))))

	return Mat4{
		1, 0, 0, 0,
		0, c, s, 0,
		0, -s, c, 0,
		0, 0, 0, 1,
	}
}

// RotationY returns a rotation matrix about the Y axis.
func RotationY(deg float32) Mat4 {
	c := float32(math.Cos(float64(Radians(deg))))
	s := float32(math.Sin(float64(Radians(deg))))

	return Mat4{
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// RotationZ returns a rotation matrix about the Z axis.
func RotationZ(deg float32) Mat4 {
	c := float32(math.Cos(float64(Radians(deg))))
	s := float32(math.Sin(float64(Radians(deg))))

	return Mat4{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translation returns a translation matrix.
func Translation(x, y, z float32) Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		x, y, z, 1,
	}
}

// Scaling returns a scale matrix.
func Scaling(x, y, z float32) Mat4 {
	return Mat4{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	}
}

// Mul multiplies this matrix by another (m * other).
func (m Mat4) Mul(other Mat4) Mat4 {
	var result Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			result[col*4+row] =
				m[0*4+row]*other[col*4+0] +
					m[1*4+row]*other[col*4+1] +
					m[2*4+row]*other[col*4+2] +
					m[3*4+row]*other[col*4+3]
		}
	}
	return result
}

// TransformPoint transforms a point by this matrix (w=1) and applies the
// perspective divide when w comes out non-trivial.
func (m Mat4) TransformPoint(p Vec3) Vec3 {
	x := m[0]*p.X + m[4]*p.Y + m[8]*p.Z + m[12]
	y := m[1]*p.X + m[5]*p.Y + m[9]*p.Z + m[13]
	z := m[2]*p.X + m[6]*p.Y + m[10]*p.Z + m[14]
	w := m[3]*p.X + m[7]*p.Y + m[11]*p.Z + m[15]
	if w != 0 && w != 1 {
		return Vec3{x / w, y / w, z / w}
	}
	return Vec3{x, y, z}
}

// Ptr returns a pointer to the first element (for OpenGL uniform calls).
func (m *Mat4) Ptr() *float32 {
	return &m[0]
}
