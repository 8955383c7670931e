package gltypes

import "github.com/chewxy/math32"

// Matrix is a 4x4 transformation in row-vector convention.
type Matrix [4][4]float32

// Identity returns the identity matrix.
func Identity() Matrix {
	return Matrix{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Translate creates a translation matrix.
func Translate(x, y, z float32) Matrix {
	m := Identity()
	m[3][0], m[3][1], m[3][2] = x, y, z
	return m
}

// Scale creates a scaling matrix.
func Scale(x, y, z float32) Matrix {
	return Matrix{
		{x, 0, 0, 0},
		{0, y, 0, 0},
		{0, 0, z, 0},
		{0, 0, 0, 1},
	}
}

// Rotate creates a rotation of rad radians about axis.
// An unknown axis yields the identity.
func Rotate(rad float32, axis Axis) Matrix {
	s, c := math32.Sin(rad), math32.Cos(rad)
	m := Identity()
	switch axis.Normalize() {
	case AxisX:
		m[1][1], m[1][2] = c, s
		m[2][1], m[2][2] = -s, c
	case AxisY:
		m[0][0], m[0][2] = c, -s
		m[2][0], m[2][2] = s, c
	case AxisZ:
		m[0][0], m[0][1] = c, s
		m[1][0], m[1][1] = -s, c
	}
	return m
}

// Ortho creates a parallel projection.
func Ortho(left, right, bottom, top, near, far float32) Matrix {
	m := Identity()
	m[0][0] = 2 / (right - left)
	m[1][1] = 2 / (top - bottom)
	m[2][2] = -2 / (far - near)
	m[3][0] = -(right + left) / (right - left)
	m[3][1] = -(top + bottom) / (top - bottom)
	m[3][2] = -(far + near) / (far - near)
	return m
}

// Ortho2 creates a two dimensional parallel projection with the legacy
// depth range of [-1, 1].
func Ortho2(left, right, bottom, top float32) Matrix {
	return Ortho(left, right, bottom, top, -1, 1)
}

// Perspective creates a perspective projection from a vertical field of
// view, an aspect ratio and the near and far clipping distances.
func Perspective(fovy Angle, aspect, near, far float32) Matrix {
	f := 1 / math32.Tan(fovy.Radians()/2)
	var m Matrix
	m[0][0] = f / aspect
	m[1][1] = f
	m[2][2] = (far + near) / (near - far)
	m[2][3] = -1
	m[3][2] = 2 * far * near / (near - far)
	return m
}

// Window creates a perspective projection from a viewing frustum.
func Window(left, right, bottom, top, near, far float32) Matrix {
	var m Matrix
	m[0][0] = 2 * near / (right - left)
	m[1][1] = 2 * near / (top - bottom)
	m[2][0] = (right + left) / (right - left)
	m[2][1] = (top + bottom) / (top - bottom)
	m[2][2] = -(far + near) / (far - near)
	m[2][3] = -1
	m[3][2] = -2 * far * near / (far - near)
	return m
}

// Polarview places the viewer in polar coordinates around the origin.
func Polarview(dist float32, azim, inc, twist Angle) Matrix {
	m := Rotate(-azim.Radians(), AxisZ)
	m = m.Mul(Rotate(-inc.Radians(), AxisX))
	m = m.Mul(Rotate(-twist.Radians(), AxisZ))
	return m.Mul(Translate(0, 0, -dist))
}

// Lookat places the viewer at (vx, vy, vz) looking at (px, py, pz), rotated
// by twist about the line of sight.
func Lookat(vx, vy, vz, px, py, pz float32, twist Angle) Matrix {
	fwd := normalize(Vec3{px - vx, py - vy, pz - vz})
	up := Vec3{0, 1, 0}
	if math32.Abs(fwd[1]) > 0.999 {
		up = Vec3{0, 0, -1}
	}
	side := normalize(cross(fwd, up))
	up = cross(side, fwd)

	view := Matrix{
		{side[0], up[0], -fwd[0], 0},
		{side[1], up[1], -fwd[1], 0},
		{side[2], up[2], -fwd[2], 0},
		{0, 0, 0, 1},
	}
	return Translate(-vx, -vy, -vz).Mul(view).Mul(Rotate(-twist.Radians(), AxisZ))
}

// Mul returns m * other. Applied to a row vector, m takes effect first.
func (m Matrix) Mul(other Matrix) Matrix {
	var r Matrix
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			r[i][j] = m[i][0]*other[0][j] + m[i][1]*other[1][j] +
				m[i][2]*other[2][j] + m[i][3]*other[3][j]
		}
	}
	return r
}

// Transform applies m to the row vector v.
func (m Matrix) Transform(v Vec4) Vec4 {
	var r Vec4
	for j := 0; j < 4; j++ {
		r[j] = v[0]*m[0][j] + v[1]*m[1][j] + v[2]*m[2][j] + v[3]*m[3][j]
	}
	return r
}

// Transpose returns the transpose of m.
func (m Matrix) Transpose() Matrix {
	var r Matrix
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			r[i][j] = m[j][i]
		}
	}
	return r
}

// Floats returns the sixteen entries in memory order.
func (m Matrix) Floats() [16]float32 {
	var f [16]float32
	for i := 0; i < 4; i++ {
		copy(f[i*4:], m[i][:])
	}
	return f
}

// IsIdentity reports whether m is exactly the identity.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}

func cross(a, b Vec3) Vec3 {
	return Vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func normalize(v Vec3) Vec3 {
	l := math32.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
	if l == 0 {
		return v
	}
	return Vec3{v[0] / l, v[1] / l, v[2] / l}
}
