package stlview

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Matrix is a row-major 4x4 transform. xRC is row R, column C.
type Matrix struct {
	x00, x01, x02, x03 float64
	x10, x11, x12, x13 float64
	x20, x21, x22, x23 float64
	x30, x31, x32, x33 float64
}

func Identity() Matrix {
	return Matrix{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1}
}

// mgl64 stores matrices column-major.
func matrixFromMat4(m mgl64.Mat4) Matrix {
	return Matrix{
		m.At(0, 0), m.At(0, 1), m.At(0, 2), m.At(0, 3),
		m.At(1, 0), m.At(1, 1), m.At(1, 2), m.At(1, 3),
		m.At(2, 0), m.At(2, 1), m.At(2, 2), m.At(2, 3),
		m.At(3, 0), m.At(3, 1), m.At(3, 2), m.At(3, 3)}
}

func Translate(v Vector) Matrix {
	return matrixFromMat4(mgl64.Translate3D(v.X, v.Y, v.Z))
}

func Scale(v Vector) Matrix {
	return matrixFromMat4(mgl64.Scale3D(v.X, v.Y, v.Z))
}

// Rotate builds a rotation of a radians about axis v.
func Rotate(v Vector, a float64) Matrix {
	return matrixFromMat4(mgl64.HomogRotate3D(a, v.Normalize().vec3()))
}

// LookAt is the view matrix of a camera at eye looking at center.
func LookAt(eye, center, up Vector) Matrix {
	return matrixFromMat4(mgl64.LookAtV(eye.vec3(), center.vec3(), up.vec3()))
}

// Perspective takes fovy in degrees.
func Perspective(fovy, aspect, near, far float64) Matrix {
	return matrixFromMat4(mgl64.Perspective(mgl64.DegToRad(fovy), aspect, near, far))
}

// Screen maps normalized device coordinates to pixel coordinates with y
// pointing down and depth in [0, 1].
func Screen(w, h int) Matrix {
	w2 := float64(w) / 2
	h2 := float64(h) / 2
	return Matrix{
		w2, 0, 0, w2,
		0, -h2, 0, h2,
		0, 0, 0.5, 0.5,
		0, 0, 0, 1,
	}
}

func (m Matrix) Translate(v Vector) Matrix {
	return Translate(v).Mul(m)
}

func (m Matrix) Scale(v Vector) Matrix {
	return Scale(v).Mul(m)
}

func (m Matrix) Rotate(v Vector, a float64) Matrix {
	return Rotate(v, a).Mul(m)
}

func (m Matrix) Perspective(fovy, aspect, near, far float64) Matrix {
	return Perspective(fovy, aspect, near, far).Mul(m)
}

func (a Matrix) Mul(b Matrix) Matrix {
	m := Matrix{}
	m.x00 = a.x00*b.x00 + a.x01*b.x10 + a.x02*b.x20 + a.x03*b.x30
	m.x10 = a.x10*b.x00 + a.x11*b.x10 + a.x12*b.x20 + a.x13*b.x30
	m.x20 = a.x20*b.x00 + a.x21*b.x10 + a.x22*b.x20 + a.x23*b.x30
	m.x30 = a.x30*b.x00 + a.x31*b.x10 + a.x32*b.x20 + a.x33*b.x30
	m.x01 = a.x00*b.x01 + a.x01*b.x11 + a.x02*b.x21 + a.x03*b.x31
	m.x11 = a.x10*b.x01 + a.x11*b.x11 + a.x12*b.x21 + a.x13*b.x31
	m.x21 = a.x20*b.x01 + a.x21*b.x11 + a.x22*b.x21 + a.x23*b.x31
	m.x31 = a.x30*b.x01 + a.x31*b.x11 + a.x32*b.x21 + a.x33*b.x31
	m.x02 = a.x00*b.x02 + a.x01*b.x12 + a.x02*b.x22 + a.x03*b.x32
	m.x12 = a.x10*b.x02 + a.x11*b.x12 + a.x12*b.x22 + a.x13*b.x32
	m.x22 = a.x20*b.x02 + a.x21*b.x12 + a.x22*b.x22 + a.x23*b.x32
	m.x32 = a.x30*b.x02 + a.x31*b.x12 + a.x32*b.x22 + a.x33*b.x32
	m.x03 = a.x00*b.x03 + a.x01*b.x13 + a.x02*b.x23 + a.x03*b.x33
	m.x13 = a.x10*b.x03 + a.x11*b.x13 + a.x12*b.x23 + a.x13*b.x33
	m.x23 = a.x20*b.x03 + a.x21*b.x13 + a.x22*b.x23 + a.x23*b.x33
	m.x33 = a.x30*b.x03 + a.x31*b.x13 + a.x32*b.x23 + a.x33*b.x33
	return m
}

func (a Matrix) MulPosition(b Vector) Vector {
	x := a.x00*b.X + a.x01*b.Y + a.x02*b.Z + a.x03
	y := a.x10*b.X + a.x11*b.Y + a.x12*b.Z + a.x13
	z := a.x20*b.X + a.x21*b.Y + a.x22*b.Z + a.x23
	return Vector{x, y, z}
}

func (a Matrix) MulPositionW(b Vector) VectorW {
	x := a.x00*b.X + a.x01*b.Y + a.x02*b.Z + a.x03
	y := a.x10*b.X + a.x11*b.Y + a.x12*b.Z + a.x13
	z := a.x20*b.X + a.x21*b.Y + a.x22*b.Z + a.x23
	w := a.x30*b.X + a.x31*b.Y + a.x32*b.Z + a.x33
	return VectorW{x, y, z, w}
}

func (a Matrix) MulDirection(b Vector) Vector {
	x := a.x00*b.X + a.x01*b.Y + a.x02*b.Z
	y := a.x10*b.X + a.x11*b.Y + a.x12*b.Z
	z := a.x20*b.X + a.x21*b.Y + a.x22*b.Z
	return Vector{x, y, z}.Normalize()
}

func (a Matrix) MulBox(box Box) Box {
	// http://dev.theomader.com/transform-bounding-boxes/
	r := Vector{a.x00, a.x10, a.x20}
	u := Vector{a.x01, a.x11, a.x21}
	b := Vector{a.x02, a.x12, a.x22}
	t := Vector{a.x03, a.x13, a.x23}
	xa := r.MulScalar(box.Min.X)
	xb := r.MulScalar(box.Max.X)
	ya := u.MulScalar(box.Min.Y)
	yb := u.MulScalar(box.Max.Y)
	za := b.MulScalar(box.Min.Z)
	zb := b.MulScalar(box.Max.Z)
	xa, xb = xa.Min(xb), xa.Max(xb)
	ya, yb = ya.Min(yb), ya.Max(yb)
	za, zb = za.Min(zb), za.Max(zb)
	min := xa.Add(ya).Add(za).Add(t)
	max := xb.Add(yb).Add(zb).Add(t)
	return Box{min, max}
}

func (a Matrix) Transpose() Matrix {
	return Matrix{
		a.x00, a.x10, a.x20, a.x30,
		a.x01, a.x11, a.x21, a.x31,
		a.x02, a.x12, a.x22, a.x32,
		a.x03, a.x13, a.x23, a.x33}
}

func (a Matrix) mat4() mgl64.Mat4 {
	return mgl64.Mat4{
		a.x00, a.x10, a.x20, a.x30,
		a.x01, a.x11, a.x21, a.x31,
		a.x02, a.x12, a.x22, a.x32,
		a.x03, a.x13, a.x23, a.x33}
}

func (a Matrix) Determinant() float64 {
	return a.mat4().Det()
}

// Inverse of a singular matrix is the zero matrix.
func (a Matrix) Inverse() Matrix {
	return matrixFromMat4(a.mat4().Inv())
}
