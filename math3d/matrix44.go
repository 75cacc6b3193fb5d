package math3d

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
)

// Matrix44 is a homogeneous 4x4 transform. Points are treated as column
// vectors, so in a.Mul(b) the transform b is applied first.
type Matrix44 struct {
	m mgl64.Mat4
}

var (
	Identity = Matrix44{mgl64.Ident4()}
)

// RotateX returns a rotation of the given number of degrees around the X axis.
// Only the Y and Z components of a point are affected.
func RotateX(deg float64) Matrix44 {
	return Matrix44{mgl64.HomogRotate3DX(Rad(deg))}
}

// RotateY returns a rotation of the given number of degrees around the Y axis.
func RotateY(deg float64) Matrix44 {
	return Matrix44{mgl64.HomogRotate3DY(Rad(deg))}
}

// RotateZ returns a rotation of the given number of degrees around the Z axis.
func RotateZ(deg float64) Matrix44 {
	return Matrix44{mgl64.HomogRotate3DZ(Rad(deg))}
}

// Translate returns a pure translation.
func Translate(x, y, z float64) Matrix44 {
	return Matrix44{mgl64.Translate3D(x, y, z)}
}

func (m Matrix44) String() string {
	e := m.Elements()
	return fmt.Sprintf(
		"&M44{%+.4f %+.4f %+.4f %+.4f | %+.4f %+.4f %+.4f %+.4f | %+.4f %+.4f %+.4f %+.4f | %+.4f %+.4f %+.4f %+.4f}",
		e[0][0], e[0][1], e[0][2], e[0][3],
		e[1][0], e[1][1], e[1][2], e[1][3],
		e[2][0], e[2][1], e[2][2], e[2][3],
		e[3][0], e[3][1], e[3][2], e[3][3])
}

// Elements returns the matrix as rows of float64s. This is pretty much only
// useful for dumping its contents and for tests.
func (m Matrix44) Elements() [4][4]float64 {
	var e [4][4]float64
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			e[r][c] = m.m.At(r, c)
		}
	}
	return e
}

// Mul returns the product m*o. Applied to a point, o acts first.
func (m Matrix44) Mul(o Matrix44) Matrix44 {
	return Matrix44{m.m.Mul4(o.m)}
}

// Inverse returns the inverse of the matrix.
func (m Matrix44) Inverse() Matrix44 {
	return Matrix44{m.m.Inv()}
}

// Translation returns the offset held in the fourth column.
func (m Matrix44) Translation() r3.Vector {
	return r3.Vector{X: m.m.At(0, 3), Y: m.m.At(1, 3), Z: m.m.At(2, 3)}
}

// TransformPoint applies the matrix to a point (with an implicit homogeneous
// coordinate of one), and drops the homogeneous coordinate of the result.
func TransformPoint(m Matrix44, p r3.Vector) r3.Vector {
	v := m.m.Mul4x1(mgl64.Vec4{p.X, p.Y, p.Z, 1})
	return r3.Vector{X: v[0], Y: v[1], Z: v[2]}
}

// TransformPath applies the matrix to every point of a path, and returns the
// result as a new slice. The input is left alone.
func TransformPath(m Matrix44, path []r3.Vector) []r3.Vector {
	out := make([]r3.Vector, len(path))
	for i, p := range path {
		out[i] = TransformPoint(m, p)
	}
	return out
}
