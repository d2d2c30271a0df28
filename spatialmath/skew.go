package spatialmath

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
)

// Skew returns the skew-symmetric matrix [v] such that [v]w = v x w.
func Skew(v r3.Vector) mgl64.Mat3 {
	var m mgl64.Mat3
	m.Set(0, 1, -v.Z)
	m.Set(0, 2, v.Y)
	m.Set(1, 0, v.Z)
	m.Set(1, 2, -v.X)
	m.Set(2, 0, -v.Y)
	m.Set(2, 1, v.X)
	return m
}

// SkewDense returns the cross product with point p matrix as a gonum matrix.
func SkewDense(p r3.Vector) *mat.Dense {
	cross := mat.NewDense(3, 3, nil)
	cross.Set(0, 1, -p.Z)
	cross.Set(0, 2, p.Y)
	cross.Set(1, 0, p.Z)
	cross.Set(1, 2, -p.X)
	cross.Set(2, 0, -p.Y)
	cross.Set(2, 1, p.X)
	return cross
}

// Unskew is the inverse of Skew. Only the lower triangle of m is read, so the
// result is exact for a skew-symmetric input.
func Unskew(m mgl64.Mat3) r3.Vector {
	return r3.Vector{X: m.At(2, 1), Y: m.At(0, 2), Z: m.At(1, 0)}
}
