package kinmath

import (
	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/mat"

	"go.viam.com/screwkin/spatialmath"
)

// Adjoint returns the 6x6 adjoint of t, [[R, 0], [skew(p) R, R]], which maps an angular-first screw
// expressed in the frame of t into the parent frame.
func Adjoint(t Transform) *mat.Dense {
	rot := t.Mat.Mat3()
	ad := mat.NewDense(6, 6, nil)
	setBlock(ad, 0, 0, rot)
	setBlock(ad, 3, 0, spatialmath.Skew(t.Translation()).Mul3(rot))
	setBlock(ad, 3, 3, rot)
	return ad
}

// AdjointInverse returns [[R^T, 0], [-R^T skew(p), R^T]], the adjoint of the inverse of t. It maps a
// screw expressed in the parent frame into the frame of t.
func AdjointInverse(t Transform) *mat.Dense {
	rt := t.Mat.Mat3().Transpose()
	ad := mat.NewDense(6, 6, nil)
	setBlock(ad, 0, 0, rt)
	setBlock(ad, 3, 0, rt.Mul3(spatialmath.Skew(t.Translation())).Mul(-1))
	setBlock(ad, 3, 3, rt)
	return ad
}

func setBlock(dst *mat.Dense, row, col int, m mgl64.Mat3) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			dst.Set(row+i, col+j, m.At(i, j))
		}
	}
}
