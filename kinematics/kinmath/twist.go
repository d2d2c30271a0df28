package kinmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"

	"go.viam.com/screwkin/kinematics/kinmath/spatial"
	"go.viam.com/screwkin/spatialmath"
	"go.viam.com/screwkin/utils"
)

// Below this angular magnitude a twist is exponentiated as a pure translation.
const expEpsilon = 1e-12

// TwistMatrix returns the se(3) matrix of a screw: [[skew(w), v], [0, 0]].
func TwistMatrix(s spatial.MotionVector) mgl64.Mat4 {
	m := spatialmath.Skew(s.Angular).Mat4()
	m.SetCol(3, mgl64.Vec4{s.Linear.X, s.Linear.Y, s.Linear.Z, 0})
	return m
}

// TwistFromMatrix is the inverse of TwistMatrix.
func TwistFromMatrix(m mgl64.Mat4) spatial.MotionVector {
	return spatial.MotionVector{
		Angular: spatialmath.Unskew(m.Mat3()),
		Linear:  r3.Vector{X: m.At(0, 3), Y: m.At(1, 3), Z: m.At(2, 3)},
	}
}

// ExpTwist returns exp(m) for an se(3) matrix m, which is usually a TwistMatrix already scaled by
// the joint value. The closed form is used:
//
//	R = I + sin(t)[w] + (1 - cos(t))[w]^2
//	p = (I t + (1 - cos(t))[w] + (t - sin(t))[w]^2) v
//
// with t = |w| and w, v divided by t. A twist with no rotation gives [[I, v], [0, 1]].
func ExpTwist(m mgl64.Mat4) mgl64.Mat4 {
	tw := TwistFromMatrix(m)
	theta := tw.Angular.Norm()
	if theta < expEpsilon {
		return mgl64.Translate3D(tw.Linear.X, tw.Linear.Y, tw.Linear.Z)
	}

	k := spatialmath.Skew(tw.Angular.Mul(1 / theta))
	k2 := k.Mul3(k)
	s, c := math.Sincos(theta)
	rot := mgl64.Ident3().Add(k.Mul(s)).Add(k2.Mul(1 - c))
	g := mgl64.Ident3().Mul(theta).Add(k.Mul(1 - c)).Add(k2.Mul(theta - s))
	v := tw.Linear.Mul(1 / theta)
	p := g.Mul3x1(mgl64.Vec3{v.X, v.Y, v.Z})

	out := rot.Mat4()
	out.SetCol(3, p.Vec4(1))
	return out
}

// ExpScrew returns exp([S] theta) as a Transform.
func ExpScrew(s spatial.MotionVector, theta float64) Transform {
	return Transform{ExpTwist(TwistMatrix(s).Mul(theta))}
}

// ExpDense is the general dense matrix exponential, computed by gonum with a Pade approximant
// and scaling and squaring. It accepts any square matrix.
func ExpDense(a mat.Matrix) (*mat.Dense, error) {
	r, c := a.Dims()
	if r != c || r == 0 {
		return nil, utils.NewInvalidArgumentError("matrix exponential needs a square matrix, got %dx%d", r, c)
	}
	var m mat.Dense
	m.Exp(a)
	return &m, nil
}
