package kinmath

import (
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/dualquat"
	"gonum.org/v1/gonum/num/quat"

	"go.viam.com/screwkin/spatialmath"
)

// DualQuat returns the unit dual quaternion of t. The real part is the rotation and the dual part is
// 0.5 * p * real, with p the translation as a pure quaternion.
func (t Transform) DualQuat() dualquat.Number {
	r := t.Rotation().Quaternion()
	p := t.Translation()
	tq := quat.Number{Imag: p.X, Jmag: p.Y, Kmag: p.Z}
	return dualquat.Number{Real: r, Dual: quat.Scale(0.5, quat.Mul(tq, r))}
}

// NewTransformFromDualQuat is the inverse of DualQuat. The real part is normalized.
func NewTransformFromDualQuat(dq dualquat.Number) Transform {
	norm := quat.Abs(dq.Real)
	rot := quat.Scale(1/norm, dq.Real)
	dual := quat.Scale(1/norm, dq.Dual)
	// the dual part times the conjugate of the real part is 0.5 * p
	p := quat.Scale(2, quat.Mul(dual, quat.Conj(rot)))
	return NewTransformFromRotationTranslation(
		spatialmath.QuatToRotationMatrix(rot),
		r3.Vector{X: p.Imag, Y: p.Jmag, Z: p.Kmag},
	)
}
