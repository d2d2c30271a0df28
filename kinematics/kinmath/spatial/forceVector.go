package spatial

import (
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
)

// ForceVector is a wrench: a moment and a force, in that order when flattened.
type ForceVector struct {
	Moment r3.Vector
	Force  r3.Vector
}

// NewFVFromVecN reads a moment-first column vector.
func NewFVFromVecN(vec mat.Vector) ForceVector {
	return ForceVector{
		Moment: r3.Vector{X: vec.AtVec(0), Y: vec.AtVec(1), Z: vec.AtVec(2)},
		Force:  r3.Vector{X: vec.AtVec(3), Y: vec.AtVec(4), Z: vec.AtVec(5)},
	}
}

// VecDense returns the wrench as a moment-first gonum column vector.
func (f ForceVector) VecDense() *mat.VecDense {
	return mat.NewVecDense(6, []float64{f.Moment.X, f.Moment.Y, f.Moment.Z, f.Force.X, f.Force.Y, f.Force.Z})
}

// Dot is the power delivered by this wrench along a twist.
func (f ForceVector) Dot(other MotionVector) float64 {
	return f.Moment.Dot(other.Angular) + f.Force.Dot(other.Linear)
}
