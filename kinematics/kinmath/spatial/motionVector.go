// Package spatial defines six-dimensional spatial vectors: motion vectors (twists and screw axes)
// and their duals, force vectors (wrenches).
package spatial

import (
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"

	"go.viam.com/screwkin/utils"
)

// Packing is the order in which the six components of a spatial vector are laid out in a flat slice.
type Packing int

const (
	// AngularFirst is (wx, wy, wz, vx, vy, vz), the canonical layout of every matrix in this module.
	AngularFirst Packing = iota
	// LinearFirst is (vx, vy, vz, wx, wy, wz).
	LinearFirst
)

// String returns the name of the packing.
func (p Packing) String() string {
	switch p {
	case AngularFirst:
		return "angular-first"
	case LinearFirst:
		return "linear-first"
	default:
		return "unknown"
	}
}

// MotionVector is a twist, or a screw axis when normalized for unit joint velocity.
type MotionVector struct {
	Angular r3.Vector
	Linear  r3.Vector
}

// NewMotionVector reads six values laid out according to packing.
func NewMotionVector(vec []float64, packing Packing) (MotionVector, error) {
	if len(vec) != 6 {
		return MotionVector{}, utils.NewInvalidArgumentError("spatial vector needs 6 elements, got %d", len(vec))
	}
	first := r3.Vector{X: vec[0], Y: vec[1], Z: vec[2]}
	second := r3.Vector{X: vec[3], Y: vec[4], Z: vec[5]}
	switch packing {
	case AngularFirst:
		return MotionVector{Angular: first, Linear: second}, nil
	case LinearFirst:
		return MotionVector{Angular: second, Linear: first}, nil
	default:
		return MotionVector{}, utils.NewInvalidArgumentError("unknown packing %d", packing)
	}
}

// NewMVFromVecN reads an angular-first column vector.
func NewMVFromVecN(vec mat.Vector) MotionVector {
	return MotionVector{
		Angular: r3.Vector{X: vec.AtVec(0), Y: vec.AtVec(1), Z: vec.AtVec(2)},
		Linear:  r3.Vector{X: vec.AtVec(3), Y: vec.AtVec(4), Z: vec.AtVec(5)},
	}
}

// RevoluteScrew returns the screw axis of a revolute joint rotating about axis through point.
func RevoluteScrew(axis, point r3.Vector) MotionVector {
	w := axis.Normalize()
	return MotionVector{Angular: w, Linear: point.Cross(w)}
}

// PrismaticScrew returns the screw axis of a prismatic joint sliding along direction.
func PrismaticScrew(direction r3.Vector) MotionVector {
	return MotionVector{Linear: direction.Normalize()}
}

// Slice lays the vector out according to packing.
func (m MotionVector) Slice(packing Packing) []float64 {
	a := []float64{m.Angular.X, m.Angular.Y, m.Angular.Z}
	l := []float64{m.Linear.X, m.Linear.Y, m.Linear.Z}
	if packing == LinearFirst {
		return append(l, a...)
	}
	return append(a, l...)
}

// VecDense returns the vector as an angular-first gonum column vector.
func (m MotionVector) VecDense() *mat.VecDense {
	return mat.NewVecDense(6, m.Slice(AngularFirst))
}

// Scale returns the vector multiplied by s, e.g. a screw axis times a joint velocity.
func (m MotionVector) Scale(s float64) MotionVector {
	return MotionVector{Angular: m.Angular.Mul(s), Linear: m.Linear.Mul(s)}
}

// Add returns the component-wise sum.
func (m MotionVector) Add(other MotionVector) MotionVector {
	return MotionVector{Angular: m.Angular.Add(other.Angular), Linear: m.Linear.Add(other.Linear)}
}

// Dot is the power delivered by a wrench acting along this twist.
func (m MotionVector) Dot(other ForceVector) float64 {
	return m.Angular.Dot(other.Moment) + m.Linear.Dot(other.Force)
}

// AlmostEqual compares every component within epsilon.
func (m MotionVector) AlmostEqual(other MotionVector, epsilon float64) bool {
	a, b := m.Slice(AngularFirst), other.Slice(AngularFirst)
	for i := range a {
		if !utils.Float64AlmostEqual(a[i], b[i], epsilon) {
			return false
		}
	}
	return true
}
