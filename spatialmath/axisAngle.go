package spatialmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/num/quat"
)

// See here for a thorough explanation: https://en.wikipedia.org/wiki/Axis%E2%80%93angle_representation
// Basic explanation: Imagine a 3d cartesian grid centered at 0,0,0, and a sphere of radius 1 centered at
// that same point. An orientation can be expressed by first specifying an axis, i.e. a line from the origin
// to a point on that sphere, represented by (rx, ry, rz), and a rotation around that axis, theta.
// These four numbers can be used as-is (R4), or they can be converted to R3, where theta is multiplied by each of
// the unit sphere components to give a vector whose length is theta and whose direction is the original axis.

// DefaultAxisTolerance is the value of sin(theta) below which the rotation axis of a matrix is considered undefined.
const DefaultAxisTolerance = 1e-10

// R4AA represents an R4 axis angle.
type R4AA struct {
	Theta float64 `json:"th"`
	RX    float64 `json:"x"`
	RY    float64 `json:"y"`
	RZ    float64 `json:"z"`
}

// NewR4AA creates an empty R4AA struct.
func NewR4AA() *R4AA {
	return &R4AA{Theta: 0, RX: 0, RY: 0, RZ: 1}
}

// AxisAngles returns the orientation in axis angle representation.
func (r4 *R4AA) AxisAngles() *R4AA {
	return r4
}

// Axis returns the rotation axis as a vector.
func (r4 *R4AA) Axis() r3.Vector {
	return r3.Vector{X: r4.RX, Y: r4.RY, Z: r4.RZ}
}

// Quaternion returns orientation in quaternion representation.
func (r4 *R4AA) Quaternion() quat.Number {
	return r4.ToQuat()
}

// RotationMatrix returns the orientation in rotation matrix representation, using the Rodrigues formula
// R = I + sin(theta)[k] + (1 - cos(theta))[k]^2.
func (r4 *R4AA) RotationMatrix() *RotationMatrix {
	axis := r4.Axis()
	norm := axis.Norm()
	if norm == 0 {
		return NewIdentityRotationMatrix()
	}
	k := Skew(axis.Mul(1 / norm))
	s, c := math.Sincos(r4.Theta)
	m := mgl64.Ident3().Add(k.Mul(s)).Add(k.Mul3(k).Mul(1 - c))
	return NewRotationMatrixFromMat3(m)
}

// ToR3 converts an R4 angle axis to R3.
func (r4 *R4AA) ToR3() r3.Vector {
	return r3.Vector{X: r4.RX * r4.Theta, Y: r4.RY * r4.Theta, Z: r4.RZ * r4.Theta}
}

// ToQuat converts an R4 axis angle to a unit quaternion
// See: https://www.euclideanspace.com/maths/geometry/rotations/conversions/angleToQuaternion/index.htm
func (r4 *R4AA) ToQuat() quat.Number {
	norm := r4.Axis().Norm()
	if norm == 0 {
		return quat.Number{Real: 1}
	}
	sinA, w := math.Sincos(r4.Theta / 2)
	// Ensure that point xyz is on the unit sphere
	sinA /= norm
	return quat.Number{Real: w, Imag: r4.RX * sinA, Jmag: r4.RY * sinA, Kmag: r4.RZ * sinA}
}

// Normalize scales the x, y, and z components of a R4 axis angle to be on the unit sphere.
func (r4 *R4AA) Normalize() error {
	norm := math.Sqrt(r4.RX*r4.RX + r4.RY*r4.RY + r4.RZ*r4.RZ)
	if norm == 0.0 {
		return errors.New("cannot normalize R4AA, divide by zero")
	}
	r4.RX /= norm
	r4.RY /= norm
	r4.RZ /= norm
	return nil
}

// fixOrientation flips a negative angle, and the axis with it, so that theta is never negative.
func (r4 *R4AA) fixOrientation() {
	if r4.Theta < 0.0 {
		r4.Theta *= -1.
		r4.RX *= -1.
		r4.RY *= -1.
		r4.RZ *= -1.
	}
}

// QuatToR4AA converts a quat to an R4 axis angle in the same way the C++ Eigen library does.
// https://eigen.tuxfamily.org/dox/AngleAxis_8h_source.html
func QuatToR4AA(q quat.Number) *R4AA {
	denom := math.Sqrt(q.Imag*q.Imag + q.Jmag*q.Jmag + q.Kmag*q.Kmag)

	angle := 2 * math.Atan2(denom, math.Abs(q.Real))
	if q.Real < 0 {
		angle *= -1
	}

	if denom < 1e-6 {
		return &R4AA{Theta: angle, RX: 0, RY: 0, RZ: 1}
	}
	r4 := &R4AA{angle, q.Imag / denom, q.Jmag / denom, q.Kmag / denom}
	r4.fixOrientation()
	return r4
}

// AxisAngleDecomposition holds the intermediate values of the trace method used by RotationMatrix.AxisAngle.
type AxisAngleDecomposition struct {
	CosTheta float64
	SinTheta float64
	// Vee is (R32 - R23, R13 - R31, R21 - R12), which is 2 sin(theta) times the axis.
	Vee   r3.Vector
	Theta float64
}

// Decompose computes cos(theta) from the trace, sin(theta) from the skew-symmetric part, and
// theta = atan2(sin, cos), which always lies in [0, pi].
func (rm *RotationMatrix) Decompose() AxisAngleDecomposition {
	cosTheta := (rm.Trace() - 1) / 2
	vee := r3.Vector{
		X: rm.At(2, 1) - rm.At(1, 2),
		Y: rm.At(0, 2) - rm.At(2, 0),
		Z: rm.At(1, 0) - rm.At(0, 1),
	}
	sinTheta := vee.Norm() / 2
	return AxisAngleDecomposition{
		CosTheta: cosTheta,
		SinTheta: sinTheta,
		Vee:      vee,
		Theta:    math.Atan2(sinTheta, cosTheta),
	}
}

// AxisAngle returns the unit rotation axis and the rotation angle of rm.
// ok is false when sin(theta) is below DefaultAxisTolerance: the rotation is either the identity
// or a half turn, and the axis cannot be recovered from the skew-symmetric part. theta is valid either way.
func (rm *RotationMatrix) AxisAngle() (axis r3.Vector, theta float64, ok bool) {
	return rm.AxisAngleWithTolerance(DefaultAxisTolerance)
}

// AxisAngleWithTolerance is AxisAngle with an explicit threshold on sin(theta).
func (rm *RotationMatrix) AxisAngleWithTolerance(tol float64) (axis r3.Vector, theta float64, ok bool) {
	d := rm.Decompose()
	if d.SinTheta < tol {
		return r3.Vector{}, d.Theta, false
	}
	return d.Vee.Mul(1 / (2 * d.SinTheta)).Normalize(), d.Theta, true
}
