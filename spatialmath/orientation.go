// Package spatialmath defines the SO(3) primitives of the kinematics library: skew-symmetric
// matrices, rotation matrices, axis angles and their conversions.
package spatialmath

import (
	"gonum.org/v1/gonum/num/quat"
)

// Orientation is an interface used to express the different parameterizations of the orientation
// of a rigid object or a frame of reference in 3D Euclidean space.
type Orientation interface {
	AxisAngles() *R4AA
	Quaternion() quat.Number
	RotationMatrix() *RotationMatrix
}

// OrientationAlmostEqual will return a bool describing whether 2 poses have approximately the same orientation.
func OrientationAlmostEqual(o1, o2 Orientation) bool {
	return QuaternionAlmostEqual(o1.Quaternion(), o2.Quaternion(), 1e-5)
}

// QuaternionAlmostEqual is an equality test for quaternions. q and -q are the same rotation.
func QuaternionAlmostEqual(a, b quat.Number, tol float64) bool {
	return quat.Abs(quat.Sub(a, b)) < tol || quat.Abs(quat.Add(a, b)) < tol
}

// OrientationBetween returns the orientation representing the difference between the two given Orientations.
func OrientationBetween(o1, o2 Orientation) Orientation {
	return QuatToRotationMatrix(quat.Mul(o2.Quaternion(), quat.Conj(o1.Quaternion())))
}
