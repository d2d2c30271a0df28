package kinematics

import (
	"go.viam.com/screwkin/kinematics/kinmath"
	"go.viam.com/screwkin/kinematics/kinmath/spatial"
	"go.viam.com/screwkin/utils"
)

// ForwardKinematics computes the space frame product of exponentials
//
//	T = exp([S1] t1) * exp([S2] t2) * ... * exp([Sn] tn) * M
//
// where the screws are expressed in the base frame at the zero configuration and M is the tool pose
// at that configuration. Joint 1 is the closest to the base.
func ForwardKinematics(screws []spatial.MotionVector, angles []float64, home kinmath.Transform) (kinmath.Transform, error) {
	if len(screws) != len(angles) {
		return kinmath.Transform{}, utils.NewIncorrectDoFError(len(angles), len(screws))
	}
	t := kinmath.NewTransform()
	for i, s := range screws {
		t = t.Mul(kinmath.ExpScrew(s, angles[i]))
	}
	return t.Mul(home), nil
}

// BodyForwardKinematics computes M * exp([B1] t1) * ... * exp([Bn] tn) for screws expressed in the
// tool frame. It agrees with ForwardKinematics when B_i = Ad(M^-1) S_i.
func BodyForwardKinematics(screws []spatial.MotionVector, angles []float64, home kinmath.Transform) (kinmath.Transform, error) {
	if len(screws) != len(angles) {
		return kinmath.Transform{}, utils.NewIncorrectDoFError(len(angles), len(screws))
	}
	t := home
	for i, s := range screws {
		t = t.Mul(kinmath.ExpScrew(s, angles[i]))
	}
	return t, nil
}
