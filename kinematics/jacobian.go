package kinematics

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"go.viam.com/screwkin/kinematics/kinmath"
	"go.viam.com/screwkin/kinematics/kinmath/spatial"
	"go.viam.com/screwkin/utils"
)

func checkJointCount(screws []spatial.MotionVector, values []float64) error {
	if len(screws) == 0 {
		return utils.NewInvalidArgumentError("a Jacobian needs at least one joint")
	}
	if len(screws) != len(values) {
		return utils.NewIncorrectDoFError(len(values), len(screws))
	}
	return nil
}

// BodyJacobian returns the 6xN body Jacobian of a chain given its base frame screw axes and the
// tool pose at the zero configuration. Column i is AdjointInverse(T_i) S_i with
// T_i = exp([Si] ti) * ... * exp([Sn] tn) * M, the sub-chain from joint i to the tool. Rows are
// angular first.
func BodyJacobian(screws []spatial.MotionVector, angles []float64, home kinmath.Transform) (*mat.Dense, error) {
	if err := checkJointCount(screws, angles); err != nil {
		return nil, err
	}
	n := len(screws)
	jac := mat.NewDense(6, n, nil)
	t := home
	var col mat.VecDense
	for i := n - 1; i >= 0; i-- {
		t = kinmath.ExpScrew(screws[i], angles[i]).Mul(t)
		col.MulVec(kinmath.AdjointInverse(t), screws[i].VecDense())
		jac.SetCol(i, col.RawVector().Data)
	}
	return jac, nil
}

// SpaceJacobian returns the 6xN space Jacobian of a chain given its base frame screw axes. Column i
// is Adjoint(exp([S1] t1) * ... * exp([S(i-1)] t(i-1))) S_i.
func SpaceJacobian(spaceScrews []spatial.MotionVector, angles []float64) (*mat.Dense, error) {
	if err := checkJointCount(spaceScrews, angles); err != nil {
		return nil, err
	}
	jac := mat.NewDense(6, len(spaceScrews), nil)
	t := kinmath.NewTransform()
	var col mat.VecDense
	for i, s := range spaceScrews {
		col.MulVec(kinmath.Adjoint(t), s.VecDense())
		jac.SetCol(i, col.RawVector().Data)
		t = t.Mul(kinmath.ExpScrew(s, angles[i]))
	}
	return jac, nil
}

// BodyVelocity multiplies the body Jacobian by the joint rates, giving the twist of the tool in the
// tool frame. The screws are in the base frame, as for BodyJacobian.
func BodyVelocity(screws []spatial.MotionVector, angles, velocities []float64, home kinmath.Transform) (spatial.MotionVector, error) {
	if len(velocities) != len(screws) {
		return spatial.MotionVector{}, utils.NewIncorrectDoFError(len(velocities), len(screws))
	}
	jac, err := BodyJacobian(screws, angles, home)
	if err != nil {
		return spatial.MotionVector{}, err
	}
	var v mat.VecDense
	v.MulVec(jac, mat.NewVecDense(len(velocities), append([]float64(nil), velocities...)))
	return spatial.NewMVFromVecN(&v), nil
}

// JointTorques returns J^T F, the joint torques or forces that balance the wrench F. The wrench must
// be expressed in the same frame as the Jacobian.
func JointTorques(jac mat.Matrix, wrench spatial.ForceVector) ([]float64, error) {
	r, c := jac.Dims()
	if r != 6 {
		return nil, utils.NewInvalidArgumentError("Jacobian needs 6 rows, got %d", r)
	}
	f := wrench.VecDense().RawVector().Data
	torques := make([]float64, c)
	for i := range torques {
		torques[i] = floats.Dot(mat.Col(nil, i, jac), f)
	}
	return torques, nil
}
