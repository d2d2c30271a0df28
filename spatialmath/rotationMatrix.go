package spatialmath

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"

	"go.viam.com/screwkin/utils"
)

// RotationMatrix is a 3x3 matrix in row major order.
// m[3*row + col] is the element in the (row, col) position.
type RotationMatrix struct {
	mat [9]float64
}

// NewRotationMatrix creates a rotation matrix from a slice of 9 values in row major order.
// Orthogonality is not checked.
func NewRotationMatrix(m []float64) (*RotationMatrix, error) {
	if len(m) != 9 {
		return nil, utils.NewInvalidArgumentError("input slice has %d elements, need exactly 9", len(m))
	}
	rm := &RotationMatrix{}
	copy(rm.mat[:], m)
	return rm, nil
}

// NewRotationMatrixFromMat3 copies an mgl64 matrix into a RotationMatrix.
func NewRotationMatrixFromMat3(m mgl64.Mat3) *RotationMatrix {
	rm := &RotationMatrix{}
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			rm.mat[3*row+col] = m.At(row, col)
		}
	}
	return rm
}

// NewIdentityRotationMatrix returns the rotation matrix of no rotation.
func NewIdentityRotationMatrix() *RotationMatrix {
	return &RotationMatrix{[9]float64{1, 0, 0, 0, 1, 0, 0, 0, 1}}
}

// At returns the element of the matrix at (row, col).
func (rm *RotationMatrix) At(row, col int) float64 {
	return rm.mat[3*row+col]
}

// Row returns the given row as a vector.
func (rm *RotationMatrix) Row(row int) r3.Vector {
	return r3.Vector{X: rm.mat[3*row], Y: rm.mat[3*row+1], Z: rm.mat[3*row+2]}
}

// Col returns the given column as a vector.
func (rm *RotationMatrix) Col(col int) r3.Vector {
	return r3.Vector{X: rm.mat[col], Y: rm.mat[3+col], Z: rm.mat[6+col]}
}

// Mat3 returns the matrix as an mgl64 matrix.
func (rm *RotationMatrix) Mat3() mgl64.Mat3 {
	var m mgl64.Mat3
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			m.Set(row, col, rm.mat[3*row+col])
		}
	}
	return m
}

// Trace returns the sum of the diagonal.
func (rm *RotationMatrix) Trace() float64 {
	return rm.mat[0] + rm.mat[4] + rm.mat[8]
}

// Transpose returns the transposed matrix, which is the inverse rotation.
func (rm *RotationMatrix) Transpose() *RotationMatrix {
	return NewRotationMatrixFromMat3(rm.Mat3().Transpose())
}

// Mul rotates v.
func (rm *RotationMatrix) Mul(v r3.Vector) r3.Vector {
	return r3.Vector{X: rm.Row(0).Dot(v), Y: rm.Row(1).Dot(v), Z: rm.Row(2).Dot(v)}
}

// RotationMatrix returns itself so that a RotationMatrix satisfies Orientation.
func (rm *RotationMatrix) RotationMatrix() *RotationMatrix {
	return rm
}

// Quaternion returns the unit quaternion of the rotation.
func (rm *RotationMatrix) Quaternion() quat.Number {
	q := mgl64.Mat4ToQuat(rm.Mat3().Mat4()).Normalize()
	return quat.Number{Real: q.W, Imag: q.V[0], Jmag: q.V[1], Kmag: q.V[2]}
}

// AxisAngles returns the rotation as an R4AA. It goes through the quaternion and so,
// unlike AxisAngle, it still yields an axis for half-turn rotations.
func (rm *RotationMatrix) AxisAngles() *R4AA {
	return QuatToR4AA(rm.Quaternion())
}

// QuatToRotationMatrix converts a quaternion to a rotation matrix. The quaternion is normalized first.
func QuatToRotationMatrix(q quat.Number) *RotationMatrix {
	mq := mgl64.Quat{W: q.Real, V: mgl64.Vec3{q.Imag, q.Jmag, q.Kmag}}.Normalize()
	return NewRotationMatrixFromMat3(mq.Mat4().Mat3())
}

// IsOrthonormal reports whether rm^T * rm is the identity and det(rm) is +1, within epsilon.
func (rm *RotationMatrix) IsOrthonormal(epsilon float64) bool {
	m := rm.Mat3()
	gram := m.Transpose().Mul3(m)
	ident := mgl64.Ident3()
	for i := range gram {
		if !utils.Float64AlmostEqual(gram[i], ident[i], epsilon) {
			return false
		}
	}
	return utils.Float64AlmostEqual(m.Det(), 1, epsilon)
}
