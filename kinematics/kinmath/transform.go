// Package kinmath defines the SE(3) and se(3) operations used by product-of-exponentials kinematics:
// homogeneous transforms, twist matrices, their exponentials, and adjoint maps.
package kinmath

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"

	"go.viam.com/screwkin/kinematics/kinmath/spatial"
	"go.viam.com/screwkin/spatialmath"
	"go.viam.com/screwkin/utils"
)

// Transform is a rigid transformation stored as a 4x4 homogeneous matrix [[R, p], [0, 1]].
type Transform struct {
	Mat mgl64.Mat4
}

// NewTransform returns the identity transform.
func NewTransform() Transform {
	return Transform{mgl64.Ident4()}
}

// NewTransformFromMat4 wraps a homogeneous matrix. The matrix is not validated.
func NewTransformFromMat4(m mgl64.Mat4) Transform {
	return Transform{m}
}

// NewTransformFromRotationTranslation builds [[R, p], [0, 1]].
func NewTransformFromRotationTranslation(rm *spatialmath.RotationMatrix, p r3.Vector) Transform {
	m := rm.Mat3().Mat4()
	m.SetCol(3, mgl64.Vec4{p.X, p.Y, p.Z, 1})
	return Transform{m}
}

// NewTranslation returns a transform with no rotation.
func NewTranslation(p r3.Vector) Transform {
	return Transform{mgl64.Translate3D(p.X, p.Y, p.Z)}
}

// Matrix returns the homogeneous matrix.
func (t Transform) Matrix() mgl64.Mat4 {
	return t.Mat
}

// Rotation returns the top left 3x3 matrix.
func (t Transform) Rotation() *spatialmath.RotationMatrix {
	return spatialmath.NewRotationMatrixFromMat3(t.Mat.Mat3())
}

// Translation returns the XYZ translation parameters.
func (t Transform) Translation() r3.Vector {
	return r3.Vector{X: t.Mat.At(0, 3), Y: t.Mat.At(1, 3), Z: t.Mat.At(2, 3)}
}

// Mul returns t * other, i.e. other expressed in the parent frame of t.
func (t Transform) Mul(other Transform) Transform {
	return Transform{t.Mat.Mul4(other.Mat)}
}

// Inverse returns [[R^T, -R^T p], [0, 1]].
func (t Transform) Inverse() Transform {
	rt := t.Mat.Mat3().Transpose()
	p := t.Translation()
	np := rt.Mul3x1(mgl64.Vec3{p.X, p.Y, p.Z}).Mul(-1)
	m := rt.Mat4()
	m.SetCol(3, np.Vec4(1))
	return Transform{m}
}

// Apply transforms a point.
func (t Transform) Apply(p r3.Vector) r3.Vector {
	out := t.Mat.Mul4x1(mgl64.Vec4{p.X, p.Y, p.Z, 1})
	return r3.Vector{X: out.X(), Y: out.Y(), Z: out.Z()}
}

// TransformScrew applies the adjoint of t to a screw: (R w, p x R w + R v).
func (t Transform) TransformScrew(s spatial.MotionVector) spatial.MotionVector {
	rm := t.Rotation()
	w := rm.Mul(s.Angular)
	return spatial.MotionVector{
		Angular: w,
		Linear:  t.Translation().Cross(w).Add(rm.Mul(s.Linear)),
	}
}

// InverseTransformScrew applies the inverse adjoint of t to a screw: (R^T w, R^T (v - p x w)).
func (t Transform) InverseTransformScrew(s spatial.MotionVector) spatial.MotionVector {
	rt := t.Rotation().Transpose()
	return spatial.MotionVector{
		Angular: rt.Mul(s.Angular),
		Linear:  rt.Mul(s.Linear.Sub(t.Translation().Cross(s.Angular))),
	}
}

// AlmostEqual compares the two matrices element-wise within epsilon.
func (t Transform) AlmostEqual(other Transform, epsilon float64) bool {
	for i := range t.Mat {
		if !utils.Float64AlmostEqual(t.Mat[i], other.Mat[i], epsilon) {
			return false
		}
	}
	return true
}

// Dense copies the homogeneous matrix into a gonum matrix.
func (t Transform) Dense() *mat.Dense {
	return mat4ToDense(t.Mat)
}

func mat4ToDense(m mgl64.Mat4) *mat.Dense {
	d := mat.NewDense(4, 4, nil)
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			d.Set(row, col, m.At(row, col))
		}
	}
	return d
}
