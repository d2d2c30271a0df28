package kinematics

import (
	"gonum.org/v1/gonum/floats"

	"go.viam.com/screwkin/kinematics/kinmath"
	"go.viam.com/screwkin/spatialmath"
)

// Metric measures how far apart two poses are.
type Metric interface {
	Distance(from, to kinmath.Transform) float64
}

type flexibleMetric struct {
	f func(from, to kinmath.Transform) float64
}

func (m *flexibleMetric) Distance(from, to kinmath.Transform) float64 {
	return m.f(from, to)
}

// NewBasicMetric wraps a distance function.
func NewBasicMetric(f func(from, to kinmath.Transform) float64) Metric {
	return &flexibleMetric{f}
}

// NewSquaredNormMetric is the squared norm of PoseDelta: squared translation distance plus squared
// rotation angle.
func NewSquaredNormMetric() Metric {
	return &flexibleMetric{func(from, to kinmath.Transform) float64 {
		return SquaredNorm(PoseDelta(from, to))
	}}
}

// PoseDelta returns the translation from one pose to the other followed by the R3 axis angle of the
// rotation between them.
func PoseDelta(from, to kinmath.Transform) []float64 {
	dp := to.Translation().Sub(from.Translation())
	aa := spatialmath.OrientationBetween(from.Rotation(), to.Rotation()).AxisAngles().ToR3()
	return []float64{dp.X, dp.Y, dp.Z, aa.X, aa.Y, aa.Z}
}

// SquaredNorm returns the dot product of a vector with itself.
func SquaredNorm(vec []float64) float64 {
	return floats.Dot(vec, vec)
}
