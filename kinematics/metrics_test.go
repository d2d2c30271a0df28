package kinematics

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"

	"go.viam.com/screwkin/kinematics/kinmath"
	"go.viam.com/screwkin/kinematics/kinmath/spatial"
)

func TestSquaredNormMetric(t *testing.T) {
	test.That(t, SquaredNorm([]float64{1, 2, 2}), test.ShouldEqual, 9.)

	metric := NewSquaredNormMetric()
	home := kinmath.NewTranslation(r3.Vector{X: 1})
	test.That(t, metric.Distance(home, home), test.ShouldAlmostEqual, 0)
	test.That(t, metric.Distance(home, home.Mul(kinmath.NewTranslation(r3.Vector{X: 3, Y: 4}))), test.ShouldAlmostEqual, 25)

	yaw := kinmath.ExpScrew(spatial.RevoluteScrew(r3.Vector{Z: 1}, r3.Vector{}), math.Pi/2)
	test.That(t, metric.Distance(kinmath.NewTransform(), yaw), test.ShouldAlmostEqual, math.Pi*math.Pi/4)

	delta := PoseDelta(kinmath.NewTransform(), yaw)
	test.That(t, delta[5], test.ShouldAlmostEqual, math.Pi/2)

	xOnly := NewBasicMetric(func(from, to kinmath.Transform) float64 {
		return math.Abs(to.Translation().X - from.Translation().X)
	})
	test.That(t, xOnly.Distance(kinmath.NewTransform(), home), test.ShouldEqual, 1.)
}
