package spatialmath

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
	"gonum.org/v1/gonum/num/quat"
)

// represent a 45 degree rotation around the x axis in all the representations
var (
	th    = math.Pi / 4.
	q45x  = quat.Number{Real: math.Cos(th / 2.), Imag: math.Sin(th / 2.)} // in quaternion representation
	aa45x = &R4AA{Theta: th, RX: 1.}                                       // in axis-angle representation
	rm45x = &RotationMatrix{[9]float64{
		1, 0, 0,
		0, math.Cos(th), -math.Sin(th),
		0, math.Sin(th), math.Cos(th),
	}} // in rotation matrix representation
)

func TestZeroOrientation(t *testing.T) {
	var zero Orientation = NewIdentityRotationMatrix()
	test.That(t, zero.AxisAngles(), test.ShouldResemble, NewR4AA())
	test.That(t, zero.Quaternion(), test.ShouldResemble, quat.Number{Real: 1})
	test.That(t, zero.RotationMatrix(), test.ShouldResemble, NewIdentityRotationMatrix())
}

func TestOrientationRepresentations(t *testing.T) {
	for _, tc := range []struct {
		name string
		o    Orientation
	}{
		{"axis angle", aa45x},
		{"rotation matrix", rm45x},
		{"from quaternion", QuatToRotationMatrix(q45x)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			q := tc.o.Quaternion()
			test.That(t, q.Real, test.ShouldAlmostEqual, q45x.Real)
			test.That(t, q.Imag, test.ShouldAlmostEqual, q45x.Imag)
			test.That(t, q.Jmag, test.ShouldAlmostEqual, q45x.Jmag)
			test.That(t, q.Kmag, test.ShouldAlmostEqual, q45x.Kmag)

			aa := tc.o.AxisAngles()
			test.That(t, aa.Theta, test.ShouldAlmostEqual, aa45x.Theta)
			test.That(t, aa.RX, test.ShouldAlmostEqual, aa45x.RX)
			test.That(t, aa.RY, test.ShouldAlmostEqual, aa45x.RY)
			test.That(t, aa.RZ, test.ShouldAlmostEqual, aa45x.RZ)

			rm := tc.o.RotationMatrix()
			for i := 0; i < 3; i++ {
				for j := 0; j < 3; j++ {
					test.That(t, rm.At(i, j), test.ShouldAlmostEqual, rm45x.At(i, j))
				}
			}
			test.That(t, OrientationAlmostEqual(tc.o, aa45x), test.ShouldBeTrue)
		})
	}
}

func TestOrientationBetween(t *testing.T) {
	o1 := &R4AA{Theta: 0.3, RZ: 1}
	o2 := &R4AA{Theta: 1.1, RZ: 1}
	between := OrientationBetween(o1, o2)
	aa := between.AxisAngles()
	test.That(t, aa.Theta, test.ShouldAlmostEqual, 0.8)
	test.That(t, aa.RZ, test.ShouldAlmostEqual, 1)

	test.That(t, OrientationAlmostEqual(o1, o2), test.ShouldBeFalse)
	// q and -q describe the same rotation
	test.That(t, QuaternionAlmostEqual(q45x, quat.Scale(-1, q45x), 1e-9), test.ShouldBeTrue)
}

func TestRotationMatrix(t *testing.T) {
	_, err := NewRotationMatrix([]float64{1, 0, 0, 0, 1, 0, 0, 0})
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "need exactly 9")

	rm, err := NewRotationMatrix([]float64{0, -1, 0, 1, 0, 0, 0, 0, 1})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, rm.Row(0), test.ShouldResemble, r3.Vector{X: 0, Y: -1, Z: 0})
	test.That(t, rm.Col(0), test.ShouldResemble, r3.Vector{X: 0, Y: 1, Z: 0})
	test.That(t, rm.Trace(), test.ShouldEqual, 1.)
	test.That(t, rm.Mul(r3.Vector{X: 1}), test.ShouldResemble, r3.Vector{X: 0, Y: 1, Z: 0})
	test.That(t, NewRotationMatrixFromMat3(rm.Mat3().Mul3(rm.Transpose().Mat3())), test.ShouldResemble, NewIdentityRotationMatrix())
	test.That(t, rm.IsOrthonormal(1e-12), test.ShouldBeTrue)
	test.That(t, NewRotationMatrixFromMat3(rm.Mat3()), test.ShouldResemble, rm)

	notRotation, err := NewRotationMatrix([]float64{2, 0, 0, 0, 1, 0, 0, 0, 1})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, notRotation.IsOrthonormal(1e-6), test.ShouldBeFalse)
}

func TestIsOrthonormalTolerance(t *testing.T) {
	for _, theta := range []float64{0.3, 1, 2.5} {
		rm := (&R4AA{Theta: theta, RX: 1, RY: 2, RZ: 3}).RotationMatrix()
		test.That(t, rm.IsOrthonormal(1e-9), test.ShouldBeTrue)
	}

	// rounded to seven digits, as matrices are usually typed in by hand
	rounded, err := NewRotationMatrix([]float64{
		1, 0, 0,
		0, -0.8660254, -0.5,
		0, 0.5, -0.8660254,
	})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, rounded.IsOrthonormal(1e-6), test.ShouldBeTrue)
	test.That(t, rounded.IsOrthonormal(1e-12), test.ShouldBeFalse)

	reflection, err := NewRotationMatrix([]float64{1, 0, 0, 0, 1, 0, 0, 0, -1})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, reflection.IsOrthonormal(1e-6), test.ShouldBeFalse)
}

func TestParseRotationMatrix(t *testing.T) {
	rm, err := ParseRotationMatrix("1, 0, 0  0 0 -1\n0 1 0")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, rm.At(1, 2), test.ShouldEqual, -1.)
	test.That(t, rm.At(2, 1), test.ShouldEqual, 1.)

	_, err = ParseRotationMatrix("1 0 0 0 1 0 0 0")
	test.That(t, err, test.ShouldNotBeNil)

	_, err = ParseRotationMatrix("1 0 0 0 one 0 0 0 1")
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, `cannot parse "one"`)
}
