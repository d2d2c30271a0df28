package spatialmath

import (
	"testing"

	"go.viam.com/test"
)

func TestAxisAngleQuaternionRoundTrip(t *testing.T) {
	data := []R4AA{
		{1, 1, 1, 1},
		{1, 1, 0, 0},
		{1, 0, 1, 0},
		{1, 0, 0, 1},
	}

	// Quaternion [x, y, z, w]
	// from https://www.andre-gaschler.com/rotationconverter/
	qc := [][]float64{
		{0.2767965, 0.2767965, 0.2767965, 0.8775826},
		{0.4794255, 0, 0, 0.8775826},
		{0, 0.4794255, 0, 0.8775826},
		{0, 0, 0.4794255, 0.8775826},
	}

	for idx, d := range data {
		test.That(t, d.Normalize(), test.ShouldBeNil)
		q := d.Quaternion()

		d2 := QuatToR4AA(q)
		test.That(t, d2.Theta, test.ShouldAlmostEqual, d.Theta)
		test.That(t, d2.RX, test.ShouldAlmostEqual, d.RX)
		test.That(t, d2.RY, test.ShouldAlmostEqual, d.RY)
		test.That(t, d2.RZ, test.ShouldAlmostEqual, d.RZ)

		test.That(t, q.Real, test.ShouldAlmostEqual, qc[idx][3], .00001)
		test.That(t, q.Imag, test.ShouldAlmostEqual, qc[idx][0], .00001)
		test.That(t, q.Jmag, test.ShouldAlmostEqual, qc[idx][1], .00001)
		test.That(t, q.Kmag, test.ShouldAlmostEqual, qc[idx][2], .00001)

		// through the matrix and back again
		rm := d.RotationMatrix()
		axis, theta, ok := rm.AxisAngle()
		test.That(t, ok, test.ShouldBeTrue)
		test.That(t, theta, test.ShouldAlmostEqual, d.Theta)
		test.That(t, axis.X, test.ShouldAlmostEqual, d.RX)
		test.That(t, axis.Y, test.ShouldAlmostEqual, d.RY)
		test.That(t, axis.Z, test.ShouldAlmostEqual, d.RZ)
		test.That(t, QuaternionAlmostEqual(rm.Quaternion(), q, 1e-9), test.ShouldBeTrue)
	}
}
