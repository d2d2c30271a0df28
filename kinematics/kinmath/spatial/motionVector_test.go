package spatial

import (
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func TestPacking(t *testing.T) {
	linearFirst := []float64{1, 2, 3, 4, 5, 6}
	mv, err := NewMotionVector(linearFirst, LinearFirst)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, mv.Linear, test.ShouldResemble, r3.Vector{X: 1, Y: 2, Z: 3})
	test.That(t, mv.Angular, test.ShouldResemble, r3.Vector{X: 4, Y: 5, Z: 6})
	test.That(t, mv.Slice(LinearFirst), test.ShouldResemble, linearFirst)
	test.That(t, mv.Slice(AngularFirst), test.ShouldResemble, []float64{4, 5, 6, 1, 2, 3})

	same, err := NewMotionVector(mv.Slice(AngularFirst), AngularFirst)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, same, test.ShouldResemble, mv)
	test.That(t, NewMVFromVecN(mv.VecDense()), test.ShouldResemble, mv)

	_, err = NewMotionVector([]float64{1, 2, 3}, AngularFirst)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "needs 6 elements, got 3")

	_, err = NewMotionVector(linearFirst, Packing(7))
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, Packing(7).String(), test.ShouldEqual, "unknown")
	test.That(t, LinearFirst.String(), test.ShouldEqual, "linear-first")
}

func TestJointScrews(t *testing.T) {
	// a z axis through (1, 0, 0) moves the origin in -y
	s := RevoluteScrew(r3.Vector{Z: 2}, r3.Vector{X: 1})
	test.That(t, s.Angular, test.ShouldResemble, r3.Vector{Z: 1})
	test.That(t, s.Linear, test.ShouldResemble, r3.Vector{X: 0, Y: -1, Z: 0})

	p := PrismaticScrew(r3.Vector{Z: 3})
	test.That(t, p.Angular, test.ShouldResemble, r3.Vector{})
	test.That(t, p.Linear, test.ShouldResemble, r3.Vector{Z: 1})
}

func TestMotionVectorArithmetic(t *testing.T) {
	a := MotionVector{Angular: r3.Vector{X: 1}, Linear: r3.Vector{Y: 2}}
	b := MotionVector{Angular: r3.Vector{Z: 1}, Linear: r3.Vector{X: -1}}
	test.That(t, a.Add(b), test.ShouldResemble, MotionVector{Angular: r3.Vector{X: 1, Z: 1}, Linear: r3.Vector{X: -1, Y: 2}})
	test.That(t, a.Scale(2).AlmostEqual(a.Add(a), 1e-12), test.ShouldBeTrue)
	test.That(t, a.AlmostEqual(b, 1e-3), test.ShouldBeFalse)

	f := ForceVector{Moment: r3.Vector{X: 3}, Force: r3.Vector{Y: 0.5}}
	test.That(t, a.Dot(f), test.ShouldEqual, 4.)
	test.That(t, f.Dot(a), test.ShouldEqual, 4.)
	test.That(t, NewFVFromVecN(f.VecDense()), test.ShouldResemble, f)
}
