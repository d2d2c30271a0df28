package kinematics

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"

	"go.viam.com/screwkin/kinematics/kinmath"
	"go.viam.com/screwkin/kinematics/kinmath/spatial"
	"go.viam.com/screwkin/spatialmath"
)

// NewSCARA returns the four joint SCARA arm with joints ordered revolute, revolute, prismatic,
// revolute. The first two joints turn about +z at the base and at the elbow, A1 out along x. The
// third slides the tool along -z and the fourth turns it about -z at the wrist, A1+A2 out along x.
// At the zero configuration the tool sits at (A1+A2, 0, -D) pointing down, its y and z axes
// flipped relative to the base.
//
// The screw table is laid out linear first, (v, w).
func NewSCARA(cfg SCARAConfig) (*Chain, error) {
	reach := cfg.A1 + cfg.A2
	screws := [][]float64{
		{0, 0, 0, 0, 0, 1},
		{0, -cfg.A1, 0, 0, 0, 1},
		{0, 0, -1, 0, 0, 0},
		{0, reach, 0, 0, 0, -1},
	}
	down := spatialmath.NewRotationMatrixFromMat3(mgl64.Diag3(mgl64.Vec3{1, -1, -1}))
	home := kinmath.NewTransformFromRotationTranslation(down, r3.Vector{X: reach, Z: -cfg.D})
	return NewChainFromSlices("scara", home, spatial.LinearFirst, screws)
}

// SCARARevoluteJoints lists the indices of the revolute joints of the SCARA arm. The joint at index 2
// is prismatic.
var SCARARevoluteJoints = []int{0, 1, 3}

// NewRRR returns a three revolute joint arm. Joint 1 turns about y and joint 2 about z, both at the
// base. Joint 3 turns about z, A2 out along x. At the zero configuration the tool frame is aligned
// with the base at (A2+A3, 0, D).
func NewRRR(cfg RRRConfig) (*Chain, error) {
	screws := [][]float64{
		{0, 0, 0, 0, 1, 0},
		{0, 0, 0, 0, 0, 1},
		{0, -cfg.A2, 0, 0, 0, 1},
	}
	home := kinmath.NewTranslation(r3.Vector{X: cfg.A2 + cfg.A3, Z: cfg.D})
	return NewChainFromSlices("rrr", home, spatial.LinearFirst, screws)
}
