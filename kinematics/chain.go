// Package kinematics computes the forward kinematics and velocity Jacobians of open serial chains
// whose joints are described by screw axes, using the product-of-exponentials formula.
package kinematics

import (
	"gonum.org/v1/gonum/mat"

	"go.viam.com/screwkin/kinematics/kinmath"
	"go.viam.com/screwkin/kinematics/kinmath/spatial"
)

// Chain is a serial manipulator: one screw axis per joint, expressed in the base frame at the zero
// configuration, and the pose of the tool at that configuration.
type Chain struct {
	name   string
	screws []spatial.MotionVector
	home   kinmath.Transform
}

// NewChain creates a chain from base frame screw axes, ordered from the base to the tool.
func NewChain(name string, home kinmath.Transform, screws ...spatial.MotionVector) *Chain {
	return &Chain{
		name:   name,
		screws: append([]spatial.MotionVector(nil), screws...),
		home:   home,
	}
}

// NewChainFromSlices creates a chain from flat six element screw axes laid out according to packing.
func NewChainFromSlices(name string, home kinmath.Transform, packing spatial.Packing, screws [][]float64) (*Chain, error) {
	mvs := make([]spatial.MotionVector, 0, len(screws))
	for _, s := range screws {
		mv, err := spatial.NewMotionVector(s, packing)
		if err != nil {
			return nil, err
		}
		mvs = append(mvs, mv)
	}
	return NewChain(name, home, mvs...), nil
}

// Name returns the name of the chain.
func (c *Chain) Name() string {
	return c.name
}

// DoF returns the number of joints.
func (c *Chain) DoF() int {
	return len(c.screws)
}

// Home returns the tool pose at the zero configuration.
func (c *Chain) Home() kinmath.Transform {
	return c.home
}

// SpaceScrews returns a copy of the base frame screw axes.
func (c *Chain) SpaceScrews() []spatial.MotionVector {
	return append([]spatial.MotionVector(nil), c.screws...)
}

// BodyScrews returns the screw axes expressed in the tool frame at the zero configuration,
// B_i = Ad(M^-1) S_i.
func (c *Chain) BodyScrews() []spatial.MotionVector {
	body := make([]spatial.MotionVector, 0, len(c.screws))
	for _, s := range c.screws {
		body = append(body, c.home.InverseTransformScrew(s))
	}
	return body
}

// Transform returns the tool pose at the given joint values.
func (c *Chain) Transform(angles []float64) (kinmath.Transform, error) {
	return ForwardKinematics(c.screws, angles, c.home)
}

// BodyJacobian returns the 6xN body Jacobian at the given joint values.
func (c *Chain) BodyJacobian(angles []float64) (*mat.Dense, error) {
	return BodyJacobian(c.screws, angles, c.home)
}

// SpaceJacobian returns the 6xN space Jacobian at the given joint values.
func (c *Chain) SpaceJacobian(angles []float64) (*mat.Dense, error) {
	return SpaceJacobian(c.screws, angles)
}

// BodyVelocity returns the twist of the tool, in the tool frame, for the given joint values and rates.
func (c *Chain) BodyVelocity(angles, velocities []float64) (spatial.MotionVector, error) {
	return BodyVelocity(c.screws, angles, velocities, c.home)
}
