package cli

import (
	"fmt"
	"io"
	"math"
	"runtime/debug"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"gonum.org/v1/gonum/mat"

	"go.viam.com/screwkin/kinematics"
	"go.viam.com/screwkin/kinematics/kinmath"
	"go.viam.com/screwkin/logging"
	"go.viam.com/screwkin/spatialmath"
	"go.viam.com/screwkin/utils"
)

// kinClient carries what every action needs: the arm geometry and a logger.
type kinClient struct {
	c      *cli.Context
	conf   *kinematics.ChainConfig
	logger logging.Logger
}

func newKinClient(c *cli.Context) (*kinClient, error) {
	level, err := logging.LevelFromString(c.String(logLevelFlag))
	if err != nil {
		return nil, errors.Wrapf(err, "error parsing %s flag", logLevelFlag)
	}
	if c.Bool(debugFlag) {
		level = logging.DEBUG
	}
	logger := logging.NewBlankLogger("screwkin")
	logger.AddAppender(logging.NewWriterAppender(c.App.ErrWriter))
	logger.SetLevel(level)

	conf := kinematics.DefaultChainConfig()
	if path := c.String(configFlag); path != "" {
		conf, err = kinematics.ReadChainConfigFile(path)
		if err != nil {
			return nil, err
		}
		logger.Debugw("loaded chain config", "path", path, "config", conf)
	}
	return &kinClient{c: c, conf: conf, logger: logger}, nil
}

func printf(w io.Writer, format string, a ...interface{}) {
	// Writes to the terminal can only fail if it is gone, in which case there is no one to tell.
	//nolint:errcheck
	_, _ = fmt.Fprintf(w, format+"\n", a...)
}

// cleanZero keeps rounding noise from printing as -0.000000.
func cleanZero(v float64) float64 {
	if math.Abs(v) < 1e-9 {
		return 0
	}
	return v
}

func parseValues(raw, name string, count int) ([]float64, error) {
	values, err := spatialmath.DelimitedStringToSlice(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "error parsing %s flag", name)
	}
	if len(values) != count {
		return nil, utils.NewIncorrectDoFError(len(values), count)
	}
	return values, nil
}

// toRadians converts the values at the given indices, or every value when no index is given.
func toRadians(values []float64, indices ...int) {
	if len(indices) == 0 {
		for i := range values {
			values[i] = utils.DegToRad(values[i])
		}
		return
	}
	for _, i := range indices {
		values[i] = utils.DegToRad(values[i])
	}
}

type namedRotation struct {
	name   string
	matrix string
}

// referenceRotations are turns about the x axis, rounded to the digits usually typed by hand. They
// include both cases where the axis cannot be recovered: no rotation and a half turn.
var referenceRotations = []namedRotation{
	{"150 deg about x", "1 0 0  0 -0.8660254 -0.5  0 0.5 -0.8660254"},
	{"180 deg about x", "1 0 0  0 -1 0  0 -0 -1"},
	{"90 deg about -x", "1 0 0  0 0 1  0 -1 0"},
	{"45 deg about -x", "1 0 0  0 0.70710678 0.70710678  0 -0.70710678 0.70710678"},
	{"identity", "1 0 0  0 1 0  0 0 1"},
	{"45 deg about x", "1 0 0  0 0.70710678 -0.70710678  0 0.70710678 0.70710678"},
	{"90 deg about x", "1 0 0  0 0 -1  0 1 0"},
	{"180 deg about x, signed zeros", "1 0 0  0 -1 -0  0 0 -1"},
	{"150 deg about -x", "1 0 0  0 -0.8660254 0.5  0 -0.5 -0.8660254"},
}

// AxisAngleAction is the corresponding Action for 'axis-angle'.
func AxisAngleAction(c *cli.Context) error {
	client, err := newKinClient(c)
	if err != nil {
		return err
	}
	return client.axisAngleAction()
}

func (client *kinClient) axisAngleAction() error {
	rotations := referenceRotations
	if raw := client.c.String(matrixFlag); raw != "" {
		rotations = []namedRotation{{"input", raw}}
	}

	for _, r := range rotations {
		rm, err := spatialmath.ParseRotationMatrix(r.matrix)
		if err != nil {
			return errors.Wrapf(err, "error parsing %s matrix", r.name)
		}
		if !rm.IsOrthonormal(1e-6) {
			client.logger.Warnw("matrix is not a rotation, results are meaningless", "name", r.name)
		}
		d := rm.Decompose()
		client.logger.Debugw("trace decomposition", "name", r.name,
			"cos", d.CosTheta, "sin", d.SinTheta, "vee", []float64{d.Vee.X, d.Vee.Y, d.Vee.Z})

		axis, theta, ok := rm.AxisAngleWithTolerance(client.conf.Tolerance)
		if !ok {
			printf(client.c.App.Writer, "%s: theta = %.6f rad (%.2f deg), axis undefined",
				r.name, theta, utils.RadToDeg(theta))
			continue
		}
		printf(client.c.App.Writer, "%s: theta = %.6f rad (%.2f deg), axis = (%.6f, %.6f, %.6f)",
			r.name, theta, utils.RadToDeg(theta), cleanZero(axis.X), cleanZero(axis.Y), cleanZero(axis.Z))
	}
	return nil
}

// SCARAAction is the corresponding Action for 'scara'.
func SCARAAction(c *cli.Context) error {
	client, err := newKinClient(c)
	if err != nil {
		return err
	}
	return client.scaraAction()
}

func (client *kinClient) scaraAction() error {
	joints, err := parseValues(client.c.String(jointsFlag), jointsFlag, 4)
	if err != nil {
		return err
	}
	if client.c.Bool(degreesFlag) {
		toRadians(joints, kinematics.SCARARevoluteJoints...)
	}

	chain, err := kinematics.NewSCARA(client.conf.SCARA)
	if err != nil {
		return err
	}
	tf, err := chain.Transform(joints)
	if err != nil {
		return err
	}
	client.logger.Debugw("scara pose", "joints", joints,
		"squared distance from home", kinematics.NewSquaredNormMetric().Distance(chain.Home(), tf))

	printTransform(client.c.App.Writer, tf)
	p := tf.Translation()
	printf(client.c.App.Writer, "position: (%.6f, %.6f, %.6f)", cleanZero(p.X), cleanZero(p.Y), cleanZero(p.Z))
	return nil
}

func printTransform(w io.Writer, tf kinmath.Transform) {
	printf(w, "end effector pose:")
	for row := 0; row < 4; row++ {
		printf(w, "  [% .6f % .6f % .6f % .6f]",
			cleanZero(tf.Mat.At(row, 0)), cleanZero(tf.Mat.At(row, 1)),
			cleanZero(tf.Mat.At(row, 2)), cleanZero(tf.Mat.At(row, 3)))
	}
}

// JacobianAction is the corresponding Action for 'jacobian'.
func JacobianAction(c *cli.Context) error {
	client, err := newKinClient(c)
	if err != nil {
		return err
	}
	return client.jacobianAction()
}

func (client *kinClient) jacobianAction() error {
	joints, err := parseValues(client.c.String(jointsFlag), jointsFlag, 3)
	if err != nil {
		return err
	}
	rates, err := parseValues(client.c.String(velocitiesFlag), velocitiesFlag, 3)
	if err != nil {
		return err
	}
	if client.c.Bool(degreesFlag) {
		toRadians(joints)
		toRadians(rates)
	}

	chain, err := kinematics.NewRRR(client.conf.RRR)
	if err != nil {
		return err
	}
	jac, err := chain.BodyJacobian(joints)
	if err != nil {
		return err
	}
	client.logger.Debugw("body screws", "screws", chain.BodyScrews())

	printf(client.c.App.Writer, "body Jacobian (angular rows first):")
	rows, cols := jac.Dims()
	for row := 0; row < rows; row++ {
		line := ""
		for col := 0; col < cols; col++ {
			line += fmt.Sprintf(" % .6f", cleanZero(jac.At(row, col)))
		}
		printf(client.c.App.Writer, "%s", line)
	}
	client.logger.Debugf("Jacobian\n%v", mat.Formatted(jac, mat.Prefix("")))

	v, err := chain.BodyVelocity(joints, rates)
	if err != nil {
		return err
	}
	printf(client.c.App.Writer, "angular velocity: (%.6f, %.6f, %.6f)",
		cleanZero(v.Angular.X), cleanZero(v.Angular.Y), cleanZero(v.Angular.Z))
	printf(client.c.App.Writer, "linear velocity: (%.6f, %.6f, %.6f)",
		cleanZero(v.Linear.X), cleanZero(v.Linear.Y), cleanZero(v.Linear.Z))
	return nil
}

// VersionAction is the corresponding Action for 'version'.
func VersionAction(c *cli.Context) error {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return errors.New("error reading build info")
	}
	if c.Bool(debugFlag) {
		printf(c.App.Writer, "%s", info.String())
	}
	settings := make(map[string]string, len(info.Settings))
	for _, setting := range info.Settings {
		settings[setting.Key] = setting.Value
	}
	version := "?"
	if rev, ok := settings["vcs.revision"]; ok && len(rev) >= 8 {
		version = rev[:8]
		if settings["vcs.modified"] == "true" {
			version += "+"
		}
	}
	printf(c.App.Writer, "Version %s Git=%s Go=%s", info.Main.Version, version, info.GoVersion)
	return nil
}
