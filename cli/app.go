// Package cli contains the screwkin command line application, which runs the axis angle, SCARA
// forward kinematics and body Jacobian demonstrations.
package cli

import (
	"io"

	"github.com/urfave/cli/v2"
)

const (
	configFlag     = "config"
	debugFlag      = "debug"
	degreesFlag    = "degrees"
	jointsFlag     = "joints"
	logLevelFlag   = "log-level"
	matrixFlag     = "matrix"
	velocitiesFlag = "velocities"
)

// NewApp returns a new app with the CLI API, Writer set to out, and ErrWriter
// set to errOut. Logs go to errOut.
func NewApp(out, errOut io.Writer) *cli.App {
	return &cli.App{
		Writer:          out,
		ErrWriter:       errOut,
		Name:            "screwkin",
		Usage:           "screw theory kinematics of SCARA and 3R arms",
		HideHelpCommand: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    configFlag,
				Aliases: []string{"c"},
				Usage:   "load arm geometry from `FILE` (.yaml, .yml or .json)",
			},
			&cli.BoolFlag{
				Name:    debugFlag,
				Aliases: []string{"vvv"},
				Usage:   "enable debug logging",
			},
			&cli.StringFlag{
				Name:  logLevelFlag,
				Value: "info",
				Usage: "log `LEVEL`: debug, info, warn or error",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "axis-angle",
				Usage: "extract the rotation angle and axis of rotation matrices",
				UsageText: "screwkin axis-angle [--matrix r11,r12,r13,r21,r22,r23,r31,r32,r33]\n" +
					"without --matrix a set of reference rotations about x is used",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  matrixFlag,
						Usage: "nine row-major matrix entries separated by commas or spaces",
					},
				},
				Action: AxisAngleAction,
			},
			{
				Name:      "scara",
				Usage:     "forward kinematics of the four joint SCARA arm",
				UsageText: "screwkin scara --joints theta1,theta2,d3,theta4",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     jointsFlag,
						Required: true,
						Usage:    "base and elbow angles, the prismatic travel along -z, then the wrist angle",
					},
					&cli.BoolFlag{
						Name:  degreesFlag,
						Usage: "revolute joint angles are in degrees",
					},
				},
				Action: SCARAAction,
			},
			{
				Name:      "jacobian",
				Usage:     "body Jacobian and tool velocity of the three revolute joint arm",
				UsageText: "screwkin jacobian --joints theta1,theta2,theta3 --velocities w1,w2,w3",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     jointsFlag,
						Required: true,
						Usage:    "joint angles",
					},
					&cli.StringFlag{
						Name:     velocitiesFlag,
						Required: true,
						Usage:    "joint rates",
					},
					&cli.BoolFlag{
						Name:  degreesFlag,
						Usage: "joint angles and rates are in degrees",
					},
				},
				Action: JacobianAction,
			},
			{
				Name:   "version",
				Usage:  "print version info for this program",
				Action: VersionAction,
			},
		},
	}
}
