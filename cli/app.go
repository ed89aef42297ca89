// Package cli contains the quat command line tool.
package cli

import (
	"fmt"
	"io"

	"github.com/urfave/cli/v2"

	"github.com/JStech/quaternion/logging"
)

const (
	// Flags.
	generalFlagDebug     = "debug"
	generalFlagLogLevel  = "log-level"
	generalFlagPrecision = "precision"
	generalFlagTolerance = "tolerance"
)

// NewApp returns the quat application. Results are written to out, logs and errors to errOut.
func NewApp(out, errOut io.Writer) *cli.App {
	qa := &quatApp{logger: logging.Global(), precision: -1, tolerance: defaultTolerance}
	return &cli.App{
		Name:            "quat",
		Usage:           "evaluate quaternion arithmetic",
		Description: `Operands that begin with "-" must follow a "--" so they are not read as flags,
e.g. quat eval -- -1,0,0,0 ^ 0.5`,
		HideHelpCommand: true,
		Writer:          out,
		ErrWriter:       errOut,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    generalFlagDebug,
				Aliases: []string{"vvv"},
				EnvVars: []string{"QUAT_DEBUG"},
				Usage:   "enable debug logging",
			},
			&cli.StringFlag{
				Name:    generalFlagLogLevel,
				EnvVars: []string{"QUAT_LOG_LEVEL"},
				Value:   "warn",
				Usage:   "log `LEVEL` (debug, info, warn or error)",
			},
			&cli.IntFlag{
				Name:    generalFlagPrecision,
				Aliases: []string{"p"},
				EnvVars: []string{"QUAT_PRECISION"},
				Value:   -1,
				Usage:   "digits after the decimal point in results, -1 for the shortest exact form",
			},
			&cli.Float64Flag{
				Name:    generalFlagTolerance,
				EnvVars: []string{"QUAT_TOLERANCE"},
				Value:   defaultTolerance,
				Usage:   "absolute or relative tolerance used by the equal command",
			},
		},
		Before: qa.before,
		Commands: []*cli.Command{
			{
				Name:      "eval",
				Usage:     "evaluate a binary expression",
				UsageText: fmt.Sprintf("quat eval [--] <lhs> <%s> <rhs>", operatorList),
				Description: `Operands are a scalar (one number), a vector (three numbers) or a quaternion
(four numbers, or "w + xi + yj + zk"). Numbers may be separated by commas or spaces.

  q + q, q - q   sum and difference
  k * q, q * k   scalar multiplication
  q .* q         componentwise product (a raw 4-vector, not a quaternion)
  q @ q          Hamilton product
  q @ v          vector part of q*(0, v)
  q ^ k          power, exp(k * log(q))`,
				Action: qa.evalAction,
			},
			{
				Name:      "conj",
				Usage:     "conjugate of a quaternion",
				UsageText: "quat conj [--] <q>",
				Action:    qa.conjAction,
			},
			{
				Name:      "inv",
				Usage:     "multiplicative inverse of a quaternion",
				UsageText: "quat inv [--] <q>",
				Action:    qa.invAction,
			},
			{
				Name:      "exp",
				Usage:     "exponential of a quaternion",
				UsageText: "quat exp [--] <q>",
				Action:    qa.expAction,
			},
			{
				Name:      "log",
				Usage:     "natural logarithm of a quaternion",
				UsageText: "quat log [--] <q>",
				Action:    qa.logAction,
			},
			{
				Name:      "pow",
				Usage:     "real power of a quaternion",
				UsageText: "quat pow [--] <q> <t>",
				Action:    qa.powAction,
			},
			{
				Name:      "normalize",
				Usage:     "scale a quaternion to unit norm",
				UsageText: "quat normalize [--] <q>",
				Action:    qa.normalizeAction,
			},
			{
				Name:      "rotate",
				Usage:     "rotate a vector by the normalized quaternion",
				UsageText: "quat rotate [--] <q> <x,y,z>",
				Action:    qa.rotateAction,
			},
			{
				Name:      "axis-angle",
				Usage:     "unit quaternion for a rotation of theta radians about an axis",
				UsageText: "quat axis-angle [--] <theta> <x,y,z>",
				Action:    qa.axisAngleAction,
			},
			{
				Name:      "equal",
				Usage:     "compare two quaternions within --tolerance",
				UsageText: "quat equal [--] <a> <b>",
				Action:    qa.equalAction,
			},
		},
	}
}
