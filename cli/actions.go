package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/multierr"

	"github.com/JStech/quaternion/logging"
	"github.com/JStech/quaternion/spatialmath"
)

const (
	defaultTolerance = 1e-9
	operatorList     = "+|-|*|.*|@|^"
)

type quatApp struct {
	logger    logging.Logger
	precision int
	tolerance float64
}

func (qa *quatApp) before(c *cli.Context) error {
	level, err := logging.LevelFromString(c.String(generalFlagLogLevel))
	if err != nil {
		return err
	}
	if c.Bool(generalFlagDebug) {
		level = logging.DEBUG
	}
	qa.logger = logging.NewWriterLogger("quat", level, c.App.ErrWriter)
	qa.precision = c.Int(generalFlagPrecision)
	qa.tolerance = c.Float64(generalFlagTolerance)
	return nil
}

func (qa *quatApp) evalAction(c *cli.Context) error {
	if err := checkArgs(c, 3); err != nil {
		return err
	}
	lhs, lErr := spatialmath.ParseOperand(c.Args().Get(0))
	op, opErr := spatialmath.ParseOperator(c.Args().Get(1))
	rhs, rErr := spatialmath.ParseOperand(c.Args().Get(2))
	if err := combineArgErrors(lErr, opErr, rErr); err != nil {
		return err
	}
	logger := qa.logger.Sublogger("eval")
	logger.Debugw("evaluating", "lhs", lhs.Kind(), "op", op, "rhs", rhs.Kind())
	result, err := spatialmath.Apply(lhs, op, rhs)
	if err != nil {
		logger.Errorw("evaluation failed", "error", err)
		return err
	}
	printf(c.App.Writer, "%s", result.Format(qa.format(), qa.precision))
	return nil
}

func (qa *quatApp) conjAction(c *cli.Context) error {
	q, err := qa.quaternionArg(c, 1)
	if err != nil {
		return err
	}
	qa.printQuaternion(c.App.Writer, spatialmath.Conj(q))
	return nil
}

func (qa *quatApp) invAction(c *cli.Context) error {
	q, err := qa.quaternionArg(c, 1)
	if err != nil {
		return err
	}
	inv, err := spatialmath.Inv(q)
	if err != nil {
		return err
	}
	qa.printQuaternion(c.App.Writer, inv)
	return nil
}

func (qa *quatApp) expAction(c *cli.Context) error {
	q, err := qa.quaternionArg(c, 1)
	if err != nil {
		return err
	}
	qa.printQuaternion(c.App.Writer, spatialmath.Exp(q))
	return nil
}

func (qa *quatApp) logAction(c *cli.Context) error {
	q, err := qa.quaternionArg(c, 1)
	if err != nil {
		return err
	}
	l, err := spatialmath.Log(q)
	if err != nil {
		return err
	}
	qa.printQuaternion(c.App.Writer, l)
	return nil
}

func (qa *quatApp) powAction(c *cli.Context) error {
	q, err := qa.quaternionArg(c, 2)
	if err != nil {
		return err
	}
	t, err := strconv.ParseFloat(c.Args().Get(1), 64)
	if err != nil {
		return spatialmath.NewInvalidArgumentError("cannot parse exponent %q", c.Args().Get(1))
	}
	p, err := spatialmath.Pow(q, t)
	if err != nil {
		return err
	}
	qa.printQuaternion(c.App.Writer, p)
	return nil
}

func (qa *quatApp) normalizeAction(c *cli.Context) error {
	q, err := qa.quaternionArg(c, 1)
	if err != nil {
		return err
	}
	uq, err := spatialmath.NewUnitQuaternionFromQuaternion(q)
	if err != nil {
		return err
	}
	qa.logger.Debugw("normalized", "norm", q.Norm())
	qa.printQuaternion(c.App.Writer, uq.Quaternion())
	return nil
}

func (qa *quatApp) rotateAction(c *cli.Context) error {
	q, err := qa.quaternionArg(c, 2)
	if err != nil {
		return err
	}
	v, err := vectorArg(c.Args().Get(1))
	if err != nil {
		return err
	}
	uq, err := spatialmath.NewUnitQuaternionFromQuaternion(q)
	if err != nil {
		return err
	}
	printf(c.App.Writer, "%s", spatialmath.VectorOperand(uq.Rotate(v)).Format(qa.format(), qa.precision))
	return nil
}

func (qa *quatApp) axisAngleAction(c *cli.Context) error {
	if err := checkArgs(c, 2); err != nil {
		return err
	}
	theta, thetaErr := strconv.ParseFloat(c.Args().Get(0), 64)
	if thetaErr != nil {
		thetaErr = spatialmath.NewInvalidArgumentError("cannot parse angle %q", c.Args().Get(0))
	}
	axis, axisErr := vectorArg(c.Args().Get(1))
	if err := combineArgErrors(thetaErr, axisErr); err != nil {
		return err
	}
	uq, err := spatialmath.NewUnitQuaternionFromAxisAngle(&spatialmath.R4AA{Theta: theta, RX: axis.X, RY: axis.Y, RZ: axis.Z})
	if err != nil {
		return err
	}
	qa.printQuaternion(c.App.Writer, uq.Quaternion())
	return nil
}

func (qa *quatApp) equalAction(c *cli.Context) error {
	if err := checkArgs(c, 2); err != nil {
		return err
	}
	a, aErr := spatialmath.ParseQuaternion(c.Args().Get(0))
	b, bErr := spatialmath.ParseQuaternion(c.Args().Get(1))
	if err := combineArgErrors(aErr, bErr); err != nil {
		return err
	}
	printf(c.App.Writer, "%t", spatialmath.AlmostEqual(a, b, qa.tolerance))
	return nil
}

// quaternionArg checks that the command got n arguments and parses the first as a quaternion.
func (qa *quatApp) quaternionArg(c *cli.Context, n int) (spatialmath.Quaternion, error) {
	if err := checkArgs(c, n); err != nil {
		return spatialmath.Quaternion{}, err
	}
	q, err := spatialmath.ParseQuaternion(c.Args().First())
	if err != nil {
		return spatialmath.Quaternion{}, err
	}
	qa.logger.Debugw("parsed quaternion", "command", c.Command.Name, "q", q)
	return q, nil
}

func (qa *quatApp) printQuaternion(w io.Writer, q spatialmath.Quaternion) {
	printf(w, "%s", spatialmath.FormatQuaternion(q, qa.format(), qa.precision))
}

// format is the strconv float format for results: shortest form unless a precision was requested.
func (qa *quatApp) format() byte {
	if qa.precision < 0 {
		return 'g'
	}
	return 'f'
}

func vectorArg(s string) (r3.Vector, error) {
	o, err := spatialmath.ParseOperand(s)
	if err != nil {
		return r3.Vector{}, err
	}
	v, ok := o.Vector()
	if !ok {
		return r3.Vector{}, spatialmath.NewInvalidArgumentError("expected a vector of 3 numbers but got %q", s)
	}
	return v, nil
}

// combineArgErrors joins independent argument errors. The result is wrapped because urfave/cli
// exits the process on any error exposing Errors() []error.
func combineArgErrors(errs ...error) error {
	if err := multierr.Combine(errs...); err != nil {
		return errors.Wrap(err, "invalid arguments")
	}
	return nil
}

func checkArgs(c *cli.Context, n int) error {
	if c.NArg() != n {
		return spatialmath.NewInvalidArgumentError("%s expects %d arguments but got %d", c.Command.Name, n, c.NArg())
	}
	return nil
}

// printf prints a message with a newline to the given writer.
func printf(w io.Writer, format string, a ...interface{}) {
	//nolint:errcheck
	fmt.Fprintf(w, format+"\n", a...)
}

// Errorf prints a message prefixed with "Error: " to the given writer.
func Errorf(w io.Writer, format string, a ...interface{}) {
	//nolint:errcheck
	fmt.Fprintf(w, "Error: "+format+"\n", a...)
}
