package spatialmath

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidArgument is returned when a quaternion or operand cannot be built from the given input.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidShape is returned when a sequence does not have the fixed length an operation requires.
	ErrInvalidShape = errors.New("invalid shape")

	// ErrUnsupportedOperand is returned when an operator has no meaning for the given operand kinds.
	ErrUnsupportedOperand = errors.New("unsupported operand")

	// ErrDegenerateQuaternion is returned when normalizing or inverting a quaternion whose norm is numerically zero.
	ErrDegenerateQuaternion = errors.New("degenerate quaternion")

	// ErrSingularLogarithm is returned when the logarithm of a negative real quaternion is requested,
	// since its rotation axis is undefined.
	ErrSingularLogarithm = errors.New("singular logarithm")
)

// NewInvalidArgumentError is used when input cannot be interpreted.
func NewInvalidArgumentError(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidArgument, format, args...)
}

// NewInvalidShapeError is used when a sequence has the wrong length.
func NewInvalidShapeError(expected, actual int) error {
	return errors.Wrapf(ErrInvalidShape, "expected length %d but got %d", expected, actual)
}

// NewInvalidMatrixShapeError is used when a matrix is neither a 4x1 column nor a 1x4 row.
func NewInvalidMatrixShapeError(rows, cols int) error {
	return errors.Wrapf(ErrInvalidShape, "expected a 4x1 or 1x4 matrix but got %dx%d", rows, cols)
}

// NewUnsupportedOperandError is used when an operator is applied to operand kinds it does not define.
func NewUnsupportedOperandError(lhs OperandKind, op Operator, rhs OperandKind) error {
	return errors.Wrapf(ErrUnsupportedOperand, "cannot apply %q to %s and %s", op, lhs, rhs)
}

// NewDegenerateQuaternionError is used when a quaternion with zero norm is normalized or inverted.
func NewDegenerateQuaternionError(q Quaternion) error {
	return errors.Wrapf(ErrDegenerateQuaternion, "quaternion %v has norm %g", q, q.Norm())
}

// NewSingularLogarithmError is used when the logarithm of a negative real quaternion is requested.
func NewSingularLogarithmError(q Quaternion) error {
	return errors.Wrapf(ErrSingularLogarithm, "quaternion %v has no vector part and a negative scalar part", q)
}
