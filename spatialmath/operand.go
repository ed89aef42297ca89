package spatialmath

import (
	"fmt"
	"strconv"

	"github.com/golang/geo/r3"
)

// OperandKind identifies which value an Operand holds.
type OperandKind int

// The kinds of Operand.
const (
	ScalarKind OperandKind = iota
	VectorKind
	QuaternionKind
	// RawKind is an unstructured 4-vector, as returned by ComponentwiseMul.
	RawKind
)

func (k OperandKind) String() string {
	switch k {
	case ScalarKind:
		return "scalar"
	case VectorKind:
		return "vector"
	case QuaternionKind:
		return "quaternion"
	case RawKind:
		return "raw 4-vector"
	default:
		return fmt.Sprintf("OperandKind(%d)", int(k))
	}
}

// Operator names a binary operation that Apply can evaluate.
type Operator string

// Supported operators.
const (
	OpAdd           Operator = "+"
	OpSub           Operator = "-"
	OpScale         Operator = "*"
	OpComponentwise Operator = ".*"
	OpHamilton      Operator = "@"
	OpPow           Operator = "^"
)

// ParseOperator validates an operator token.
func ParseOperator(s string) (Operator, error) {
	switch op := Operator(s); op {
	case OpAdd, OpSub, OpScale, OpComponentwise, OpHamilton, OpPow:
		return op, nil
	default:
		return "", NewInvalidArgumentError("unknown operator %q", s)
	}
}

// Operand holds exactly one of a scalar, a 3-vector, a quaternion, or a raw 4-vector.
type Operand struct {
	kind   OperandKind
	scalar float64
	vector r3.Vector
	quat   Quaternion
	raw    [4]float64
}

// ScalarOperand wraps a real number.
func ScalarOperand(k float64) Operand {
	return Operand{kind: ScalarKind, scalar: k}
}

// VectorOperand wraps a 3-vector.
func VectorOperand(v r3.Vector) Operand {
	return Operand{kind: VectorKind, vector: v}
}

// QuaternionOperand wraps a quaternion.
func QuaternionOperand(q Quaternion) Operand {
	return Operand{kind: QuaternionKind, quat: q}
}

// RawOperand wraps an unstructured 4-vector.
func RawOperand(r [4]float64) Operand {
	return Operand{kind: RawKind, raw: r}
}

// ParseOperand reads a scalar (one number), a vector (three numbers) or a quaternion (four numbers,
// or the "w + xi + yj + zk" form).
func ParseOperand(s string) (Operand, error) {
	vals, err := parseFloats(s)
	if err != nil {
		return Operand{}, err
	}
	switch len(vals) {
	case 1:
		return ScalarOperand(vals[0]), nil
	case 3:
		return VectorOperand(r3.Vector{X: vals[0], Y: vals[1], Z: vals[2]}), nil
	case 4:
		q, err := NewQuaternionFromSlice(vals)
		if err != nil {
			return Operand{}, err
		}
		return QuaternionOperand(q), nil
	default:
		return Operand{}, NewInvalidArgumentError("%q has %d numbers, expected 1, 3 or 4", s, len(vals))
	}
}

// Kind returns which value o holds.
func (o Operand) Kind() OperandKind { return o.kind }

// Scalar returns the scalar value and whether o holds one.
func (o Operand) Scalar() (float64, bool) { return o.scalar, o.kind == ScalarKind }

// Vector returns the vector value and whether o holds one.
func (o Operand) Vector() (r3.Vector, bool) { return o.vector, o.kind == VectorKind }

// Quaternion returns the quaternion value and whether o holds one.
func (o Operand) Quaternion() (Quaternion, bool) { return o.quat, o.kind == QuaternionKind }

// Raw returns the raw 4-vector value and whether o holds one.
func (o Operand) Raw() ([4]float64, bool) { return o.raw, o.kind == RawKind }

// Format formats the held value, using strconv.FormatFloat's format and precision for each number.
func (o Operand) Format(format byte, prec int) string {
	f := func(v float64) string { return strconv.FormatFloat(v, format, prec, 64) }
	switch o.kind {
	case ScalarKind:
		return f(o.scalar)
	case VectorKind:
		return "[" + f(o.vector.X) + " " + f(o.vector.Y) + " " + f(o.vector.Z) + "]"
	case QuaternionKind:
		return FormatQuaternion(o.quat, format, prec)
	case RawKind:
		return "[" + f(o.raw[0]) + " " + f(o.raw[1]) + " " + f(o.raw[2]) + " " + f(o.raw[3]) + "]"
	default:
		return o.kind.String()
	}
}

func (o Operand) String() string {
	return o.Format('g', -1)
}

// Apply evaluates lhs op rhs. The defined combinations are
//
//	q + q, q - q      -> quaternion
//	k * q, q * k      -> quaternion
//	q .* q            -> raw 4-vector (componentwise, not the quaternion product)
//	q @ q             -> quaternion (Hamilton product)
//	q @ v             -> vector (vector part of q*(0, v))
//	q ^ k             -> quaternion (Pow)
//
// Any other combination returns an error wrapping ErrUnsupportedOperand.
func Apply(lhs Operand, op Operator, rhs Operand) (Operand, error) {
	unsupported := func() (Operand, error) {
		return Operand{}, NewUnsupportedOperandError(lhs.kind, op, rhs.kind)
	}
	lq, lIsQ := lhs.Quaternion()
	rq, rIsQ := rhs.Quaternion()

	switch op {
	case OpAdd, OpSub:
		if !lIsQ || !rIsQ {
			return unsupported()
		}
		if op == OpAdd {
			return QuaternionOperand(Add(lq, rq)), nil
		}
		return QuaternionOperand(Sub(lq, rq)), nil
	case OpScale:
		if k, ok := lhs.Scalar(); ok && rIsQ {
			return QuaternionOperand(Scale(k, rq)), nil
		}
		if k, ok := rhs.Scalar(); ok && lIsQ {
			return QuaternionOperand(Scale(k, lq)), nil
		}
		return unsupported()
	case OpComponentwise:
		if !lIsQ || !rIsQ {
			return unsupported()
		}
		return RawOperand(ComponentwiseMul(lq, rq)), nil
	case OpHamilton:
		if !lIsQ {
			return unsupported()
		}
		if rIsQ {
			return QuaternionOperand(Hamilton(lq, rq)), nil
		}
		if v, ok := rhs.Vector(); ok {
			return VectorOperand(lq.MulVector(v)), nil
		}
		return unsupported()
	case OpPow:
		t, ok := rhs.Scalar()
		if !lIsQ || !ok {
			return unsupported()
		}
		p, err := Pow(lq, t)
		if err != nil {
			return Operand{}, err
		}
		return QuaternionOperand(p), nil
	default:
		return Operand{}, NewInvalidArgumentError("unknown operator %q", op)
	}
}
