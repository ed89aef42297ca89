// Package spatialmath defines quaternion algebra for representing 3D rotations and orientations.
package spatialmath

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"
)

// Quaternion is a four component hypercomplex number w + xi + yj + zk. W is the scalar (real) part
// and (x, y, z) the vector (imaginary) part.
//
// Quaternion is a value type: every operation returns a new Quaternion and no construction path
// keeps a reference to caller storage.
type Quaternion struct {
	q [4]float64
}

// NewQuaternion returns the quaternion w + xi + yj + zk.
func NewQuaternion(w, x, y, z float64) Quaternion {
	return Quaternion{[4]float64{w, x, y, z}}
}

// NewIdentityQuaternion returns the multiplicative identity (1, 0, 0, 0).
func NewIdentityQuaternion() Quaternion {
	return NewQuaternion(1, 0, 0, 0)
}

// NewQuaternionFromScalarVector returns the quaternion with scalar part s and vector part v.
func NewQuaternionFromScalarVector(s float64, v r3.Vector) Quaternion {
	return NewQuaternion(s, v.X, v.Y, v.Z)
}

// NewQuaternionFromScalarSlice returns the quaternion with scalar part s and vector part v.
// v must have exactly 3 elements.
func NewQuaternionFromScalarSlice(s float64, v []float64) (Quaternion, error) {
	if err := checkLen(v, 3); err != nil {
		return Quaternion{}, err
	}
	return NewQuaternion(s, v[0], v[1], v[2]), nil
}

// NewQuaternionFromSlice copies the 4 elements [w, x, y, z] of s into a new quaternion.
func NewQuaternionFromSlice(s []float64) (Quaternion, error) {
	if err := checkLen(s, 4); err != nil {
		return Quaternion{}, err
	}
	var q Quaternion
	copy(q.q[:], s)
	return q, nil
}

// NewQuaternionFromMatrix copies a 4x1 column or 1x4 row matrix into a new quaternion.
func NewQuaternionFromMatrix(m mat.Matrix) (Quaternion, error) {
	if m == nil {
		return Quaternion{}, NewInvalidArgumentError("cannot build a quaternion from a nil matrix")
	}
	var q Quaternion
	switch r, c := m.Dims(); {
	case r == 4 && c == 1:
		for i := range q.q {
			q.q[i] = m.At(i, 0)
		}
	case r == 1 && c == 4:
		for i := range q.q {
			q.q[i] = m.At(0, i)
		}
	default:
		return Quaternion{}, NewInvalidMatrixShapeError(r, c)
	}
	return q, nil
}

// NewQuaternionFromNumber converts a gonum quaternion.
func NewQuaternionFromNumber(n quat.Number) Quaternion {
	return NewQuaternion(n.Real, n.Imag, n.Jmag, n.Kmag)
}

// ParseQuaternion parses either a list of four numbers separated by commas or whitespace, or the
// "w + xi + yj + zk" form produced by String.
func ParseQuaternion(s string) (Quaternion, error) {
	vals, err := parseFloats(s)
	if err != nil {
		return Quaternion{}, err
	}
	if len(vals) != 4 {
		return Quaternion{}, NewInvalidArgumentError("expected 4 quaternion components in %q but got %d", s, len(vals))
	}
	return NewQuaternionFromSlice(vals)
}

// Clone returns a copy of q.
func (q Quaternion) Clone() Quaternion {
	return q
}

// W returns the scalar part.
func (q Quaternion) W() float64 { return q.q[0] }

// X returns the i component.
func (q Quaternion) X() float64 { return q.q[1] }

// Y returns the j component.
func (q Quaternion) Y() float64 { return q.q[2] }

// Z returns the k component.
func (q Quaternion) Z() float64 { return q.q[3] }

// V returns a copy of the vector part.
func (q Quaternion) V() r3.Vector {
	return r3.Vector{X: q.q[1], Y: q.q[2], Z: q.q[3]}
}

// Slice returns a newly allocated [w, x, y, z].
func (q Quaternion) Slice() []float64 {
	return []float64{q.q[0], q.q[1], q.q[2], q.q[3]}
}

// Array returns the components as [w, x, y, z].
func (q Quaternion) Array() [4]float64 {
	return q.q
}

// Number converts q to a gonum quaternion.
func (q Quaternion) Number() quat.Number {
	return quat.Number{Real: q.q[0], Imag: q.q[1], Jmag: q.q[2], Kmag: q.q[3]}
}

// Norm returns the Euclidean norm of all four components.
func (q Quaternion) Norm() float64 {
	return norm4(q.q)
}

// Norm2 returns the squared Euclidean norm of all four components.
func (q Quaternion) Norm2() float64 {
	return floats.Dot(q.q[:], q.q[:])
}

// Add returns a + b.
func Add(a, b Quaternion) Quaternion {
	return Quaternion{add4(a.q, b.q)}
}

// Sub returns a - b.
func Sub(a, b Quaternion) Quaternion {
	return Quaternion{sub4(a.q, b.q)}
}

// Neg returns -a.
func Neg(a Quaternion) Quaternion {
	return Scale(-1, a)
}

// Scale returns k*a.
func Scale(k float64, a Quaternion) Quaternion {
	return Quaternion{scale4(k, a.q)}
}

// ComponentwiseMul multiplies the four components of a and b pairwise. This is not quaternion
// multiplication (see Hamilton) and intentionally returns a raw 4-vector rather than a Quaternion.
func ComponentwiseMul(a, b Quaternion) [4]float64 {
	return mul4(a.q, b.q)
}

// Hamilton returns the quaternion product a*b. It is associative but not commutative, with
// i*i = j*j = k*k = -1 and i*j = k, j*k = i, k*i = j.
func Hamilton(a, b Quaternion) Quaternion {
	aw, av := a.W(), a.V()
	bw, bv := b.W(), b.V()
	return NewQuaternionFromScalarVector(
		aw*bw-av.Dot(bv),
		bv.Mul(aw).Add(av.Mul(bw)).Add(av.Cross(bv)),
	)
}

// Conj returns the conjugate (w, -v).
func Conj(a Quaternion) Quaternion {
	return NewQuaternion(a.q[0], -a.q[1], -a.q[2], -a.q[3])
}

// Inv returns the multiplicative inverse conj(a)/|a|^2, so that Hamilton(a, Inv(a)) is the identity.
func Inv(a Quaternion) (Quaternion, error) {
	n2 := a.Norm2()
	if r := 1 / n2; n2 == 0 || math.IsInf(r, 0) || math.IsNaN(r) {
		return Quaternion{}, NewDegenerateQuaternionError(a)
	}
	return Scale(1/n2, Conj(a)), nil
}

// Exp returns the exponential e^q = e^w (cos θ, sin θ v/θ) where θ = |v|.
// A quaternion with no vector part maps to (e^w, 0, 0, 0).
func Exp(q Quaternion) Quaternion {
	ew := math.Exp(q.W())
	v := q.V()
	theta := v.Norm()
	if theta < normEpsilon {
		return NewQuaternion(ew, 0, 0, 0)
	}
	sin, cos := math.Sincos(theta)
	return NewQuaternionFromScalarVector(ew*cos, v.Mul(ew*sin/theta))
}

// Log returns the natural logarithm (ln |q|, θ v/|v|) where θ = atan2(|v|, w) is the angle
// between q and the real axis.
// A positive real quaternion maps to (ln w, 0, 0, 0). A zero quaternion is degenerate and a negative
// real quaternion has no unique logarithm; both return an error.
func Log(q Quaternion) (Quaternion, error) {
	n := q.Norm()
	if n < normEpsilon {
		return Quaternion{}, NewDegenerateQuaternionError(q)
	}
	v := q.V()
	vn := v.Norm()
	if vn < normEpsilon {
		if q.W() < 0 {
			return Quaternion{}, NewSingularLogarithmError(q)
		}
		return NewQuaternion(math.Log(n), 0, 0, 0), nil
	}
	return NewQuaternionFromScalarVector(math.Log(n), v.Mul(math.Atan2(vn, q.W())/vn)), nil
}

// Pow returns q^t, defined as Exp(t * Log(q)). It fails wherever Log does.
func Pow(q Quaternion, t float64) (Quaternion, error) {
	l, err := Log(q)
	if err != nil {
		return Quaternion{}, err
	}
	return Exp(Scale(t, l)), nil
}

// AlmostEqual reports whether each component of a and b agrees within tol, absolute or relative.
func AlmostEqual(a, b Quaternion, tol float64) bool {
	for i := range a.q {
		if !scalar.EqualWithinAbsOrRel(a.q[i], b.q[i], tol, tol) {
			return false
		}
	}
	return true
}

// Add returns q + o.
func (q Quaternion) Add(o Quaternion) Quaternion { return Add(q, o) }

// Sub returns q - o.
func (q Quaternion) Sub(o Quaternion) Quaternion { return Sub(q, o) }

// Neg returns -q.
func (q Quaternion) Neg() Quaternion { return Neg(q) }

// Scale returns k*q.
func (q Quaternion) Scale(k float64) Quaternion { return Scale(k, q) }

// Mul returns the Hamilton product q*o.
func (q Quaternion) Mul(o Quaternion) Quaternion { return Hamilton(q, o) }

// Conj returns the conjugate of q.
func (q Quaternion) Conj() Quaternion { return Conj(q) }

// Inv returns the multiplicative inverse of q.
func (q Quaternion) Inv() (Quaternion, error) { return Inv(q) }

// Exp returns e^q.
func (q Quaternion) Exp() Quaternion { return Exp(q) }

// Log returns the natural logarithm of q.
func (q Quaternion) Log() (Quaternion, error) { return Log(q) }

// Pow returns q^t.
func (q Quaternion) Pow(t float64) (Quaternion, error) { return Pow(q, t) }

// MulVector embeds v as the pure quaternion (0, v), multiplies q*(0, v) and returns the vector part
// of the product. The scalar part is discarded.
func (q Quaternion) MulVector(v r3.Vector) r3.Vector {
	return Hamilton(q, NewQuaternionFromScalarVector(0, v)).V()
}

// MulSlice is MulVector for a 3 element slice.
func (q Quaternion) MulSlice(v []float64) ([]float64, error) {
	if err := checkLen(v, 3); err != nil {
		return nil, err
	}
	r := q.MulVector(r3.Vector{X: v[0], Y: v[1], Z: v[2]})
	return []float64{r.X, r.Y, r.Z}, nil
}

// String formats q as "w + xi + yj + zk".
func (q Quaternion) String() string {
	return FormatQuaternion(q, 'g', -1)
}

// GoString formats q as "Quaternion([w x y z])".
func (q Quaternion) GoString() string {
	return fmt.Sprintf("Quaternion(%v)", q.q)
}

// FormatQuaternion formats q as "w + xi + yj + zk" with each component converted by
// strconv.FormatFloat using the given format and precision.
func FormatQuaternion(q Quaternion, format byte, prec int) string {
	f := func(v float64) string { return strconv.FormatFloat(v, format, prec, 64) }
	return f(q.q[0]) + " + " + f(q.q[1]) + "i + " + f(q.q[2]) + "j + " + f(q.q[3]) + "k"
}

// parseFloats reads numbers separated by commas or whitespace, optionally wrapped in brackets,
// or the four terms of the "w + xi + yj + zk" form.
func parseFloats(s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, " + ") {
		return parseTerms(s)
	}
	s = strings.Trim(s, "[]()")
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	if len(fields) == 0 {
		return nil, NewInvalidArgumentError("no numbers in %q", s)
	}
	vals := make([]float64, 0, len(fields))
	for _, field := range fields {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, NewInvalidArgumentError("cannot parse %q as a number", field)
		}
		vals = append(vals, v)
	}
	return vals, nil
}

func parseTerms(s string) ([]float64, error) {
	terms := strings.Split(s, " + ")
	if len(terms) != 4 {
		return nil, NewInvalidArgumentError("expected 4 terms in %q but got %d", s, len(terms))
	}
	units := []string{"", "i", "j", "k"}
	vals := make([]float64, 4)
	for i, term := range terms {
		term = strings.TrimSpace(term)
		if units[i] != "" {
			if !strings.HasSuffix(term, units[i]) {
				return nil, NewInvalidArgumentError("term %q should end in %q", term, units[i])
			}
			term = strings.TrimSuffix(term, units[i])
		}
		v, err := strconv.ParseFloat(term, 64)
		if err != nil {
			return nil, NewInvalidArgumentError("cannot parse %q as a number", term)
		}
		vals[i] = v
	}
	return vals, nil
}
