package spatialmath

import (
	"github.com/golang/geo/r3"
)

// UnitQuaternion is a quaternion with unit norm, useful for representing 3D rotations. It can only
// be built through the NewUnitQuaternion* functions, all of which normalize their input.
//
// Operations shared with Quaternion (Hamilton, Add, Pow, ...) work on the general Quaternion
// returned by the Quaternion method and do not renormalize. Composing rotations that way slowly
// drifts off the unit sphere; use Compose, or wrap the result with NewUnitQuaternionFromQuaternion.
//
// Renormalize mutates the receiver, so concurrent calls on the same value must be serialized by the
// caller.
type UnitQuaternion struct {
	q Quaternion
}

// NewUnitQuaternion normalizes w + xi + yj + zk.
func NewUnitQuaternion(w, x, y, z float64) (*UnitQuaternion, error) {
	return NewUnitQuaternionFromQuaternion(NewQuaternion(w, x, y, z))
}

// NewIdentityUnitQuaternion returns the unit quaternion representing no rotation.
func NewIdentityUnitQuaternion() *UnitQuaternion {
	return &UnitQuaternion{NewIdentityQuaternion()}
}

// NewUnitQuaternionFromQuaternion returns q scaled to unit norm.
func NewUnitQuaternionFromQuaternion(q Quaternion) (*UnitQuaternion, error) {
	uq := &UnitQuaternion{q}
	if err := uq.Renormalize(); err != nil {
		return nil, err
	}
	return uq, nil
}

// NewUnitQuaternionFromSlice normalizes the 4 elements [w, x, y, z] of s.
func NewUnitQuaternionFromSlice(s []float64) (*UnitQuaternion, error) {
	q, err := NewQuaternionFromSlice(s)
	if err != nil {
		return nil, err
	}
	return NewUnitQuaternionFromQuaternion(q)
}

// Renormalize divides the components by the current norm. It is idempotent for a quaternion that is
// already unit norm.
func (uq *UnitQuaternion) Renormalize() error {
	n := uq.q.Norm()
	if n < normEpsilon || !isFinite4(uq.q.q) {
		return NewDegenerateQuaternionError(uq.q)
	}
	uq.q = Scale(1/n, uq.q)
	return nil
}

// Quaternion returns the general quaternion underlying uq.
func (uq *UnitQuaternion) Quaternion() Quaternion {
	return uq.q
}

// W returns the scalar part.
func (uq *UnitQuaternion) W() float64 { return uq.q.W() }

// X returns the i component.
func (uq *UnitQuaternion) X() float64 { return uq.q.X() }

// Y returns the j component.
func (uq *UnitQuaternion) Y() float64 { return uq.q.Y() }

// Z returns the k component.
func (uq *UnitQuaternion) Z() float64 { return uq.q.Z() }

// V returns a copy of the vector part.
func (uq *UnitQuaternion) V() r3.Vector { return uq.q.V() }

// Norm returns the norm, which is 1 up to floating point error.
func (uq *UnitQuaternion) Norm() float64 { return uq.q.Norm() }

// Conj returns the conjugate, which is also unit norm.
func (uq *UnitQuaternion) Conj() *UnitQuaternion {
	return &UnitQuaternion{Conj(uq.q)}
}

// Inv returns the inverse. For a unit quaternion this is the conjugate, so no division is needed.
func (uq *UnitQuaternion) Inv() *UnitQuaternion {
	return uq.Conj()
}

// Rotate applies the rotation to v with the sandwich product q (0, v) q*.
func (uq *UnitQuaternion) Rotate(v r3.Vector) r3.Vector {
	return Hamilton(Hamilton(uq.q, NewQuaternionFromScalarVector(0, v)), Conj(uq.q)).V()
}

// String formats uq as "w + xi + yj + zk".
func (uq *UnitQuaternion) String() string {
	return uq.q.String()
}

// Compose returns the rotation a applied after b, i.e. the renormalized product a*b.
func Compose(a, b *UnitQuaternion) (*UnitQuaternion, error) {
	if a == nil || b == nil {
		return nil, NewInvalidArgumentError("cannot compose a nil rotation")
	}
	return NewUnitQuaternionFromQuaternion(Hamilton(a.q, b.q))
}

// Between returns the rotation that takes orientation a to orientation b, i.e. b*conj(a).
func Between(a, b *UnitQuaternion) (*UnitQuaternion, error) {
	if a == nil || b == nil {
		return nil, NewInvalidArgumentError("cannot take the rotation between nil orientations")
	}
	return NewUnitQuaternionFromQuaternion(Hamilton(b.q, Conj(a.q)))
}
