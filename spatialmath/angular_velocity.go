package spatialmath

import (
	"github.com/golang/geo/r3"
)

// AngularVelocity contains angular velocity in rad/s across x/y/z axes.
type AngularVelocity r3.Vector

// NewAngularVelocityFromRotation returns the constant angular velocity that turns by delta over dt
// seconds, taking the shorter way around.
func NewAngularVelocityFromRotation(delta *UnitQuaternion, dt float64) (AngularVelocity, error) {
	if delta == nil {
		return AngularVelocity{}, NewInvalidArgumentError("rotation must not be nil")
	}
	if dt <= 0 {
		return AngularVelocity{}, NewInvalidArgumentError("time difference must be positive but got %g", dt)
	}
	q := delta.Quaternion()
	// q and -q are the same rotation; the one with w >= 0 turns by at most π
	if q.W() < 0 {
		q = Neg(q)
	}
	l, err := Log(q)
	if err != nil {
		return AngularVelocity{}, err
	}
	return AngularVelocity(l.V().Mul(2 / dt)), nil
}

// Integrate returns the rotation produced by turning at av for dt seconds.
func (av AngularVelocity) Integrate(dt float64) *UnitQuaternion {
	half := r3.Vector(av).Mul(dt / 2)
	// exp of a pure quaternion always has unit norm
	return &UnitQuaternion{Exp(NewQuaternionFromScalarVector(0, half))}
}
