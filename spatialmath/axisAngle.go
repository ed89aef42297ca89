package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
)

// See here for a thorough explanation: https://en.wikipedia.org/wiki/Axis%E2%80%93angle_representation
// An orientation can be expressed by an axis, a point (rx, ry, rz) on the unit sphere, and a rotation
// theta around that axis. These four numbers can be used as-is (R4), or converted to R3, where theta is
// multiplied by the axis to give a vector whose length is theta.

// R4AA represents an R4 axis angle.
type R4AA struct {
	Theta float64
	RX    float64
	RY    float64
	RZ    float64
}

// NewR4AA returns the zero rotation about the z axis.
func NewR4AA() *R4AA {
	return &R4AA{Theta: 0, RX: 0, RY: 0, RZ: 1}
}

// ToR3 converts an R4 axis angle to R3.
func (r4 *R4AA) ToR3() r3.Vector {
	return r3.Vector{X: r4.RX * r4.Theta, Y: r4.RY * r4.Theta, Z: r4.RZ * r4.Theta}
}

// Normalize scales the axis onto the unit sphere.
func (r4 *R4AA) Normalize() error {
	norm := math.Sqrt(r4.RX*r4.RX + r4.RY*r4.RY + r4.RZ*r4.RZ)
	if norm < normEpsilon {
		return NewInvalidArgumentError("cannot normalize axis (%g, %g, %g)", r4.RX, r4.RY, r4.RZ)
	}
	r4.RX /= norm
	r4.RY /= norm
	r4.RZ /= norm
	return nil
}

// R3ToR4 converts an R3 axis angle to R4. The zero vector maps to the zero rotation.
func R3ToR4(aa r3.Vector) *R4AA {
	theta := aa.Norm()
	if theta < normEpsilon {
		return NewR4AA()
	}
	return &R4AA{theta, aa.X / theta, aa.Y / theta, aa.Z / theta}
}

// NewUnitQuaternionFromAxisAngle returns the rotation of r4.Theta radians about the r4 axis.
// See: https://www.euclideanspace.com/maths/geometry/rotations/conversions/angleToQuaternion/index.htm
func NewUnitQuaternionFromAxisAngle(r4 *R4AA) (*UnitQuaternion, error) {
	if r4 == nil {
		return nil, NewInvalidArgumentError("axis angle must not be nil")
	}
	axis := *r4
	if err := axis.Normalize(); err != nil {
		return nil, err
	}
	sin, cos := math.Sincos(axis.Theta / 2)
	return NewUnitQuaternion(cos, axis.RX*sin, axis.RY*sin, axis.RZ*sin)
}

// AxisAngle converts uq to an R4 axis angle in the same way the C++ Eigen library does.
// https://eigen.tuxfamily.org/dox/AngleAxis_8h_source.html
func (uq *UnitQuaternion) AxisAngle() *R4AA {
	v := uq.V()
	denom := v.Norm()

	angle := 2 * math.Atan2(denom, math.Abs(uq.W()))
	if uq.W() < 0 {
		angle *= -1
	}

	if denom < 1e-6 {
		return &R4AA{Theta: angle, RX: 0, RY: 0, RZ: 1}
	}
	return &R4AA{angle, v.X / denom, v.Y / denom, v.Z / denom}
}
