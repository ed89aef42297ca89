package spatialmath

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"go.viam.com/test"
)

func TestUnitQuaternionNormalization(t *testing.T) {
	uq, err := NewUnitQuaternionFromQuaternion(q1)
	test.That(t, err, test.ShouldBeNil)
	quaternionShouldAlmostEqual(t, uq.Quaternion(), Scale(math.Pow(30, -0.5), q1))
	test.That(t, uq.Norm(), test.ShouldAlmostEqual, 1.)

	uq, err = NewUnitQuaternionFromSlice([]float64{1, 2, 3, 4})
	test.That(t, err, test.ShouldBeNil)
	quaternionShouldAlmostEqual(t, uq.Quaternion(), Scale(math.Pow(30, -0.5), q1))

	_, err = NewUnitQuaternionFromSlice([]float64{1, 2})
	test.That(t, errors.Is(err, ErrInvalidShape), test.ShouldBeTrue)

	uq, err = NewUnitQuaternion(0.5, 0.5, 0.5, 0.5)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, uq.W(), test.ShouldAlmostEqual, 0.5)
	test.That(t, uq.X(), test.ShouldAlmostEqual, 0.5)
	test.That(t, uq.Y(), test.ShouldAlmostEqual, 0.5)
	test.That(t, uq.Z(), test.ShouldAlmostEqual, 0.5)
	test.That(t, uq.V(), test.ShouldResemble, uq.Quaternion().V())
	test.That(t, uq.String(), test.ShouldEqual, uq.Quaternion().String())
}

func TestUnitQuaternionDegenerate(t *testing.T) {
	_, err := NewUnitQuaternion(0, 0, 0, 0)
	test.That(t, errors.Is(err, ErrDegenerateQuaternion), test.ShouldBeTrue)

	_, err = NewUnitQuaternion(math.NaN(), 0, 0, 1)
	test.That(t, errors.Is(err, ErrDegenerateQuaternion), test.ShouldBeTrue)

	var zero UnitQuaternion
	test.That(t, errors.Is(zero.Renormalize(), ErrDegenerateQuaternion), test.ShouldBeTrue)
}

func TestRenormalizeIdempotent(t *testing.T) {
	uq, err := NewUnitQuaternion(1, 2, 3, 4)
	test.That(t, err, test.ShouldBeNil)
	before := uq.Quaternion()
	test.That(t, uq.Renormalize(), test.ShouldBeNil)
	test.That(t, uq.Renormalize(), test.ShouldBeNil)
	quaternionShouldAlmostEqual(t, uq.Quaternion(), before)
}

func TestUnitQuaternionInverse(t *testing.T) {
	uq, err := NewUnitQuaternion(0.3, -1.2, 2.5, 0.7)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, uq.Inv(), test.ShouldResemble, uq.Conj())
	test.That(t, uq.Conj().Quaternion(), test.ShouldResemble, Conj(uq.Quaternion()))
	quaternionShouldAlmostEqual(t, Hamilton(uq.Quaternion(), uq.Inv().Quaternion()), qID)

	general, err := Inv(uq.Quaternion())
	test.That(t, err, test.ShouldBeNil)
	quaternionShouldAlmostEqual(t, uq.Inv().Quaternion(), general)
}

func TestUnitQuaternionPow(t *testing.T) {
	uq, err := NewUnitQuaternion(0.5, 0.5, 0.5, 0.5)
	test.That(t, err, test.ShouldBeNil)
	cube, err := Pow(uq.Quaternion(), 3)
	test.That(t, err, test.ShouldBeNil)
	quaternionShouldAlmostEqual(t, cube, Neg(qID))
}

func TestRotate(t *testing.T) {
	quarterZ, err := NewUnitQuaternionFromAxisAngle(&R4AA{Theta: math.Pi / 2, RZ: 1})
	test.That(t, err, test.ShouldBeNil)
	v := quarterZ.Rotate(r3.Vector{X: 1})
	test.That(t, v.X, test.ShouldAlmostEqual, 0.)
	test.That(t, v.Y, test.ShouldAlmostEqual, 1.)
	test.That(t, v.Z, test.ShouldAlmostEqual, 0.)

	// rotation preserves length
	w := quarterZ.Rotate(r3.Vector{X: 1, Y: 2, Z: 3})
	test.That(t, w.Norm(), test.ShouldAlmostEqual, math.Sqrt(14))

	back := quarterZ.Inv().Rotate(v)
	test.That(t, back.X, test.ShouldAlmostEqual, 1.)
	test.That(t, back.Y, test.ShouldAlmostEqual, 0.)
}

func TestCompose(t *testing.T) {
	quarterZ, err := NewUnitQuaternionFromAxisAngle(&R4AA{Theta: math.Pi / 2, RZ: 1})
	test.That(t, err, test.ShouldBeNil)
	half, err := Compose(quarterZ, quarterZ)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, half.Norm(), test.ShouldAlmostEqual, 1.)
	v := half.Rotate(r3.Vector{X: 1})
	test.That(t, v.X, test.ShouldAlmostEqual, -1.)
	test.That(t, v.Y, test.ShouldAlmostEqual, 0.)

	// applying many compositions keeps the result on the unit sphere
	small, err := NewUnitQuaternionFromAxisAngle(&R4AA{Theta: 0.001, RX: 1, RY: 2, RZ: 3})
	test.That(t, err, test.ShouldBeNil)
	acc := NewIdentityUnitQuaternion()
	for i := 0; i < 10000; i++ {
		acc, err = Compose(small, acc)
		test.That(t, err, test.ShouldBeNil)
	}
	test.That(t, acc.Norm(), test.ShouldAlmostEqual, 1.)
	// 10 radians about (1, 2, 3) is reported as 4π-10 radians about -(1, 2, 3)
	test.That(t, acc.AxisAngle().Theta, test.ShouldAlmostEqual, 4*math.Pi-10, 1e-6)
	test.That(t, acc.AxisAngle().RZ, test.ShouldAlmostEqual, -3/math.Sqrt(14), 1e-6)
}

func TestBetween(t *testing.T) {
	a, err := NewUnitQuaternionFromAxisAngle(&R4AA{Theta: 0.4, RX: 1})
	test.That(t, err, test.ShouldBeNil)
	b, err := NewUnitQuaternionFromAxisAngle(&R4AA{Theta: 1.1, RY: 1, RZ: 1})
	test.That(t, err, test.ShouldBeNil)

	delta, err := Between(a, b)
	test.That(t, err, test.ShouldBeNil)
	got, err := Compose(delta, a)
	test.That(t, err, test.ShouldBeNil)
	quaternionShouldAlmostEqual(t, got.Quaternion(), b.Quaternion())
}

func TestNilRotations(t *testing.T) {
	id := NewIdentityUnitQuaternion()
	for _, pair := range [][2]*UnitQuaternion{{nil, id}, {id, nil}, {nil, nil}} {
		_, err := Compose(pair[0], pair[1])
		test.That(t, errors.Is(err, ErrInvalidArgument), test.ShouldBeTrue)
		_, err = Between(pair[0], pair[1])
		test.That(t, errors.Is(err, ErrInvalidArgument), test.ShouldBeTrue)
	}
}
