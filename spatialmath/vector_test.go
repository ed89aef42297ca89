package spatialmath

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"go.viam.com/test"
)

func TestVectorOps(t *testing.T) {
	a := [4]float64{1, 2, 3, 4}
	b := [4]float64{0, 0, 0, 1}
	test.That(t, norm4(a), test.ShouldAlmostEqual, math.Sqrt(30))
	test.That(t, add4(a, b), test.ShouldResemble, [4]float64{1, 2, 3, 5})
	test.That(t, sub4(a, b), test.ShouldResemble, [4]float64{1, 2, 3, 3})
	test.That(t, scale4(2, a), test.ShouldResemble, [4]float64{2, 4, 6, 8})
	test.That(t, mul4(a, a), test.ShouldResemble, [4]float64{1, 4, 9, 16})
	test.That(t, isFinite4(a), test.ShouldBeTrue)
	test.That(t, isFinite4([4]float64{math.Inf(1), 0, 0, 0}), test.ShouldBeFalse)

	test.That(t, checkLen([]float64{1, 2, 3}, 3), test.ShouldBeNil)
	err := checkLen([]float64{1, 2, 3}, 4)
	test.That(t, errors.Is(err, ErrInvalidShape), test.ShouldBeTrue)
}
