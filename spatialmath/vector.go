package spatialmath

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// If a norm is smaller than this, we consider the quaternion (or its vector part) to be zero.
const normEpsilon = 1e-12

// checkLen returns an invalid shape error if s does not have exactly n elements.
func checkLen(s []float64, n int) error {
	if len(s) != n {
		return NewInvalidShapeError(n, len(s))
	}
	return nil
}

func norm4(a [4]float64) float64 {
	return floats.Norm(a[:], 2)
}

func add4(a, b [4]float64) [4]float64 {
	var dst [4]float64
	floats.AddTo(dst[:], a[:], b[:])
	return dst
}

func sub4(a, b [4]float64) [4]float64 {
	var dst [4]float64
	floats.SubTo(dst[:], a[:], b[:])
	return dst
}

func scale4(k float64, a [4]float64) [4]float64 {
	var dst [4]float64
	floats.ScaleTo(dst[:], k, a[:])
	return dst
}

func mul4(a, b [4]float64) [4]float64 {
	var dst [4]float64
	floats.MulTo(dst[:], a[:], b[:])
	return dst
}

// isFinite4 reports whether every component of a is neither NaN nor infinite.
func isFinite4(a [4]float64) bool {
	for _, v := range a {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
