package random

import (
	"math"

	"github.com/couchbase/tools-random/errors/definitions"
	"github.com/couchbase/tools-random/maths"
	"github.com/couchbase/tools-random/source"
)

// float represents the floating point types.
type float interface {
	~float32 | ~float64
}

// Float returns a floating point number in [mn..mx) by linearly interpolating a number returned by the source.
//
// NOTE: A 'NaN' bound results in a 'RangeError', as does an infinite bound unless both bounds are equal.
func Float[T float](src source.Source, mn, mx T) (T, error) {
	if !(mn <= mx) {
		return 0, definitions.NewMinValueError(mn)
	}

	if mn == mx {
		return mn, nil
	}

	var (
		lo = float64(mn)
		hi = float64(mx)
	)

	if math.IsInf(lo, 0) {
		return 0, &definitions.RangeError{Name: "minValue", Value: mn, Constraint: "must be finite"}
	}

	if math.IsInf(hi, 0) {
		return 0, &definitions.RangeError{Name: "maxValue", Value: mx, Constraint: "must be finite"}
	}

	for {
		f := src.Float64()

		v := (hi-lo)*f + lo
		if math.IsInf(hi-lo, 0) {
			v = lo*(1-f) + hi*f
		}

		// Rounding (to the precision of 'T' or of the interpolation itself) may land on the exclusive upper bound, in
		// which case we draw again.
		if n := maths.Max(T(v), mn); n < mx {
			return n, nil
		}
	}
}

// FloatN returns a floating point number in [0..mx), a negative 'mx' results in a 'RangeError'.
func FloatN[T float](src source.Source, mx T) (T, error) {
	if !(mx >= 0) {
		return 0, definitions.NewMaxValueError(mx)
	}

	return Float(src, 0, mx)
}

// Float32 returns a float32 in [0.0..1.0).
func Float32(src source.Source) float32 {
	n, _ := Float[float32](src, 0, 1)
	return n
}

// Float32N returns a float32 in [0.0..mx).
func Float32N(src source.Source, mx float32) (float32, error) {
	return FloatN(src, mx)
}

// Float32Range returns a float32 in [mn..mx).
func Float32Range(src source.Source, mn, mx float32) (float32, error) {
	return Float(src, mn, mx)
}

// Float64 returns a float64 in [0.0..1.0).
func Float64(src source.Source) float64 {
	return src.Float64()
}

// Float64N returns a float64 in [0.0..mx).
func Float64N(src source.Source, mx float64) (float64, error) {
	return FloatN(src, mx)
}

// Float64Range returns a float64 in [mn..mx).
func Float64Range(src source.Source, mn, mx float64) (float64, error) {
	return Float(src, mn, mx)
}
