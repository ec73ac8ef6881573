// Package random provides uniformly distributed random values of each of the numeric types, either across their
// default range or within a caller supplied range, using a caller supplied 'source.Source'.
//
// Ranges are inclusive of the lower bound, and exclusive of the upper bound.
package random

import (
	"golang.org/x/exp/constraints"

	"github.com/couchbase/tools-random/errors/definitions"
	"github.com/couchbase/tools-random/maths"
	"github.com/couchbase/tools-random/source"
	"github.com/couchbase/tools-random/uniform"
)

// Integer returns an integer in [mn..mx).
//
// Types narrower than 32 bits (and 'int32') use the source's native bounded primitive, wider types are sampled from
// raw bits using an unbiased rejection sampler.
func Integer[T constraints.Integer](src source.Source, mn, mx T) (T, error) {
	if mn > mx {
		return 0, definitions.NewMinValueError(mn)
	}

	if mn == mx {
		return mn, nil
	}

	domain := maths.DomainOf[T]()

	switch {
	case domain.Bits < 32 || (domain.Bits == 32 && domain.Signed):
		return T(int64(mn) + src.Int63n(int64(mx)-int64(mn))), nil
	case domain.Bits == 32:
		n, err := uniform.Uint(src, uint32(mn), uint32(mx))
		return T(n), err
	case domain.Signed:
		n, err := uniform.Int64(src, int64(mn), int64(mx))
		return T(n), err
	default:
		n, err := uniform.Uint(src, uint64(mn), uint64(mx))
		return T(n), err
	}
}

// IntegerN returns an integer in [0..mx), a negative 'mx' results in a 'RangeError'.
func IntegerN[T constraints.Integer](src source.Source, mx T) (T, error) {
	if mx < 0 {
		return 0, definitions.NewMaxValueError(mx)
	}

	return Integer(src, 0, mx)
}

// next returns an integer in [0..max) where max is the largest value representable by 'T'.
//
// NOTE: The maximum value is never returned, this matches the exclusive upper bound of the other functions.
func next[T constraints.Integer](src source.Source) (T, error) {
	return Integer(src, 0, maths.DomainOf[T]().Max)
}

// Byte returns a byte in [0..255).
func Byte(src source.Source) (byte, error) {
	return next[byte](src)
}

// ByteN returns a byte in [0..mx).
func ByteN(src source.Source, mx byte) (byte, error) {
	return IntegerN(src, mx)
}

// ByteRange returns a byte in [mn..mx).
func ByteRange(src source.Source, mn, mx byte) (byte, error) {
	return Integer(src, mn, mx)
}

// Int8 returns an int8 in [0..127).
func Int8(src source.Source) (int8, error) {
	return next[int8](src)
}

// Int8N returns an int8 in [0..mx).
func Int8N(src source.Source, mx int8) (int8, error) {
	return IntegerN(src, mx)
}

// Int8Range returns an int8 in [mn..mx).
func Int8Range(src source.Source, mn, mx int8) (int8, error) {
	return Integer(src, mn, mx)
}

// Int16 returns an int16 in [0..32767).
func Int16(src source.Source) (int16, error) {
	return next[int16](src)
}

// Int16N returns an int16 in [0..mx).
func Int16N(src source.Source, mx int16) (int16, error) {
	return IntegerN(src, mx)
}

// Int16Range returns an int16 in [mn..mx).
func Int16Range(src source.Source, mn, mx int16) (int16, error) {
	return Integer(src, mn, mx)
}

// Uint16 returns a uint16 in [0..65535).
func Uint16(src source.Source) (uint16, error) {
	return next[uint16](src)
}

// Uint16N returns a uint16 in [0..mx).
func Uint16N(src source.Source, mx uint16) (uint16, error) {
	return IntegerN(src, mx)
}

// Uint16Range returns a uint16 in [mn..mx).
func Uint16Range(src source.Source, mn, mx uint16) (uint16, error) {
	return Integer(src, mn, mx)
}

// Uint32 returns a uint32 in [0..math.MaxUint32).
func Uint32(src source.Source) (uint32, error) {
	return next[uint32](src)
}

// Uint32N returns a uint32 in [0..mx).
func Uint32N(src source.Source, mx uint32) (uint32, error) {
	return IntegerN(src, mx)
}

// Uint32Range returns a uint32 in [mn..mx).
func Uint32Range(src source.Source, mn, mx uint32) (uint32, error) {
	return Integer(src, mn, mx)
}

// Int64 returns an int64 in [0..math.MaxInt64).
func Int64(src source.Source) (int64, error) {
	return next[int64](src)
}

// Int64N returns an int64 in [0..mx).
func Int64N(src source.Source, mx int64) (int64, error) {
	return IntegerN(src, mx)
}

// Int64Range returns an int64 in [mn..mx), the full range [math.MinInt64..math.MaxInt64) may be requested.
func Int64Range(src source.Source, mn, mx int64) (int64, error) {
	return Integer(src, mn, mx)
}

// Uint64 returns a uint64 in [0..math.MaxUint64).
func Uint64(src source.Source) (uint64, error) {
	return next[uint64](src)
}

// Uint64N returns a uint64 in [0..mx).
func Uint64N(src source.Source, mx uint64) (uint64, error) {
	return IntegerN(src, mx)
}

// Uint64Range returns a uint64 in [mn..mx).
func Uint64Range(src source.Source, mn, mx uint64) (uint64, error) {
	return Integer(src, mn, mx)
}
