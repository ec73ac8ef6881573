// Package uniform implements unbiased sampling of integers within a bounded range.
//
// Reducing a uniformly distributed word into a smaller range using the modulo operator over-represents the low
// residues whenever the range doesn't evenly divide the number of representable words. The functions in this package
// remove that bias using rejection sampling, discarding draws which fall into the over-represented band.
package uniform

import (
	"math"

	"github.com/couchbase/tools-random/errors/definitions"
	"github.com/couchbase/tools-random/source"
)

// Uint returns a uniformly distributed value in [mn, mx).
//
// NOTE: When 'mn' is equal to 'mx', 'mn' is returned without reading from the source.
func Uint[T source.Word](src source.Source, mn, mx T) (T, error) {
	if mn > mx {
		return 0, definitions.NewMinValueError(mn)
	}

	if mn == mx {
		return mn, nil
	}

	var (
		rng  = mx - mn
		top  = ^T(0)
		bias = top - top%rng
	)

	// 'bias' is a multiple of 'rng', every residue is equally likely for draws below it. The expected number of draws
	// is less than two for any range.
	for {
		n, err := source.Bits[T](src)
		if err != nil {
			return 0, err
		}

		if n < bias {
			return n%rng + mn, nil
		}
	}
}

// ToUnsigned maps the given signed value onto the unsigned domain whilst preserving order; 'math.MinInt64' maps to zero
// and 'math.MaxInt64' maps to 'math.MaxUint64'.
func ToUnsigned(n int64) uint64 {
	return uint64(n) ^ (math.MaxInt64 + 1)
}

// FromUnsigned is the inverse of 'ToUnsigned'.
func FromUnsigned(n uint64) int64 {
	return int64(n ^ (math.MaxInt64 + 1))
}

// Int64 returns a uniformly distributed value in [mn, mx), the full signed range may be requested without overflowing.
func Int64(src source.Source, mn, mx int64) (int64, error) {
	if mn > mx {
		return 0, definitions.NewMinValueError(mn)
	}

	n, err := Uint(src, ToUnsigned(mn), ToUnsigned(mx))
	if err != nil {
		return 0, err
	}

	return FromUnsigned(n), nil
}
