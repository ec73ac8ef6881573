package random

import (
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/couchbase/tools-random/errors/definitions"
	"github.com/couchbase/tools-random/maths"
	"github.com/couchbase/tools-random/source"
)

// DecimalDigits is the number of uniformly distributed fractional digits in the decimals returned by 'Decimal'.
const DecimalDigits = 29

// maxChunkDigits is the number of digits drawn from the source at once; 10^18 is the largest power of ten which fits in
// an 'int64'.
const maxChunkDigits = 18

// Decimal returns a decimal in [0..1) with 'DecimalDigits' uniformly distributed fractional digits.
func Decimal(src source.Source) decimal.Decimal {
	return fraction(src, DecimalDigits)
}

// DecimalN returns a decimal in [0..mx), a negative 'mx' results in a 'RangeError'.
func DecimalN(src source.Source, mx decimal.Decimal) (decimal.Decimal, error) {
	if mx.IsNegative() {
		return decimal.Zero, definitions.NewMaxValueError(mx)
	}

	return DecimalRange(src, decimal.Zero, mx)
}

// DecimalRange returns a decimal in [mn..mx).
func DecimalRange(src source.Source, mn, mx decimal.Decimal) (decimal.Decimal, error) {
	return decimalRange(src, mn, mx, DecimalDigits)
}

func decimalRange(src source.Source, mn, mx decimal.Decimal, digits int) (decimal.Decimal, error) {
	if mn.GreaterThan(mx) {
		return decimal.Zero, definitions.NewMinValueError(mn)
	}

	if mn.Equal(mx) {
		return mn, nil
	}

	return mx.Sub(mn).Mul(fraction(src, digits)).Add(mn), nil
}

// fraction returns a decimal in [0..1) made up of the given number of uniformly distributed fractional digits.
//
// Digits are drawn in chunks, a uniform number in [0..10^n) is equivalent to 'n' uniform digits.
func fraction(src source.Source, digits int) decimal.Decimal {
	coefficient := new(big.Int)

	for remaining := digits; remaining > 0; {
		n := maths.Min(remaining, maxChunkDigits)

		scale := int64(1)
		for i := 0; i < n; i++ {
			scale *= 10
		}

		coefficient.Mul(coefficient, big.NewInt(scale))
		coefficient.Add(coefficient, big.NewInt(src.Int63n(scale)))

		remaining -= n
	}

	return decimal.NewFromBigInt(coefficient, -int32(digits))
}
