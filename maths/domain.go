package maths

import "golang.org/x/exp/constraints"

// Domain describes the values representable by an integer type.
type Domain[T constraints.Integer] struct {
	// Bits is the width of the type e.g. 16 for 'int16'.
	Bits int

	// Signed indicates whether the type may represent negative values.
	Signed bool

	// Min is the smallest representable value.
	Min T

	// Max is the largest representable value.
	Max T
}

// DomainOf returns the 'Domain' of the integer type 'T'.
//
// NOTE: Platform dependent types such as 'int' and 'uintptr' report the width used by the current architecture.
func DomainOf[T constraints.Integer]() Domain[T] {
	var bits int

	// Shifting a single bit out of any fixed width integer (signed or unsigned) results in zero.
	for v := T(1); v != 0; v <<= 1 {
		bits++
	}

	var zero T

	if ^zero > zero {
		return Domain[T]{Bits: bits, Max: ^zero}
	}

	mn := T(1) << (bits - 1)

	return Domain[T]{Bits: bits, Signed: true, Min: mn, Max: ^mn}
}
