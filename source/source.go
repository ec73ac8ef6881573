// Package source adapts a uniform pseudo-random generator into raw bit patterns of a fixed width.
package source

import (
	"encoding/binary"
	"io"
)

//go:generate mockery --name Source --case underscore --inpackage --exported

// Source is the subset of '*rand.Rand' used to generate random values.
//
// NOTE: Implementations don't need to be safe for concurrent use, however, the caller must then serialize access.
type Source interface {
	// Float64 returns a uniformly distributed number in [0.0, 1.0).
	Float64() float64

	// Int63n returns a uniformly distributed number in [0, n), it may panic if n <= 0.
	Int63n(n int64) int64

	// Read fills the given buffer with uniformly distributed bytes.
	Read(p []byte) (int, error)
}

// Word represents the unsigned integer widths which may be read directly from a 'Source'.
type Word interface {
	uint32 | uint64
}

// Uint32 returns 32 uniformly distributed bits interpreted as a little-endian 'uint32'.
//
// NOTE: Errors returned by the source are returned unchanged.
func Uint32(src Source) (uint32, error) {
	var buf [4]byte

	_, err := io.ReadFull(src, buf[:])
	if err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint32(buf[:]), nil
}

// Uint64 returns 64 uniformly distributed bits interpreted as a little-endian 'uint64'.
//
// NOTE: Errors returned by the source are returned unchanged.
func Uint64(src Source) (uint64, error) {
	var buf [8]byte

	_, err := io.ReadFull(src, buf[:])
	if err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint64(buf[:]), nil
}

// Bits returns a uniformly distributed value covering every bit of the given word width.
func Bits[T Word](src Source) (T, error) {
	var zero T

	if _, ok := any(zero).(uint32); ok {
		n, err := Uint32(src)
		return T(n), err
	}

	n, err := Uint64(src)

	return T(n), err
}
