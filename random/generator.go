package random

import (
	"errors"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/couchbase/tools-random/errors/definitions"
	"github.com/couchbase/tools-random/source"
)

// Generator binds a source to the functions in this package, logging any invalid requests or source failures.
//
// NOTE: A Generator is only safe for concurrent use when its source is.
type Generator struct {
	src    source.Source
	logger *slog.Logger
	digits int
}

// NewGenerator returns a new generator which reads from the given source.
func NewGenerator(src source.Source, options Options) *Generator {
	options.defaults()

	return &Generator{src: src, logger: options.Logger, digits: options.DecimalDigits}
}

// Source returns the source the generator reads from.
func (g *Generator) Source() source.Source {
	return g.src
}

// check logs the given error, if any, before returning it unchanged.
func (g *Generator) check(op string, err error) error {
	if err == nil {
		return nil
	}

	var rangeErr *definitions.RangeError

	if errors.As(err, &rangeErr) {
		g.logger.Debug("invalid range requested", "op", op, "name", rangeErr.Name, "value", rangeErr.Value)
	} else {
		g.logger.Warn("failed to read from random source", "op", op, "err", err)
	}

	return err
}

// Byte returns a byte in [0..255).
func (g *Generator) Byte() (byte, error) {
	n, err := Byte(g.src)
	return n, g.check("Byte", err)
}

// ByteN returns a byte in [0..mx).
func (g *Generator) ByteN(mx byte) (byte, error) {
	n, err := ByteN(g.src, mx)
	return n, g.check("ByteN", err)
}

// ByteRange returns a byte in [mn..mx).
func (g *Generator) ByteRange(mn, mx byte) (byte, error) {
	n, err := ByteRange(g.src, mn, mx)
	return n, g.check("ByteRange", err)
}

// Int8 returns an int8 in [0..127).
func (g *Generator) Int8() (int8, error) {
	n, err := Int8(g.src)
	return n, g.check("Int8", err)
}

// Int8N returns an int8 in [0..mx).
func (g *Generator) Int8N(mx int8) (int8, error) {
	n, err := Int8N(g.src, mx)
	return n, g.check("Int8N", err)
}

// Int8Range returns an int8 in [mn..mx).
func (g *Generator) Int8Range(mn, mx int8) (int8, error) {
	n, err := Int8Range(g.src, mn, mx)
	return n, g.check("Int8Range", err)
}

// Int16 returns an int16 in [0..32767).
func (g *Generator) Int16() (int16, error) {
	n, err := Int16(g.src)
	return n, g.check("Int16", err)
}

// Int16N returns an int16 in [0..mx).
func (g *Generator) Int16N(mx int16) (int16, error) {
	n, err := Int16N(g.src, mx)
	return n, g.check("Int16N", err)
}

// Int16Range returns an int16 in [mn..mx).
func (g *Generator) Int16Range(mn, mx int16) (int16, error) {
	n, err := Int16Range(g.src, mn, mx)
	return n, g.check("Int16Range", err)
}

// Uint16 returns a uint16 in [0..65535).
func (g *Generator) Uint16() (uint16, error) {
	n, err := Uint16(g.src)
	return n, g.check("Uint16", err)
}

// Uint16N returns a uint16 in [0..mx).
func (g *Generator) Uint16N(mx uint16) (uint16, error) {
	n, err := Uint16N(g.src, mx)
	return n, g.check("Uint16N", err)
}

// Uint16Range returns a uint16 in [mn..mx).
func (g *Generator) Uint16Range(mn, mx uint16) (uint16, error) {
	n, err := Uint16Range(g.src, mn, mx)
	return n, g.check("Uint16Range", err)
}

// Uint32 returns a uint32 in [0..math.MaxUint32).
func (g *Generator) Uint32() (uint32, error) {
	n, err := Uint32(g.src)
	return n, g.check("Uint32", err)
}

// Uint32N returns a uint32 in [0..mx).
func (g *Generator) Uint32N(mx uint32) (uint32, error) {
	n, err := Uint32N(g.src, mx)
	return n, g.check("Uint32N", err)
}

// Uint32Range returns a uint32 in [mn..mx).
func (g *Generator) Uint32Range(mn, mx uint32) (uint32, error) {
	n, err := Uint32Range(g.src, mn, mx)
	return n, g.check("Uint32Range", err)
}

// Int64 returns an int64 in [0..math.MaxInt64).
func (g *Generator) Int64() (int64, error) {
	n, err := Int64(g.src)
	return n, g.check("Int64", err)
}

// Int64N returns an int64 in [0..mx).
func (g *Generator) Int64N(mx int64) (int64, error) {
	n, err := Int64N(g.src, mx)
	return n, g.check("Int64N", err)
}

// Int64Range returns an int64 in [mn..mx).
func (g *Generator) Int64Range(mn, mx int64) (int64, error) {
	n, err := Int64Range(g.src, mn, mx)
	return n, g.check("Int64Range", err)
}

// Uint64 returns a uint64 in [0..math.MaxUint64).
func (g *Generator) Uint64() (uint64, error) {
	n, err := Uint64(g.src)
	return n, g.check("Uint64", err)
}

// Uint64N returns a uint64 in [0..mx).
func (g *Generator) Uint64N(mx uint64) (uint64, error) {
	n, err := Uint64N(g.src, mx)
	return n, g.check("Uint64N", err)
}

// Uint64Range returns a uint64 in [mn..mx).
func (g *Generator) Uint64Range(mn, mx uint64) (uint64, error) {
	n, err := Uint64Range(g.src, mn, mx)
	return n, g.check("Uint64Range", err)
}

// Float32 returns a float32 in [0.0..1.0).
func (g *Generator) Float32() float32 {
	return Float32(g.src)
}

// Float32N returns a float32 in [0.0..mx).
func (g *Generator) Float32N(mx float32) (float32, error) {
	n, err := Float32N(g.src, mx)
	return n, g.check("Float32N", err)
}

// Float32Range returns a float32 in [mn..mx).
func (g *Generator) Float32Range(mn, mx float32) (float32, error) {
	n, err := Float32Range(g.src, mn, mx)
	return n, g.check("Float32Range", err)
}

// Float64 returns a float64 in [0.0..1.0).
func (g *Generator) Float64() float64 {
	return Float64(g.src)
}

// Float64N returns a float64 in [0.0..mx).
func (g *Generator) Float64N(mx float64) (float64, error) {
	n, err := Float64N(g.src, mx)
	return n, g.check("Float64N", err)
}

// Float64Range returns a float64 in [mn..mx).
func (g *Generator) Float64Range(mn, mx float64) (float64, error) {
	n, err := Float64Range(g.src, mn, mx)
	return n, g.check("Float64Range", err)
}

// Decimal returns a decimal in [0..1) with the configured number of fractional digits.
func (g *Generator) Decimal() decimal.Decimal {
	return fraction(g.src, g.digits)
}

// DecimalN returns a decimal in [0..mx).
func (g *Generator) DecimalN(mx decimal.Decimal) (decimal.Decimal, error) {
	if mx.IsNegative() {
		return decimal.Zero, g.check("DecimalN", definitions.NewMaxValueError(mx))
	}

	n, err := decimalRange(g.src, decimal.Zero, mx, g.digits)

	return n, g.check("DecimalN", err)
}

// DecimalRange returns a decimal in [mn..mx).
func (g *Generator) DecimalRange(mn, mx decimal.Decimal) (decimal.Decimal, error) {
	n, err := decimalRange(g.src, mn, mx, g.digits)
	return n, g.check("DecimalRange", err)
}
