package dragon4

import (
	"github.com/zeebo/errs"

	"github.com/calebcase/dragon4/decimal"
	"github.com/calebcase/dragon4/format"
	"github.com/calebcase/dragon4/ieee"
)

// Error is the error class for this package.
var Error = errs.Class("dragon4")

// Errors
var (
	// ErrInvalidPrecision is returned for an Exact spec with a negative
	// precision or a TotalLength cutoff of zero digits.
	ErrInvalidPrecision = decimal.ErrInvalidPrecision

	// ErrAllocation is returned when a conversion would need more than
	// decimal.MaxDigits digits.
	ErrAllocation = decimal.ErrAllocation
)

// Positional formats the value with bit pattern b in layout desc without an
// exponent.
func Positional(b ieee.Bits, desc ieee.Descriptor, s format.Spec) (_ string, err error) {
	defer Error.WrapP(&err)

	err = s.Validate()
	if err != nil {
		return "", err
	}

	d := ieee.Decompose(b, desc)
	if !d.Class.Finite() {
		return format.Special(d, s), nil
	}

	digits, err := decimal.Generate(d, s.Mode, s.Cutoff, s.Precision)
	if err != nil {
		return "", err
	}

	return format.Positional(digits, s), nil
}

// Scientific formats the value with bit pattern b in layout desc with one
// digit before the point and a decimal exponent. s.Precision counts the
// digits after the point.
func Scientific(b ieee.Bits, desc ieee.Descriptor, s format.Spec) (_ string, err error) {
	defer Error.WrapP(&err)

	err = s.Validate()
	if err != nil {
		return "", err
	}

	d := ieee.Decompose(b, desc)
	if !d.Class.Finite() {
		return format.Special(d, s), nil
	}

	precision := s.Precision
	if precision >= 0 {
		precision++
	}

	digits, err := decimal.Generate(d, s.Mode, decimal.TotalLength, precision)
	if err != nil {
		return "", err
	}

	return format.Scientific(digits, s), nil
}

// PositionalHalf formats a binary16 value stored in h.
func PositionalHalf(h uint16, s format.Spec) (string, error) {
	return Positional(ieee.FromHalf(h), ieee.Half, s)
}

// PositionalFloat32 formats f.
func PositionalFloat32(f float32, s format.Spec) (string, error) {
	return Positional(ieee.FromFloat32(f), ieee.Single, s)
}

// PositionalFloat64 formats f.
func PositionalFloat64(f float64, s format.Spec) (string, error) {
	return Positional(ieee.FromFloat64(f), ieee.Double, s)
}

// PositionalLongDouble formats the bits of a C long double on the build
// target.
func PositionalLongDouble(b ieee.Bits, s format.Spec) (string, error) {
	return Positional(b, ieee.LongDouble, s)
}

// ScientificHalf formats a binary16 value stored in h.
func ScientificHalf(h uint16, s format.Spec) (string, error) {
	return Scientific(ieee.FromHalf(h), ieee.Half, s)
}

// ScientificFloat32 formats f.
func ScientificFloat32(f float32, s format.Spec) (string, error) {
	return Scientific(ieee.FromFloat32(f), ieee.Single, s)
}

// ScientificFloat64 formats f.
func ScientificFloat64(f float64, s format.Spec) (string, error) {
	return Scientific(ieee.FromFloat64(f), ieee.Double, s)
}

// ScientificLongDouble formats the bits of a C long double on the build
// target.
func ScientificLongDouble(b ieee.Bits, s format.Spec) (string, error) {
	return Scientific(b, ieee.LongDouble, s)
}

// ReprSpec produces the shortest digits with at least one digit on each side
// of the point.
var ReprSpec = format.Spec{
	Mode:      decimal.Unique,
	Cutoff:    decimal.TotalLength,
	Precision: -1,
	Trim:      format.TrimLeaveOneZero,
	PadLeft:   1,
}

// Repr returns the shortest positional text that reads back as f, e.g. "0.1",
// "1.0" or "-inf".
func Repr(f float64) string {
	out, err := PositionalFloat64(f, ReprSpec)
	if err != nil {
		// Shortest digits of a double never approach the digit limit.
		panic(err)
	}

	return out
}
