package ieee

import (
	"math"

	"github.com/shogo82148/int128"
)

// Bits is a raw floating-point bit pattern, right-aligned.
type Bits = int128.Uint128

// Descriptor describes a binary floating-point layout.
type Descriptor struct {
	Name string

	// MantissaBits is the width of the stored mantissa field. For formats
	// without an implicit bit it includes the explicit integer bit.
	MantissaBits uint
	ExponentBits uint
	Bias         int

	// ImplicitBit is true when normal values carry a hidden leading one.
	ImplicitBit bool

	// IEEE is true when the all-ones exponent field encodes infinity and
	// NaN. Otherwise it is an ordinary finite exponent.
	IEEE bool
}

// Supported layouts.
var (
	Half    = Descriptor{"half", 10, 5, 15, true, true}
	Single  = Descriptor{"single", 23, 8, 127, true, true}
	Double  = Descriptor{"double", 52, 11, 1023, true, true}
	Intel80 = Descriptor{"intel80", 64, 15, 16383, false, true}
	Quad    = Descriptor{"quad", 112, 15, 16383, true, true}

	Descriptors = []Descriptor{
		Half,
		Single,
		Double,
		Intel80,
		Quad,
	}
)

// Width returns the total number of bits in the layout.
func (d Descriptor) Width() uint {
	return 1 + d.ExponentBits + d.MantissaBits
}

// Precision returns the number of significant bits of a normal value.
func (d Descriptor) Precision() uint {
	if d.ImplicitBit {
		return d.MantissaBits + 1
	}

	return d.MantissaBits
}

// fractionBits is the number of mantissa bits below the binary point.
func (d Descriptor) fractionBits() uint {
	return d.Precision() - 1
}

// Class classifies a decomposed value.
type Class int

// Classes
const (
	Zero Class = iota
	Subnormal
	Normal
	Infinity
	NaN
)

func (c Class) String() string {
	switch c {
	case Zero:
		return "zero"
	case Subnormal:
		return "subnormal"
	case Normal:
		return "normal"
	case Infinity:
		return "infinity"
	case NaN:
		return "nan"
	}

	return "unknown"
}

// Finite reports whether values of this class have digits.
func (c Class) Finite() bool {
	return c == Zero || c == Subnormal || c == Normal
}

// Decomposed is a floating-point value split into its parts.
type Decomposed struct {
	Negative bool
	Mantissa int128.Uint128
	Exponent int
	Class    Class

	// UnequalMargins is true when the value sits on a power of two whose
	// lower neighbor is half as far away as its upper neighbor.
	UnequalMargins bool
}

// low keeps the low n bits of x.
func low(x Bits, n uint) Bits {
	switch {
	case n >= 128:
	case n >= 64:
		x.H &= 1<<(n-64) - 1
	default:
		x.H = 0
		x.L &= 1<<n - 1
	}

	return x
}

func setBit(x Bits, n uint) Bits {
	if n >= 64 {
		x.H |= 1 << (n - 64)
	} else {
		x.L |= 1 << n
	}

	return x
}

func isZero(x Bits) bool {
	return x == Bits{}
}

// Decompose splits the bit pattern b according to the layout d. Every
// pattern is valid input.
func Decompose(b Bits, d Descriptor) (v Decomposed) {
	mantissa := low(b, d.MantissaBits)
	exponent := low(b.Rsh(d.MantissaBits), d.ExponentBits).L
	v.Negative = b.Rsh(d.MantissaBits+d.ExponentBits).L&1 == 1

	fb := d.fractionBits()
	fraction := low(mantissa, fb)

	switch {
	case d.IEEE && exponent == 1<<d.ExponentBits-1:
		v.Mantissa = fraction
		if isZero(fraction) {
			v.Class = Infinity
		} else {
			v.Class = NaN
		}
	case exponent == 0:
		v.Mantissa = mantissa
		v.Exponent = 1 - d.Bias - int(fb)
		if isZero(mantissa) {
			v.Class = Zero
		} else {
			v.Class = Subnormal
		}
	default:
		v.Class = Normal
		v.Mantissa = mantissa
		if d.ImplicitBit {
			v.Mantissa = setBit(mantissa, fb)
		}
		v.Exponent = int(exponent) - d.Bias - int(fb)
		v.UnequalMargins = exponent > 1 && isZero(fraction)
	}

	return v
}

// FromFloat64 returns the bit pattern of f.
func FromFloat64(f float64) Bits {
	return Bits{L: math.Float64bits(f)}
}

// FromFloat32 returns the bit pattern of f.
func FromFloat32(f float32) Bits {
	return Bits{L: uint64(math.Float32bits(f))}
}

// FromHalf returns the bit pattern of a binary16 value stored in h.
func FromHalf(h uint16) Bits {
	return Bits{L: uint64(h)}
}

// FromUint128 returns a bit pattern from its high and low halves.
func FromUint128(hi, lo uint64) Bits {
	return Bits{H: hi, L: lo}
}
