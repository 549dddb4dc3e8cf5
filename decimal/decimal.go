package decimal

import (
	"math"
	"math/bits"

	"github.com/calebcase/oops"
	"github.com/zeebo/errs"

	"github.com/calebcase/dragon4/ieee"
	"github.com/calebcase/dragon4/integer"
)

// Error is the error class for this package.
var Error = errs.Class("decimal")

// Errors
var (
	ErrInvalidPrecision = Error.New("invalid precision")
	ErrAllocation       = Error.New("digit limit exceeded")
)

// MaxDigits is the default limit on the number of digits a single call may
// generate.
const MaxDigits = 16384

// Mode selects when digit generation stops.
type Mode int

// Modes
const (
	// Unique stops at the shortest digits that identify the value.
	Unique Mode = iota

	// Exact stops at the cutoff.
	Exact
)

func (m Mode) String() string {
	switch m {
	case Unique:
		return "unique"
	case Exact:
		return "exact"
	}

	return "unknown"
}

// Cutoff selects how a precision is counted.
type Cutoff int

// Cutoffs
const (
	// TotalLength counts digits from the first significant digit.
	TotalLength Cutoff = iota

	// FractionLength counts digits after the decimal point.
	FractionLength
)

func (c Cutoff) String() string {
	switch c {
	case TotalLength:
		return "total"
	case FractionLength:
		return "fraction"
	}

	return "unknown"
}

// Digits is a generated digit sequence.
type Digits struct {
	// Digits holds values in [0, 9], most significant first.
	Digits []byte

	// Exponent is the power of ten of Digits[0].
	Exponent int

	Negative bool
}

// String returns the digits in scientific form without any formatting
// options applied, e.g. "-1.25e-3".
func (d Digits) String() string {
	buf := make([]byte, 0, len(d.Digits)+8)
	if d.Negative {
		buf = append(buf, '-')
	}

	for i, v := range d.Digits {
		if i == 1 {
			buf = append(buf, '.')
		}
		buf = append(buf, '0'+v)
	}

	buf = append(buf, 'e')

	exp := d.Exponent
	if exp < 0 {
		buf = append(buf, '-')
		exp = -exp
	}

	var tmp [20]byte
	i := len(tmp)
	for {
		i--
		tmp[i] = byte('0' + exp%10)
		exp /= 10
		if exp == 0 {
			break
		}
	}

	return string(append(buf, tmp[i:]...))
}

// log10 of 2 and the estimate bias as 32 bit fixed point.
const (
	log10Of2 = 1292913986
	log10Lag = 2963527434
)

// estimateExponent returns k with k <= ceil(log10(v)) <= k+1 for any v in
// [2^x, 2^(x+1)).
func estimateExponent(x int) int {
	n := int64(x)*log10Of2 - log10Lag

	k := n >> 32
	if n&(1<<32-1) != 0 {
		k++
	}

	return int(k)
}

func bitLen(x ieee.Bits) int {
	if x.H != 0 {
		return 64 + bits.Len64(x.H)
	}

	return bits.Len64(x.L)
}

// checkPrecision validates a precision for the mode and cutoff.
func checkPrecision(mode Mode, cutoff Cutoff, precision int) error {
	switch {
	case mode == Exact && precision < 0:
		return oops.Trace(ErrInvalidPrecision)
	case cutoff == TotalLength && precision == 0:
		return oops.Trace(ErrInvalidPrecision)
	}

	return nil
}

// Generate produces the digits of the finite value d with the default digit
// limit.
func Generate(d ieee.Decomposed, mode Mode, cutoff Cutoff, precision int) (Digits, error) {
	return GenerateLimit(d, mode, cutoff, precision, MaxDigits)
}

// GenerateLimit produces the digits of the finite value d. If more than
// limit digits would be needed ErrAllocation is returned.
func GenerateLimit(d ieee.Decomposed, mode Mode, cutoff Cutoff, precision, limit int) (out Digits, err error) {
	defer Error.WrapP(&err)

	out.Negative = d.Negative

	err = checkPrecision(mode, cutoff, precision)
	if err != nil {
		return out, err
	}

	if d.Mantissa == (ieee.Bits{}) {
		out.Digits = []byte{0}

		return out, nil
	}

	// The value is value/scale and the margins are in the same units.
	var value, scale, marginLow, highStore integer.Uint

	marginHigh := &marginLow
	if d.UnequalMargins {
		marginHigh = &highStore
	}

	value.SetUint128(d.Mantissa)
	if d.UnequalMargins {
		if d.Exponent > 0 {
			value.ShiftLeft(uint(d.Exponent) + 2)
			scale.SetUint64(4)
			marginLow.SetUint64(1).ShiftLeft(uint(d.Exponent))
		} else {
			value.ShiftLeft(2)
			scale.SetUint64(1).ShiftLeft(uint(-d.Exponent) + 2)
			marginLow.SetUint64(1)
		}
		marginHigh.Set(&marginLow).ShiftLeft(1)
	} else {
		if d.Exponent > 0 {
			value.ShiftLeft(uint(d.Exponent) + 1)
			scale.SetUint64(2)
			marginLow.SetUint64(1).ShiftLeft(uint(d.Exponent))
		} else {
			value.ShiftLeft(1)
			scale.SetUint64(1).ShiftLeft(uint(-d.Exponent) + 1)
			marginLow.SetUint64(1)
		}
	}

	k := estimateExponent(bitLen(d.Mantissa) - 1 + d.Exponent)

	// Values below the last fractional digit still produce one (rounded)
	// digit at that position.
	if cutoff == FractionLength && precision >= 0 && k <= -precision {
		k = -precision + 1
	}

	// Divide the value by 10^k.
	if k > 0 {
		scale.MulPow10(uint(k))
	} else if k < 0 {
		value.MulPow10(uint(-k))
		marginLow.MulPow10(uint(-k))
		if d.UnequalMargins {
			marginHigh.Set(&marginLow).ShiftLeft(1)
		}
	}

	// The estimate may be one too low. Otherwise premultiply for the first
	// digit.
	if value.Cmp(&scale) >= 0 {
		k++
	} else {
		value.MulSmall(10)
		marginLow.MulSmall(10)
		if d.UnequalMargins {
			marginHigh.Set(&marginLow).ShiftLeft(1)
		}
	}

	out.Exponent = k - 1

	// stop is the exponent after which no more digits are produced.
	stop := math.MinInt32
	if precision >= 0 {
		if cutoff == TotalLength {
			stop = k - precision
		} else {
			stop = -precision
		}
	}

	bound := k - limit
	limited := false
	if stop < bound {
		if mode == Exact {
			return out, oops.Trace(ErrAllocation)
		}

		stop = bound
		limited = true
	}

	even := d.Mantissa.L&1 == 0

	var low, high bool
	var digit uint64
	var upper integer.Uint

	digits := make([]byte, 0, 32)
	exp := k
	for {
		exp--
		digit = value.DivDigit(&scale)

		if mode == Unique {
			upper.Set(&value).Add(marginHigh)

			lc := value.Cmp(&marginLow)
			hc := upper.Cmp(&scale)
			low = lc < 0 || (even && lc == 0)
			high = hc > 0 || (even && hc == 0)

			if low || high || exp == stop {
				break
			}
		} else if value.IsZero() || exp == stop {
			break
		}

		digits = append(digits, byte(digit))

		value.MulSmall(10)
		marginLow.MulSmall(10)
		if d.UnequalMargins {
			marginHigh.Set(&marginLow).ShiftLeft(1)
		}
	}

	if limited && !low && !high {
		return out, oops.Trace(ErrAllocation)
	}

	// Round the final digit. With only one side in range the direction is
	// forced; otherwise round to the closest, half to even.
	roundDown := low
	if low == high {
		value.ShiftLeft(1)

		c := value.Cmp(&scale)
		roundDown = c < 0
		if c == 0 {
			roundDown = digit&1 == 0
		}
	}

	switch {
	case roundDown:
		digits = append(digits, byte(digit))
	case digit < 9:
		digits = append(digits, byte(digit+1))
	default:
		i := len(digits) - 1
		for i >= 0 && digits[i] == 9 {
			i--
		}

		if i < 0 {
			digits = append(digits[:0], 1)
			out.Exponent++
		} else {
			digits[i]++
			digits = digits[:i+1]
		}
	}

	out.Digits = digits

	return out, nil
}
