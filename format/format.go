package format

import (
	"strconv"

	"github.com/calebcase/oops"
	"github.com/zeebo/errs"

	"github.com/calebcase/dragon4/decimal"
	"github.com/calebcase/dragon4/ieee"
)

// Error is the error class for this package.
var Error = errs.Class("format")

// TrimMode selects which trailing fractional zeros are removed.
type TrimMode int

// Trim Modes
const (
	// TrimNone keeps every digit and the decimal point.
	TrimNone TrimMode = iota

	// TrimLeaveOneZero trims trailing zeros but keeps at least one
	// fractional digit.
	TrimLeaveOneZero

	// TrimZeros trims all trailing zeros and keeps the decimal point.
	TrimZeros

	// TrimDptZeros trims all trailing zeros and the decimal point when no
	// fractional digits remain.
	TrimDptZeros
)

var trimNames = [...]string{
	TrimNone:         "none",
	TrimLeaveOneZero: "leave-one-zero",
	TrimZeros:        "zeros",
	TrimDptZeros:     "dpt-zeros",
}

func (t TrimMode) String() string {
	if t < 0 || int(t) >= len(trimNames) {
		return "unknown"
	}

	return trimNames[t]
}

// ParseTrimMode parses a trim mode name or its single character form: "k"
// (none), "0" (leave one zero), "." (zeros) or "-" (dpt zeros).
func ParseTrimMode(s string) (TrimMode, error) {
	switch s {
	case "none", "k":
		return TrimNone, nil
	case "leave-one-zero", "0":
		return TrimLeaveOneZero, nil
	case "zeros", ".":
		return TrimZeros, nil
	case "dpt-zeros", "-":
		return TrimDptZeros, nil
	}

	return TrimNone, Error.New("unknown trim mode: %q", s)
}

// Spec configures digit generation and rendering.
type Spec struct {
	Mode   decimal.Mode
	Cutoff decimal.Cutoff

	// Precision is the digit count for Cutoff. In scientific output it is
	// the number of digits after the point and Cutoff is ignored. Negative
	// means no limit, which is only valid in Unique mode.
	Precision int

	// Sign forces a '+' on positive values.
	Sign bool

	Trim TrimMode

	// PadLeft and PadRight are the minimum number of digits before and
	// after the decimal point.
	PadLeft  int
	PadRight int

	// ExpDigits is the minimum number of exponent digits in scientific
	// output.
	ExpDigits int
}

// Validate reports whether s can be used with any value.
func (s Spec) Validate() (err error) {
	defer Error.WrapP(&err)

	if s.Mode == decimal.Exact && s.Precision < 0 {
		return oops.Trace(decimal.ErrInvalidPrecision)
	}

	return nil
}

func ascii(digits []byte) []byte {
	if len(digits) == 0 {
		return []byte{'0'}
	}

	out := make([]byte, len(digits))
	for i, d := range digits {
		out[i] = '0' + d
	}

	return out
}

// zeros appends '0' to b until it is at least n long.
func zeros(b []byte, n int) []byte {
	for len(b) < n {
		b = append(b, '0')
	}

	return b
}

func trim(frac []byte, t TrimMode) []byte {
	if t == TrimNone {
		return frac
	}

	n := len(frac)
	for n > 0 && frac[n-1] == '0' {
		n--
	}
	frac = frac[:n]

	if t == TrimLeaveOneZero && len(frac) == 0 {
		frac = append(frac, '0')
	}

	return frac
}

func sign(buf []byte, negative bool, s Spec) []byte {
	if negative {
		return append(buf, '-')
	}

	if s.Sign {
		return append(buf, '+')
	}

	return buf
}

// join assembles sign, whole digits zero padded to padLeft, point and
// fractional digits.
func join(negative bool, whole, frac []byte, padLeft int, s Spec) []byte {
	frac = zeros(trim(frac, s.Trim), s.PadRight)

	buf := make([]byte, 0, len(whole)+len(frac)+padLeft+2)
	buf = sign(buf, negative, s)
	for i := len(whole); i < padLeft; i++ {
		buf = append(buf, '0')
	}
	buf = append(buf, whole...)

	if len(frac) == 0 && s.Trim == TrimDptZeros {
		return buf
	}

	buf = append(buf, '.')

	return append(buf, frac...)
}

// Positional renders d without an exponent.
func Positional(d decimal.Digits, s Spec) string {
	digits := ascii(d.Digits)

	var whole, frac []byte
	if d.Exponent >= 0 {
		n := d.Exponent + 1
		if n < len(digits) {
			whole, frac = digits[:n], digits[n:]
		} else {
			whole = zeros(digits, n)
		}
	} else {
		whole = []byte{'0'}
		frac = append(zeros(nil, -d.Exponent-1), digits...)
	}

	if s.Mode == decimal.Exact && s.Trim == TrimNone {
		want := s.Precision
		if s.Cutoff == decimal.TotalLength {
			want = s.Precision - d.Exponent - 1
		}
		frac = zeros(frac, want)
	}

	return string(join(d.Negative, whole, frac, s.PadLeft, s))
}

// Scientific renders d as one digit, the fractional digits and a decimal
// exponent. PadLeft is ignored.
func Scientific(d decimal.Digits, s Spec) string {
	digits := ascii(d.Digits)
	whole, frac := digits[:1], digits[1:]

	if s.Mode == decimal.Exact && s.Trim == TrimNone {
		frac = zeros(frac, s.Precision)
	}

	buf := join(d.Negative, whole, frac, 0, s)
	buf = append(buf, 'e')

	exp := d.Exponent
	if exp < 0 {
		buf = append(buf, '-')
		exp = -exp
	} else {
		buf = append(buf, '+')
	}

	text := strconv.Itoa(exp)
	for i := len(text); i < s.ExpDigits; i++ {
		buf = append(buf, '0')
	}

	return string(append(buf, text...))
}

// Special renders values without digits: "inf", "-inf" or "nan". Infinity
// honors Spec.Sign, NaN never carries a sign.
func Special(d ieee.Decomposed, s Spec) string {
	switch d.Class {
	case ieee.Infinity:
		return string(sign(nil, d.Negative, s)) + "inf"
	case ieee.NaN:
		return "nan"
	}

	return ""
}
