package decimal_test

import (
	"math/big"
	"strconv"
	"strings"
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/dragon4/decimal"
	"github.com/calebcase/dragon4/ieee"
)

// text renders digits as a string with trailing zeros removed so results
// from different sources compare equal.
func text(digits []byte, exp int) (string, int) {
	n := len(digits)
	for n > 1 && digits[n-1] == 0 {
		n--
	}

	sb := &strings.Builder{}
	for _, d := range digits[:n] {
		sb.WriteByte('0' + d)
	}

	return sb.String(), exp
}

// parseSci splits any decimal string ("1.25e-03", "-0.00125", "1.25E-3")
// into significant digits and the exponent of the first one.
func parseSci(t *testing.T, s string) (string, int) {
	t.Helper()

	s = strings.TrimLeft(s, "+-")

	exp := 0
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		var err error
		exp, err = strconv.Atoi(s[i+1:])
		require.NoError(t, err)
		s = s[:i]
	}

	frac := 0
	if i := strings.IndexByte(s, '.'); i >= 0 {
		frac = len(s) - i - 1
		s = s[:i] + s[i+1:]
	}

	lead := len(s) - len(strings.TrimLeft(s, "0"))
	sig := strings.TrimRight(s[lead:], "0")
	if sig == "" {
		return "0", 0
	}

	return sig, len(s) - 1 - lead + exp - frac
}

// rat returns the exact value of digits * 10^(exp-len(digits)+1).
func rat(digits []byte, exp int) *big.Rat {
	n := new(big.Int)
	for _, d := range digits {
		n.Mul(n, big.NewInt(10))
		n.Add(n, big.NewInt(int64(d)))
	}

	shift := exp - len(digits) + 1

	r := new(big.Rat).SetInt(n)
	p := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(abs(shift))), nil)
	if shift >= 0 {
		return r.Mul(r, new(big.Rat).SetInt(p))
	}

	return r.Quo(r, new(big.Rat).SetInt(p))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

// pow2 returns 2^e as a rational.
func pow2(e int) *big.Rat {
	p := new(big.Int).Lsh(big.NewInt(1), uint(abs(e)))
	if e >= 0 {
		return new(big.Rat).SetInt(p)
	}

	return new(big.Rat).SetFrac(big.NewInt(1), p)
}

// exact returns the magnitude of d as a rational.
func exact(d ieee.Decomposed) *big.Rat {
	m := new(big.Int).SetUint64(d.Mantissa.H)
	m.Lsh(m, 64)
	m.Or(m, new(big.Int).SetUint64(d.Mantissa.L))

	r := new(big.Rat).SetInt(m)

	return r.Mul(r, pow2(d.Exponent))
}

// interval returns the rounding interval of d: every decimal in it reads
// back as d under round-half-even.
func interval(d ieee.Decomposed) (lo, hi *big.Rat, inclusive bool) {
	v := exact(d)

	below := pow2(d.Exponent - 1)
	if d.UnequalMargins {
		below = pow2(d.Exponent - 2)
	}
	above := pow2(d.Exponent - 1)

	lo = new(big.Rat).Sub(v, below)
	hi = new(big.Rat).Add(v, above)

	return lo, hi, d.Mantissa.L&1 == 0
}

func within(x, lo, hi *big.Rat, inclusive bool) bool {
	if inclusive {
		return x.Cmp(lo) >= 0 && x.Cmp(hi) <= 0
	}

	return x.Cmp(lo) > 0 && x.Cmp(hi) < 0
}

// roundTrips reports whether the digits read back as d.
func roundTrips(d ieee.Decomposed, out decimal.Digits) bool {
	lo, hi, inclusive := interval(d)

	return within(rat(out.Digits, out.Exponent), lo, hi, inclusive)
}

// minimal reports whether no decimal with one digit fewer reads back as d.
func minimal(d ieee.Decomposed, out decimal.Digits) bool {
	n := len(out.Digits)
	if n < 2 {
		return true
	}

	lo, hi, inclusive := interval(d)

	// Candidates with n-1 digits are the multiples of 10^step around v.
	step := out.Exponent - (n - 2)
	unit := rat([]byte{1}, step)

	q := new(big.Rat).Quo(exact(d), unit)
	floor := new(big.Int).Quo(q.Num(), q.Denom())

	down := new(big.Rat).Mul(new(big.Rat).SetInt(floor), unit)
	up := new(big.Rat).Add(down, unit)

	return !within(down, lo, hi, inclusive) && !within(up, lo, hi, inclusive)
}

// oracle computes the digits of d rounded half to even to precision
// significant digits with apd, independently of the generator.
func oracle(t *testing.T, d ieee.Decomposed, precision uint32) (string, int) {
	t.Helper()

	m := new(big.Int).SetUint64(d.Mantissa.H)
	m.Lsh(m, 64)
	m.Or(m, new(big.Int).SetUint64(d.Mantissa.L))

	// m * 2^e = m * 5^-e * 10^e for negative e.
	var s string
	if d.Exponent >= 0 {
		s = new(big.Int).Lsh(m, uint(d.Exponent)).String()
	} else {
		five := new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(-d.Exponent)), nil)
		s = new(big.Int).Mul(m, five).String() + "E" + strconv.Itoa(d.Exponent)
	}

	x, _, err := apd.NewFromString(s)
	require.NoError(t, err)

	ctx := apd.BaseContext.WithPrecision(precision)
	ctx.Rounding = apd.RoundHalfEven

	res := new(apd.Decimal)
	_, err = ctx.Round(res, x)
	require.NoError(t, err)

	return parseSci(t, res.String())
}
