package integer

import (
	"math/bits"
	"strconv"
	"strings"

	"github.com/shogo82148/int128"
	"github.com/zeebo/errs"
)

// Error is the error class for this package.
var Error = errs.Class("integer")

// Result of Cmp.
const (
	Less    = -1
	Equal   = 0
	Greater = 1
)

// pow10 holds 10^i for i in [0, 19]. 10^19 is the largest power of ten that
// fits a limb.
var pow10 = [20]uint64{
	1,
	10,
	100,
	1_000,
	10_000,
	100_000,
	1_000_000,
	10_000_000,
	100_000_000,
	1_000_000_000,
	10_000_000_000,
	100_000_000_000,
	1_000_000_000_000,
	10_000_000_000_000,
	100_000_000_000_000,
	1_000_000_000_000_000,
	10_000_000_000_000_000,
	100_000_000_000_000_000,
	1_000_000_000_000_000_000,
	10_000_000_000_000_000_000,
}

const maxPow10 = 19

// Uint is an arbitrary precision unsigned integer. The zero value is 0.
//
// Operations modify the receiver in place and return it so calls can be
// chained. A Uint must not be copied by value after first use; use Set.
type Uint struct {
	// limbs is little-endian (limbs[0] is least significant). The most
	// significant limb is never zero; zero is the empty slice.
	limbs []uint64
}

// New returns a Uint set to x.
func New(x uint64) *Uint {
	return new(Uint).SetUint64(x)
}

func (u *Uint) norm() *Uint {
	n := len(u.limbs)
	for n > 0 && u.limbs[n-1] == 0 {
		n--
	}
	u.limbs = u.limbs[:n]

	return u
}

// grow extends the limbs with zeros so there are at least n of them.
func (u *Uint) grow(n int) {
	for len(u.limbs) < n {
		u.limbs = append(u.limbs, 0)
	}
}

// SetUint64 sets u to x.
func (u *Uint) SetUint64(x uint64) *Uint {
	u.limbs = append(u.limbs[:0], x)

	return u.norm()
}

// SetUint128 sets u to x.
func (u *Uint) SetUint128(x int128.Uint128) *Uint {
	u.limbs = append(u.limbs[:0], x.L, x.H)

	return u.norm()
}

// Set sets u to v.
func (u *Uint) Set(v *Uint) *Uint {
	if u != v {
		u.limbs = append(u.limbs[:0], v.limbs...)
	}

	return u
}

// IsZero reports whether u is 0.
func (u *Uint) IsZero() bool {
	return len(u.limbs) == 0
}

// BitLen returns the number of bits required to represent u.
func (u *Uint) BitLen() int {
	if len(u.limbs) == 0 {
		return 0
	}

	top := len(u.limbs) - 1

	return top*64 + bits.Len64(u.limbs[top])
}

// Cmp compares u and v and returns Less, Equal or Greater.
func (u *Uint) Cmp(v *Uint) int {
	switch {
	case len(u.limbs) < len(v.limbs):
		return Less
	case len(u.limbs) > len(v.limbs):
		return Greater
	}

	for i := len(u.limbs) - 1; i >= 0; i-- {
		switch {
		case u.limbs[i] < v.limbs[i]:
			return Less
		case u.limbs[i] > v.limbs[i]:
			return Greater
		}
	}

	return Equal
}

// Add sets u to u + v.
func (u *Uint) Add(v *Uint) *Uint {
	n := len(u.limbs)
	if len(v.limbs) > n {
		n = len(v.limbs)
	}

	u.grow(n)

	var carry uint64
	for i := 0; i < n; i++ {
		var y uint64
		if i < len(v.limbs) {
			y = v.limbs[i]
		}

		u.limbs[i], carry = bits.Add64(u.limbs[i], y, carry)
	}

	if carry != 0 {
		u.limbs = append(u.limbs, carry)
	}

	return u
}

// Sub sets u to u - v. The caller must ensure u >= v.
func (u *Uint) Sub(v *Uint) *Uint {
	var borrow uint64
	for i := range u.limbs {
		var y uint64
		if i < len(v.limbs) {
			y = v.limbs[i]
		} else if borrow == 0 {
			break
		}

		u.limbs[i], borrow = bits.Sub64(u.limbs[i], y, borrow)
	}

	if borrow != 0 {
		panic("integer: negative result in Sub")
	}

	return u.norm()
}

// MulSmall sets u to u * k.
func (u *Uint) MulSmall(k uint64) *Uint {
	if k == 0 {
		u.limbs = u.limbs[:0]

		return u
	}

	var carry uint64
	for i, x := range u.limbs {
		hi, lo := bits.Mul64(x, k)

		var c uint64
		u.limbs[i], c = bits.Add64(lo, carry, 0)
		carry = hi + c
	}

	if carry != 0 {
		u.limbs = append(u.limbs, carry)
	}

	return u
}

// Mul sets u to x * y. Any of u, x and y may alias.
func (u *Uint) Mul(x, y *Uint) *Uint {
	if x.IsZero() || y.IsZero() {
		u.limbs = u.limbs[:0]

		return u
	}

	z := make([]uint64, len(x.limbs)+len(y.limbs))
	for i, a := range x.limbs {
		var carry uint64
		for j, b := range y.limbs {
			hi, lo := bits.Mul64(a, b)

			var c uint64
			lo, c = bits.Add64(lo, z[i+j], 0)
			hi += c
			lo, c = bits.Add64(lo, carry, 0)
			hi += c

			z[i+j] = lo
			carry = hi
		}

		z[i+len(y.limbs)] = carry
	}

	u.limbs = z

	return u.norm()
}

// MulPow10 sets u to u * 10^n.
func (u *Uint) MulPow10(n uint) *Uint {
	for ; n > maxPow10; n -= maxPow10 {
		u.MulSmall(pow10[maxPow10])
	}

	return u.MulSmall(pow10[n])
}

// divSmall sets u to u / d and returns the remainder.
func (u *Uint) divSmall(d uint64) (r uint64) {
	for i := len(u.limbs) - 1; i >= 0; i-- {
		u.limbs[i], r = bits.Div64(r, u.limbs[i], d)
	}

	u.norm()

	return r
}

// DivPow10 sets u to u / 10^n and returns the remainder u mod 10^n.
func (u *Uint) DivPow10(n uint) (r *Uint) {
	r = new(Uint)

	chunk := n % maxPow10
	r.SetUint64(u.divSmall(pow10[chunk]))

	weight := New(pow10[chunk])
	for i := n / maxPow10; i > 0; i-- {
		part := New(u.divSmall(pow10[maxPow10]))
		r.Add(part.Mul(part, weight))
		weight.MulSmall(pow10[maxPow10])
	}

	return r
}

// ShiftLeft sets u to u << n.
func (u *Uint) ShiftLeft(n uint) *Uint {
	if n == 0 || u.IsZero() {
		return u
	}

	w, b := int(n/64), n%64

	z := make([]uint64, len(u.limbs)+w+1)
	for i, x := range u.limbs {
		z[i+w] |= x << b
		if b != 0 {
			z[i+w+1] = x >> (64 - b)
		}
	}

	u.limbs = z

	return u.norm()
}

// DivDigit divides u by d where the quotient is known to be small (at most
// a single decimal digit in practice). The remainder is left in u and the
// quotient is returned.
func (u *Uint) DivDigit(d *Uint) (q uint64) {
	for u.Cmp(d) >= 0 {
		u.Sub(d)
		q++
	}

	return q
}

// String returns the base 10 representation of u.
func (u *Uint) String() string {
	if u.IsZero() {
		return "0"
	}

	tmp := new(Uint).Set(u)

	var chunks []uint64
	for !tmp.IsZero() {
		chunks = append(chunks, tmp.divSmall(pow10[maxPow10]))
	}

	sb := &strings.Builder{}
	sb.WriteString(strconv.FormatUint(chunks[len(chunks)-1], 10))
	for i := len(chunks) - 2; i >= 0; i-- {
		s := strconv.FormatUint(chunks[i], 10)
		sb.WriteString(strings.Repeat("0", maxPow10-len(s)))
		sb.WriteString(s)
	}

	return sb.String()
}

// MarshalBinary implements encoding.BinaryMarshaler. The value is encoded
// big-endian without leading zero bytes.
func (u *Uint) MarshalBinary() (data []byte, err error) {
	for i := len(u.limbs) - 1; i >= 0; i-- {
		for shift := 56; shift >= 0; shift -= 8 {
			b := byte(u.limbs[i] >> uint(shift))
			if len(data) == 0 && b == 0 {
				continue
			}

			data = append(data, b)
		}
	}

	// Note: zero would encode as an empty byte array, but we desire zero
	// to be an actual zero byte.
	if len(data) == 0 {
		data = []byte{0}
	}

	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (u *Uint) UnmarshalBinary(data []byte) (err error) {
	if len(data) == 0 {
		return Error.New("empty data")
	}

	u.limbs = u.limbs[:0]
	for end := len(data); end > 0; end -= 8 {
		start := end - 8
		if start < 0 {
			start = 0
		}

		var limb uint64
		for _, b := range data[start:end] {
			limb = limb<<8 | uint64(b)
		}

		u.limbs = append(u.limbs, limb)
	}

	u.norm()

	return nil
}
