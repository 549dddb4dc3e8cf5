// Package decimal generates the decimal digits of a binary floating-point
// value.
//
// The digits of a value are a sequence of base 10 digits and the power of ten
// of the first one:
//
//  number = d0.d1d2d3... * 10^exponent
//
// For example:
//
//  123.456  = [1 2 3 4 5 6] * 10^2
//  0.000125 = [1 2 5] * 10^-4
//
// Generation is a variant of Steele & White's Dragon4 working entirely in
// exact integer arithmetic. The value mantissa * 2^exponent is written as the
// fraction value / scale of two integer.Uint values, together with the
// distances to the midpoints between the value and its two neighbors:
//
//  |--------marginLow--------|--------marginHigh-------|
//  low midpoint            value                 high midpoint
//
// The margins are equal except on a power of two boundary, where the next
// value below is half as far away as the next value above.
//
// Modes
//
// Unique emits digits until the digits so far, rounded up or down, fall
// strictly within the margins (inclusive when the mantissa is even, matching
// round-half-even parsers). The output is the shortest digit sequence that
// reads back as the original value; when two candidates of that length exist,
// the one closest to the value wins.
//
// Exact emits the digits of the value's exact expansion until the cutoff and
// rounds the last one half to even. Trailing zeros of the exact expansion are
// not emitted.
//
// Cutoffs
//
// The cutoff bounds the number of digits. TotalLength counts digits from the
// first significant digit, FractionLength counts digits after the decimal
// point. In Unique mode the cutoff is an upper limit; a negative precision
// means no limit. In Exact mode a precision is required.
//
// Carry
//
// Rounding the last digit up ripples through trailing nines. A sequence made
// of only nines becomes a single 1 with the exponent incremented:
//
//  9.9996 (4 digits) = [9 9 9 9 6] -> [1] * 10^1
//
package decimal
