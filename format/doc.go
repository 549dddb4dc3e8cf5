// Package format renders generated digits as text.
//
// Positional output places the digits around a decimal point:
//
//  [1 2 3 4 5] * 10^1  -> 12.345
//  [1 2 5] * 10^-3     -> 0.00125
//  [7] * 10^2          -> 700.
//
// Scientific output always has exactly one digit before the point followed by
// an exponent of at least ExpDigits digits:
//
//  [1 2 5] * 10^-3     -> 1.25e-03
//
// Trim modes apply to the fractional digits only. For the digits [1] and [1 5]
// with exponent 0:
//
//  TrimNone          1.   1.5
//  TrimLeaveOneZero  1.0  1.5
//  TrimZeros         1.   1.5
//  TrimDptZeros      1    1.5
//
// TrimNone also keeps the zeros an Exact precision asks for, so 1.5 with a
// fraction length of 3 is 1.500.
//
// PadLeft and PadRight are minimum digit counts on each side of the point and
// are filled with zeros. Scientific output always has one digit before the
// point and ignores PadLeft.
package format
