// Package ieee splits binary floating-point bit patterns into sign, integer
// mantissa and binary exponent.
//
// A format is described by a Descriptor. The bit layout is always
//
//  | sign | exponent field | mantissa field |
//
// right-aligned in a 128-bit pattern. The value of a finite pattern is
//
//  value = (-1)^sign * mantissa * 2^exponent
//
// where mantissa has the implicit leading bit reinserted for normal values of
// formats that use one (half, single, double, quad) and the exponent has the
// bias and the mantissa width removed.
//
// Long Double
//
// LongDouble names the layout of the platform's native extended precision
// type. It is fixed at build time by build constraints:
//
//  | Target                                      | LongDouble |
//  |---------------------------------------------|------------|
//  | amd64, 386 (not windows)                    | Intel80    |
//  | linux/arm64, riscv64, s390x, loong64, mips64 | Quad       |
//  | everything else                             | Double     |
//
package ieee
