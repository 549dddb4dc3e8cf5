// Package dragon4 formats binary floating-point values as decimal text using
// exact integer arithmetic.
//
// A conversion takes a raw bit pattern and its layout (see package ieee),
// generates digits (see package decimal) and renders them (see package
// format):
//
//  s := format.Spec{
//  	Mode:      decimal.Unique,
//  	Precision: -1,
//  	Trim:      format.TrimLeaveOneZero,
//  	PadLeft:   1,
//  }
//
//  dragon4.PositionalFloat64(0.1, s)   // "0.1"
//  dragon4.ScientificFloat64(1e300, s) // "1.0e+300"
//
// Unique mode produces the shortest digits that read back as the original
// value. Exact mode produces the exact expansion rounded half to even at the
// requested precision:
//
//  s := format.Spec{
//  	Mode:      decimal.Exact,
//  	Cutoff:    decimal.FractionLength,
//  	Precision: 20,
//  }
//
//  dragon4.PositionalFloat64(0.1, s) // "0.10000000000000000555"
//
// Every function is safe for concurrent use.
package dragon4
