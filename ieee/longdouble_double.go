//go:build !(((amd64 || 386) && !windows) || (arm64 && linux) || riscv64 || s390x || loong64 || mips64 || mips64le)

package ieee

// LongDouble falls back to the binary64 layout on targets where the C long
// double is a plain double.
var LongDouble = Descriptor{
	Name:         "longdouble",
	MantissaBits: Double.MantissaBits,
	ExponentBits: Double.ExponentBits,
	Bias:         Double.Bias,
	ImplicitBit:  true,
	IEEE:         true,
}
