//go:build (arm64 && linux) || riscv64 || s390x || loong64 || mips64 || mips64le

package ieee

// LongDouble is the IEEE 754 binary128 layout.
var LongDouble = Quad
