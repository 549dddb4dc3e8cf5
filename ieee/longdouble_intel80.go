//go:build (amd64 || 386) && !windows

package ieee

// LongDouble is the x87 80-bit extended precision layout.
var LongDouble = Intel80
