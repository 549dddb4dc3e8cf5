package main

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/dragon4/decimal"
	"github.com/calebcase/dragon4/ieee"
)

func execute(args ...string) (string, error) {
	cmd := newRootCmd()

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func TestCommand(t *testing.T) {
	type TC struct {
		Name   string
		Args   []string
		Output string
		Mark   error
	}

	tcs := []TC{
		{
			Name:   "repr",
			Args:   []string{"positional", "--trim", "0", "--pad-left", "1", "0.1", "1.0", "1e22"},
			Output: "0.1\n1.0\n10000000000000000000000.0\n",
			Mark:   oops.New("unexpected"),
		},
		{
			Name:   "negative values after separator",
			Args:   []string{"positional", "--trim", "0", "--", "-2.5", "-0"},
			Output: "-2.5\n-0.0\n",
			Mark:   oops.New("unexpected"),
		},
		{
			Name:   "scientific",
			Args:   []string{"scientific", "--trim", "-", "1e300", "0.00125"},
			Output: "1e+300\n1.25e-03\n",
			Mark:   oops.New("unexpected"),
		},
		{
			Name:   "exact scientific",
			Args:   []string{"scientific", "--mode", "exact", "--precision", "3", "0.1"},
			Output: "1.000e-01\n",
			Mark:   oops.New("unexpected"),
		},
		{
			Name:   "exact fraction",
			Args:   []string{"positional", "--mode", "exact", "--cutoff", "fraction", "--precision", "20", "0.1"},
			Output: "0.10000000000000000555\n",
			Mark:   oops.New("unexpected"),
		},
		{
			Name:   "single",
			Args:   []string{"positional", "--format", "single", "--trim", "0", "0.1"},
			Output: "0.1\n",
			Mark:   oops.New("unexpected"),
		},
		{
			Name:   "single exact",
			Args:   []string{"positional", "--format", "single", "--mode", "exact", "--cutoff", "fraction", "--precision", "12", "0.1"},
			Output: "0.100000001490\n",
			Mark:   oops.New("unexpected"),
		},
		{
			Name:   "half bits",
			Args:   []string{"positional", "--format", "half", "--bits", "--trim", "0", "7bff", "0x2e66", "fc00", "7e00"},
			Output: "65500.0\n0.1\n-inf\nnan\n",
			Mark:   oops.New("unexpected"),
		},
		{
			Name:   "quad bits",
			Args:   []string{"positional", "--format", "quad", "--bits", "--trim", "0", "3fff0000000000000000000000000000"},
			Output: "1.0\n",
			Mark:   oops.New("unexpected"),
		},
		{
			Name:   "intel80 bits",
			Args:   []string{"scientific", "--format", "intel80", "--bits", "--trim", "-", "--sign", "3fffc000000000000000"},
			Output: "+1.5e+00\n",
			Mark:   oops.New("unexpected"),
		},
		{
			Name:   "padding",
			Args:   []string{"positional", "--trim", ".", "--pad-left", "3", "--pad-right", "2", "1.5"},
			Output: "001.50\n",
			Mark:   oops.New("unexpected"),
		},
		{
			Name:   "exponent digits",
			Args:   []string{"scientific", "--trim", "-", "--exp-digits", "4", "1e-5"},
			Output: "1e-0005\n",
			Mark:   oops.New("unexpected"),
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.Name), func(t *testing.T) {
			output, err := execute(tc.Args...)
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.Output, output, tc.Mark)
		})
	}
}

func TestCommandErrors(t *testing.T) {
	type TC struct {
		Name string
		Args []string
		Mark error
	}

	tcs := []TC{
		{
			Name: "unknown mode",
			Args: []string{"positional", "--mode", "round", "1"},
			Mark: oops.New("unexpected"),
		},
		{
			Name: "unknown trim",
			Args: []string{"positional", "--trim", "x", "1"},
			Mark: oops.New("unexpected"),
		},
		{
			Name: "unknown format",
			Args: []string{"positional", "--format", "bfloat16", "1"},
			Mark: oops.New("unexpected"),
		},
		{
			Name: "decimal half",
			Args: []string{"positional", "--format", "half", "1"},
			Mark: oops.New("unexpected"),
		},
		{
			Name: "bits too wide",
			Args: []string{"positional", "--format", "half", "--bits", "10000"},
			Mark: oops.New("unexpected"),
		},
		{
			Name: "not a number",
			Args: []string{"positional", "one"},
			Mark: oops.New("unexpected"),
		},
		{
			Name: "no values",
			Args: []string{"positional"},
			Mark: oops.New("unexpected"),
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.Name), func(t *testing.T) {
			_, err := execute(tc.Args...)
			require.Error(t, err, tc.Mark)
		})
	}

	_, err := execute("positional", "--mode", "exact", "1")
	require.ErrorIs(t, err, decimal.ErrInvalidPrecision)
}

func TestParseBits(t *testing.T) {
	type TC struct {
		Name  string
		Input string
		Width uint
		H, L  uint64
		Mark  error
	}

	tcs := []TC{
		{
			Name:  "quad with separators",
			Input: "0x3fff_0000_0000_0000_0000_0000_0000_0001",
			Width: 128,
			H:     0x3fff_0000_0000_0000,
			L:     1,
			Mark:  oops.New("unexpected"),
		},
		{
			Name:  "upper case half",
			Input: "7BFF",
			Width: 16,
			L:     0x7bff,
			Mark:  oops.New("unexpected"),
		},
		{
			Name:  "odd digit count",
			Input: "0x123",
			Width: 16,
			L:     0x123,
			Mark:  oops.New("unexpected"),
		},
		{
			Name:  "leading zeros beyond width",
			Input: "00000000000000000000000000000000000001",
			Width: 16,
			L:     1,
			Mark:  oops.New("unexpected"),
		},
		{
			Name:  "intel80 top bits",
			Input: "ffff0000000000000000",
			Width: 80,
			H:     0xffff,
			Mark:  oops.New("unexpected"),
		},
		{
			Name:  "zero",
			Input: "0",
			Width: 32,
			Mark:  oops.New("unexpected"),
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.Name), func(t *testing.T) {
			u, err := parseBits(tc.Input)
			require.NoError(t, err, tc.Mark)

			b, err := toBits(u, tc.Width)
			require.NoError(t, err, tc.Mark)
			require.Equal(t, ieee.FromUint128(tc.H, tc.L), b, tc.Mark)
		})
	}
}

func TestParseBitsErrors(t *testing.T) {
	for _, s := range []string{"", "0x", "12g4"} {
		_, err := parseBits(s)
		require.Error(t, err, s)
		require.True(t, Error.Has(err), s)
	}

	type TC struct {
		Input string
		Width uint
	}

	for _, tc := range []TC{
		{"1" + string(bytes.Repeat([]byte{'0'}, 32)), 128},
		{"1_0000_0000_0000_0000_0000", 80},
		{"10000", 16},
		{"100", 8},
	} {
		u, err := parseBits(tc.Input)
		require.NoError(t, err, tc.Input)

		_, err = toBits(u, tc.Width)
		require.Error(t, err, tc.Input)
	}
}
