// Command dragon4 prints floating-point values as decimal text.
//
// Values are given as decimal literals for the single and double layouts or as
// hexadecimal bit patterns with --bits for any layout:
//
//  dragon4 positional --trim 0 0.1 1e22
//  dragon4 scientific --format quad --bits 3ffd5555555555555555555555555555
package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/zeebo/errs"

	"github.com/calebcase/dragon4"
	"github.com/calebcase/dragon4/decimal"
	"github.com/calebcase/dragon4/format"
	"github.com/calebcase/dragon4/ieee"
	"github.com/calebcase/dragon4/integer"
)

// Error is the error class for this command.
var Error = errs.Class("dragon4")

type options struct {
	layout ieee.Descriptor
	spec   format.Spec
	bits   bool
}

func (o *options) register(fs *pflag.FlagSet) {
	fs.Var(layoutValue{&o.layout}, "format", "value layout: half, single, double, longdouble, intel80 or quad")
	fs.Var(modeValue{&o.spec.Mode}, "mode", "digit generation mode")
	fs.Var(cutoffValue{&o.spec.Cutoff}, "cutoff", "how --precision is counted (positional only)")
	fs.Var(trimValue{&o.spec.Trim}, "trim", "trailing zero trimming: k (none), 0 (leave one zero), . (zeros) or - (zeros and point)")
	fs.IntVar(&o.spec.Precision, "precision", -1, "digit count, negative for none")
	fs.BoolVar(&o.spec.Sign, "sign", false, "print '+' on positive values")
	fs.IntVar(&o.spec.PadLeft, "pad-left", 0, "minimum digits before the point")
	fs.IntVar(&o.spec.PadRight, "pad-right", 0, "minimum digits after the point")
	fs.IntVar(&o.spec.ExpDigits, "exp-digits", 2, "minimum exponent digits (scientific only)")
	fs.BoolVar(&o.bits, "bits", false, "arguments are hexadecimal bit patterns")
}

// parseBits parses a hexadecimal bit pattern with an optional 0x prefix.
func parseBits(arg string) (u *integer.Uint, err error) {
	defer Error.WrapP(&err)

	s := strings.TrimPrefix(strings.ToLower(arg), "0x")
	s = strings.ReplaceAll(s, "_", "")
	if s == "" {
		return nil, Error.New("invalid bit pattern: %q", arg)
	}

	if len(s)%2 == 1 {
		s = "0" + s
	}

	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, err
	}

	u = &integer.Uint{}

	return u, u.UnmarshalBinary(data)
}

// toBits narrows u to a layout of the given width.
func toBits(u *integer.Uint, width uint) (b ieee.Bits, err error) {
	if u.BitLen() > int(width) {
		return b, Error.New("bit pattern wider than %d bits: %s", width, u)
	}

	data, err := u.MarshalBinary()
	if err != nil {
		return b, err
	}

	for _, c := range data {
		b.H = b.H<<8 | b.L>>56
		b.L = b.L<<8 | uint64(c)
	}

	return b, nil
}

// value converts one argument into a bit pattern for the selected layout.
func (o *options) value(arg string) (b ieee.Bits, err error) {
	defer Error.WrapP(&err)

	if o.bits {
		u, err := parseBits(arg)
		if err != nil {
			return b, err
		}

		return toBits(u, o.layout.Width())
	}

	switch o.layout {
	case ieee.Double:
		f, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return b, err
		}

		return ieee.FromFloat64(f), nil
	case ieee.Single:
		f, err := strconv.ParseFloat(arg, 32)
		if err != nil {
			return b, err
		}

		return ieee.FromFloat32(float32(f)), nil
	}

	return b, Error.New("decimal input is not supported for %s, use --bits", o.layout.Name)
}

type render func(ieee.Bits, ieee.Descriptor, format.Spec) (string, error)

func (o *options) run(fn render) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		err = o.spec.Validate()
		if err != nil {
			return err
		}

		for _, arg := range args {
			b, err := o.value(arg)
			if err != nil {
				return err
			}

			out, err := fn(b, o.layout, o.spec)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), out)
		}

		return nil
	}
}

func newRootCmd() *cobra.Command {
	o := &options{
		layout: ieee.Double,
		spec: format.Spec{
			Mode:   decimal.Unique,
			Cutoff: decimal.TotalLength,
			Trim:   format.TrimNone,
		},
	}

	root := &cobra.Command{
		Use:           "dragon4",
		Short:         "Print floating-point values as exact decimal text",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	o.register(root.PersistentFlags())

	root.AddCommand(
		&cobra.Command{
			Use:   "positional VALUE...",
			Short: "Print values without an exponent",
			Args:  cobra.MinimumNArgs(1),
			RunE:  o.run(dragon4.Positional),
		},
		&cobra.Command{
			Use:   "scientific VALUE...",
			Short: "Print values with one digit before the point and an exponent",
			Args:  cobra.MinimumNArgs(1),
			RunE:  o.run(dragon4.Scientific),
		},
	)

	return root
}

func main() {
	cmd := newRootCmd()

	err := cmd.Execute()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "error: %+v\n", err)
		os.Exit(1)
	}
}
