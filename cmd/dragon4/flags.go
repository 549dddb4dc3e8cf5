package main

import (
	"github.com/calebcase/dragon4/decimal"
	"github.com/calebcase/dragon4/format"
	"github.com/calebcase/dragon4/ieee"
)

// modeValue sets a decimal.Mode from its name.
type modeValue struct {
	mode *decimal.Mode
}

// String implements the pflag.Value interface.
func (v modeValue) String() string { return v.mode.String() }

// Type implements the pflag.Value interface.
func (v modeValue) Type() string { return "unique|exact" }

// Set implements the pflag.Value interface.
func (v modeValue) Set(s string) error {
	for _, m := range []decimal.Mode{decimal.Unique, decimal.Exact} {
		if m.String() == s {
			*v.mode = m

			return nil
		}
	}

	return Error.New("unknown mode: %q", s)
}

// cutoffValue sets a decimal.Cutoff from its name.
type cutoffValue struct {
	cutoff *decimal.Cutoff
}

// String implements the pflag.Value interface.
func (v cutoffValue) String() string { return v.cutoff.String() }

// Type implements the pflag.Value interface.
func (v cutoffValue) Type() string { return "total|fraction" }

// Set implements the pflag.Value interface.
func (v cutoffValue) Set(s string) error {
	for _, c := range []decimal.Cutoff{decimal.TotalLength, decimal.FractionLength} {
		if c.String() == s {
			*v.cutoff = c

			return nil
		}
	}

	return Error.New("unknown cutoff: %q", s)
}

// trimValue sets a format.TrimMode from its name or single character form.
type trimValue struct {
	trim *format.TrimMode
}

// String implements the pflag.Value interface.
func (v trimValue) String() string { return v.trim.String() }

// Type implements the pflag.Value interface.
func (v trimValue) Type() string { return "k|0|.|-" }

// Set implements the pflag.Value interface.
func (v trimValue) Set(s string) (err error) {
	*v.trim, err = format.ParseTrimMode(s)

	return err
}

// layouts are the names accepted by --format.
var layouts = map[string]ieee.Descriptor{
	"half":       ieee.Half,
	"single":     ieee.Single,
	"double":     ieee.Double,
	"longdouble": ieee.LongDouble,
	"intel80":    ieee.Intel80,
	"quad":       ieee.Quad,
}

// layoutValue sets an ieee.Descriptor from its name.
type layoutValue struct {
	desc *ieee.Descriptor
}

// String implements the pflag.Value interface.
func (v layoutValue) String() string { return v.desc.Name }

// Type implements the pflag.Value interface.
func (v layoutValue) Type() string { return "layout" }

// Set implements the pflag.Value interface.
func (v layoutValue) Set(s string) error {
	d, ok := layouts[s]
	if !ok {
		return Error.New("unknown format: %q", s)
	}

	*v.desc = d

	return nil
}
