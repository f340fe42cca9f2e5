// SPDX-License-Identifier: MPL-2.0

package pflagdesc

import (
	"errors"
	"strconv"

	"github.com/invowk/argsig/pkg/argsig"

	"github.com/spf13/pflag"
)

const (
	boolType        = "bool"
	stringSliceType = "stringSlice"
)

// ErrNilFlagSet is returned when a descriptor is built without a flag set.
var ErrNilFlagSet = errors.New("nil flag set")

type (
	// FlagSetDescriptor implements argsig.Descriptor over a pflag.FlagSet.
	FlagSetDescriptor struct {
		flags   *pflag.FlagSet
		globals map[string]struct{}
		named   []string
	}

	// DescriptorOption configures a FlagSetDescriptor.
	DescriptorOption func(*FlagSetDescriptor)
)

// WithGlobalFlags marks flag names that belong to the global option set.
// They stay in the option table but are never reported as comma lists.
func WithGlobalFlags(names ...string) DescriptorOption {
	return func(d *FlagSetDescriptor) {
		for _, n := range names {
			d.globals[n] = struct{}{}
		}
	}
}

// WithPositional records the names of positional arguments, sampled into the
// synthetic "named" entry.
func WithPositional(names ...string) DescriptorOption {
	return func(d *FlagSetDescriptor) {
		d.named = append(d.named, names...)
	}
}

// New creates a descriptor over fs.
func New(fs *pflag.FlagSet, opts ...DescriptorOption) (*FlagSetDescriptor, error) {
	if fs == nil {
		return nil, ErrNilFlagSet
	}
	d := &FlagSetDescriptor{
		flags:   fs,
		globals: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Options implements argsig.Descriptor. Flags are visited in the flag set's
// own order (declaration order when SortFlags is false, lexical otherwise).
// A switch with a shorthand also yields its short alias right after the long
// name, so "-f, --force" answers both force? and f?.
func (d *FlagSetDescriptor) Options() ([]argsig.Option, error) {
	var opts []argsig.Option
	d.flags.VisitAll(func(f *pflag.Flag) {
		opts = append(opts, argsig.Option{Name: AccessorName(f), Sample: sample(f)})
		if alias, ok := ShortAccessorName(f); ok {
			opts = append(opts, argsig.Option{Name: alias, Sample: sample(f)})
		}
	})
	opts = append(opts,
		argsig.Option{Name: argsig.NamedKey, Sample: append([]string(nil), d.named...)},
		argsig.Option{Name: argsig.RemainingKey, Sample: []string(nil)},
	)
	return opts, nil
}

// CommaListOptionNames implements argsig.Descriptor.
func (d *FlagSetDescriptor) CommaListOptionNames() ([]string, error) {
	var names []string
	d.flags.VisitAll(func(f *pflag.Flag) {
		if _, global := d.globals[f.Name]; global {
			return
		}
		if f.Value.Type() == stringSliceType {
			names = append(names, AccessorName(f))
		}
	})
	return names, nil
}

// FlagSet returns the wrapped flag set.
func (d *FlagSetDescriptor) FlagSet() *pflag.FlagSet {
	return d.flags
}

// AccessorName returns the namespace accessor name of a flag.
func AccessorName(f *pflag.Flag) string {
	name := argsig.OptionToName(f.Name)
	if f.Value.Type() == boolType {
		return argsig.SwitchName(name)
	}
	return name
}

// ShortAccessorName returns the accessor of a switch's shorthand alias. Only
// bool flags get one; valued flags are read through their long name.
func ShortAccessorName(f *pflag.Flag) (string, bool) {
	if f.Shorthand == "" || f.Value.Type() != boolType {
		return "", false
	}
	return argsig.SwitchName(argsig.OptionToName(f.Shorthand)), true
}

// sample returns a value representative of the flag's parsed type.
func sample(f *pflag.Flag) any {
	switch f.Value.Type() {
	case boolType:
		v, err := strconv.ParseBool(f.DefValue)
		if err != nil {
			return false
		}
		return v
	}
	if sv, ok := f.Value.(pflag.SliceValue); ok {
		return sv.GetSlice()
	}
	if f.DefValue == "" {
		return nil
	}
	return f.DefValue
}
