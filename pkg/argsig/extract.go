// SPDX-License-Identifier: MPL-2.0

package argsig

import (
	"errors"
	"fmt"
)

const (
	// NamedKey is the synthetic table entry holding positional arguments.
	NamedKey = "named"
	// RemainingKey is the synthetic table entry holding overflow arguments.
	RemainingKey = "remaining"
)

// ErrMalformedDescriptor is returned when a descriptor's option table cannot be read.
var ErrMalformedDescriptor = errors.New("malformed parser descriptor")

// Descriptor is the read-only view of one parser that the pipeline consumes.
// It is implemented by the CLI framework adapter.
type Descriptor interface {
	// Options returns the option table in declaration order, keyed by accessor name.
	Options() ([]Option, error)
	// CommaListOptionNames returns the accessor names of options whose values are
	// split on commas into a list.
	CommaListOptionNames() ([]string, error)
}

// Extract returns the descriptor's option table without the synthetic
// positional and overflow entries. Order is preserved.
func Extract(d Descriptor) ([]Option, error) {
	if d == nil {
		return nil, fmt.Errorf("%w: nil descriptor", ErrMalformedDescriptor)
	}
	opts, err := d.Options()
	if err != nil {
		return nil, fmt.Errorf("%w: read option table: %w", ErrMalformedDescriptor, err)
	}

	out := make([]Option, 0, len(opts))
	for _, opt := range opts {
		if opt.Name == NamedKey || opt.Name == RemainingKey {
			continue
		}
		out = append(out, opt)
	}
	return out, nil
}

// CommaListNames returns the set of comma-list accessor names of d.
func CommaListNames(d Descriptor) (map[string]struct{}, error) {
	if d == nil {
		return nil, fmt.Errorf("%w: nil descriptor", ErrMalformedDescriptor)
	}
	names, err := d.CommaListOptionNames()
	if err != nil {
		return nil, fmt.Errorf("%w: read comma-list options: %w", ErrMalformedDescriptor, err)
	}

	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set, nil
}

// InferType maps one option to its accessor return type. Comma-list membership
// wins over the sample value, then boolean samples map to Boolean, and anything
// else is a nilable string.
func InferType(name string, sample any, commaList map[string]struct{}) ReturnType {
	if _, ok := commaList[name]; ok {
		return NilableStringArray
	}
	if _, ok := sample.(bool); ok {
		return Boolean
	}
	return NilableString
}
