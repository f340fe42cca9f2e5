// SPDX-License-Identifier: MPL-2.0

// Package pflagdesc adapts spf13/pflag flag sets and spf13/cobra command trees
// to the argsig descriptor and registry interfaces.
//
// Boolean flags become "name?" accessors with a bool sample, every other flag
// becomes a "name" accessor sampled from its default value, and flags of the
// comma-splitting "stringSlice" type are reported as comma-list options. Like
// the parsers it models, every descriptor also carries the synthetic "named"
// and "remaining" positional entries.
package pflagdesc
