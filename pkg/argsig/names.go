// SPDX-License-Identifier: MPL-2.0

package argsig

import (
	"strings"

	"golang.org/x/exp/slices"
)

// switchSuffix marks boolean accessors.
const switchSuffix = "?"

type (
	// GlobalOptionSet holds accessor names available on every parser. Options
	// in the set are never declared per owner.
	GlobalOptionSet struct {
		names map[string]struct{}
	}

	// FactoryExclusions holds global-owner function names that follow the
	// "_args" naming convention but do not produce parsers.
	FactoryExclusions struct {
		names map[string]struct{}
	}
)

// defaultExcludedFactories are "_args" helpers that return argument lists
// rather than parsers.
var defaultExcludedFactories = []string{
	"formulae_all_installs_from_args",
	"reproducible_gnutar_args",
	"tar_args",
}

// OptionToName converts a raw option identifier ("--dry-run", "-v",
// "--[no-]color", "--tag=") to its accessor name ("dry_run", "v", "color", "tag").
func OptionToName(identifier string) string {
	name := strings.TrimPrefix(identifier, "-")
	name = strings.TrimPrefix(name, "-")
	name = strings.TrimPrefix(name, "[no-]")
	name = strings.NewReplacer("-", "_", ".", "_", "=", "").Replace(name)
	return name
}

// SwitchName returns the accessor name of a boolean option.
func SwitchName(name string) string {
	return name + switchSuffix
}

// BuildGlobalOptionSet normalizes raw global option identifiers into their
// boolean accessor names.
func BuildGlobalOptionSet(identifiers []string) GlobalOptionSet {
	names := make(map[string]struct{}, len(identifiers))
	for _, id := range identifiers {
		if strings.TrimSpace(id) == "" {
			continue
		}
		names[SwitchName(OptionToName(id))] = struct{}{}
	}
	return GlobalOptionSet{names: names}
}

// Contains reports whether name is a global option accessor.
func (g GlobalOptionSet) Contains(name string) bool {
	_, ok := g.names[name]
	return ok
}

// Len returns the number of global accessor names.
func (g GlobalOptionSet) Len() int {
	return len(g.names)
}

// Names returns the accessor names in sorted order.
func (g GlobalOptionSet) Names() []string {
	return sortedKeys(g.names)
}

// DefaultExcludedFactoryNames returns the built-in factory exclusion list.
func DefaultExcludedFactoryNames() []string {
	return slices.Clone(defaultExcludedFactories)
}

// NewFactoryExclusions returns the built-in exclusions merged with extra.
func NewFactoryExclusions(extra ...string) FactoryExclusions {
	names := make(map[string]struct{}, len(defaultExcludedFactories)+len(extra))
	for _, n := range defaultExcludedFactories {
		names[n] = struct{}{}
	}
	for _, n := range extra {
		if n = strings.TrimSpace(n); n != "" {
			names[n] = struct{}{}
		}
	}
	return FactoryExclusions{names: names}
}

// Contains reports whether name is an excluded factory.
func (e FactoryExclusions) Contains(name string) bool {
	_, ok := e.names[name]
	return ok
}

// Names returns the excluded names in sorted order.
func (e FactoryExclusions) Names() []string {
	return sortedKeys(e.names)
}

func sortedKeys(m map[string]struct{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
