// SPDX-License-Identifier: MPL-2.0

package pflagdesc

import (
	"errors"
	"strings"

	"github.com/invowk/argsig/pkg/argsig"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// ErrNilCommand is returned when a cobra command is required but missing.
var ErrNilCommand = errors.New("nil cobra command")

// helpIdentifiers are added by cobra to every command.
var helpIdentifiers = []string{"--help", "-h"}

// FromCommand creates a descriptor over the flags a cobra command accepts:
// its local flags followed by the inherited persistent flags, which are
// marked global.
func FromCommand(cmd *cobra.Command) (*FlagSetDescriptor, error) {
	if cmd == nil {
		return nil, ErrNilCommand
	}

	fs := pflag.NewFlagSet(cmd.Name(), pflag.ContinueOnError)
	fs.SortFlags = false
	fs.AddFlagSet(cmd.LocalFlags())

	var globals []string
	cmd.InheritedFlags().VisitAll(func(f *pflag.Flag) {
		if fs.Lookup(f.Name) == nil {
			fs.AddFlag(f)
			globals = append(globals, f.Name)
		}
	})

	return New(fs, WithGlobalFlags(globals...), WithPositional(positionalNames(cmd)...))
}

// GlobalIdentifiers returns the long and short identifiers of the flags every
// command of the tree accepts: root persistent flags plus cobra's help flag.
func GlobalIdentifiers(root *cobra.Command) []string {
	ids := append([]string(nil), helpIdentifiers...)
	if root == nil {
		return ids
	}
	root.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		ids = append(ids, "--"+f.Name)
		if f.Shorthand != "" {
			ids = append(ids, "-"+f.Shorthand)
		}
	})
	return ids
}

// RegistryFromCommandTree builds a registry with one command owner per visible
// command of the tree, depth-first in cobra's child order. Owners are named by
// their command path.
func RegistryFromCommandTree(root *cobra.Command, global *argsig.GlobalOwner) (*argsig.Registry, error) {
	if root == nil {
		return nil, ErrNilCommand
	}
	if global == nil {
		global = argsig.NewGlobalOwner()
	}

	reg := argsig.NewRegistry(global)
	walk(root, func(c *cobra.Command) {
		reg.Register(commandFactory(c))
	})
	return reg, nil
}

func walk(cmd *cobra.Command, fn func(*cobra.Command)) {
	if cmd.Hidden || cmd.IsAdditionalHelpTopicCommand() {
		return
	}
	fn(cmd)
	for _, child := range cmd.Commands() {
		walk(child, fn)
	}
}

func commandFactory(cmd *cobra.Command) argsig.CommandFactory {
	return func() (*argsig.CommandOwner, error) {
		return argsig.NewCommandOwner(cmd.CommandPath(), func() (argsig.Descriptor, error) {
			return FromCommand(cmd)
		}), nil
	}
}

// positionalNames extracts argument placeholders ("<key>", "[file]") from the
// command's usage line.
func positionalNames(cmd *cobra.Command) []string {
	var names []string
	fields := strings.Fields(cmd.Use)
	for _, f := range fields[min(1, len(fields)):] {
		f = strings.TrimSuffix(f, "...")
		if len(f) < 3 || f == "[flags]" {
			continue
		}
		if (f[0] == '<' && f[len(f)-1] == '>') || (f[0] == '[' && f[len(f)-1] == ']') {
			names = append(names, f[1:len(f)-1])
		}
	}
	return names
}
