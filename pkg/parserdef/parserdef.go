// SPDX-License-Identifier: MPL-2.0

package parserdef

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/invowk/argsig/pkg/argsig"
	"github.com/invowk/argsig/pkg/cueutil"
	"github.com/invowk/argsig/pkg/pflagdesc"

	"github.com/spf13/pflag"
)

const (
	// KindSwitch is a boolean option.
	KindSwitch Kind = "switch"
	// KindFlag takes a single string value.
	KindFlag Kind = "flag"
	// KindCommaArray takes a comma-separated list of strings.
	KindCommaArray Kind = "comma_array"
	// KindArray is a repeatable string option that does not split on commas.
	KindArray Kind = "array"
)

//go:embed parserdef_schema.cue
var schema []byte

var (
	// ErrDuplicateDefinition is returned when a name is declared twice in the same scope.
	ErrDuplicateDefinition = errors.New("duplicate definition")
	// ErrInvalidKind is the sentinel error wrapped by InvalidKindError.
	ErrInvalidKind = errors.New("invalid option kind")
)

type (
	// Kind selects the pflag value type of an option.
	Kind string

	// InvalidKindError is returned when an option Kind value is not recognized.
	InvalidKindError struct {
		Value Kind
	}

	// Option declares one parser option.
	Option struct {
		Name        string `json:"name"`
		Short       string `json:"short,omitempty"`
		Kind        Kind   `json:"kind"`
		Default     any    `json:"default,omitempty"`
		Description string `json:"description,omitempty"`
	}

	// Parser declares one option table.
	Parser struct {
		Name      string   `json:"name"`
		Options   []Option `json:"options"`
		Arguments []string `json:"arguments,omitempty"`
	}

	// Definitions is the decoded content of a definition file.
	Definitions struct {
		Namespace     string   `json:"namespace,omitempty"`
		GlobalOptions []Option `json:"global_options"`
		Factories     []Parser `json:"factories"`
		Commands      []Parser `json:"commands"`
	}
)

// Error implements the error interface.
func (e *InvalidKindError) Error() string {
	return fmt.Sprintf("invalid option kind %q (valid: %s, %s, %s, %s)", e.Value, KindSwitch, KindFlag, KindCommaArray, KindArray)
}

// Unwrap returns ErrInvalidKind for errors.Is() compatibility.
func (e *InvalidKindError) Unwrap() error { return ErrInvalidKind }

// Validate returns nil if the Kind is known.
func (k Kind) Validate() error {
	switch k {
	case KindSwitch, KindFlag, KindCommaArray, KindArray:
		return nil
	default:
		return &InvalidKindError{Value: k}
	}
}

// Load reads and parses a definition file.
func Load(path string) (*Definitions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read parser definitions: %w", err)
	}
	return Parse(data, path)
}

// Parse decodes definitions validated against the embedded schema and checks
// name uniqueness.
func Parse(data []byte, filename string) (*Definitions, error) {
	defs, err := cueutil.ParseAndDecode[Definitions](schema, data, "#Definitions", cueutil.WithFilename(filename))
	if err != nil {
		return nil, err
	}
	if err := defs.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return defs, nil
}

// Validate checks the constraints the schema cannot express: unique factory
// names, unique command names and unique option names per parser.
func (d *Definitions) Validate() error {
	if err := validateOptions("global_options", d.GlobalOptions); err != nil {
		return err
	}
	for _, group := range []struct {
		scope   string
		parsers []Parser
	}{{"factories", d.Factories}, {"commands", d.Commands}} {
		seen := make(map[string]struct{}, len(group.parsers))
		for i, p := range group.parsers {
			if _, dup := seen[p.Name]; dup {
				return fmt.Errorf("%w: %s[%d]: name %q", ErrDuplicateDefinition, group.scope, i, p.Name)
			}
			seen[p.Name] = struct{}{}
			if err := validateOptions(fmt.Sprintf("%s[%d].options", group.scope, i), p.Options); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateOptions(scope string, opts []Option) error {
	names := make(map[string]struct{}, len(opts))
	shorts := make(map[string]struct{}, len(opts))
	for i, o := range opts {
		if err := o.Kind.Validate(); err != nil {
			return fmt.Errorf("%s[%d]: %w", scope, i, err)
		}
		if _, dup := names[o.Name]; dup {
			return fmt.Errorf("%w: %s[%d]: option %q", ErrDuplicateDefinition, scope, i, o.Name)
		}
		names[o.Name] = struct{}{}
		if o.Short == "" {
			continue
		}
		if _, dup := shorts[o.Short]; dup {
			return fmt.Errorf("%w: %s[%d]: shorthand %q", ErrDuplicateDefinition, scope, i, o.Short)
		}
		shorts[o.Short] = struct{}{}
	}
	return nil
}

// GlobalIdentifiers returns the long and short identifiers of the global options.
func (d *Definitions) GlobalIdentifiers() []string {
	ids := make([]string, 0, 2*len(d.GlobalOptions))
	for _, o := range d.GlobalOptions {
		ids = append(ids, "--"+o.Name)
		if o.Short != "" {
			ids = append(ids, "-"+o.Short)
		}
	}
	return ids
}

// Registry builds the owner registry: factories become the global owner's
// named functions, commands become command owners in declaration order. Global
// options are added to every parser, as the framework does.
func (d *Definitions) Registry() *argsig.Registry {
	factories := make([]argsig.Factory, 0, len(d.Factories))
	for _, p := range d.Factories {
		factories = append(factories, argsig.Factory{Name: p.Name, New: d.descriptorFunc(p)})
	}

	reg := argsig.NewRegistry(argsig.NewGlobalOwner(factories...))
	for _, p := range d.Commands {
		owner := argsig.NewCommandOwner(p.Name, d.descriptorFunc(p))
		reg.Register(func() (*argsig.CommandOwner, error) { return owner, nil })
	}
	return reg
}

func (d *Definitions) descriptorFunc(p Parser) argsig.DescriptorFunc {
	return func() (argsig.Descriptor, error) {
		fs, err := d.FlagSet(p)
		if err != nil {
			return nil, err
		}
		globals := make([]string, 0, len(d.GlobalOptions))
		for _, o := range d.GlobalOptions {
			globals = append(globals, o.Name)
		}
		return pflagdesc.New(fs, pflagdesc.WithGlobalFlags(globals...), pflagdesc.WithPositional(p.Arguments...))
	}
}

// FlagSet materializes a parser as a declaration-ordered pflag flag set: the
// parser's own options followed by the global options it does not redefine.
func (d *Definitions) FlagSet(p Parser) (fs *pflag.FlagSet, err error) {
	fs = pflag.NewFlagSet(p.Name, pflag.ContinueOnError)
	fs.SortFlags = false

	// pflag panics on redefinition; report it as an error instead.
	defer func() {
		if r := recover(); r != nil {
			fs, err = nil, fmt.Errorf("%w: parser %q: %v", ErrDuplicateDefinition, p.Name, r)
		}
	}()

	for _, o := range p.Options {
		if err := addOption(fs, o); err != nil {
			return nil, fmt.Errorf("parser %q: %w", p.Name, err)
		}
	}
	for _, o := range d.GlobalOptions {
		if fs.Lookup(o.Name) != nil {
			continue
		}
		if o.Short != "" && fs.ShorthandLookup(o.Short) != nil {
			o.Short = ""
		}
		if err := addOption(fs, o); err != nil {
			return nil, fmt.Errorf("global option: %w", err)
		}
	}
	return fs, nil
}

func addOption(fs *pflag.FlagSet, o Option) error {
	switch o.Kind {
	case KindSwitch, "":
		def, _ := o.Default.(bool)
		fs.BoolP(o.Name, o.Short, def, o.Description)
	case KindFlag:
		def, _ := o.Default.(string)
		fs.StringP(o.Name, o.Short, def, o.Description)
	case KindCommaArray:
		fs.StringSliceP(o.Name, o.Short, stringList(o.Default), o.Description)
	case KindArray:
		fs.StringArrayP(o.Name, o.Short, stringList(o.Default), o.Description)
	default:
		return &InvalidKindError{Value: o.Kind}
	}
	return nil
}

// stringList decodes a default of type [...string]; CUE decodes lists into
// []any when the target is an interface.
func stringList(v any) []string {
	switch t := v.(type) {
	case []string:
		return t
	case []any:
		out := make([]string, 0, len(t))
		for _, e := range t {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		if t == "" {
			return nil
		}
		return []string{t}
	default:
		return nil
	}
}
