// SPDX-License-Identifier: MPL-2.0

package argsig

import (
	"errors"
	"fmt"
)

// GlobalOwnerName is the owner name reported by the global owner.
const GlobalOwnerName = "global"

// ErrDiscoveryFailed is returned when the registry cannot produce its owners.
var ErrDiscoveryFailed = errors.New("parser owner discovery failed")

type (
	// Owner is an entity that exposes one or more parser option tables.
	// Concrete owners are *GlobalOwner and *CommandOwner.
	Owner interface {
		OwnerName() string
	}

	// DescriptorFunc returns a parser descriptor on demand.
	DescriptorFunc func() (Descriptor, error)

	// Factory is a named option-producing function of the global owner.
	Factory struct {
		Name string
		New  DescriptorFunc
	}

	// GlobalOwner exposes many named factories. Only factories following the
	// "_args" naming convention are treated as parsers.
	GlobalOwner struct {
		factories []Factory
	}

	// CommandOwner exposes exactly one parser.
	CommandOwner struct {
		name   string
		parser DescriptorFunc
	}

	// CommandFactory builds a command owner when the registry is collected.
	CommandFactory func() (*CommandOwner, error)

	// Registry is the construction-time list of parser owners supplied by the
	// host application.
	Registry struct {
		global   *GlobalOwner
		commands []CommandFactory
	}
)

// NewGlobalOwner creates the global owner with factories in the given order.
func NewGlobalOwner(factories ...Factory) *GlobalOwner {
	return &GlobalOwner{factories: append([]Factory(nil), factories...)}
}

// OwnerName implements Owner.
func (g *GlobalOwner) OwnerName() string { return GlobalOwnerName }

// Factories returns the owner's factories in registration order.
func (g *GlobalOwner) Factories() []Factory {
	return append([]Factory(nil), g.factories...)
}

// NewCommandOwner creates a command owner backed by a single parser.
func NewCommandOwner(name string, parser DescriptorFunc) *CommandOwner {
	return &CommandOwner{name: name, parser: parser}
}

// OwnerName implements Owner.
func (c *CommandOwner) OwnerName() string { return c.name }

// Parser returns the command's descriptor.
func (c *CommandOwner) Parser() (Descriptor, error) {
	if c.parser == nil {
		return nil, ErrNoDescriptor
	}
	d, err := c.parser()
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, ErrNoDescriptor
	}
	return d, nil
}

// NewRegistry creates a registry with the global owner and command factories.
func NewRegistry(global *GlobalOwner, commands ...CommandFactory) *Registry {
	return &Registry{global: global, commands: append([]CommandFactory(nil), commands...)}
}

// Register appends command factories to the registry.
func (r *Registry) Register(commands ...CommandFactory) {
	r.commands = append(r.commands, commands...)
}

// Collect returns every owner to process: the global owner first, followed by
// the command owners in registration order.
func Collect(r *Registry) ([]Owner, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: nil registry", ErrDiscoveryFailed)
	}
	if r.global == nil {
		return nil, fmt.Errorf("%w: no global owner registered", ErrDiscoveryFailed)
	}

	owners := make([]Owner, 0, len(r.commands)+1)
	owners = append(owners, r.global)
	for i, factory := range r.commands {
		if factory == nil {
			return nil, fmt.Errorf("%w: command factory %d is nil", ErrDiscoveryFailed, i)
		}
		owner, err := factory()
		if err != nil {
			return nil, fmt.Errorf("%w: command factory %d: %w", ErrDiscoveryFailed, i, err)
		}
		if owner == nil {
			return nil, fmt.Errorf("%w: command factory %d returned no owner", ErrDiscoveryFailed, i)
		}
		owners = append(owners, owner)
	}
	return owners, nil
}
