// SPDX-License-Identifier: MPL-2.0

package argsig

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
)

// argsFactorySuffix is the naming convention of global parser factories.
const argsFactorySuffix = "_args"

var (
	// ErrNoDescriptor is returned when an owner exposes no retrievable descriptor.
	ErrNoDescriptor = errors.New("parser owner exposes no descriptor")
	// ErrUnknownOwner is returned for Owner implementations the synthesizer cannot process.
	ErrUnknownOwner = errors.New("unknown parser owner type")
)

type (
	// OwnerError reports which owner (and factory, for the global owner) failed.
	OwnerError struct {
		Owner   string
		Factory string
		Err     error
	}

	// Synthesizer turns parser owners into signatures on a shared namespace.
	Synthesizer struct {
		// Globals are accessor names never declared per owner.
		Globals GlobalOptionSet
		// Exclusions are global-owner factories that are never invoked.
		Exclusions FactoryExclusions
		// Logger receives debug output about skipped options. Nil disables logging.
		Logger *log.Logger
	}
)

// Error implements the error interface.
func (e *OwnerError) Error() string {
	if e.Factory != "" {
		return fmt.Sprintf("owner %s: factory %s: %v", e.Owner, e.Factory, e.Err)
	}
	return fmt.Sprintf("owner %s: %v", e.Owner, e.Err)
}

// Unwrap returns the underlying error.
func (e *OwnerError) Unwrap() error { return e.Err }

// NewSynthesizer creates a synthesizer with the given global options and the
// built-in factory exclusions.
func NewSynthesizer(globals GlobalOptionSet) *Synthesizer {
	return &Synthesizer{
		Globals:    globals,
		Exclusions: NewFactoryExclusions(),
	}
}

// Run collects the owners of r and synthesizes them into ns.
func (s *Synthesizer) Run(r *Registry, ns *Namespace) error {
	owners, err := Collect(r)
	if err != nil {
		return err
	}
	return s.Synthesize(owners, ns)
}

// Synthesize processes owners in order. The first error aborts the run; ns may
// then hold the signatures added before the failure.
func (s *Synthesizer) Synthesize(owners []Owner, ns *Namespace) error {
	for _, owner := range owners {
		var err error
		switch o := owner.(type) {
		case *GlobalOwner:
			if o == nil {
				return &OwnerError{Owner: GlobalOwnerName, Err: ErrNoDescriptor}
			}
			err = s.synthesizeGlobal(o, ns)
		case *CommandOwner:
			if o == nil {
				return &OwnerError{Owner: "<nil>", Err: ErrNoDescriptor}
			}
			err = s.synthesizeCommand(o, ns)
		default:
			err = &OwnerError{Owner: ownerName(owner), Err: ErrUnknownOwner}
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Synthesizer) synthesizeGlobal(g *GlobalOwner, ns *Namespace) error {
	for _, f := range g.factories {
		if !strings.HasSuffix(f.Name, argsFactorySuffix) {
			continue
		}
		if s.Exclusions.Contains(f.Name) {
			s.debug("skipping excluded factory", "factory", f.Name)
			continue
		}
		if f.New == nil {
			return &OwnerError{Owner: g.OwnerName(), Factory: f.Name, Err: ErrNoDescriptor}
		}
		d, err := f.New()
		if err != nil {
			return &OwnerError{Owner: g.OwnerName(), Factory: f.Name, Err: err}
		}
		if d == nil {
			return &OwnerError{Owner: g.OwnerName(), Factory: f.Name, Err: ErrNoDescriptor}
		}
		if err := s.addDescriptor(d, ns, g.OwnerName()); err != nil {
			return &OwnerError{Owner: g.OwnerName(), Factory: f.Name, Err: err}
		}
	}
	return nil
}

func (s *Synthesizer) synthesizeCommand(c *CommandOwner, ns *Namespace) error {
	d, err := c.Parser()
	if err != nil {
		return &OwnerError{Owner: c.OwnerName(), Err: err}
	}
	if err := s.addDescriptor(d, ns, c.OwnerName()); err != nil {
		return &OwnerError{Owner: c.OwnerName(), Err: err}
	}
	return nil
}

// addDescriptor runs extract, comma-list detection and inference for one
// parser and inserts the surviving options.
func (s *Synthesizer) addDescriptor(d Descriptor, ns *Namespace, owner string) error {
	commaList, err := CommaListNames(d)
	if err != nil {
		return err
	}
	opts, err := Extract(d)
	if err != nil {
		return err
	}

	for _, opt := range opts {
		if s.Globals.Contains(opt.Name) {
			continue
		}
		sig := Signature{Name: opt.Name, ReturnType: InferType(opt.Name, opt.Sample, commaList)}
		if !ns.Add(sig) {
			// Same name from an earlier parser; the first declaration stands.
			if existing, _ := ns.Lookup(opt.Name); existing.ReturnType != sig.ReturnType {
				s.debug("keeping earlier declaration with different type",
					"owner", owner, "option", opt.Name, "kept", existing.ReturnType, "skipped", sig.ReturnType)
			}
		}
	}
	return nil
}

func (s *Synthesizer) debug(msg string, keyvals ...any) {
	if s.Logger != nil {
		s.Logger.Debug(msg, keyvals...)
	}
}

func ownerName(o Owner) string {
	if o == nil {
		return "<nil>"
	}
	return o.OwnerName()
}
