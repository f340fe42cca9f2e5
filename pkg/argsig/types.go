// SPDX-License-Identifier: MPL-2.0

package argsig

import (
	"errors"
	"fmt"
)

const (
	// Boolean is the return type of switch accessors.
	Boolean ReturnType = "Boolean"
	// NilableString is the return type of value-taking flags.
	NilableString ReturnType = "NilableString"
	// NilableStringArray is the return type of comma-list flags.
	NilableStringArray ReturnType = "NilableStringArray"
)

// ErrInvalidReturnType is the sentinel error wrapped by InvalidReturnTypeError.
var ErrInvalidReturnType = errors.New("invalid return type")

type (
	// ReturnType tags the inferred return type of one accessor.
	ReturnType string

	// InvalidReturnTypeError is returned when a ReturnType value is not recognized.
	// It wraps ErrInvalidReturnType for errors.Is() compatibility.
	InvalidReturnTypeError struct {
		Value ReturnType
	}

	// Signature is one synthesized accessor on the arguments namespace.
	Signature struct {
		Name       string
		ReturnType ReturnType
	}

	// Option is one entry of a parser's option table. Sample is a representative
	// value used only to infer the accessor's type.
	Option struct {
		Name   string
		Sample any
	}
)

// Error implements the error interface.
func (e *InvalidReturnTypeError) Error() string {
	return fmt.Sprintf("invalid return type %q (valid: %s, %s, %s)", e.Value, Boolean, NilableString, NilableStringArray)
}

// Unwrap returns ErrInvalidReturnType for errors.Is() compatibility.
func (e *InvalidReturnTypeError) Unwrap() error { return ErrInvalidReturnType }

// Validate returns nil if the ReturnType is one of the known tags.
func (r ReturnType) Validate() error {
	switch r {
	case Boolean, NilableString, NilableStringArray:
		return nil
	default:
		return &InvalidReturnTypeError{Value: r}
	}
}

// String returns the string representation of the ReturnType.
func (r ReturnType) String() string { return string(r) }

// String renders the signature as "name -> Type".
func (s Signature) String() string {
	return s.Name + " -> " + string(s.ReturnType)
}
