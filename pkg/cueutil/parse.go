// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// ParseAndDecode unifies data with the definition named by def in schema,
// validates the result and decodes it into a T.
//
// Validation is concrete unless WithConcrete(false) is given. Every error
// about the user document is prefixed with its filename and field path.
func ParseAndDecode[T any](schema, data []byte, def string, opts ...Option) (*T, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	filename := o.displayName()

	if err := CheckFileSize(data, o.maxFileSize, filename); err != nil {
		return nil, err
	}

	unified, err := unify(cuecontext.New(), schema, data, def, filename)
	if err != nil {
		return nil, err
	}
	if err := unified.Validate(cue.Concrete(o.concrete)); err != nil {
		return nil, FormatError(err, filename)
	}

	out := new(T)
	if err := unified.Decode(out); err != nil {
		return nil, FormatError(err, filename)
	}
	return out, nil
}

// unify compiles schema and data in ctx and returns data constrained by def.
func unify(ctx *cue.Context, schema, data []byte, def, filename string) (cue.Value, error) {
	schemaValue := ctx.CompileBytes(schema)
	if err := schemaValue.Err(); err != nil {
		return cue.Value{}, fmt.Errorf("internal error: failed to compile schema: %w", err)
	}

	root := schemaValue.LookupPath(cue.ParsePath(def))
	if err := root.Err(); err != nil {
		return cue.Value{}, fmt.Errorf("internal error: schema definition %s not found: %w", def, err)
	}

	userValue := ctx.CompileBytes(data, cue.Filename(filename))
	if err := userValue.Err(); err != nil {
		return cue.Value{}, FormatError(err, filename)
	}

	return root.Unify(userValue), nil
}
