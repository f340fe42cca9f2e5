// SPDX-License-Identifier: MPL-2.0

// Package cueutil provides shared CUE parsing utilities.
//
// It wraps the three-step flow used by the config and parser definition
// loaders:
//
//  1. Compile the embedded schema
//  2. Compile user data and unify it with the schema definition
//  3. Validate and decode into a Go struct
//
// # Usage
//
//	//go:embed parserdef_schema.cue
//	var schemaBytes []byte
//
//	defs, err := cueutil.ParseAndDecode[Definitions](
//	    schemaBytes,
//	    userFileBytes,
//	    "#Definitions",
//	    cueutil.WithFilename("argsig.cue"),
//	)
//	if err != nil {
//	    return nil, err // error carries the CUE path of the offending field
//	}
//	return defs, nil
package cueutil
