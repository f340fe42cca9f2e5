// SPDX-License-Identifier: MPL-2.0

// Package argsig synthesizes accessor signatures for a shared arguments
// namespace from the option tables of CLI parsers.
//
// The pipeline is a single sequential pass:
//
//  1. Collect enumerates parser owners from a Registry: the global owner
//     first, then every registered command owner.
//  2. Extract reads a Descriptor's option table and drops the synthetic
//     "named" and "remaining" entries.
//  3. InferType maps each surviving option to a ReturnType, with comma-list
//     membership taking precedence over the sample value.
//  4. The Synthesizer inserts one Signature per option into a Namespace,
//     skipping global options and names that are already declared.
//
// Name collisions are resolved by first write: a later owner never replaces
// an entry added by an earlier one, even if it infers a different type.
package argsig
