// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the argsig command-line interface.
//
// The root command wires configuration, logging and error rendering; the
// subcommands load parser definitions, run the synthesis pipeline and emit
// stub declarations.
package cmd
