// SPDX-License-Identifier: MPL-2.0

// Package stub serializes a synthesized namespace into declaration files:
// Sorbet RBI, a Go interface, or a TOML manifest. It also diffs a freshly
// rendered stub against the file on disk for check mode.
package stub
