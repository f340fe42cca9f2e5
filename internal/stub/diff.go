// SPDX-License-Identifier: MPL-2.0

package stub

import (
	"bytes"
	"fmt"

	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/exp/slices"
)

// Equal reports whether current already declares what rendered declares.
// TOML manifests are compared by decoded namespace and signatures, so
// reformatting or comments do not make them stale; other formats compare
// bytes.
func Equal(f Format, current, rendered []byte) bool {
	if bytes.Equal(current, rendered) {
		return true
	}
	if f != FormatTOML {
		return false
	}

	have, err := DecodeManifest(bytes.NewReader(current))
	if err != nil {
		return false
	}
	want, err := DecodeManifest(bytes.NewReader(rendered))
	if err != nil {
		return false
	}
	return have.Name() == want.Name() && slices.Equal(have.Signatures(), want.Signatures())
}

// Diff returns a unified diff from the current file content to the freshly
// rendered one, or "" when they are identical.
func Diff(current, rendered []byte, path string) (string, error) {
	if bytes.Equal(current, rendered) {
		return "", nil
	}
	out, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(current)),
		B:        difflib.SplitLines(string(rendered)),
		FromFile: path,
		ToFile:   path + " (generated)",
		Context:  3,
	})
	if err != nil {
		return "", fmt.Errorf("diff %s: %w", path, err)
	}
	return out, nil
}
