// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"fmt"
	"strings"

	"cuelang.org/go/cue/errors"
)

// FormatError prefixes each CUE error in err with filename and the JSON path
// of the offending field:
//
//	argsig.cue: commands[0].options[2].kind: conflicting values "flag" and "list"
//
// Several errors are listed one per line. A non-CUE error is only prefixed
// with filename.
func FormatError(err error, filename string) error {
	if err == nil {
		return nil
	}

	list := errors.Errors(err)
	if len(list) == 0 {
		return fmt.Errorf("%s: %w", filename, err)
	}

	lines := make([]string, 0, len(list))
	for _, e := range list {
		lines = append(lines, describe(e))
	}
	if len(lines) == 1 {
		return fmt.Errorf("%s: %s", filename, lines[0])
	}
	return fmt.Errorf("%s: validation failed:\n  %s", filename, strings.Join(lines, "\n  "))
}

// describe renders one error as "path: message". CUE messages sometimes
// already start with the path; it is not repeated.
func describe(e errors.Error) string {
	path := formatPath(errors.Path(e))
	msg := e.Error()
	if path == "" {
		return msg
	}
	if rest, ok := strings.CutPrefix(msg, path); ok {
		msg = strings.TrimSpace(strings.TrimPrefix(rest, ":"))
	}
	return path + ": " + msg
}

// formatPath joins CUE path selectors (["commands", "0", "name"]) in
// JSON-path notation ("commands[0].name").
func formatPath(path []string) string {
	var sb strings.Builder
	for i, sel := range path {
		switch {
		case i == 0:
			sb.WriteString(sel)
		case isIndex(sel):
			sb.WriteString("[" + sel + "]")
		default:
			sb.WriteString("." + sel)
		}
	}
	return sb.String()
}

func isIndex(sel string) bool {
	return sel != "" && strings.Trim(sel, "0123456789") == ""
}

// CheckFileSize returns an error if data exceeds maxSize bytes.
func CheckFileSize(data []byte, maxSize int64, filename string) error {
	if size := int64(len(data)); size > maxSize {
		return fmt.Errorf("%s: file size %d bytes exceeds maximum %d bytes", filename, size, maxSize)
	}
	return nil
}
