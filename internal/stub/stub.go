// SPDX-License-Identifier: MPL-2.0

package stub

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/invowk/argsig/pkg/argsig"
)

const (
	// FormatRBI emits a Sorbet RBI class.
	FormatRBI Format = "rbi"
	// FormatGo emits a Go interface.
	FormatGo Format = "go"
	// FormatTOML emits a TOML manifest.
	FormatTOML Format = "toml"

	banner = "DO NOT EDIT MANUALLY. This file is generated by argsig."
)

// ErrUnknownFormat is returned for formats without an emitter.
var ErrUnknownFormat = errors.New("unknown stub format")

type (
	// Format names a stub syntax.
	Format string

	// Emitter writes a namespace in one declaration syntax.
	Emitter interface {
		Emit(ns *argsig.Namespace, w io.Writer) error
	}

	// Options tunes emitters.
	Options struct {
		// Package is the Go package clause of FormatGo output.
		Package string
	}
)

// ParseFormat converts a format name to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatRBI, FormatGo, FormatTOML:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q (valid: rbi, go, toml)", ErrUnknownFormat, s)
	}
}

// New returns the emitter for f.
func New(f Format, opts Options) (Emitter, error) {
	switch f {
	case FormatRBI:
		return rbiEmitter{}, nil
	case FormatGo:
		pkg := opts.Package
		if pkg == "" {
			pkg = "args"
		}
		return goEmitter{pkg: pkg}, nil
	case FormatTOML:
		return tomlEmitter{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// Render emits ns into memory.
func Render(e Emitter, ns *argsig.Namespace) ([]byte, error) {
	var buf bytes.Buffer
	if err := e.Emit(ns, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
