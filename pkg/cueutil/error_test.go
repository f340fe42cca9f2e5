// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"strings"
	"testing"
)

func TestFormatError(t *testing.T) {
	t.Parallel()

	t.Run("nil error returns nil", func(t *testing.T) {
		t.Parallel()

		if err := FormatError(nil, "argsig.cue"); err != nil {
			t.Errorf("expected nil, got %v", err)
		}
	})

	t.Run("non-CUE error is wrapped with filepath", func(t *testing.T) {
		t.Parallel()

		err := FormatError(errors.New("some error"), "argsig.cue")
		if err == nil {
			t.Fatal("expected error")
		}
		if !strings.Contains(err.Error(), "argsig.cue") || !strings.Contains(err.Error(), "some error") {
			t.Errorf("error should contain filepath and message, got: %v", err)
		}
	})
}

func TestFormatPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		path     []string
		expected string
	}{
		{name: "empty path", path: []string{}, expected: ""},
		{name: "single element", path: []string{"namespace"}, expected: "namespace"},
		{name: "nested path", path: []string{"global", "options"}, expected: "global.options"},
		{name: "array index", path: []string{"commands", "0", "name"}, expected: "commands[0].name"},
		{
			name:     "multiple array indices",
			path:     []string{"commands", "1", "options", "2", "kind"},
			expected: "commands[1].options[2].kind",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := formatPath(tt.path); got != tt.expected {
				t.Errorf("formatPath(%v) = %q, want %q", tt.path, got, tt.expected)
			}
		})
	}
}

func TestCheckFileSize(t *testing.T) {
	t.Parallel()

	if err := CheckFileSize(make([]byte, 100), 100, "argsig.cue"); err != nil {
		t.Errorf("data at exact limit: expected nil, got %v", err)
	}

	err := CheckFileSize(make([]byte, 101), 100, "argsig.cue")
	if err == nil {
		t.Fatal("expected error for data exceeding limit")
	}
	for _, want := range []string{"argsig.cue", "101", "100"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error should contain %q, got: %v", want, err)
		}
	}
}
