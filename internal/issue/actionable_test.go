// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestActionableError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      *ActionableError
		expected string
	}{
		{
			name:     "operation only",
			err:      &ActionableError{Operation: "load parser definitions"},
			expected: "failed to load parser definitions",
		},
		{
			name:     "with resource",
			err:      &ActionableError{Operation: "load parser definitions", Resource: "./argsig.cue"},
			expected: "failed to load parser definitions: ./argsig.cue",
		},
		{
			name: "with cause",
			err: &ActionableError{
				Operation: "write stub file",
				Resource:  "args.rbi",
				Cause:     errors.New("permission denied"),
			},
			expected: "failed to write stub file: args.rbi: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestActionableError_Format(t *testing.T) {
	t.Parallel()

	root := errors.New("no such file")
	err := &ActionableError{
		Operation:   "load parser definitions",
		Resource:    "./argsig.cue",
		Suggestions: []string{"Pass --definitions", "Check the config file"},
		Cause:       fmt.Errorf("read: %w", root),
	}

	plain := err.Format(false)
	for _, want := range []string{"failed to load parser definitions", "• Pass --definitions", "• Check the config file"} {
		if !strings.Contains(plain, want) {
			t.Errorf("Format(false) missing %q:\n%s", want, plain)
		}
	}
	if strings.Contains(plain, "Error chain") {
		t.Error("Format(false) should not include the error chain")
	}

	verbose := err.Format(true)
	if !strings.Contains(verbose, "Error chain:") || !strings.Contains(verbose, "2. no such file") {
		t.Errorf("Format(true) missing numbered chain:\n%s", verbose)
	}
}

func TestErrorContext_Build(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	err := NewErrorContext().
		WithOperation("synthesize signatures").
		WithResource("brew install").
		WithSuggestion("Fix the parser").
		WithIssue(DescriptorUnavailableId).
		Wrap(cause).
		BuildError()

	var ae *ActionableError
	if !errors.As(err, &ae) {
		t.Fatalf("BuildError() = %T, want *ActionableError", err)
	}
	if ae.IssueID != DescriptorUnavailableId || ae.Resource != "brew install" || !ae.HasSuggestions() {
		t.Errorf("built error = %+v", ae)
	}
	if !errors.Is(err, cause) {
		t.Error("BuildError() should wrap the cause")
	}

	if NewErrorContext().Build() != nil {
		t.Error("Build() without operation should return nil")
	}
	if NewErrorContext().BuildError() != nil {
		t.Error("BuildError() without operation should return nil")
	}
}
