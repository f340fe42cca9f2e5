// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"testing"
)

func TestOutputFormat_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value OutputFormat
		want  bool
	}{
		{FormatRBI, true},
		{FormatGo, true},
		{FormatTOML, true},
		{"", false},
		{"json", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.value), func(t *testing.T) {
			t.Parallel()

			ok, errs := tt.value.IsValid()
			if ok != tt.want {
				t.Errorf("OutputFormat(%q).IsValid() = %v, want %v", tt.value, ok, tt.want)
			}
			if !ok && (len(errs) == 0 || !errors.Is(errs[0], ErrInvalidOutputFormat)) {
				t.Errorf("OutputFormat(%q).IsValid() errors = %v, want ErrInvalidOutputFormat", tt.value, errs)
			}
		})
	}
}

func TestColorScheme_IsValid(t *testing.T) {
	t.Parallel()

	for _, cs := range []ColorScheme{ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight} {
		if ok, errs := cs.IsValid(); !ok {
			t.Errorf("ColorScheme(%q).IsValid() = false, %v", cs, errs)
		}
	}
	ok, errs := ColorScheme("neon").IsValid()
	if ok || !errors.Is(errs[0], ErrInvalidColorScheme) {
		t.Errorf("ColorScheme(neon).IsValid() = %v, %v; want false with ErrInvalidColorScheme", ok, errs)
	}
}

func TestConfig_IsValid(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Namespace = " "
	cfg.Format = "json"

	ok, errs := cfg.IsValid()
	if ok {
		t.Fatal("IsValid() = true, want false")
	}
	var cfgErr *InvalidConfigError
	if !errors.As(errs[0], &cfgErr) || !errors.Is(errs[0], ErrInvalidConfig) {
		t.Fatalf("IsValid() error = %v, want *InvalidConfigError", errs[0])
	}
	if len(cfgErr.FieldErrors) != 2 {
		t.Errorf("FieldErrors = %v, want 2 entries", cfgErr.FieldErrors)
	}
}
