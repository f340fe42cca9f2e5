// SPDX-License-Identifier: MPL-2.0

package argsig

import (
	"errors"
	"testing"
)

func TestExtract_DropsSyntheticKeys(t *testing.T) {
	t.Parallel()

	d := &tableDescriptor{options: []Option{
		{Name: "named", Sample: []string{}},
		{Name: "force?", Sample: false},
		{Name: "remaining", Sample: []string{}},
		{Name: "tag", Sample: nil},
	}}

	got, err := Extract(d)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if len(got) != 2 || got[0].Name != "force?" || got[1].Name != "tag" {
		t.Errorf("Extract() = %v, want [force? tag] in order", got)
	}
}

func TestExtract_Errors(t *testing.T) {
	t.Parallel()

	if _, err := Extract(nil); !errors.Is(err, ErrMalformedDescriptor) {
		t.Errorf("Extract(nil) error = %v, want ErrMalformedDescriptor", err)
	}

	d := &tableDescriptor{optErr: errTableUnreadable}
	_, err := Extract(d)
	if !errors.Is(err, ErrMalformedDescriptor) || !errors.Is(err, errTableUnreadable) {
		t.Errorf("Extract() error = %v, want wrapping both ErrMalformedDescriptor and the cause", err)
	}

	if _, err := CommaListNames(&tableDescriptor{commaErr: errTableUnreadable}); !errors.Is(err, ErrMalformedDescriptor) {
		t.Errorf("CommaListNames() error = %v, want ErrMalformedDescriptor", err)
	}
}

func TestInferType(t *testing.T) {
	t.Parallel()

	commaList := map[string]struct{}{"tags": {}, "flagged?": {}}

	tests := []struct {
		name   string
		option string
		sample any
		want   ReturnType
	}{
		{name: "true is boolean", option: "foo?", sample: true, want: Boolean},
		{name: "false is boolean", option: "foo?", sample: false, want: Boolean},
		{name: "string is nilable string", option: "tag", sample: "x", want: NilableString},
		{name: "nil is nilable string", option: "tag", sample: nil, want: NilableString},
		{name: "string slice outside comma list is nilable string", option: "repeat", sample: []string{"a"}, want: NilableString},
		{name: "comma list wins over string sample", option: "tags", sample: "a,b", want: NilableStringArray},
		{name: "comma list wins over boolean sample", option: "flagged?", sample: true, want: NilableStringArray},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := InferType(tt.option, tt.sample, commaList); got != tt.want {
				t.Errorf("InferType(%q, %v) = %s, want %s", tt.option, tt.sample, got, tt.want)
			}
		})
	}
}

func TestReturnType_Validate(t *testing.T) {
	t.Parallel()

	for _, rt := range []ReturnType{Boolean, NilableString, NilableStringArray} {
		if err := rt.Validate(); err != nil {
			t.Errorf("ReturnType(%q).Validate() error = %v", rt, err)
		}
	}

	err := ReturnType("Integer").Validate()
	if !errors.Is(err, ErrInvalidReturnType) {
		t.Errorf("Validate() error = %v, want ErrInvalidReturnType", err)
	}
	var rtErr *InvalidReturnTypeError
	if !errors.As(err, &rtErr) || rtErr.Value != "Integer" {
		t.Errorf("Validate() error = %v, want *InvalidReturnTypeError{Value: Integer}", err)
	}
}
