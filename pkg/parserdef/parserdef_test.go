// SPDX-License-Identifier: MPL-2.0

package parserdef

import (
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/invowk/argsig/pkg/argsig"

	"github.com/spf13/pflag"
)

func loadTestdata(t *testing.T) *Definitions {
	t.Helper()

	defs, err := Load(filepath.Join("testdata", "brew.cue"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return defs
}

func TestLoad(t *testing.T) {
	t.Parallel()

	defs := loadTestdata(t)
	if defs.Namespace != "Homebrew::CLI::Args" {
		t.Errorf("Namespace = %q, want %q", defs.Namespace, "Homebrew::CLI::Args")
	}
	if len(defs.Factories) != 2 || len(defs.Commands) != 2 {
		t.Fatalf("got %d factories and %d commands, want 2 and 2", len(defs.Factories), len(defs.Commands))
	}
	if got := defs.Factories[0].Options[0].Kind; got != KindSwitch {
		t.Errorf("default kind = %q, want %q", got, KindSwitch)
	}

	wantIDs := []string{"--debug", "-d", "--quiet", "-q", "--verbose", "-v", "--help", "-h"}
	if got := defs.GlobalIdentifiers(); !reflect.DeepEqual(got, wantIDs) {
		t.Errorf("GlobalIdentifiers() = %v, want %v", got, wantIDs)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	if _, err := Load(filepath.Join(t.TempDir(), "missing.cue")); err == nil {
		t.Error("Load() error = nil, want error for missing file")
	}
}

func TestParse_SchemaErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{
			name:    "unknown kind",
			data:    `commands: [{name: "x", options: [{name: "a", kind: "list"}]}]`,
			wantErr: "kind",
		},
		{
			name:    "invalid option name",
			data:    `commands: [{name: "x", options: [{name: "Bad_Name"}]}]`,
			wantErr: "name",
		},
		{
			name:    "lowercase namespace",
			data:    `namespace: "args"`,
			wantErr: "namespace",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse([]byte(tt.data), "defs.cue")
			if err == nil {
				t.Fatal("Parse() error = nil, want schema error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Parse() error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestParse_Duplicates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
	}{
		{name: "duplicate command", data: `commands: [{name: "x", options: []}, {name: "x", options: []}]`},
		{name: "duplicate factory", data: `factories: [{name: "a_args", options: []}, {name: "a_args", options: []}]`},
		{name: "duplicate option", data: `commands: [{name: "x", options: [{name: "a"}, {name: "a", kind: "flag"}]}]`},
		{name: "duplicate shorthand", data: `global_options: [{name: "a", short: "a"}, {name: "b", short: "a"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := Parse([]byte(tt.data), "defs.cue"); !errors.Is(err, ErrDuplicateDefinition) {
				t.Errorf("Parse() error = %v, want ErrDuplicateDefinition", err)
			}
		})
	}
}

func TestKind_Validate(t *testing.T) {
	t.Parallel()

	if err := Kind("list").Validate(); !errors.Is(err, ErrInvalidKind) {
		t.Errorf("Validate() error = %v, want ErrInvalidKind", err)
	}
	for _, k := range []Kind{KindSwitch, KindFlag, KindCommaArray, KindArray} {
		if err := k.Validate(); err != nil {
			t.Errorf("Kind(%q).Validate() error = %v", k, err)
		}
	}
}

func TestFlagSet_GlobalOptionsAppended(t *testing.T) {
	t.Parallel()

	defs := loadTestdata(t)
	fs, err := defs.FlagSet(defs.Commands[1])
	if err != nil {
		t.Fatalf("FlagSet() error = %v", err)
	}

	var names []string
	fs.VisitAll(func(f *pflag.Flag) { names = append(names, f.Name) })
	want := []string{"tap", "env", "verbose", "debug", "quiet", "help"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("flag names = %v, want %v", names, want)
	}
	if got := fs.Lookup("tap").DefValue; got != "homebrew/core" {
		t.Errorf("tap default = %q, want %q", got, "homebrew/core")
	}
	if got, _ := fs.GetStringArray("env"); !reflect.DeepEqual(got, []string{"A=1"}) {
		t.Errorf("env default = %v, want [A=1]", got)
	}
}

func TestRegistry_Synthesis(t *testing.T) {
	t.Parallel()

	defs := loadTestdata(t)
	ns := argsig.NewNamespace(defs.Namespace)
	s := argsig.NewSynthesizer(argsig.BuildGlobalOptionSet(defs.GlobalIdentifiers()))
	if err := s.Run(defs.Registry(), ns); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := []argsig.Signature{
		{Name: "force?", ReturnType: argsig.Boolean},
		{Name: "f?", ReturnType: argsig.Boolean},
		{Name: "cc", ReturnType: argsig.NilableString},
		{Name: "os", ReturnType: argsig.NilableStringArray},
		{Name: "force", ReturnType: argsig.NilableString},
		{Name: "retry?", ReturnType: argsig.Boolean},
		{Name: "tap", ReturnType: argsig.NilableString},
		{Name: "env", ReturnType: argsig.NilableString},
	}
	if got := ns.Signatures(); !reflect.DeepEqual(got, want) {
		t.Errorf("Signatures() =\n  %v\nwant\n  %v", got, want)
	}
	if ns.Has("tarball") {
		t.Error("options of the excluded tar_args factory were declared")
	}
	for _, short := range []string{"d?", "q?", "v?", "h?"} {
		if ns.Has(short) {
			t.Errorf("short alias %s of a global option was declared", short)
		}
	}
}
