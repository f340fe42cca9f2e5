// SPDX-License-Identifier: MPL-2.0

package pflagdesc

import (
	"errors"
	"reflect"
	"testing"

	"github.com/invowk/argsig/pkg/argsig"

	"github.com/spf13/pflag"
)

func newOrderedFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.SortFlags = false
	return fs
}

func TestFlagSetDescriptor_Options(t *testing.T) {
	t.Parallel()

	fs := newOrderedFlagSet()
	fs.Bool("dry-run", false, "")
	fs.BoolP("force", "f", true, "")
	fs.StringP("tag", "t", "", "")
	fs.String("prefix", "/usr/local", "")
	fs.StringSlice("only-formulae", nil, "")
	fs.StringArray("env", []string{"A=1"}, "")

	d, err := New(fs, WithPositional("formula"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	got, err := d.Options()
	if err != nil {
		t.Fatalf("Options() error = %v", err)
	}

	want := []argsig.Option{
		{Name: "dry_run?", Sample: false},
		{Name: "force?", Sample: true},
		{Name: "f?", Sample: true},
		{Name: "tag", Sample: nil},
		{Name: "prefix", Sample: "/usr/local"},
		{Name: "only_formulae", Sample: []string(nil)},
		{Name: "env", Sample: []string{"A=1"}},
		{Name: argsig.NamedKey, Sample: []string{"formula"}},
		{Name: argsig.RemainingKey, Sample: []string(nil)},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Options() =\n  %#v\nwant\n  %#v", got, want)
	}
}

func TestShortAccessorName(t *testing.T) {
	t.Parallel()

	fs := newOrderedFlagSet()
	fs.BoolP("quiet", "q", false, "")
	fs.Bool("debug", false, "")
	fs.StringP("output", "o", "", "")

	tests := []struct {
		flag   string
		want   string
		wantOK bool
	}{
		{flag: "quiet", want: "q?", wantOK: true},
		{flag: "debug"},
		{flag: "output"},
	}
	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			t.Parallel()
			got, ok := ShortAccessorName(fs.Lookup(tt.flag))
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ShortAccessorName(%s) = (%q, %v), want (%q, %v)", tt.flag, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestFlagSetDescriptor_CommaListOptionNames(t *testing.T) {
	t.Parallel()

	fs := newOrderedFlagSet()
	fs.StringSlice("formulae", nil, "")
	fs.StringArray("env", nil, "")
	fs.StringSlice("global-list", nil, "")
	fs.Bool("quiet", false, "")

	d, err := New(fs, WithGlobalFlags("global-list"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	got, err := d.CommaListOptionNames()
	if err != nil {
		t.Fatalf("CommaListOptionNames() error = %v", err)
	}
	if want := []string{"formulae"}; !reflect.DeepEqual(got, want) {
		t.Errorf("CommaListOptionNames() = %v, want %v", got, want)
	}
}

func TestNew_NilFlagSet(t *testing.T) {
	t.Parallel()

	if _, err := New(nil); !errors.Is(err, ErrNilFlagSet) {
		t.Errorf("New(nil) error = %v, want ErrNilFlagSet", err)
	}
}

func TestFlagSetDescriptor_ThroughPipeline(t *testing.T) {
	t.Parallel()

	fs := newOrderedFlagSet()
	fs.BoolP("verbose", "v", false, "")
	fs.BoolP("build-from-source", "s", false, "")
	fs.StringSlice("tags", []string{"a", "b"}, "")
	fs.String("cc", "", "")

	d, err := New(fs, WithGlobalFlags("verbose"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	reg := argsig.NewRegistry(argsig.NewGlobalOwner(), func() (*argsig.CommandOwner, error) {
		return argsig.NewCommandOwner("install", func() (argsig.Descriptor, error) { return d, nil }), nil
	})
	ns := argsig.NewNamespace("Args")
	s := argsig.NewSynthesizer(argsig.BuildGlobalOptionSet([]string{"--verbose", "-v"}))
	if err := s.Run(reg, ns); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := []argsig.Signature{
		{Name: "build_from_source?", ReturnType: argsig.Boolean},
		{Name: "s?", ReturnType: argsig.Boolean},
		{Name: "tags", ReturnType: argsig.NilableStringArray},
		{Name: "cc", ReturnType: argsig.NilableString},
	}
	if got := ns.Signatures(); !reflect.DeepEqual(got, want) {
		t.Errorf("Signatures() = %v, want %v", got, want)
	}
}
