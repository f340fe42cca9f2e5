// SPDX-License-Identifier: MPL-2.0

package argsig

import (
	"errors"
	"testing"
)

func TestCollect_GlobalFirstThenRegistrationOrder(t *testing.T) {
	t.Parallel()

	reg := NewRegistry(NewGlobalOwner(), commandFactory("install", &tableDescriptor{}))
	reg.Register(commandFactory("fetch", &tableDescriptor{}), commandFactory("audit", &tableDescriptor{}))

	owners, err := Collect(reg)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	want := []string{GlobalOwnerName, "install", "fetch", "audit"}
	if len(owners) != len(want) {
		t.Fatalf("len(Collect()) = %d, want %d", len(owners), len(want))
	}
	for i, o := range owners {
		if o.OwnerName() != want[i] {
			t.Errorf("owners[%d] = %q, want %q", i, o.OwnerName(), want[i])
		}
	}
	if _, ok := owners[0].(*GlobalOwner); !ok {
		t.Errorf("owners[0] = %T, want *GlobalOwner", owners[0])
	}
}

func TestCollect_Errors(t *testing.T) {
	t.Parallel()

	if _, err := Collect(nil); !errors.Is(err, ErrDiscoveryFailed) {
		t.Errorf("Collect(nil) error = %v, want ErrDiscoveryFailed", err)
	}

	reg := NewRegistry(NewGlobalOwner(), nil)
	if _, err := Collect(reg); !errors.Is(err, ErrDiscoveryFailed) {
		t.Errorf("Collect() with nil factory error = %v, want ErrDiscoveryFailed", err)
	}

	reg = NewRegistry(NewGlobalOwner(), func() (*CommandOwner, error) { return nil, nil })
	if _, err := Collect(reg); !errors.Is(err, ErrDiscoveryFailed) {
		t.Errorf("Collect() with nil owner error = %v, want ErrDiscoveryFailed", err)
	}
}

func TestCommandOwner_Parser(t *testing.T) {
	t.Parallel()

	if _, err := NewCommandOwner("x", nil).Parser(); !errors.Is(err, ErrNoDescriptor) {
		t.Errorf("Parser() with nil func error = %v, want ErrNoDescriptor", err)
	}

	d := &tableDescriptor{}
	got, err := NewCommandOwner("x", descriptorFunc(d)).Parser()
	if err != nil || got != d {
		t.Errorf("Parser() = %v, %v; want the wrapped descriptor", got, err)
	}
}
