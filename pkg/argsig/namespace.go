// SPDX-License-Identifier: MPL-2.0

package argsig

import "golang.org/x/exp/slices"

// Namespace is the shared, insertion-ordered set of signatures produced by one
// run. No two entries share a name: the first Add for a name wins and later
// attempts are ignored.
type Namespace struct {
	name    string
	entries []Signature
	index   map[string]int
}

// NewNamespace creates an empty namespace. The name identifies the declaration
// target (for example the class or interface the emitter writes).
func NewNamespace(name string) *Namespace {
	return &Namespace{
		name:  name,
		index: make(map[string]int),
	}
}

// Name returns the declaration target name.
func (n *Namespace) Name() string {
	return n.name
}

// Add inserts sig unless an entry with the same name already exists.
// It reports whether the signature was inserted.
func (n *Namespace) Add(sig Signature) bool {
	if _, exists := n.index[sig.Name]; exists {
		return false
	}
	n.index[sig.Name] = len(n.entries)
	n.entries = append(n.entries, sig)
	return true
}

// Has reports whether a signature with the given name exists.
func (n *Namespace) Has(name string) bool {
	_, ok := n.index[name]
	return ok
}

// Lookup returns the signature registered under name.
func (n *Namespace) Lookup(name string) (Signature, bool) {
	i, ok := n.index[name]
	if !ok {
		return Signature{}, false
	}
	return n.entries[i], true
}

// Len returns the number of signatures.
func (n *Namespace) Len() int {
	return len(n.entries)
}

// Signatures returns a copy of the signatures in insertion order.
func (n *Namespace) Signatures() []Signature {
	return slices.Clone(n.entries)
}
