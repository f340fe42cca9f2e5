// SPDX-License-Identifier: MPL-2.0

package stub

import (
	"fmt"
	"io"

	"github.com/invowk/argsig/pkg/argsig"

	"github.com/pelletier/go-toml/v2"
)

type (
	tomlEmitter struct{}

	// Manifest is the TOML representation of a namespace.
	Manifest struct {
		Generated  string              `toml:"generated"`
		Namespace  string              `toml:"namespace"`
		Signatures []ManifestSignature `toml:"signatures"`
	}

	// ManifestSignature is one accessor entry of a Manifest.
	ManifestSignature struct {
		Name string            `toml:"name"`
		Type argsig.ReturnType `toml:"type"`
	}
)

// Emit writes ns as a TOML manifest.
func (tomlEmitter) Emit(ns *argsig.Namespace, w io.Writer) error {
	m := Manifest{Generated: banner, Namespace: ns.Name()}
	for _, sig := range ns.Signatures() {
		if err := sig.ReturnType.Validate(); err != nil {
			return err
		}
		m.Signatures = append(m.Signatures, ManifestSignature{Name: sig.Name, Type: sig.ReturnType})
	}

	enc := toml.NewEncoder(w)
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("encode toml manifest: %w", err)
	}
	return nil
}

// DecodeManifest reads a manifest back into a namespace.
func DecodeManifest(r io.Reader) (*argsig.Namespace, error) {
	var m Manifest
	if err := toml.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("decode toml manifest: %w", err)
	}
	ns := argsig.NewNamespace(m.Namespace)
	for _, s := range m.Signatures {
		if err := s.Type.Validate(); err != nil {
			return nil, fmt.Errorf("signature %q: %w", s.Name, err)
		}
		ns.Add(argsig.Signature{Name: s.Name, ReturnType: s.Type})
	}
	return ns, nil
}
