// SPDX-License-Identifier: MPL-2.0

package stub

import (
	"bufio"
	"fmt"
	"io"

	"github.com/invowk/argsig/pkg/argsig"
)

type rbiEmitter struct{}

var rbiTypes = map[argsig.ReturnType]string{
	argsig.Boolean:            "T::Boolean",
	argsig.NilableString:      "T.nilable(String)",
	argsig.NilableStringArray: "T.nilable(T::Array[String])",
}

// Emit writes ns as a Sorbet class with one sig per accessor.
func (rbiEmitter) Emit(ns *argsig.Namespace, w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "# typed: strict\n\n# %s\n\nclass %s\n", banner, ns.Name())
	for i, sig := range ns.Signatures() {
		rt, ok := rbiTypes[sig.ReturnType]
		if !ok {
			return sig.ReturnType.Validate()
		}
		if i > 0 {
			bw.WriteString("\n")
		}
		fmt.Fprintf(bw, "  sig { returns(%s) }\n  def %s; end\n", rt, sig.Name)
	}
	bw.WriteString("end\n")

	return bw.Flush()
}
