// SPDX-License-Identifier: MPL-2.0

package stub

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"strings"
	"text/template"
	"unicode"
	"unicode/utf8"

	"github.com/invowk/argsig/pkg/argsig"

	"github.com/iancoleman/strcase"
)

type (
	goEmitter struct {
		pkg string
	}

	goMethod struct {
		Name       string
		Accessor   string
		ReturnType string
	}
)

var goTypes = map[argsig.ReturnType]string{
	argsig.Boolean:            "bool",
	argsig.NilableString:      "*string",
	argsig.NilableStringArray: "[]string",
}

var goTemplate = template.Must(template.New("go").Parse(`// Code generated by argsig. DO NOT EDIT.

package {{ .Package }}

// {{ .Interface }} lists the accessors available on parsed arguments.
type {{ .Interface }} interface {
{{- range .Methods }}
	// {{ .Name }} reads {{ .Accessor }}.
	{{ .Name }}() {{ .ReturnType }}
{{- end }}
}
`))

// Emit writes ns as a gofmt-formatted Go interface.
func (e goEmitter) Emit(ns *argsig.Namespace, w io.Writer) error {
	sigs := ns.Signatures()
	values := make(map[string]struct{}, len(sigs))
	for _, sig := range sigs {
		if !strings.HasSuffix(sig.Name, "?") {
			values[GoMethodName(sig.Name)] = struct{}{}
		}
	}

	methods := make([]goMethod, 0, len(sigs))
	seen := make(map[string]string, len(sigs))
	for _, sig := range sigs {
		rt, ok := goTypes[sig.ReturnType]
		if !ok {
			return sig.ReturnType.Validate()
		}
		name := GoMethodName(sig.Name)
		if _, clash := values[name]; clash && strings.HasSuffix(sig.Name, "?") {
			name = "Is" + name
		}
		if prev, dup := seen[name]; dup {
			return fmt.Errorf("accessors %q and %q both map to Go method %s", prev, sig.Name, name)
		}
		seen[name] = sig.Name
		methods = append(methods, goMethod{Name: name, Accessor: sig.Name, ReturnType: rt})
	}

	var buf bytes.Buffer
	err := goTemplate.Execute(&buf, struct {
		Package   string
		Interface string
		Methods   []goMethod
	}{
		Package:   e.pkg,
		Interface: GoIdentifier(ns.Name()),
		Methods:   methods,
	})
	if err != nil {
		return fmt.Errorf("render go stub: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("format go stub: %w", err)
	}
	_, err = w.Write(src)
	return err
}

// GoMethodName converts an accessor ("dry_run?") to an exported Go method
// name ("DryRun"). Emit prefixes switch methods with "Is" when a value
// accessor of the same name exists.
func GoMethodName(accessor string) string {
	return strcase.ToCamel(strings.TrimSuffix(accessor, "?"))
}

// GoIdentifier converts a namespace name ("Homebrew::CLI::Args") to a Go
// identifier ("HomebrewCLIArgs"). Empty names yield "Args".
func GoIdentifier(name string) string {
	var sb strings.Builder
	for _, part := range strings.Split(name, "::") {
		sb.WriteString(exportSegment(part))
	}
	if sb.Len() == 0 {
		return "Args"
	}
	return sb.String()
}

// exportSegment upper-cases the first rune of a namespace segment and keeps
// the rest, so acronyms like "CLI" survive. Segments with word separators
// ("dev_cmd") are camel-cased by strcase.
func exportSegment(part string) string {
	if strings.ContainsAny(part, "_-. ") {
		return strcase.ToCamel(part)
	}
	r, size := utf8.DecodeRuneInString(part)
	if size == 0 {
		return ""
	}
	return string(unicode.ToUpper(r)) + part[size:]
}
