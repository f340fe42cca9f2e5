// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

type Id int

const (
	DefinitionsNotFoundId Id = iota + 1
	DefinitionsInvalidId
	DiscoveryFailedId
	DescriptorUnavailableId
	ConfigLoadFailedId
	StaleOutputId
	OutputWriteFailedId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // documentation about the issue type
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

// Render renders the issue's Markdown with the given glamour style
// ("auto", "dark", "light", "notty" or a JSON style path).
func (i *Issue) Render(stylePath string) (string, error) {
	var md strings.Builder
	md.WriteString(string(i.mdMsg))
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		md.WriteString("\n\n## See also\n")
		for _, link := range append(i.DocLinks(), i.extLinks...) {
			md.WriteString("- <" + string(link) + ">\n")
		}
	}
	return render(md.String(), stylePath)
}

var (
	render = glamour.Render

	definitionsNotFoundIssue = &Issue{
		id: DefinitionsNotFoundId,
		mdMsg: `
# No parser definitions found!

argsig needs a definition file that lists the global options, the global
parser factories and one parser per command.

## Things you can try:
- Point at the file explicitly:
~~~
$ argsig generate --definitions path/to/argsig.cue
~~~
- Set ` + "`definitions`" + ` in your config file
- Start from a minimal definition:
~~~cue
namespace: "Args"
global_options: [{name: "verbose", short: "v"}]
commands: [{name: "build", options: [{name: "force"}]}]
~~~`,
	}

	definitionsInvalidIssue = &Issue{
		id: DefinitionsInvalidId,
		mdMsg: `
# Invalid parser definitions!

The definition file does not match the schema, or declares the same name twice.

## Common issues:
- Option names must be lower-case with dashes (` + "`dry-run`" + `)
- ` + "`kind`" + ` must be one of switch, flag, comma_array, array
- Command, factory and option names must be unique in their scope`,
	}

	discoveryFailedIssue = &Issue{
		id: DiscoveryFailedId,
		mdMsg: `
# Parser discovery failed!

The registry could not produce its parser owners, so no declarations were written.
The run has no partial-output mode: fix the registration and run again.`,
	}

	descriptorUnavailableIssue = &Issue{
		id: DescriptorUnavailableId,
		mdMsg: `
# A parser could not be read!

A command or global factory did not return a readable option table.
The failing owner and factory are named in the error above.`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

## Things you can try:
- Print the defaults and compare:
~~~
$ argsig config dump
~~~
- Show where argsig looks for its config:
~~~
$ argsig config path
~~~`,
	}

	staleOutputIssue = &Issue{
		id: StaleOutputId,
		mdMsg: `
# Generated declarations are out of date!

The stub file differs from what the current parser definitions produce.

## Things you can try:
- Regenerate it:
~~~
$ argsig generate
~~~`,
	}

	outputWriteFailedIssue = &Issue{
		id: OutputWriteFailedId,
		mdMsg: `
# Failed to write the stub file!

Check that the output directory exists and is writable.`,
	}

	issues = map[Id]*Issue{
		definitionsNotFoundIssue.Id():   definitionsNotFoundIssue,
		definitionsInvalidIssue.Id():    definitionsInvalidIssue,
		discoveryFailedIssue.Id():       discoveryFailedIssue,
		descriptorUnavailableIssue.Id(): descriptorUnavailableIssue,
		configLoadFailedIssue.Id():      configLoadFailedIssue,
		staleOutputIssue.Id():           staleOutputIssue,
		outputWriteFailedIssue.Id():     outputWriteFailedIssue,
	}
)

// Values returns the catalog ordered by ID.
func Values() []*Issue {
	out := make([]*Issue, 0, len(issues))
	for _, i := range issues {
		out = append(out, i)
	}
	slices.SortFunc(out, func(a, b *Issue) int { return int(a.id) - int(b.id) })
	return out
}

func Get(id Id) *Issue {
	return issues[id]
}
