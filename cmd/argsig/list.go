// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/invowk/argsig/pkg/argsig"
)

type listFlags struct {
	sourceFlags
	markdown bool
}

func newListCommand(app *App) *cobra.Command {
	var flags listFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the synthesized accessor signatures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ns, _, err := app.synthesizeDefinitions(cmd.Context(), flags.sourceFlags)
			if err != nil {
				return err
			}
			if flags.markdown {
				return renderMarkdown(cmd.OutOrStdout(), ns, app.colorScheme())
			}
			renderTable(cmd.OutOrStdout(), ns)
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.definitions, "definitions", "d", "", "parser definition file (default from config, then argsig.cue)")
	cmd.Flags().StringVarP(&flags.namespace, "namespace", "n", "", "declaration target name")
	cmd.Flags().BoolVar(&flags.markdown, "markdown", false, "render the signatures as markdown")

	return cmd
}

func renderTable(w io.Writer, ns *argsig.Namespace) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(tableBorderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			return tableCellStyle
		}).
		Headers("ACCESSOR", "TYPE")

	for _, sig := range ns.Signatures() {
		t.Row(sig.Name, sig.ReturnType.String())
	}

	fmt.Fprintln(w, TitleStyle.Render(ns.Name()))
	fmt.Fprintln(w, t.Render())
	fmt.Fprintln(w, SubtitleStyle.Render(fmt.Sprintf("%d signatures", ns.Len())))
}

func renderMarkdown(w io.Writer, ns *argsig.Namespace, style string) error {
	var md strings.Builder
	fmt.Fprintf(&md, "# %s\n\n", ns.Name())
	md.WriteString("| Accessor | Type |\n| --- | --- |\n")
	for _, sig := range ns.Signatures() {
		fmt.Fprintf(&md, "| `%s` | %s |\n", sig.Name, sig.ReturnType)
	}

	out, err := glamour.Render(md.String(), style)
	if err != nil {
		return fmt.Errorf("failed to render markdown: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}
