// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/invowk/argsig/internal/config"
	"github.com/invowk/argsig/internal/issue"
	"github.com/invowk/argsig/internal/stub"
	"github.com/invowk/argsig/pkg/argsig"
)

type generateFlags struct {
	sourceFlags
	format string
	output string
	pkg    string
	check  bool
}

func newGenerateCommand(app *App) *cobra.Command {
	var flags generateFlags

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write accessor declarations for the parser definitions",
		Long: `Load the parser definitions, synthesize one accessor signature per option
and write the declarations in the selected format.

With --check nothing is written: the command compares the rendered
declarations with --output and exits 1 with a unified diff when they differ.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.runGenerate(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.definitions, "definitions", "d", "", "parser definition file (default from config, then argsig.cue)")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "", "output format: rbi, go or toml (default from config)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "stub file to write (default from config, empty for stdout)")
	cmd.Flags().StringVarP(&flags.namespace, "namespace", "n", "", "declaration target name")
	cmd.Flags().StringVar(&flags.pkg, "package", "", "package clause for go output")
	cmd.Flags().BoolVar(&flags.check, "check", false, "fail if the output file is out of date instead of writing it")

	return cmd
}

func (a *App) runGenerate(cmd *cobra.Command, flags generateFlags) error {
	ns, cfg, err := a.synthesizeDefinitions(cmd.Context(), flags.sourceFlags)
	if err != nil {
		return err
	}

	format, rendered, err := renderStub(ns, firstNonEmpty(flags.format, string(cfg.Format)), flags.pkg)
	if err != nil {
		return err
	}

	output := firstNonEmpty(flags.output, cfg.Output)
	if flags.check {
		return a.checkStub(cmd, output, format, rendered)
	}

	if output == "" {
		_, err := cmd.OutOrStdout().Write(rendered)
		return err
	}

	if err := writeStub(output, rendered); err != nil {
		return writeError(output, err)
	}
	a.Logger().Debug("wrote stub file", "path", output, "bytes", len(rendered))
	fmt.Fprintf(cmd.OutOrStdout(), "%s Wrote %d signatures to %s\n", SuccessStyle.Render("✓"), ns.Len(), output)
	return nil
}

// checkStub compares rendered with the file at path. A missing file counts
// as empty.
func (a *App) checkStub(cmd *cobra.Command, path string, format stub.Format, rendered []byte) error {
	if path == "" {
		return errors.New("--check requires an output file (--output or 'output' in the config)")
	}

	current, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return issue.NewErrorContext().
			WithOperation("read stub file").
			WithResource(path).
			Wrap(err).
			BuildError()
	}

	if stub.Equal(format, current, rendered) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s is up to date\n", SuccessStyle.Render("✓"), path)
		return nil
	}

	diff, err := stub.Diff(current, rendered, path)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), diff)

	return &ExitError{
		Code: 1,
		Err: issue.NewErrorContext().
			WithOperation("check stub file").
			WithResource(path).
			WithSuggestion("Run 'argsig generate' to regenerate it").
			WithIssue(issue.StaleOutputId).
			Wrap(errStaleOutput).
			BuildError(),
	}
}

var errStaleOutput = errors.New("declarations are out of date")

func renderStub(ns *argsig.Namespace, format, pkg string) (stub.Format, []byte, error) {
	f, err := stub.ParseFormat(strings.ToLower(firstNonEmpty(format, string(config.FormatRBI))))
	if err != nil {
		return "", nil, err
	}
	emitter, err := stub.New(f, stub.Options{Package: pkg})
	if err != nil {
		return "", nil, err
	}
	rendered, err := stub.Render(emitter, ns)
	return f, rendered, err
}

func writeStub(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}
