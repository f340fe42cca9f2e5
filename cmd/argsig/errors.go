// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/invowk/argsig/internal/issue"
	"github.com/invowk/argsig/pkg/argsig"
)

// renderError prints err and, for actionable errors linked to the catalog,
// the matching issue help.
func (a *App) renderError(w io.Writer, err error) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Err == nil {
		return
	}

	fmt.Fprintln(w, ErrorStyle.Render("Error:")+" "+formatErrorForDisplay(err, a.verbose))

	var ae *issue.ActionableError
	if !errors.As(err, &ae) || ae.IssueID == 0 {
		return
	}
	entry := issue.Get(ae.IssueID)
	if entry == nil {
		return
	}
	rendered, renderErr := entry.Render(a.colorScheme())
	if renderErr != nil {
		a.Logger().Warn("failed to render issue catalog entry", "issueID", ae.IssueID, "error", renderErr)
		return
	}
	fmt.Fprint(w, rendered)
}

// formatErrorForDisplay formats an error for user display.
// ActionableErrors use their Format method; verbose adds the error chain.
func formatErrorForDisplay(err error, verbose bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verbose)
	}
	return err.Error()
}

func configLoadError(err error) error {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		if ae.IssueID == 0 {
			ae.IssueID = issue.ConfigLoadFailedId
		}
		return err
	}
	return issue.NewErrorContext().
		WithOperation("load configuration").
		WithIssue(issue.ConfigLoadFailedId).
		Wrap(err).
		BuildError()
}

func definitionsError(path string, err error) error {
	ctx := issue.NewErrorContext().
		WithOperation("load parser definitions").
		WithResource(path)

	if errors.Is(err, fs.ErrNotExist) {
		return ctx.
			WithSuggestion("Pass --definitions to point at another file").
			WithSuggestion("Set 'definitions' in the config file").
			WithIssue(issue.DefinitionsNotFoundId).
			Wrap(err).
			BuildError()
	}
	return ctx.
		WithSuggestion("Check the file against the definition schema").
		WithIssue(issue.DefinitionsInvalidId).
		Wrap(err).
		BuildError()
}

func pipelineError(err error) error {
	ctx := issue.NewErrorContext().WithOperation("synthesize accessor signatures")

	switch {
	case errors.Is(err, argsig.ErrDiscoveryFailed), errors.Is(err, argsig.ErrUnknownOwner):
		ctx.WithIssue(issue.DiscoveryFailedId)
	case errors.Is(err, argsig.ErrNoDescriptor), errors.Is(err, argsig.ErrMalformedDescriptor):
		ctx.WithIssue(issue.DescriptorUnavailableId)
	default:
		var ownerErr *argsig.OwnerError
		if errors.As(err, &ownerErr) {
			ctx.WithIssue(issue.DescriptorUnavailableId)
		}
	}
	return ctx.Wrap(err).BuildError()
}

func writeError(path string, err error) error {
	return issue.NewErrorContext().
		WithOperation("write stub file").
		WithResource(path).
		WithIssue(issue.OutputWriteFailedId).
		Wrap(err).
		BuildError()
}
