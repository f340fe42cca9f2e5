// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// NewRootCommand builds the argsig command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "argsig",
		Short: "Synthesize typed accessor signatures from CLI parser definitions",
		Long: TitleStyle.Render("argsig") + SubtitleStyle.Render(" - typed accessor signatures for CLI parsers") + `

argsig reads the option tables of a program's command-line parsers and
writes one declaration per accessor (switch, value flag or comma list)
for a shared arguments class, so a static type checker can see them.

` + SubtitleStyle.Render("Examples:") + `
  argsig generate                      Write declarations for argsig.cue to stdout
  argsig generate -o args.rbi          Write them to a file
  argsig generate -o args.rbi --check  Fail when args.rbi is stale
  argsig list                          Show the synthesized signatures
  argsig config show                   Show the current configuration`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&app.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&app.configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/argsig/config.cue)")

	rootCmd.AddCommand(newGenerateCommand(app))
	rootCmd.AddCommand(newListCommand(app))
	rootCmd.AddCommand(newSelfCommand(app))
	rootCmd.AddCommand(newConfigCommand(app))

	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Run executes argsig with args and returns the process exit code.
func Run(ctx context.Context, args []string, deps Dependencies) int {
	app := NewApp(deps)
	rootCmd := NewRootCommand(app)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(app.stdout)
	rootCmd.SetErr(app.stderr)

	err := fang.Execute(
		ctx,
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(func(w io.Writer, _ fang.Styles, err error) {
			app.renderError(w, err)
		}),
	)
	if err == nil {
		return 0
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 1
}

// Execute runs the CLI with the process arguments and exits.
func Execute() {
	os.Exit(Run(context.Background(), os.Args[1:], Dependencies{}))
}
