// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/invowk/argsig/internal/config"
)

type (
	// App wires CLI services and shared dependencies. Every command handler
	// receives the App and reads configuration and the logger through it.
	App struct {
		Config config.Provider
		stdout io.Writer
		stderr io.Writer

		verbose    bool
		configPath string

		loaded *config.LoadResult
		logger *log.Logger
	}

	// Dependencies defines the injection points for building an App. Nil fields
	// are replaced with production defaults by NewApp.
	Dependencies struct {
		Config config.Provider
		Stdout io.Writer
		Stderr io.Writer
	}
)

// NewApp creates an App from deps.
func NewApp(deps Dependencies) *App {
	app := &App{
		Config: deps.Config,
		stdout: deps.Stdout,
		stderr: deps.Stderr,
	}
	if app.Config == nil {
		app.Config = config.NewProvider()
	}
	if app.stdout == nil {
		app.stdout = os.Stdout
	}
	if app.stderr == nil {
		app.stderr = os.Stderr
	}
	return app
}

// loadConfig loads the configuration once per run. Verbose mode comes from
// the flag or, when the flag is unset, from ui.verbose.
func (a *App) loadConfig(ctx context.Context) (*config.Config, error) {
	if a.loaded != nil {
		return a.loaded.Config, nil
	}

	res, err := a.Config.Load(ctx, config.LoadOptions{ConfigFilePath: a.configPath})
	if err != nil {
		return nil, err
	}
	a.loaded = &res

	if !a.verbose {
		a.verbose = res.Config.UI.Verbose
	}
	a.logger = newLogger(a.stderr, a.verbose)
	if res.Path != "" {
		a.logger.Debug("loaded configuration", "path", res.Path)
	}

	return res.Config, nil
}

// Logger returns the run logger. Before configuration is loaded it honors
// only the --verbose flag.
func (a *App) Logger() *log.Logger {
	if a.logger == nil {
		a.logger = newLogger(a.stderr, a.verbose)
	}
	return a.logger
}

// colorScheme is the glamour style used for markdown output.
func (a *App) colorScheme() string {
	if a.loaded == nil || a.loaded.Config.UI.ColorScheme == "" {
		return string(config.ColorSchemeAuto)
	}
	return string(a.loaded.Config.UI.ColorScheme)
}
