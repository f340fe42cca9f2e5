// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"

	"github.com/invowk/argsig/internal/config"
	"github.com/invowk/argsig/pkg/argsig"
	"github.com/invowk/argsig/pkg/parserdef"
)

// sourceFlags are the definition-selection flags shared by generate and list.
type sourceFlags struct {
	definitions string
	namespace   string
}

// synthesizeDefinitions loads the parser definitions selected by src and the
// configuration, and runs the pipeline over them. The namespace name is
// taken from --namespace, then the definition file, then the config.
func (a *App) synthesizeDefinitions(ctx context.Context, src sourceFlags) (*argsig.Namespace, *config.Config, error) {
	cfg, err := a.loadConfig(ctx)
	if err != nil {
		return nil, nil, configLoadError(err)
	}

	path := firstNonEmpty(src.definitions, cfg.Definitions, config.DefaultDefinitionsFile)
	defs, err := parserdef.Load(path)
	if err != nil {
		return nil, nil, definitionsError(path, err)
	}
	a.Logger().Debug("loaded parser definitions", "path", path,
		"factories", len(defs.Factories), "commands", len(defs.Commands))

	ns := argsig.NewNamespace(firstNonEmpty(src.namespace, defs.Namespace, cfg.Namespace, config.DefaultNamespace))
	if err := a.newSynthesizer(cfg, defs.GlobalIdentifiers()).Run(defs.Registry(), ns); err != nil {
		return nil, nil, pipelineError(err)
	}

	return ns, cfg, nil
}

func (a *App) newSynthesizer(cfg *config.Config, globalIdentifiers []string) *argsig.Synthesizer {
	s := argsig.NewSynthesizer(argsig.BuildGlobalOptionSet(globalIdentifiers))
	s.Exclusions = argsig.NewFactoryExclusions(cfg.ExcludeFactories...)
	s.Logger = a.Logger()
	return s
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
