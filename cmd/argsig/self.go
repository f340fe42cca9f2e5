// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/invowk/argsig/internal/config"
	"github.com/invowk/argsig/pkg/argsig"
	"github.com/invowk/argsig/pkg/pflagdesc"
)

func newSelfCommand(app *App) *cobra.Command {
	var (
		format    string
		namespace string
	)

	cmd := &cobra.Command{
		Use:   "self",
		Short: "Write accessor declarations for argsig's own command tree",
		Long: `Run the pipeline over the flag sets of argsig's own cobra commands: the
root persistent flags form the global option set and every runnable
command contributes its local flags.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := app.loadConfig(cmd.Context())
			if err != nil {
				return configLoadError(err)
			}

			root := cmd.Root()
			reg, err := pflagdesc.RegistryFromCommandTree(root, argsig.NewGlobalOwner())
			if err != nil {
				return pipelineError(err)
			}

			ns := argsig.NewNamespace(firstNonEmpty(namespace, cfg.Namespace, config.DefaultNamespace))
			if err := app.newSynthesizer(cfg, pflagdesc.GlobalIdentifiers(root)).Run(reg, ns); err != nil {
				return pipelineError(err)
			}

			_, rendered, err := renderStub(ns, firstNonEmpty(format, string(cfg.Format)), "")
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(rendered)
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: rbi, go or toml (default from config)")
	cmd.Flags().StringVarP(&namespace, "namespace", "n", "", "declaration target name")

	return cmd
}
