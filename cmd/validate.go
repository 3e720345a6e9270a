package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func validateCmd(a *AppState) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the contracts and connections declared in the config",
		Example: strings.TrimSpace(fmt.Sprintf(`
$ %s validate --config %s`, appName, defaultConfigPath)),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.InitAppState(); err != nil {
				return err
			}

			registry, err := a.Config.Registry()
			if err != nil {
				return err
			}
			for _, p := range a.Graph.Nodes() {
				out := a.Graph.EdgesFrom(p)
				a.Logger.Debug("Contract", "chain", registry.Name(p.EID), "contract", p.ContractName, "connections", len(out))
			}

			fmt.Fprintf(cmd.OutOrStdout(), "graph is valid: %d contracts, %d connections\n",
				len(a.Graph.Nodes()), len(a.Graph.Edges()))
			return nil
		},
	}
}
