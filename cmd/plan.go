package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/strangelove-ventures/omnichain-graph/wiring"
)

func planCmd(a *AppState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Print the peer and enforced option registrations the graph requires",
		Example: strings.TrimSpace(fmt.Sprintf(`
$ %s plan
$ %s plan --json`, appName, appName)),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.InitAppState(); err != nil {
				return err
			}

			plan, err := wiring.NewPlan(a.Graph, wiring.NewConfigResolver(a.Config.Chains))
			if err != nil {
				return err
			}
			a.Logger.Info("Built wiring plan", "peers", len(plan.Peers), "enforced-options", len(plan.EnforcedOptions))
			return printOutput(cmd, plan)
		},
	}
	addJsonFlag(cmd)
	return cmd
}
