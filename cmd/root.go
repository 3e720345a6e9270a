package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

const (
	appName           = "oapp-graph"
	defaultConfigPath = "./config.yaml"
)

// NewRootCmd returns the root command with every subcommand sharing one AppState.
func NewRootCmd(a *AppState) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           appName,
		Short:         "Validate and inspect the omnichain graph of an OApp",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	addAppPersistantFlags(rootCmd, a)

	rootCmd.AddCommand(
		validateCmd(a),
		configShowCmd(a),
		floorCmd(a),
		planCmd(a),
		serveCmd(a),
		versionCmd(),
	)
	return rootCmd
}

func Execute() {
	a := NewAppState()
	if err := NewRootCmd(a).Execute(); err != nil {
		if a.Logger == nil {
			a.InitLogger()
		}
		a.Logger.Error(err.Error())
		os.Exit(1)
	}
}
