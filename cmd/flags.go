package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const (
	flagConfigPath  = "config"
	flagEnvFile     = "env-file"
	flagVerbose     = "verbose"
	flagLogLevel    = "log-level"
	flagJSON        = "json"
	flagMetricsPort = "metrics-port"
	flagListenAddr  = "listen-addr"
	flagGas         = "gas"
	flagValue       = "value"
	flagOptionType  = "option-type"
	flagIndex       = "index"
)

func addAppPersistantFlags(cmd *cobra.Command, a *AppState) *cobra.Command {
	cmd.PersistentFlags().StringVar(&a.ConfigPath, flagConfigPath, defaultConfigPath, "file path of config file")
	cmd.PersistentFlags().StringVar(&a.EnvFile, flagEnvFile, "", "env file with deployment address overrides (defaults to ./.env when present)")
	cmd.PersistentFlags().BoolVarP(&a.Debug, flagVerbose, "v", false, fmt.Sprintf("use this flag to set log level to `debug` (overrides %s flag)", flagLogLevel))
	cmd.PersistentFlags().StringVar(&a.LogLevel, flagLogLevel, "info", "log level (debug, info, warn, error)")
	return cmd
}

func addJsonFlag(cmd *cobra.Command) *cobra.Command {
	cmd.Flags().Bool(flagJSON, false, "return in json format")
	return cmd
}

func addServeFlags(cmd *cobra.Command) *cobra.Command {
	cmd.Flags().Int16P(flagMetricsPort, "p", 2112, "customize Prometheus metrics port")
	cmd.Flags().String(flagListenAddr, "", "api listen address (overrides api.listen-addr)")
	return cmd
}

func addEnforceFlags(cmd *cobra.Command) *cobra.Command {
	cmd.Flags().String(flagGas, "", "requested gas; prints the request raised to the floor")
	cmd.Flags().String(flagValue, "", "requested value; prints the request raised to the floor")
	cmd.Flags().String(flagOptionType, "lz-receive", "option type of the request (lz-receive, compose)")
	cmd.Flags().Int(flagIndex, -1, "compose index of the request")
	return cmd
}
