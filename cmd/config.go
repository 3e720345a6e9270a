package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	yamlv2 "gopkg.in/yaml.v2"
	"gopkg.in/yaml.v3"

	"github.com/strangelove-ventures/omnichain-graph/ethereum"
	"github.com/strangelove-ventures/omnichain-graph/types"
)

// Command for printing current configuration
func configShowCmd(a *AppState) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "show-config",
		Aliases: []string{"showConfig", "sc"},
		Short:   "Prints current configuration. By default it prints in yaml",
		Example: strings.TrimSpace(fmt.Sprintf(`
$ %s show-config --config %s
$ %s sc --json`, appName, defaultConfigPath, appName)),
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.Logger == nil {
				a.InitLogger()
			}
			if a.Config == nil {
				if err := a.loadConfigFile(); err != nil {
					return err
				}
			}
			return printOutput(cmd, a.Config)
		},
	}
	addJsonFlag(cmd)
	return cmd
}

// printOutput writes v to the command output as yaml, or json with --json.
func printOutput(cmd *cobra.Command, v any) error {
	jsn, err := cmd.Flags().GetBool(flagJSON)
	if err != nil {
		return err
	}

	switch {
	case jsn:
		out, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	default:
		out, err := yamlv2.Marshal(v)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), string(out))
		return nil
	}
}

// ParseConfig parses the app config file
func ParseConfig(file string) (*types.Config, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %w", err)
	}

	var cfg types.ConfigWrapper
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	c := types.Config{
		EdgeConfigs: cfg.EdgeConfigs,
		Contracts:   cfg.Contracts,
		Connections: cfg.Connections,
		Api:         cfg.Api,
		Chains:      make(map[string]types.ChainConfig),
	}

	// every supported chain is an EVM chain
	for name, chain := range cfg.Chains {
		chain := chain
		var cc ethereum.ChainConfig
		if err := types.DecodeStrict(&chain, &cc); err != nil {
			return nil, fmt.Errorf("error unmarshalling chain %s: %w", name, err)
		}
		c.Chains[name] = &cc
	}
	return &c, nil
}
