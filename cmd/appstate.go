package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"cosmossdk.io/log"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/strangelove-ventures/omnichain-graph/ethereum"
	"github.com/strangelove-ventures/omnichain-graph/graph"
	"github.com/strangelove-ventures/omnichain-graph/types"
)

// AppState is the modifiable state of the application.
type AppState struct {
	Config *types.Config

	Graph *graph.Graph

	ConfigPath string

	EnvFile string

	Debug bool

	LogLevel string

	Logger log.Logger
}

func NewAppState() *AppState {
	return &AppState{}
}

// InitAppState makes sure a logger, config and validated graph are present,
// loading whichever is missing.
func (a *AppState) InitAppState() error {
	if a.Logger == nil {
		a.InitLogger()
	}
	if a.Config == nil {
		if err := a.loadEnvFile(); err != nil {
			return err
		}
		if err := a.loadConfigFile(); err != nil {
			return err
		}
	}
	if a.Graph == nil {
		return a.BuildGraph()
	}
	return nil
}

func (a *AppState) InitLogger() {
	// info level is default
	level := zerolog.InfoLevel
	switch a.LogLevel {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	// a.Debug overrides a.LogLevel
	if a.Debug {
		level = zerolog.DebugLevel
	}
	// logs go to stderr so command output can be piped
	a.Logger = log.NewLogger(os.Stderr, log.LevelOption(level))
}

// loadEnvFile loads deployment address overrides. A missing default .env is not an error.
func (a *AppState) loadEnvFile() error {
	if a.EnvFile == "" {
		err := godotenv.Load()
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load .env: %w", err)
		}
		return nil
	}
	if err := godotenv.Load(a.EnvFile); err != nil {
		return fmt.Errorf("failed to load env file %s: %w", a.EnvFile, err)
	}
	a.Logger.Debug("Loaded env file", "location", a.EnvFile)
	return nil
}

// loadConfigFile loads a configuration into the AppState. It uses the AppState ConfigPath
// to determine file path to config.
func (a *AppState) loadConfigFile() error {
	config, err := ParseConfig(a.ConfigPath)
	if err != nil {
		a.Logger.Error("Unable to parse config file", "location", a.ConfigPath, "err", err)
		return err
	}
	a.Logger.Info("Successfully parsed config file", "location", a.ConfigPath)
	a.Config = config

	if err := a.validateConfig(); err != nil {
		a.Logger.Error("Invalid config", "err", err)
		return err
	}
	return nil
}

// BuildGraph validates the declaration held by the config and stores the resulting graph.
func (a *AppState) BuildGraph() error {
	nodes, edges, err := a.Config.Declaration()
	if err != nil {
		return fmt.Errorf("invalid declaration: %w", err)
	}

	registry, err := a.Config.Registry()
	if err != nil {
		return err
	}

	g, err := graph.Build(registry, nodes, edges)
	if err != nil {
		a.Logger.Error("Invalid omnichain graph", "err", err)
		return err
	}
	a.Graph = g
	a.Logger.Debug("Built omnichain graph", "nodes", len(nodes), "edges", len(edges))
	return nil
}

// validateConfig checks the AppState Config for any invalid settings.
func (a *AppState) validateConfig() error {
	if len(a.Config.Chains) == 0 {
		return fmt.Errorf("at least one chain must be configured")
	}

	if _, err := a.Config.Registry(); err != nil {
		return err
	}

	for name, cfg := range a.Config.Chains {
		cc, ok := cfg.(*ethereum.ChainConfig)
		if !ok {
			continue
		}
		if err := a.validateChain(name, cc); err != nil {
			return err
		}
	}

	if len(a.Config.Contracts) == 0 {
		return fmt.Errorf("at least one contract must be declared in the config")
	}
	return nil
}

// validateChain ensures the chain is configured correctly
func (a *AppState) validateChain(name string, cc *ethereum.ChainConfig) error {
	if name == "" {
		return fmt.Errorf("chain name must be set in the config")
	}

	if cc.EID == 0 {
		return fmt.Errorf("eid must be set in the config (chain: %s)", name)
	}

	if cc.ChainID <= 0 {
		return fmt.Errorf("chain-id must be greater than zero in the config (chain: %s) (chain-id: %d)", name, cc.ChainID)
	}

	for contract := range cc.Deployments {
		if _, err := cc.Address(name, contract); err != nil {
			return err
		}
	}

	return nil
}
