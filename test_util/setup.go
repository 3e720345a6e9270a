package testutil

import (
	"os"
	"testing"

	"cosmossdk.io/log"
	sdkmath "cosmossdk.io/math"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/strangelove-ventures/omnichain-graph/cmd"
	"github.com/strangelove-ventures/omnichain-graph/ethereum"
	"github.com/strangelove-ventures/omnichain-graph/types"
)

const (
	OptimismSepolia types.EndpointID = 40232
	BaseSepolia     types.EndpointID = 40245
)

// DefaultEdgeConfig enforces 100k gas on msg type 1 and on compose slot 0 of msg type 2.
func DefaultEdgeConfig() types.EdgeConfig {
	return types.EdgeConfig{
		EnforcedOptions: []types.MessageTypeOption{
			{
				MsgType:    1,
				OptionKind: types.DirectReceive,
				Gas:        sdkmath.NewInt(100_000),
				Value:      sdkmath.ZeroInt(),
			},
			{
				MsgType:    2,
				OptionKind: types.Compose,
				Index:      types.Uint16(0),
				Gas:        sdkmath.NewInt(100_000),
				Value:      sdkmath.ZeroInt(),
			},
		},
	}
}

// ConfigSetup returns an AppState holding a two chain OApp and its validated graph.
func ConfigSetup(t *testing.T) *cmd.AppState {
	t.Helper()

	var testConfig = types.Config{
		Chains: map[string]types.ChainConfig{
			"optimism-sepolia": &ethereum.ChainConfig{
				EID:         OptimismSepolia,
				ChainID:     11155420,
				RPC:         os.Getenv("OPTIMISM_SEPOLIA_RPC"),
				Deployments: map[string]string{"MyOApp": "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"},
			},
			"base-sepolia": &ethereum.ChainConfig{
				EID:         BaseSepolia,
				ChainID:     84532,
				RPC:         os.Getenv("BASE_SEPOLIA_RPC"),
				Deployments: map[string]string{"MyOApp": "0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359"},
			},
		},
		EdgeConfigs: map[string]types.EdgeConfig{
			"default": DefaultEdgeConfig(),
		},
		Contracts: []types.PointConfig{
			{Chain: "optimism-sepolia", ContractName: "MyOApp"},
			{Chain: "base-sepolia", ContractName: "MyOApp"},
		},
		Connections: []types.ConnectionConfig{
			{
				From:      types.PointConfig{Chain: "optimism-sepolia", ContractName: "MyOApp"},
				To:        types.PointConfig{Chain: "base-sepolia", ContractName: "MyOApp"},
				ConfigRef: "default",
			},
			{
				From:      types.PointConfig{Chain: "base-sepolia", ContractName: "MyOApp"},
				To:        types.PointConfig{Chain: "optimism-sepolia", ContractName: "MyOApp"},
				ConfigRef: "default",
			},
		},
	}

	a := cmd.NewAppState()
	a.Logger = log.NewLogger(os.Stderr, log.LevelOption(zerolog.ErrorLevel))
	a.Config = &testConfig
	require.NoError(t, a.BuildGraph(), "Error building graph")

	return a
}
