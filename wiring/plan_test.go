package wiring_test

import (
	"fmt"
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/strangelove-ventures/omnichain-graph/ethereum"
	"github.com/strangelove-ventures/omnichain-graph/graph"
	"github.com/strangelove-ventures/omnichain-graph/types"
	"github.com/strangelove-ventures/omnichain-graph/wiring"
)

var (
	optApp  = types.EndpointPoint{EID: 40232, ContractName: "MyOApp"}
	baseApp = types.EndpointPoint{EID: 40245, ContractName: "MyOApp"}

	chains = map[string]types.ChainConfig{
		"optimism-sepolia": &ethereum.ChainConfig{
			EID:         40232,
			ChainID:     11155420,
			Deployments: map[string]string{"MyOApp": "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"},
		},
		"base-sepolia": &ethereum.ChainConfig{
			EID:         40245,
			ChainID:     84532,
			Deployments: map[string]string{"MyOApp": "0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359"},
		},
	}
)

func edgeConfig() types.EdgeConfig {
	return types.EdgeConfig{
		EnforcedOptions: []types.MessageTypeOption{
			{MsgType: 1, OptionKind: types.DirectReceive, Gas: sdkmath.NewInt(100_000)},
			{MsgType: 2, OptionKind: types.Compose, Index: types.Uint16(0), Gas: sdkmath.NewInt(100_000)},
			{MsgType: 1, OptionKind: types.Compose, Index: types.Uint16(0), Gas: sdkmath.NewInt(30_000)},
		},
	}
}

func buildGraph(t *testing.T) *graph.Graph {
	t.Helper()
	cfg := types.Config{Chains: chains}
	registry, err := cfg.Registry()
	require.NoError(t, err)
	g, err := graph.Build(registry, []types.EndpointPoint{optApp, baseApp}, []types.Edge{
		{From: optApp, To: baseApp, Config: edgeConfig()},
		{From: baseApp, To: optApp},
	})
	require.NoError(t, err)
	return g
}

func TestNewPlan(t *testing.T) {
	g := buildGraph(t)

	plan, err := wiring.NewPlan(g, wiring.NewConfigResolver(chains))
	require.NoError(t, err)

	require.Len(t, plan.Peers, 2)
	require.Equal(t, optApp, plan.Peers[0].OApp)
	require.Equal(t, "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", plan.Peers[0].Address)
	require.Equal(t, types.EndpointID(40245), plan.Peers[0].DstEID)
	require.Equal(t,
		common.BytesToHash(common.HexToAddress("0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359").Bytes()),
		plan.Peers[0].Peer,
	)
	require.Equal(t, baseApp, plan.Peers[1].OApp)

	// grouped per msg type in first appearance order; the second edge has no options
	require.Len(t, plan.EnforcedOptions, 2)
	require.Equal(t, uint16(1), plan.EnforcedOptions[0].MsgType)
	require.Len(t, plan.EnforcedOptions[0].Options, 2)
	require.Equal(t, types.Compose, plan.EnforcedOptions[0].Options[1].OptionKind)
	require.Equal(t, uint16(2), plan.EnforcedOptions[1].MsgType)
	require.Len(t, plan.EnforcedOptions[1].Options, 1)
	require.Equal(t, types.EndpointID(40245), plan.EnforcedOptions[1].DstEID)
}

type failingResolver struct {
	fail types.EndpointPoint
}

func (r failingResolver) Resolve(p types.EndpointPoint) (string, common.Hash, error) {
	if p == r.fail {
		return "", common.Hash{}, fmt.Errorf("not deployed")
	}
	return "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", common.Hash{1}, nil
}

func TestNewPlanResolutionFailure(t *testing.T) {
	g := buildGraph(t)

	_, err := wiring.NewPlan(g, failingResolver{fail: baseApp})
	require.ErrorContains(t, err, "resolving 40245/MyOApp")
}

func TestConfigResolverUnknownChain(t *testing.T) {
	r := wiring.NewConfigResolver(chains)

	_, _, err := r.Resolve(types.EndpointPoint{EID: 30101, ContractName: "MyOApp"})
	require.ErrorContains(t, err, "no chain configured for eid 30101")
}
