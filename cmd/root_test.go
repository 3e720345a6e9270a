package cmd_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/strangelove-ventures/omnichain-graph/cmd"
	"github.com/strangelove-ventures/omnichain-graph/graph"
	"github.com/strangelove-ventures/omnichain-graph/types"
	"github.com/strangelove-ventures/omnichain-graph/wiring"
)

const sampleConfig = "../config/sample-config.yaml"

func run(t *testing.T, config string, args ...string) (string, error) {
	t.Helper()
	root := cmd.NewRootCmd(cmd.NewAppState())
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(append([]string{"--config", config, "--log-level", "error"}, args...))
	err := root.Execute()
	return buf.String(), err
}

func TestValidateCmd(t *testing.T) {
	out, err := run(t, sampleConfig, "validate")
	require.NoError(t, err)
	require.Equal(t, "graph is valid: 2 contracts, 2 connections\n", out)
}

func TestValidateCmdRejectsDuplicateConnection(t *testing.T) {
	path := writeConfig(t, `
chains:
  a: {eid: 1, chain-id: 1}
  b: {eid: 2, chain-id: 2}
contracts:
  - {eid: 1, contract-name: App}
  - {eid: 2, contract-name: App}
connections:
  - {from: {eid: 1, contract-name: App}, to: {eid: 2, contract-name: App}}
  - {from: {chain: a, contract-name: App}, to: {chain: b, contract-name: App}}
`)
	_, err := run(t, path, "validate")
	require.ErrorIs(t, err, graph.ErrDuplicateEdge)
}

func TestValidateCmdRejectsSharedEID(t *testing.T) {
	path := writeConfig(t, `
chains:
  a: {eid: 1, chain-id: 1}
  b: {eid: 1, chain-id: 2}
contracts:
  - {eid: 1, contract-name: App}
`)
	_, err := run(t, path, "validate")
	require.ErrorContains(t, err, "share eid 1")
}

func TestValidateCmdRejectsBadDeployment(t *testing.T) {
	path := writeConfig(t, `
chains:
  a:
    eid: 1
    chain-id: 1
    deployments: {App: "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAeD"}
contracts:
  - {eid: 1, contract-name: App}
`)
	_, err := run(t, path, "validate")
	require.ErrorContains(t, err, "EIP-55")
}

func TestFloorCmd(t *testing.T) {
	out, err := run(t, sampleConfig, "floor", "optimism-sepolia/MyOApp", "base-sepolia/MyOApp", "1", "--json")
	require.NoError(t, err)

	var floor types.MessageTypeOption
	require.NoError(t, json.Unmarshal([]byte(out), &floor))
	require.Equal(t, types.DirectReceive, floor.OptionKind)
	require.Equal(t, "100000", floor.Gas.String())

	out, err = run(t, sampleConfig, "floor", "40245/MyOApp", "40232/MyOApp", "2", "--json")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &floor))
	require.Equal(t, types.Compose, floor.OptionKind)

	out, err = run(t, sampleConfig, "floor", "40245/MyOApp", "40232/MyOApp", "3")
	require.NoError(t, err)
	require.Contains(t, out, "no enforced option for msg-type 3")

	_, err = run(t, sampleConfig, "floor", "40245/Other", "40232/MyOApp", "1")
	require.ErrorContains(t, err, "not declared")
}

func TestFloorCmdEnforce(t *testing.T) {
	out, err := run(t, sampleConfig, "floor", "optimism-sepolia/MyOApp", "base-sepolia/MyOApp", "1", "--gas", "5000", "--json")
	require.NoError(t, err)

	var got types.MessageTypeOption
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Equal(t, "100000", got.Gas.String())

	out, err = run(t, sampleConfig, "floor", "optimism-sepolia/MyOApp", "base-sepolia/MyOApp", "2",
		"--option-type", "compose", "--index", "0", "--gas", "300000", "--value", "1", "--json")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Equal(t, "300000", got.Gas.String())
	require.Equal(t, "1", got.Value.String())
}

func TestPlanCmd(t *testing.T) {
	out, err := run(t, sampleConfig, "plan", "--json")
	require.NoError(t, err)

	var plan wiring.Plan
	require.NoError(t, json.Unmarshal([]byte(out), &plan))
	require.Len(t, plan.Peers, 2)
	require.Len(t, plan.EnforcedOptions, 4)
	require.Equal(t, "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", plan.Peers[0].Address)
}

func TestShowConfigCmd(t *testing.T) {
	out, err := run(t, sampleConfig, "show-config")
	require.NoError(t, err)
	require.Contains(t, out, "optimism-sepolia")
	require.Contains(t, out, "option-type: compose")
}

func TestVersionCmd(t *testing.T) {
	out, err := run(t, sampleConfig, "version", "--json")
	require.NoError(t, err)
	require.Contains(t, out, `"go"`)
}
