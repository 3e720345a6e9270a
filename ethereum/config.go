package ethereum

import (
	"fmt"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/strangelove-ventures/omnichain-graph/types"
)

var _ types.ChainConfig = (*ChainConfig)(nil)

type ChainConfig struct {
	EID     types.EndpointID `yaml:"eid" json:"eid"`
	ChainID int64            `yaml:"chain-id" json:"chain-id"`
	RPC     string           `yaml:"rpc" json:"rpc"`

	// contract name -> deployed address
	Deployments map[string]string `yaml:"deployments" json:"deployments"`
}

func (c *ChainConfig) EndpointID() types.EndpointID {
	return c.EID
}

// Address returns the EIP-55 form of the contract's deployed address.
func (c *ChainConfig) Address(chainName, contractName string) (string, error) {
	addr, err := c.deployment(chainName, contractName)
	if err != nil {
		return "", err
	}
	return addr.Hex(), nil
}

func (c *ChainConfig) Peer(chainName, contractName string) (common.Hash, error) {
	addr, err := c.deployment(chainName, contractName)
	if err != nil {
		return common.Hash{}, err
	}
	return common.BytesToHash(addr.Bytes()), nil
}

// deployment looks up a contract address. The env variable named by
// DeploymentEnvKey takes precedence over the config file.
func (c *ChainConfig) deployment(chainName, contractName string) (common.Address, error) {
	envKey := DeploymentEnvKey(chainName, contractName)
	raw := os.Getenv(envKey)
	if len(raw) == 0 {
		var ok bool
		raw, ok = c.Deployments[contractName]
		if !ok || len(raw) == 0 {
			return common.Address{}, fmt.Errorf("no deployment of %s on chain %s (set deployments.%s or env variable %s)",
				contractName, chainName, contractName, envKey)
		}
	}

	addr, err := ParseAddress(raw)
	if err != nil {
		return common.Address{}, fmt.Errorf("deployment of %s on chain %s: %w", contractName, chainName, err)
	}
	return addr, nil
}

// DeploymentEnvKey is the env variable that overrides a deployment address,
// e.g. OPTIMISM_SEPOLIA_MYOAPP_ADDRESS.
func DeploymentEnvKey(chainName, contractName string) string {
	r := strings.NewReplacer("-", "_", " ", "_", ".", "_")
	return strings.ToUpper(r.Replace(chainName) + "_" + r.Replace(contractName) + "_ADDRESS")
}
