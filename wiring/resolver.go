package wiring

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/strangelove-ventures/omnichain-graph/types"
)

// Resolver maps a point to its deployed address.
type Resolver interface {
	Resolve(point types.EndpointPoint) (address string, peer common.Hash, err error)
}

var _ Resolver = (*ConfigResolver)(nil)

// ConfigResolver resolves points through the deployments of the configured chains.
type ConfigResolver struct {
	chains map[types.EndpointID]namedChain
}

type namedChain struct {
	name string
	cfg  types.ChainConfig
}

func NewConfigResolver(chains map[string]types.ChainConfig) *ConfigResolver {
	r := &ConfigResolver{chains: make(map[types.EndpointID]namedChain, len(chains))}
	for name, cfg := range chains {
		r.chains[cfg.EndpointID()] = namedChain{name: name, cfg: cfg}
	}
	return r
}

func (r *ConfigResolver) Resolve(point types.EndpointPoint) (string, common.Hash, error) {
	c, ok := r.chains[point.EID]
	if !ok {
		return "", common.Hash{}, fmt.Errorf("no chain configured for eid %d", point.EID)
	}
	addr, err := c.cfg.Address(c.name, point.ContractName)
	if err != nil {
		return "", common.Hash{}, err
	}
	peer, err := c.cfg.Peer(c.name, point.ContractName)
	if err != nil {
		return "", common.Hash{}, err
	}
	return addr, peer, nil
}
