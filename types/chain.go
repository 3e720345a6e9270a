package types

import (
	"fmt"
	"sort"

	"github.com/ethereum/go-ethereum/common"
)

// ChainConfig is implemented by the yaml configuration of each chain family.
type ChainConfig interface {
	// EndpointID returns the messaging endpoint id of the chain.
	EndpointID() EndpointID

	// Address returns the display form of the named contract's deployed address.
	Address(chainName, contractName string) (string, error)

	// Peer returns the deployed address of the named contract left padded to 32 bytes,
	// the form remote chains use to recognize it.
	Peer(chainName, contractName string) (common.Hash, error)
}

// ChainRegistry maps the endpoint ids a graph may reference to chain names.
// A nil registry recognizes every endpoint id.
type ChainRegistry map[EndpointID]string

func (r ChainRegistry) Recognizes(eid EndpointID) bool {
	if r == nil {
		return true
	}
	_, ok := r[eid]
	return ok
}

// Name returns the chain name registered for eid, or a placeholder.
func (r ChainRegistry) Name(eid EndpointID) string {
	if name, ok := r[eid]; ok {
		return name
	}
	return fmt.Sprintf("eid-%d", eid)
}

// Lookup finds the endpoint id registered under a chain name.
func (r ChainRegistry) Lookup(name string) (EndpointID, bool) {
	for eid, n := range r {
		if n == name {
			return eid, true
		}
	}
	return 0, false
}

// EIDs returns the registered endpoint ids in ascending order.
func (r ChainRegistry) EIDs() []EndpointID {
	eids := make([]EndpointID, 0, len(r))
	for eid := range r {
		eids = append(eids, eid)
	}
	sort.Slice(eids, func(i, j int) bool { return eids[i] < eids[j] })
	return eids
}
