package types

import (
	"fmt"
)

// EndpointID identifies a chain through its messaging endpoint id.
type EndpointID uint32

// EndpointPoint is one deployed contract instance on one chain.
type EndpointPoint struct {
	EID          EndpointID `yaml:"eid" json:"eid"`
	ContractName string     `yaml:"contract-name" json:"contract-name"`
}

func (p EndpointPoint) String() string {
	return fmt.Sprintf("%d/%s", p.EID, p.ContractName)
}

// Edge is a directed connection between two points carrying its enforced options.
type Edge struct {
	From   EndpointPoint `yaml:"from" json:"from"`
	To     EndpointPoint `yaml:"to" json:"to"`
	Config EdgeConfig    `yaml:"config" json:"config"`
}

// Clone returns a copy of the edge that shares no memory with e.
func (e Edge) Clone() Edge {
	return Edge{
		From:   e.From,
		To:     e.To,
		Config: e.Config.Clone(),
	}
}
