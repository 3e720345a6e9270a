package wiring

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/strangelove-ventures/omnichain-graph/graph"
	"github.com/strangelove-ventures/omnichain-graph/types"
)

// SetPeer registers the remote contract an OApp accepts messages from and sends them to.
type SetPeer struct {
	OApp    types.EndpointPoint `yaml:"oapp" json:"oapp"`
	Address string              `yaml:"address" json:"address"`
	DstEID  types.EndpointID    `yaml:"dst-eid" json:"dst-eid"`
	Peer    common.Hash         `yaml:"peer" json:"peer"`
}

// SetEnforcedOptions registers the option floor of one msg type towards one destination.
type SetEnforcedOptions struct {
	OApp    types.EndpointPoint       `yaml:"oapp" json:"oapp"`
	Address string                    `yaml:"address" json:"address"`
	DstEID  types.EndpointID          `yaml:"dst-eid" json:"dst-eid"`
	MsgType uint16                    `yaml:"msg-type" json:"msg-type"`
	Options []types.MessageTypeOption `yaml:"options" json:"options"`
}

// Plan lists the registrations an external wiring process performs for a graph.
// Option byte encoding is left to that process.
type Plan struct {
	Peers           []SetPeer            `yaml:"peers" json:"peers"`
	EnforcedOptions []SetEnforcedOptions `yaml:"enforced-options" json:"enforced-options"`
}

type resolved struct {
	address string
	peer    common.Hash
}

// NewPlan derives the wiring plan of g. Edges are visited in declaration order and,
// within an edge, msg types in the order they first appear.
func NewPlan(g *graph.Graph, resolver Resolver) (*Plan, error) {
	addrs := make(map[types.EndpointPoint]resolved)
	lookup := func(p types.EndpointPoint) (resolved, error) {
		if r, ok := addrs[p]; ok {
			return r, nil
		}
		addr, peer, err := resolver.Resolve(p)
		if err != nil {
			return resolved{}, fmt.Errorf("resolving %s: %w", p, err)
		}
		r := resolved{address: addr, peer: peer}
		addrs[p] = r
		return r, nil
	}

	plan := &Plan{}
	for _, e := range g.Edges() {
		local, err := lookup(e.From)
		if err != nil {
			return nil, err
		}
		remote, err := lookup(e.To)
		if err != nil {
			return nil, err
		}

		plan.Peers = append(plan.Peers, SetPeer{
			OApp:    e.From,
			Address: local.address,
			DstEID:  e.To.EID,
			Peer:    remote.peer,
		})

		var order []uint16
		byType := make(map[uint16][]types.MessageTypeOption)
		for _, o := range e.Config.EnforcedOptions {
			if _, ok := byType[o.MsgType]; !ok {
				order = append(order, o.MsgType)
			}
			byType[o.MsgType] = append(byType[o.MsgType], o)
		}
		for _, msgType := range order {
			plan.EnforcedOptions = append(plan.EnforcedOptions, SetEnforcedOptions{
				OApp:    e.From,
				Address: local.address,
				DstEID:  e.To.EID,
				MsgType: msgType,
				Options: byType[msgType],
			})
		}
	}
	return plan, nil
}
