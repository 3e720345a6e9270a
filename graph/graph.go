package graph

import (
	"github.com/strangelove-ventures/omnichain-graph/types"
)

// Graph is a validated omnichain topology. It is never modified after Build,
// so one instance can be shared by any number of goroutines.
type Graph struct {
	nodes    []types.EndpointPoint
	index    map[types.EndpointPoint]int
	edges    []types.Edge
	outbound map[types.EndpointPoint][]int
	byPair   map[pair]int
}

// Nodes returns the declared points in declaration order.
func (g *Graph) Nodes() []types.EndpointPoint {
	out := make([]types.EndpointPoint, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// Edges returns every edge in declaration order.
func (g *Graph) Edges() []types.Edge {
	out := make([]types.Edge, len(g.edges))
	for i, e := range g.edges {
		out[i] = e.Clone()
	}
	return out
}

// Resolve finds the declared point for a chain and contract name.
func (g *Graph) Resolve(eid types.EndpointID, contractName string) (types.EndpointPoint, bool) {
	p := types.EndpointPoint{EID: eid, ContractName: contractName}
	if _, ok := g.index[p]; !ok {
		return types.EndpointPoint{}, false
	}
	return p, true
}

// EdgesFrom returns the edges leaving from in declaration order.
func (g *Graph) EdgesFrom(from types.EndpointPoint) []types.Edge {
	idxs := g.outbound[from]
	out := make([]types.Edge, 0, len(idxs))
	for _, i := range idxs {
		out = append(out, g.edges[i].Clone())
	}
	return out
}

// Edge returns the edge from -> to.
func (g *Graph) Edge(from, to types.EndpointPoint) (types.Edge, bool) {
	i, ok := g.byPair[pair{from: from, to: to}]
	if !ok {
		return types.Edge{}, false
	}
	return g.edges[i].Clone(), true
}

// EnforcedOptions returns every option configured for msgType on from -> to.
func (g *Graph) EnforcedOptions(from, to types.EndpointPoint, msgType uint16) []types.MessageTypeOption {
	i, ok := g.byPair[pair{from: from, to: to}]
	if !ok {
		return nil
	}
	var out []types.MessageTypeOption
	for _, o := range g.edges[i].Config.EnforcedOptions {
		if o.MsgType == msgType {
			out = append(out, o.Normalize())
		}
	}
	return out
}

// EnforcedFloor returns the first option configured for msgType on from -> to.
// When nothing is configured the caller's values pass through unconstrained.
func (g *Graph) EnforcedFloor(from, to types.EndpointPoint, msgType uint16) (types.MessageTypeOption, bool) {
	opts := g.EnforcedOptions(from, to, msgType)
	if len(opts) == 0 {
		return types.MessageTypeOption{}, false
	}
	return opts[0], true
}

// Enforce raises the gas and value of requested to the floor configured for the same
// msg type, kind and index on from -> to. Requests above the floor are left alone.
func (g *Graph) Enforce(from, to types.EndpointPoint, requested types.MessageTypeOption) types.MessageTypeOption {
	out := requested.Normalize()
	want := keyOf(requested)
	for _, floor := range g.EnforcedOptions(from, to, requested.MsgType) {
		if keyOf(floor) != want {
			continue
		}
		if out.Gas.LT(floor.Gas) {
			out.Gas = floor.Gas
		}
		if out.Value.LT(floor.Value) {
			out.Value = floor.Value
		}
		break
	}
	return out
}
