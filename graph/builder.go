package graph

import (
	"github.com/strangelove-ventures/omnichain-graph/types"
)

type pair struct {
	from types.EndpointPoint
	to   types.EndpointPoint
}

type optionKey struct {
	msgType uint16
	kind    types.OptionKind
	index   int32 // -1 when absent
}

func keyOf(o types.MessageTypeOption) optionKey {
	k := optionKey{msgType: o.MsgType, kind: o.OptionKind, index: -1}
	if o.Index != nil {
		k.index = int32(*o.Index)
	}
	return k
}

// Build validates a literal declaration and returns the immutable graph it describes.
//
// Checks run in a fixed order, each over the whole input before the next starts, so the
// same input always fails with the same error:
//  1. every node is on a registered chain and declared once
//  2. both ends of every edge are declared nodes (from is checked before to)
//  3. no edge connects a node to itself
//  4. no ordered pair of nodes is connected twice
//  5. every enforced option is well formed
//  6. no edge repeats an option for the same msg type, kind and index
//
// The inputs are copied; later changes to them do not affect the graph.
func Build(registry types.ChainRegistry, nodes []types.EndpointPoint, edges []types.Edge) (*Graph, error) {
	index := make(map[types.EndpointPoint]int, len(nodes))
	for i, n := range nodes {
		if !registry.Recognizes(n.EID) {
			return nil, &GraphError{Kind: KindUnrecognizedChain, Point: n}
		}
		if _, ok := index[n]; ok {
			return nil, &GraphError{Kind: KindDuplicateNode, Point: n}
		}
		index[n] = i
	}

	for i, e := range edges {
		if _, ok := index[e.From]; !ok {
			return nil, &GraphError{Kind: KindUnknownEndpoint, EdgeIndex: i, Which: SideFrom}
		}
		if _, ok := index[e.To]; !ok {
			return nil, &GraphError{Kind: KindUnknownEndpoint, EdgeIndex: i, Which: SideTo}
		}
	}

	for _, e := range edges {
		if e.From == e.To {
			return nil, &GraphError{Kind: KindSelfLoop, Point: e.From}
		}
	}

	byPair := make(map[pair]int, len(edges))
	for i, e := range edges {
		p := pair{from: e.From, to: e.To}
		if _, ok := byPair[p]; ok {
			return nil, &GraphError{Kind: KindDuplicateEdge, From: e.From, To: e.To}
		}
		byPair[p] = i
	}

	for i, e := range edges {
		for j, o := range e.Config.EnforcedOptions {
			if field, reason := checkOption(o); field != "" {
				return nil, &GraphError{
					Kind:        KindInvalidOption,
					EdgeIndex:   i,
					OptionIndex: j,
					Field:       field,
					Reason:      reason,
				}
			}
		}
	}

	for i, e := range edges {
		seen := make(map[optionKey]struct{}, len(e.Config.EnforcedOptions))
		for _, o := range e.Config.EnforcedOptions {
			k := keyOf(o)
			if _, ok := seen[k]; ok {
				var idx *uint16
				if o.Index != nil {
					v := *o.Index
					idx = &v
				}
				return nil, &GraphError{
					Kind:       KindDuplicateOption,
					EdgeIndex:  i,
					MsgType:    o.MsgType,
					OptionKind: o.OptionKind,
					Index:      idx,
				}
			}
			seen[k] = struct{}{}
		}
	}

	g := &Graph{
		nodes:    make([]types.EndpointPoint, len(nodes)),
		index:    index,
		edges:    make([]types.Edge, len(edges)),
		outbound: make(map[types.EndpointPoint][]int, len(nodes)),
		byPair:   byPair,
	}
	copy(g.nodes, nodes)
	for i, e := range edges {
		g.edges[i] = e.Clone()
		g.outbound[e.From] = append(g.outbound[e.From], i)
	}
	return g, nil
}

// checkOption returns the offending field and why, or an empty field when o is valid.
func checkOption(o types.MessageTypeOption) (field, reason string) {
	switch {
	case o.MsgType == 0:
		return "msg-type", "must be positive"
	case !o.OptionKind.Valid():
		return "option-type", "must be lz-receive or compose, got " + o.OptionKind.String()
	case o.OptionKind == types.Compose && o.Index == nil:
		return "index", "is required for compose options"
	case o.OptionKind != types.Compose && o.Index != nil:
		return "index", "is only allowed for compose options"
	case !o.Gas.IsNil() && o.Gas.IsNegative():
		return "gas", "must not be negative, got " + o.Gas.String()
	case !o.Value.IsNil() && o.Value.IsNegative():
		return "value", "must not be negative, got " + o.Value.String()
	}
	return "", ""
}
