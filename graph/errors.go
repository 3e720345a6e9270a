package graph

import (
	"errors"
	"fmt"

	"github.com/strangelove-ventures/omnichain-graph/types"
)

// ErrorKind tags the invariant a GraphError reports.
type ErrorKind string

const (
	KindUnrecognizedChain ErrorKind = "UnrecognizedChain"
	KindDuplicateNode     ErrorKind = "DuplicateNode"
	KindUnknownEndpoint   ErrorKind = "UnknownEndpoint"
	KindSelfLoop          ErrorKind = "SelfLoop"
	KindDuplicateEdge     ErrorKind = "DuplicateEdge"
	KindInvalidOption     ErrorKind = "InvalidOption"
	KindDuplicateOption   ErrorKind = "DuplicateOption"
)

// Sentinels matched by errors.Is against a *GraphError of the same kind.
var (
	ErrUnrecognizedChain = errors.New("unrecognized chain")
	ErrDuplicateNode     = errors.New("duplicate node")
	ErrUnknownEndpoint   = errors.New("unknown endpoint")
	ErrSelfLoop          = errors.New("self loop")
	ErrDuplicateEdge     = errors.New("duplicate edge")
	ErrInvalidOption     = errors.New("invalid option")
	ErrDuplicateOption   = errors.New("duplicate option")
)

var sentinels = map[ErrorKind]error{
	KindUnrecognizedChain: ErrUnrecognizedChain,
	KindDuplicateNode:     ErrDuplicateNode,
	KindUnknownEndpoint:   ErrUnknownEndpoint,
	KindSelfLoop:          ErrSelfLoop,
	KindDuplicateEdge:     ErrDuplicateEdge,
	KindInvalidOption:     ErrInvalidOption,
	KindDuplicateOption:   ErrDuplicateOption,
}

// Side names which end of an edge failed to resolve.
type Side string

const (
	SideFrom Side = "from"
	SideTo   Side = "to"
)

// GraphError describes the first invariant violation found by Build.
// Only the fields relevant to Kind are set.
type GraphError struct {
	Kind ErrorKind

	// UnrecognizedChain, DuplicateNode, SelfLoop
	Point types.EndpointPoint

	// DuplicateEdge
	From types.EndpointPoint
	To   types.EndpointPoint

	// UnknownEndpoint, InvalidOption, DuplicateOption
	EdgeIndex int
	Which     Side

	// InvalidOption
	OptionIndex int
	Field       string
	Reason      string

	// DuplicateOption
	MsgType    uint16
	OptionKind types.OptionKind
	Index      *uint16
}

func (e *GraphError) Error() string {
	switch e.Kind {
	case KindUnrecognizedChain:
		return fmt.Sprintf("%s: eid %d is not a registered chain (contract: %s)", e.Kind, e.Point.EID, e.Point.ContractName)
	case KindDuplicateNode:
		return fmt.Sprintf("%s: %s is declared more than once", e.Kind, e.Point)
	case KindUnknownEndpoint:
		return fmt.Sprintf("%s: connection %d references an undeclared %q contract", e.Kind, e.EdgeIndex, e.Which)
	case KindSelfLoop:
		return fmt.Sprintf("%s: %s is connected to itself", e.Kind, e.Point)
	case KindDuplicateEdge:
		return fmt.Sprintf("%s: %s -> %s is declared more than once", e.Kind, e.From, e.To)
	case KindInvalidOption:
		return fmt.Sprintf("%s: connection %d option %d: %s %s", e.Kind, e.EdgeIndex, e.OptionIndex, e.Field, e.Reason)
	case KindDuplicateOption:
		idx := "none"
		if e.Index != nil {
			idx = fmt.Sprintf("%d", *e.Index)
		}
		return fmt.Sprintf("%s: connection %d repeats msg-type %d option-type %s index %s",
			e.Kind, e.EdgeIndex, e.MsgType, e.OptionKind, idx)
	default:
		return string(e.Kind)
	}
}

func (e *GraphError) Unwrap() error {
	return sentinels[e.Kind]
}
