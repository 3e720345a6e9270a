package types

import (
	"fmt"
	"strconv"
	"strings"

	sdkmath "cosmossdk.io/math"
	"gopkg.in/yaml.v3"
)

// OptionKind is the executor strategy applied to a message on arrival.
// Values follow the executor option type numbering.
type OptionKind uint8

const (
	// DirectReceive executes the message as soon as it arrives.
	DirectReceive OptionKind = 1
	// Compose chains the received message into a follow-up call.
	Compose OptionKind = 3
)

func (k OptionKind) Valid() bool {
	return k == DirectReceive || k == Compose
}

func (k OptionKind) String() string {
	switch k {
	case DirectReceive:
		return "lz-receive"
	case Compose:
		return "compose"
	default:
		return strconv.Itoa(int(k))
	}
}

func ParseOptionKind(s string) (OptionKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lz-receive", "lz_receive", "direct-receive", "direct_receive":
		return DirectReceive, nil
	case "compose":
		return Compose, nil
	}
	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("unknown option type %q", s)
	}
	// numeric kinds are kept as is so graph validation can report them
	return OptionKind(n), nil
}

func (k OptionKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *OptionKind) UnmarshalText(text []byte) error {
	kind, err := ParseOptionKind(string(text))
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

func (k OptionKind) MarshalYAML() (interface{}, error) {
	return k.String(), nil
}

func (k *OptionKind) UnmarshalYAML(value *yaml.Node) error {
	return k.UnmarshalText([]byte(value.Value))
}

// MessageTypeOption is one enforced execution directive for a message type on an edge.
// Gas and Value are floors: senders may ask for more but never for less.
type MessageTypeOption struct {
	MsgType    uint16      `json:"msg-type"`
	OptionKind OptionKind  `json:"option-type"`
	Index      *uint16     `json:"index,omitempty"`
	Gas        sdkmath.Int `json:"gas"`
	Value      sdkmath.Int `json:"value"`
}

// optionYAML is the on-disk shape of a MessageTypeOption. Amounts are kept as
// strings so values beyond 64 bits and negative values survive decoding.
type optionYAML struct {
	MsgType    uint16     `yaml:"msg-type"`
	OptionType OptionKind `yaml:"option-type"`
	Index      *uint16    `yaml:"index,omitempty"`
	Gas        string     `yaml:"gas"`
	Value      string     `yaml:"value"`
}

func (o *MessageTypeOption) UnmarshalYAML(value *yaml.Node) error {
	var raw optionYAML
	if err := DecodeStrict(value, &raw); err != nil {
		return err
	}
	gas, err := ParseAmount(raw.Gas)
	if err != nil {
		return fmt.Errorf("gas: %w", err)
	}
	val, err := ParseAmount(raw.Value)
	if err != nil {
		return fmt.Errorf("value: %w", err)
	}
	*o = MessageTypeOption{
		MsgType:    raw.MsgType,
		OptionKind: raw.OptionType,
		Index:      raw.Index,
		Gas:        gas,
		Value:      val,
	}
	return nil
}

func (o MessageTypeOption) MarshalYAML() (interface{}, error) {
	return optionYAML{
		MsgType:    o.MsgType,
		OptionType: o.OptionKind,
		Index:      o.Index,
		Gas:        AmountOrZero(o.Gas).String(),
		Value:      AmountOrZero(o.Value).String(),
	}, nil
}

// Normalize returns a copy of o with unset amounts set to zero and its own index.
func (o MessageTypeOption) Normalize() MessageTypeOption {
	out := o
	out.Gas = AmountOrZero(o.Gas)
	out.Value = AmountOrZero(o.Value)
	if o.Index != nil {
		idx := *o.Index
		out.Index = &idx
	}
	return out
}

func (o MessageTypeOption) String() string {
	idx := "-"
	if o.Index != nil {
		idx = strconv.Itoa(int(*o.Index))
	}
	return fmt.Sprintf("msg-type=%d option-type=%s index=%s gas=%s value=%s",
		o.MsgType, o.OptionKind, idx, AmountOrZero(o.Gas), AmountOrZero(o.Value))
}

// EdgeConfig is the policy attached to one directed connection.
type EdgeConfig struct {
	EnforcedOptions []MessageTypeOption `yaml:"enforced-options" json:"enforced-options"`
}

// Clone deep copies the option set.
func (c EdgeConfig) Clone() EdgeConfig {
	if c.EnforcedOptions == nil {
		return EdgeConfig{}
	}
	opts := make([]MessageTypeOption, len(c.EnforcedOptions))
	for i, o := range c.EnforcedOptions {
		opts[i] = o.Normalize()
	}
	return EdgeConfig{EnforcedOptions: opts}
}

// ParseAmount parses a base 10 integer. An empty string is zero.
func ParseAmount(s string) (sdkmath.Int, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), "_", "")
	if s == "" {
		return sdkmath.ZeroInt(), nil
	}
	amt, ok := sdkmath.NewIntFromString(s)
	if !ok {
		return sdkmath.Int{}, fmt.Errorf("invalid integer %q", s)
	}
	return amt, nil
}

// AmountOrZero treats an unset amount as zero.
func AmountOrZero(a sdkmath.Int) sdkmath.Int {
	if a.IsNil() {
		return sdkmath.ZeroInt()
	}
	return a
}

// Uint16 returns a pointer to v, for compose indexes in literal declarations.
func Uint16(v uint16) *uint16 {
	return &v
}
