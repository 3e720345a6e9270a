package types

import (
	"bytes"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// Config is the parsed declaration of an omnichain application.
type Config struct {
	Chains      map[string]ChainConfig `yaml:"chains" json:"chains"`
	EdgeConfigs map[string]EdgeConfig  `yaml:"edge-configs" json:"edge-configs"`
	Contracts   []PointConfig          `yaml:"contracts" json:"contracts"`
	Connections []ConnectionConfig     `yaml:"connections" json:"connections"`
	Api         ApiSettings            `yaml:"api" json:"api"`
}

// ConfigWrapper is used to decode the config before chain families are known.
type ConfigWrapper struct {
	Chains      map[string]yaml.Node  `yaml:"chains"`
	EdgeConfigs map[string]EdgeConfig `yaml:"edge-configs"`
	Contracts   []PointConfig         `yaml:"contracts"`
	Connections []ConnectionConfig    `yaml:"connections"`
	Api         ApiSettings           `yaml:"api"`
}

type ApiSettings struct {
	ListenAddr     string   `yaml:"listen-addr" json:"listen-addr"`
	TrustedProxies []string `yaml:"trusted-proxies" json:"trusted-proxies"`
}

// PointConfig references a contract either by chain name or by endpoint id.
type PointConfig struct {
	Chain        string     `yaml:"chain,omitempty" json:"chain,omitempty"`
	EID          EndpointID `yaml:"eid,omitempty" json:"eid,omitempty"`
	ContractName string     `yaml:"contract-name" json:"contract-name"`
}

// ConnectionConfig declares one directed connection. The edge config is given
// either inline or as a reference into Config.EdgeConfigs.
type ConnectionConfig struct {
	From      PointConfig `yaml:"from" json:"from"`
	To        PointConfig `yaml:"to" json:"to"`
	Config    *EdgeConfig `yaml:"config,omitempty" json:"config,omitempty"`
	ConfigRef string      `yaml:"config-ref,omitempty" json:"config-ref,omitempty"`
}

// Registry builds the chain registry from the configured chains.
// Two chains sharing an endpoint id is an error.
func (c *Config) Registry() (ChainRegistry, error) {
	names := make([]string, 0, len(c.Chains))
	for name := range c.Chains {
		names = append(names, name)
	}
	sort.Strings(names)

	r := make(ChainRegistry, len(c.Chains))
	for _, name := range names {
		eid := c.Chains[name].EndpointID()
		if other, ok := r[eid]; ok {
			return nil, fmt.Errorf("chains %s and %s share eid %d", other, name, eid)
		}
		r[eid] = name
	}
	return r, nil
}

// DecodeStrict decodes node into out, rejecting keys out does not declare.
// yaml.Node.Decode does not inherit KnownFields from the outer decoder.
func DecodeStrict(node *yaml.Node, out any) error {
	bz, err := yaml.Marshal(node)
	if err != nil {
		return err
	}
	dec := yaml.NewDecoder(bytes.NewReader(bz))
	dec.KnownFields(true)
	return dec.Decode(out)
}

// Declaration converts the config into graph builder inputs, in file order.
func (c *Config) Declaration() ([]EndpointPoint, []Edge, error) {
	nodes := make([]EndpointPoint, 0, len(c.Contracts))
	for i, pc := range c.Contracts {
		p, err := c.point(pc)
		if err != nil {
			return nil, nil, fmt.Errorf("contracts[%d]: %w", i, err)
		}
		nodes = append(nodes, p)
	}

	edges := make([]Edge, 0, len(c.Connections))
	for i, conn := range c.Connections {
		from, err := c.point(conn.From)
		if err != nil {
			return nil, nil, fmt.Errorf("connections[%d].from: %w", i, err)
		}
		to, err := c.point(conn.To)
		if err != nil {
			return nil, nil, fmt.Errorf("connections[%d].to: %w", i, err)
		}
		cfg, err := c.edgeConfig(conn)
		if err != nil {
			return nil, nil, fmt.Errorf("connections[%d]: %w", i, err)
		}
		edges = append(edges, Edge{From: from, To: to, Config: cfg})
	}
	return nodes, edges, nil
}

func (c *Config) point(pc PointConfig) (EndpointPoint, error) {
	if pc.ContractName == "" {
		return EndpointPoint{}, fmt.Errorf("contract-name must be set")
	}
	eid := pc.EID
	if pc.Chain != "" {
		cc, ok := c.Chains[pc.Chain]
		if !ok {
			return EndpointPoint{}, fmt.Errorf("chain %q is not configured", pc.Chain)
		}
		if eid != 0 && eid != cc.EndpointID() {
			return EndpointPoint{}, fmt.Errorf("eid %d does not match chain %q (eid: %d)", eid, pc.Chain, cc.EndpointID())
		}
		eid = cc.EndpointID()
	}
	if eid == 0 {
		return EndpointPoint{}, fmt.Errorf("either chain or eid must be set (contract-name: %s)", pc.ContractName)
	}
	return EndpointPoint{EID: eid, ContractName: pc.ContractName}, nil
}

func (c *Config) edgeConfig(conn ConnectionConfig) (EdgeConfig, error) {
	switch {
	case conn.Config != nil && conn.ConfigRef != "":
		return EdgeConfig{}, fmt.Errorf("config and config-ref are mutually exclusive")
	case conn.Config != nil:
		return conn.Config.Clone(), nil
	case conn.ConfigRef != "":
		cfg, ok := c.EdgeConfigs[conn.ConfigRef]
		if !ok {
			return EdgeConfig{}, fmt.Errorf("unknown config-ref %q", conn.ConfigRef)
		}
		return cfg.Clone(), nil
	default:
		return EdgeConfig{}, nil
	}
}
