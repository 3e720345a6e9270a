package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/strangelove-ventures/omnichain-graph/types"
)

func floorCmd(a *AppState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "floor <from> <to> <msg-type>",
		Short: "Print the enforced option floor for a msg type on a connection",
		Long: `Print the enforced option floor for a msg type on a connection.
Contracts are given as <chain>/<contract>, where <chain> is a chain name or an eid.
With --gas or --value the request is printed after the floor has been applied.`,
		Example: strings.TrimSpace(fmt.Sprintf(`
$ %s floor optimism-sepolia/MyOApp base-sepolia/MyOApp 1
$ %s floor 40232/MyOApp 40245/MyOApp 1 --gas 50000`, appName, appName)),
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.InitAppState(); err != nil {
				return err
			}
			registry, err := a.Config.Registry()
			if err != nil {
				return err
			}

			from, err := a.parsePoint(registry, args[0])
			if err != nil {
				return err
			}
			to, err := a.parsePoint(registry, args[1])
			if err != nil {
				return err
			}
			msgType, err := strconv.ParseUint(args[2], 10, 16)
			if err != nil {
				return fmt.Errorf("invalid msg-type %q: %w", args[2], err)
			}
			if _, ok := a.Graph.Edge(from, to); !ok {
				return fmt.Errorf("no connection from %s to %s", args[0], args[1])
			}

			if cmd.Flags().Changed(flagGas) || cmd.Flags().Changed(flagValue) {
				req, err := enforceRequest(cmd, uint16(msgType))
				if err != nil {
					return err
				}
				return printOutput(cmd, a.Graph.Enforce(from, to, req))
			}

			floor, ok := a.Graph.EnforcedFloor(from, to, uint16(msgType))
			if !ok {
				fmt.Fprintf(cmd.OutOrStdout(), "no enforced option for msg-type %d, requested values pass through\n", msgType)
				return nil
			}
			return printOutput(cmd, floor)
		},
	}
	addJsonFlag(cmd)
	addEnforceFlags(cmd)
	return cmd
}

func enforceRequest(cmd *cobra.Command, msgType uint16) (types.MessageTypeOption, error) {
	req := types.MessageTypeOption{MsgType: msgType}

	rawKind, _ := cmd.Flags().GetString(flagOptionType)
	kind, err := types.ParseOptionKind(rawKind)
	if err != nil {
		return req, err
	}
	req.OptionKind = kind

	index, _ := cmd.Flags().GetInt(flagIndex)
	if index >= 0 {
		req.Index = types.Uint16(uint16(index))
	}

	rawGas, _ := cmd.Flags().GetString(flagGas)
	if req.Gas, err = types.ParseAmount(rawGas); err != nil {
		return req, fmt.Errorf("gas: %w", err)
	}
	rawValue, _ := cmd.Flags().GetString(flagValue)
	if req.Value, err = types.ParseAmount(rawValue); err != nil {
		return req, fmt.Errorf("value: %w", err)
	}
	return req, nil
}

// parsePoint resolves "<chain>/<contract>" against the graph. <chain> is a chain name or an eid.
func (a *AppState) parsePoint(registry types.ChainRegistry, arg string) (types.EndpointPoint, error) {
	chain, contract, ok := strings.Cut(arg, "/")
	if !ok || chain == "" || contract == "" {
		return types.EndpointPoint{}, fmt.Errorf("invalid contract %q, expected <chain>/<contract>", arg)
	}

	eid, found := registry.Lookup(chain)
	if !found {
		n, err := strconv.ParseUint(chain, 10, 32)
		if err != nil {
			return types.EndpointPoint{}, fmt.Errorf("unknown chain %q", chain)
		}
		eid = types.EndpointID(n)
	}

	p, ok := a.Graph.Resolve(eid, contract)
	if !ok {
		return types.EndpointPoint{}, fmt.Errorf("contract %s is not declared on chain %s", contract, registry.Name(eid))
	}
	return p, nil
}
