package ethereum

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

var ErrZeroAddress = errors.New("zero address")

// ParseAddress parses a hex address. Mixed case input must carry a valid EIP-55 checksum.
func ParseAddress(s string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("invalid hex address %q", s)
	}
	addr := common.HexToAddress(s)

	body := s
	if has0xPrefix(body) {
		body = body[2:]
	}
	mixed := body != strings.ToLower(body) && body != strings.ToUpper(body)
	if mixed && addr.Hex()[2:] != body {
		return common.Address{}, fmt.Errorf("address %q has an invalid EIP-55 checksum (expected %s)", s, addr.Hex())
	}

	if addr == (common.Address{}) {
		return common.Address{}, ErrZeroAddress
	}
	return addr, nil
}

func has0xPrefix(s string) bool {
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}
