package globalexitroot

import (
	"fmt"

	bridgetypes "github.com/0xPolygon/cdk-bridge/bridge/types"
	"github.com/ethereum/go-ethereum/common"
)

// Side is the half of the global exit root that a caller is allowed to update
type Side uint8

const (
	SideMainnet Side = iota
	SideRollup
)

func (s Side) String() string {
	switch s {
	case SideMainnet:
		return "mainnet"
	case SideRollup:
		return "rollup"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(s))
	}
}

// Authorizer decides which half of the snapshot a caller can update. Callers that can't update
// any of them get ErrUnauthorized
type Authorizer interface {
	Authorize(caller common.Address) (Side, error)
}

// AddressAuthorizer allows a fixed address per side
type AddressAuthorizer struct {
	MainnetUpdater common.Address
	RollupUpdater  common.Address
}

func (a AddressAuthorizer) Authorize(caller common.Address) (Side, error) {
	switch caller {
	case a.MainnetUpdater:
		return SideMainnet, nil
	case a.RollupUpdater:
		return SideRollup, nil
	default:
		return 0, fmt.Errorf("%w: %s", bridgetypes.ErrUnauthorized, caller.Hex())
	}
}

// AuthorizerFunc adapts a function to the Authorizer interface
type AuthorizerFunc func(caller common.Address) (Side, error)

func (f AuthorizerFunc) Authorize(caller common.Address) (Side, error) {
	return f(caller)
}
