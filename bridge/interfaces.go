package bridge

import (
	"context"
	"math/big"

	bridgetypes "github.com/0xPolygon/cdk-bridge/bridge/types"
	"github.com/0xPolygon/cdk-bridge/db"
	"github.com/ethereum/go-ethereum/common"
)

// AssetVault moves the value of deposits and claims. Every call receives the tx of the bridge
// operation, an error makes the whole operation fail
type AssetVault interface {
	LockAsset(ctx context.Context, tx db.Querier, from, token common.Address, amount *big.Int, permitData []byte) error
	BurnWrapped(ctx context.Context, tx db.Querier, from, wrapped common.Address, amount *big.Int) error
	ReleaseAsset(ctx context.Context, tx db.Querier, token, to common.Address, amount *big.Int) error
	DeployWrapped(ctx context.Context, tx db.Querier, wrapped common.Address, metadata []byte) error
	MintWrapped(ctx context.Context, tx db.Querier, wrapped, to common.Address, amount *big.Int) error
	TokenMetadata(ctx context.Context, tx db.Querier, token common.Address) ([]byte, error)
}

// EventEmitter is notified of the events of the bridge once the operation that produced them is committed
type EventEmitter interface {
	EmitBridgeEvent(e bridgetypes.BridgeEvent)
	EmitClaimEvent(e bridgetypes.ClaimEvent)
	EmitNewWrappedAsset(e bridgetypes.NewWrappedAssetEvent)
	EmitUpdateGlobalExitRoot(e bridgetypes.UpdateGlobalExitRootEvent)
}
