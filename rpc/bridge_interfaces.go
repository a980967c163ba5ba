package rpc

import (
	"context"
	"math/big"

	bridgetypes "github.com/0xPolygon/cdk-bridge/bridge/types"
	"github.com/0xPolygon/cdk-bridge/globalexitroot"
	tree "github.com/0xPolygon/cdk-bridge/tree/types"
	"github.com/ethereum/go-ethereum/common"
)

type Bridger interface {
	BridgeAsset(ctx context.Context, req bridgetypes.BridgeRequest) (*bridgetypes.DepositReceipt, error)
	ClaimAsset(ctx context.Context, req *bridgetypes.ClaimRequest) (*bridgetypes.ClaimReceipt, error)
	UpdateExitRoot(ctx context.Context, caller common.Address, newRoot common.Hash) (common.Hash, error)
	UpdateGlobalExitRoot(ctx context.Context) (common.Hash, error)
	LastMainnetExitRoot(ctx context.Context) (common.Hash, error)
	LastRollupExitRoot(ctx context.Context) (common.Hash, error)
	GetLastGlobalExitRoot(ctx context.Context) (common.Hash, error)
	GetGlobalExitRoot(ctx context.Context, ger common.Hash) (*globalexitroot.GlobalExitRootInfo, error)
	VerifyMerkleProof(leaf common.Hash, proof tree.Proof, index uint32, root common.Hash) bool
	GetRoot(ctx context.Context) (common.Hash, error)
	DepositCount(ctx context.Context) (uint32, error)
	GetDeposit(ctx context.Context, depositCount uint32) (*bridgetypes.DepositRecord, error)
	GetProof(ctx context.Context, depositCount uint32, localExitRoot common.Hash) (tree.Proof, error)
	IsClaimed(ctx context.Context, globalIndex *big.Int) (bool, error)
	GetClaim(ctx context.Context, globalIndex *big.Int) (*bridgetypes.Claim, error)
	PrecalculatedWrapperAddress(
		originNetwork uint32, originTokenAddress common.Address, metadata []byte,
	) common.Address
	GetTokenWrappedAddress(
		ctx context.Context, originNetwork uint32, originTokenAddress common.Address,
	) (common.Address, error)
}

type RollupExitTreer interface {
	SetLocalExitRoot(ctx context.Context, rollupIndex uint32, localExitRoot common.Hash) (common.Hash, error)
	GetRollupExitRoot(ctx context.Context) (common.Hash, error)
	GetProof(ctx context.Context, rollupIndex uint32, rollupExitRoot common.Hash) (tree.Proof, error)
	GetLocalExitRoot(ctx context.Context, rollupIndex uint32, rollupExitRoot common.Hash) (common.Hash, error)
}
