package client

import (
	"context"
	"math/big"

	bridgetypes "github.com/0xPolygon/cdk-bridge/bridge/types"
	"github.com/0xPolygon/cdk-bridge/rpc/types"
	tree "github.com/0xPolygon/cdk-bridge/tree/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

type BridgeClientInterface interface {
	BridgeAsset(ctx context.Context, req bridgetypes.BridgeRequest) (*bridgetypes.DepositReceipt, error)
	ClaimAsset(ctx context.Context, req *bridgetypes.ClaimRequest) (*bridgetypes.ClaimReceipt, error)
	UpdateExitRoot(ctx context.Context, caller common.Address, newRoot common.Hash) (common.Hash, error)
	UpdateGlobalExitRoot(ctx context.Context) (common.Hash, error)
	LastMainnetExitRoot(ctx context.Context) (common.Hash, error)
	LastRollupExitRoot(ctx context.Context) (common.Hash, error)
	GetLastGlobalExitRoot(ctx context.Context) (common.Hash, error)
	IsKnownGlobalExitRoot(ctx context.Context, ger common.Hash) (*types.GlobalExitRootInfo, error)
	VerifyMerkleProof(
		ctx context.Context, leaf common.Hash, proof tree.Proof, index uint32, root common.Hash,
	) (bool, error)
	GetRoot(ctx context.Context) (common.Hash, error)
	DepositCount(ctx context.Context) (uint32, error)
	GetDeposit(ctx context.Context, depositCount uint32) (*bridgetypes.DepositRecord, error)
	GetProof(ctx context.Context, depositCount uint32, localExitRoot common.Hash) (tree.Proof, error)
	IsClaimed(ctx context.Context, globalIndex *big.Int) (bool, error)
	GetClaim(ctx context.Context, globalIndex *big.Int) (*bridgetypes.Claim, error)
	PrecalculatedWrapperAddress(
		ctx context.Context, originNetwork uint32, originTokenAddress common.Address, metadata []byte,
	) (common.Address, error)
	GetTokenWrappedAddress(
		ctx context.Context, originNetwork uint32, originTokenAddress common.Address,
	) (common.Address, error)
	SetLocalExitRoot(ctx context.Context, rollupIndex uint32, localExitRoot common.Hash) (common.Hash, error)
	GetRollupExitRoot(ctx context.Context) (common.Hash, error)
	GetRollupExitProof(ctx context.Context, rollupIndex uint32, rollupExitRoot common.Hash) (tree.Proof, error)
	GetLocalExitRoot(ctx context.Context, rollupIndex uint32, rollupExitRoot common.Hash) (common.Hash, error)
}

// BridgeAsset sends a deposit to the bridge of the network of the node
func (c *Client) BridgeAsset(
	ctx context.Context, req bridgetypes.BridgeRequest,
) (*bridgetypes.DepositReceipt, error) {
	args := types.BridgeAssetArgs{
		From:                      req.From,
		DestinationNetwork:        req.DestinationNetwork,
		DestinationAddress:        req.DestinationAddress,
		Amount:                    req.Amount,
		Token:                     req.Token,
		ForceUpdateGlobalExitRoot: req.ForceUpdateGlobalExitRoot,
		PermitData:                req.PermitData,
	}
	return call[*bridgetypes.DepositReceipt](c.url, "bridge_bridgeAsset", args)
}

// ClaimAsset claims a deposit of another network. The proofs are obtained from the origin network
// (GetProof) and from the node running the rollup exit tree (GetRollupExitProof)
func (c *Client) ClaimAsset(
	ctx context.Context, req *bridgetypes.ClaimRequest,
) (*bridgetypes.ClaimReceipt, error) {
	return call[*bridgetypes.ClaimReceipt](c.url, "bridge_claimAsset", types.NewClaimAssetArgs(req))
}

func (c *Client) UpdateExitRoot(
	ctx context.Context, caller common.Address, newRoot common.Hash,
) (common.Hash, error) {
	return call[common.Hash](c.url, "bridge_updateExitRoot", caller, newRoot)
}

func (c *Client) UpdateGlobalExitRoot(ctx context.Context) (common.Hash, error) {
	return call[common.Hash](c.url, "bridge_updateGlobalExitRoot")
}

func (c *Client) LastMainnetExitRoot(ctx context.Context) (common.Hash, error) {
	return call[common.Hash](c.url, "bridge_lastMainnetExitRoot")
}

func (c *Client) LastRollupExitRoot(ctx context.Context) (common.Hash, error) {
	return call[common.Hash](c.url, "bridge_lastRollupExitRoot")
}

func (c *Client) GetLastGlobalExitRoot(ctx context.Context) (common.Hash, error) {
	return call[common.Hash](c.url, "bridge_getLastGlobalExitRoot")
}

func (c *Client) IsKnownGlobalExitRoot(ctx context.Context, ger common.Hash) (*types.GlobalExitRootInfo, error) {
	return call[*types.GlobalExitRootInfo](c.url, "bridge_isKnownGlobalExitRoot", ger)
}

func (c *Client) VerifyMerkleProof(
	ctx context.Context, leaf common.Hash, proof tree.Proof, index uint32, root common.Hash,
) (bool, error) {
	return call[bool](c.url, "bridge_verifyMerkleProof", leaf, proof, index, root)
}

// GetRoot returns the local exit root of the network of the node
func (c *Client) GetRoot(ctx context.Context) (common.Hash, error) {
	return call[common.Hash](c.url, "bridge_getRoot")
}

func (c *Client) DepositCount(ctx context.Context) (uint32, error) {
	return call[uint32](c.url, "bridge_depositCount")
}

func (c *Client) GetDeposit(ctx context.Context, depositCount uint32) (*bridgetypes.DepositRecord, error) {
	return call[*bridgetypes.DepositRecord](c.url, "bridge_getDeposit", depositCount)
}

// GetProof returns the proof of a deposit. This call needs to be done to a client of the same network
// were the bridge was done
func (c *Client) GetProof(
	ctx context.Context, depositCount uint32, localExitRoot common.Hash,
) (tree.Proof, error) {
	return call[tree.Proof](c.url, "bridge_getProof", depositCount, localExitRoot)
}

func (c *Client) IsClaimed(ctx context.Context, globalIndex *big.Int) (bool, error) {
	return call[bool](c.url, "bridge_isClaimed", globalIndex)
}

func (c *Client) GetClaim(ctx context.Context, globalIndex *big.Int) (*bridgetypes.Claim, error) {
	return call[*bridgetypes.Claim](c.url, "bridge_getClaim", globalIndex)
}

func (c *Client) PrecalculatedWrapperAddress(
	ctx context.Context, originNetwork uint32, originTokenAddress common.Address, metadata []byte,
) (common.Address, error) {
	return call[common.Address](
		c.url, "bridge_precalculatedWrapperAddress", originNetwork, originTokenAddress, hexutil.Bytes(metadata),
	)
}

func (c *Client) GetTokenWrappedAddress(
	ctx context.Context, originNetwork uint32, originTokenAddress common.Address,
) (common.Address, error) {
	return call[common.Address](c.url, "bridge_getTokenWrappedAddress", originNetwork, originTokenAddress)
}

// SetLocalExitRoot needs to be done to the node running the rollup exit tree
func (c *Client) SetLocalExitRoot(
	ctx context.Context, rollupIndex uint32, localExitRoot common.Hash,
) (common.Hash, error) {
	return call[common.Hash](c.url, "bridge_setLocalExitRoot", rollupIndex, localExitRoot)
}

func (c *Client) GetRollupExitRoot(ctx context.Context) (common.Hash, error) {
	return call[common.Hash](c.url, "bridge_rollupExitRoot")
}

func (c *Client) GetRollupExitProof(
	ctx context.Context, rollupIndex uint32, rollupExitRoot common.Hash,
) (tree.Proof, error) {
	return call[tree.Proof](c.url, "bridge_getRollupExitProof", rollupIndex, rollupExitRoot)
}

func (c *Client) GetLocalExitRoot(
	ctx context.Context, rollupIndex uint32, rollupExitRoot common.Hash,
) (common.Hash, error) {
	return call[common.Hash](c.url, "bridge_getLocalExitRoot", rollupIndex, rollupExitRoot)
}
