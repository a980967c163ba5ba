package rpc

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/0xPolygon/cdk-bridge/db"
	"github.com/0xPolygon/cdk-bridge/log"
	"github.com/0xPolygon/cdk-bridge/rpc/types"
	tree "github.com/0xPolygon/cdk-bridge/tree/types"
	"github.com/0xPolygon/cdk-rpc/rpc"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const (
	// BRIDGE is the namespace of the bridge service
	BRIDGE    = "bridge"
	meterName = "github.com/0xPolygon/cdk-bridge/rpc"

	zeroHex = "0x0"
)

var ErrRollupExitTreeDisabled = errors.New("this client does not run the rollup exit tree")

// BridgeEndpoints contains implementations for the "bridge" RPC endpoints.
// Identities (the depositor of bridgeAsset, the caller of updateExitRoot and setLocalExitRoot) are taken
// from the params without any signature check, so the server must only be reachable by the operator's nodes
type BridgeEndpoints struct {
	logger         *log.Logger
	meter          metric.Meter
	readTimeout    time.Duration
	writeTimeout   time.Duration
	bridge         Bridger
	rollupExitTree RollupExitTreer
}

// NewBridgeEndpoints returns BridgeEndpoints. rollupExitTree is optional
func NewBridgeEndpoints(
	logger *log.Logger,
	writeTimeout time.Duration,
	readTimeout time.Duration,
	bridge Bridger,
	rollupExitTree RollupExitTreer,
) *BridgeEndpoints {
	meter := otel.Meter(meterName)
	return &BridgeEndpoints{
		logger:         logger,
		meter:          meter,
		readTimeout:    readTimeout,
		writeTimeout:   writeTimeout,
		bridge:         bridge,
		rollupExitTree: rollupExitTree,
	}
}

func (b *BridgeEndpoints) count(ctx context.Context, name string) {
	c, merr := b.meter.Int64Counter(name)
	if merr != nil {
		b.logger.Warnf("failed to create %s counter: %s", name, merr)
		return
	}
	c.Add(ctx, 1)
}

func newRPCError(err error, format string, args ...interface{}) rpc.Error {
	msg := fmt.Sprintf("%s, error: %s", fmt.Sprintf(format, args...), err)
	if errors.Is(err, db.ErrNotFound) {
		return rpc.NewRPCError(rpc.NotFoundErrorCode, msg)
	}
	return rpc.NewRPCError(rpc.DefaultErrorCode, msg)
}

// BridgeAsset locks or burns the asset of args.From and records the deposit. args.From is trusted as is
func (b *BridgeEndpoints) BridgeAsset(args types.BridgeAssetArgs) (interface{}, rpc.Error) {
	ctx, cancel := context.WithTimeout(context.Background(), b.writeTimeout)
	defer cancel()
	b.count(ctx, "bridge_asset")

	receipt, err := b.bridge.BridgeAsset(ctx, args.ToRequest())
	if err != nil {
		return zeroHex, newRPCError(err, "failed to bridge asset")
	}
	return receipt, nil
}

// ClaimAsset verifies the claim and sends the asset to its destination
func (b *BridgeEndpoints) ClaimAsset(args types.ClaimAssetArgs) (interface{}, rpc.Error) {
	ctx, cancel := context.WithTimeout(context.Background(), b.writeTimeout)
	defer cancel()
	b.count(ctx, "claim_asset")

	receipt, err := b.bridge.ClaimAsset(ctx, args.ToRequest())
	if err != nil {
		return zeroHex, newRPCError(err, "failed to claim global index %s", args.GlobalIndex)
	}
	return receipt, nil
}

// UpdateExitRoot updates the half of the global exit root that caller is allowed to update.
// caller is not authenticated, the authorizer only sees the address sent in the params
func (b *BridgeEndpoints) UpdateExitRoot(caller common.Address, newRoot common.Hash) (interface{}, rpc.Error) {
	ctx, cancel := context.WithTimeout(context.Background(), b.writeTimeout)
	defer cancel()
	b.count(ctx, "update_exit_root")

	ger, err := b.bridge.UpdateExitRoot(ctx, caller, newRoot)
	if err != nil {
		return zeroHex, newRPCError(err, "failed to update exit root")
	}
	return ger, nil
}

// UpdateGlobalExitRoot pushes the current local exit root to the global exit root
func (b *BridgeEndpoints) UpdateGlobalExitRoot() (interface{}, rpc.Error) {
	ctx, cancel := context.WithTimeout(context.Background(), b.writeTimeout)
	defer cancel()
	b.count(ctx, "update_global_exit_root")

	ger, err := b.bridge.UpdateGlobalExitRoot(ctx)
	if err != nil {
		return zeroHex, newRPCError(err, "failed to update global exit root")
	}
	return ger, nil
}

func (b *BridgeEndpoints) LastMainnetExitRoot() (interface{}, rpc.Error) {
	ctx, cancel := context.WithTimeout(context.Background(), b.readTimeout)
	defer cancel()
	b.count(ctx, "last_mainnet_exit_root")

	root, err := b.bridge.LastMainnetExitRoot(ctx)
	if err != nil {
		return zeroHex, newRPCError(err, "failed to get mainnet exit root")
	}
	return root, nil
}

func (b *BridgeEndpoints) LastRollupExitRoot() (interface{}, rpc.Error) {
	ctx, cancel := context.WithTimeout(context.Background(), b.readTimeout)
	defer cancel()
	b.count(ctx, "last_rollup_exit_root")

	root, err := b.bridge.LastRollupExitRoot(ctx)
	if err != nil {
		return zeroHex, newRPCError(err, "failed to get rollup exit root")
	}
	return root, nil
}

func (b *BridgeEndpoints) GetLastGlobalExitRoot() (interface{}, rpc.Error) {
	ctx, cancel := context.WithTimeout(context.Background(), b.readTimeout)
	defer cancel()
	b.count(ctx, "get_last_global_exit_root")

	ger, err := b.bridge.GetLastGlobalExitRoot(ctx)
	if err != nil {
		return zeroHex, newRPCError(err, "failed to get global exit root")
	}
	return ger, nil
}

// IsKnownGlobalExitRoot returns whether the global exit root has ever been produced on this network, and
// the exit roots that produced it
func (b *BridgeEndpoints) IsKnownGlobalExitRoot(ger common.Hash) (interface{}, rpc.Error) {
	ctx, cancel := context.WithTimeout(context.Background(), b.readTimeout)
	defer cancel()
	b.count(ctx, "is_known_global_exit_root")

	info, err := b.bridge.GetGlobalExitRoot(ctx, ger)
	if errors.Is(err, db.ErrNotFound) {
		return types.GlobalExitRootInfo{}, nil
	}
	if err != nil {
		return zeroHex, newRPCError(err, "failed to get global exit root %s", ger.Hex())
	}
	return types.GlobalExitRootInfo{
		Known:           true,
		MainnetExitRoot: info.MainnetExitRoot,
		RollupExitRoot:  info.RollupExitRoot,
	}, nil
}

func (b *BridgeEndpoints) VerifyMerkleProof(
	leaf common.Hash, proof tree.Proof, index uint32, root common.Hash,
) (interface{}, rpc.Error) {
	return b.bridge.VerifyMerkleProof(leaf, proof, index, root), nil
}

// GetRoot returns the local exit root
func (b *BridgeEndpoints) GetRoot() (interface{}, rpc.Error) {
	ctx, cancel := context.WithTimeout(context.Background(), b.readTimeout)
	defer cancel()
	b.count(ctx, "get_root")

	root, err := b.bridge.GetRoot(ctx)
	if err != nil {
		return zeroHex, newRPCError(err, "failed to get local exit root")
	}
	return root, nil
}

func (b *BridgeEndpoints) DepositCount() (interface{}, rpc.Error) {
	ctx, cancel := context.WithTimeout(context.Background(), b.readTimeout)
	defer cancel()
	b.count(ctx, "deposit_count")

	count, err := b.bridge.DepositCount(ctx)
	if err != nil {
		return zeroHex, newRPCError(err, "failed to get deposit count")
	}
	return count, nil
}

func (b *BridgeEndpoints) GetDeposit(depositCount uint32) (interface{}, rpc.Error) {
	ctx, cancel := context.WithTimeout(context.Background(), b.readTimeout)
	defer cancel()
	b.count(ctx, "get_deposit")

	deposit, err := b.bridge.GetDeposit(ctx, depositCount)
	if err != nil {
		return zeroHex, newRPCError(err, "failed to get deposit %d", depositCount)
	}
	return deposit, nil
}

// GetProof returns the proof of a deposit against a local exit root that includes it.
// This call needs to be done to a client of the same network were the bridge was done
func (b *BridgeEndpoints) GetProof(depositCount uint32, localExitRoot common.Hash) (interface{}, rpc.Error) {
	ctx, cancel := context.WithTimeout(context.Background(), b.readTimeout)
	defer cancel()
	b.count(ctx, "get_proof")

	proof, err := b.bridge.GetProof(ctx, depositCount, localExitRoot)
	if err != nil {
		return zeroHex, newRPCError(
			err, "failed to get proof of deposit %d against %s", depositCount, localExitRoot.Hex(),
		)
	}
	return proof, nil
}

func (b *BridgeEndpoints) IsClaimed(globalIndex *big.Int) (interface{}, rpc.Error) {
	ctx, cancel := context.WithTimeout(context.Background(), b.readTimeout)
	defer cancel()
	b.count(ctx, "is_claimed")

	claimed, err := b.bridge.IsClaimed(ctx, globalIndex)
	if err != nil {
		return zeroHex, newRPCError(err, "failed to check global index %s", globalIndex)
	}
	return claimed, nil
}

func (b *BridgeEndpoints) GetClaim(globalIndex *big.Int) (interface{}, rpc.Error) {
	ctx, cancel := context.WithTimeout(context.Background(), b.readTimeout)
	defer cancel()
	b.count(ctx, "get_claim")

	claim, err := b.bridge.GetClaim(ctx, globalIndex)
	if err != nil {
		return zeroHex, newRPCError(err, "failed to get claim %s", globalIndex)
	}
	return claim, nil
}

// PrecalculatedWrapperAddress returns the address that the wrapped token has or will have on this network
func (b *BridgeEndpoints) PrecalculatedWrapperAddress(
	originNetwork uint32, originTokenAddress common.Address, metadata hexutil.Bytes,
) (interface{}, rpc.Error) {
	return b.bridge.PrecalculatedWrapperAddress(originNetwork, originTokenAddress, metadata), nil
}

// GetTokenWrappedAddress returns the zero address if the wrapped token has not been deployed yet
func (b *BridgeEndpoints) GetTokenWrappedAddress(
	originNetwork uint32, originTokenAddress common.Address,
) (interface{}, rpc.Error) {
	ctx, cancel := context.WithTimeout(context.Background(), b.readTimeout)
	defer cancel()
	b.count(ctx, "get_token_wrapped_address")

	addr, err := b.bridge.GetTokenWrappedAddress(ctx, originNetwork, originTokenAddress)
	if err != nil {
		return zeroHex, newRPCError(err, "failed to get wrapped token")
	}
	return addr, nil
}

// SetLocalExitRoot updates the leaf of the rollup on the rollup exit tree
func (b *BridgeEndpoints) SetLocalExitRoot(rollupIndex uint32, localExitRoot common.Hash) (interface{}, rpc.Error) {
	if b.rollupExitTree == nil {
		return zeroHex, rpc.NewRPCError(rpc.DefaultErrorCode, ErrRollupExitTreeDisabled.Error())
	}
	ctx, cancel := context.WithTimeout(context.Background(), b.writeTimeout)
	defer cancel()
	b.count(ctx, "set_local_exit_root")

	root, err := b.rollupExitTree.SetLocalExitRoot(ctx, rollupIndex, localExitRoot)
	if err != nil {
		return zeroHex, newRPCError(err, "failed to set local exit root of rollup %d", rollupIndex)
	}
	return root, nil
}

func (b *BridgeEndpoints) RollupExitRoot() (interface{}, rpc.Error) {
	if b.rollupExitTree == nil {
		return zeroHex, rpc.NewRPCError(rpc.DefaultErrorCode, ErrRollupExitTreeDisabled.Error())
	}
	ctx, cancel := context.WithTimeout(context.Background(), b.readTimeout)
	defer cancel()
	b.count(ctx, "rollup_exit_root")

	root, err := b.rollupExitTree.GetRollupExitRoot(ctx)
	if err != nil {
		return zeroHex, newRPCError(err, "failed to get rollup exit root")
	}
	return root, nil
}

// GetRollupExitProof returns the proof of the local exit root of a rollup against a rollup exit root
func (b *BridgeEndpoints) GetRollupExitProof(rollupIndex uint32, rollupExitRoot common.Hash) (interface{}, rpc.Error) {
	if b.rollupExitTree == nil {
		return zeroHex, rpc.NewRPCError(rpc.DefaultErrorCode, ErrRollupExitTreeDisabled.Error())
	}
	ctx, cancel := context.WithTimeout(context.Background(), b.readTimeout)
	defer cancel()
	b.count(ctx, "get_rollup_exit_proof")

	proof, err := b.rollupExitTree.GetProof(ctx, rollupIndex, rollupExitRoot)
	if err != nil {
		return zeroHex, newRPCError(err, "failed to get rollup exit proof")
	}
	return proof, nil
}

// GetLocalExitRoot returns the local exit root that the rollup had on a rollup exit root
func (b *BridgeEndpoints) GetLocalExitRoot(rollupIndex uint32, rollupExitRoot common.Hash) (interface{}, rpc.Error) {
	if b.rollupExitTree == nil {
		return zeroHex, rpc.NewRPCError(rpc.DefaultErrorCode, ErrRollupExitTreeDisabled.Error())
	}
	ctx, cancel := context.WithTimeout(context.Background(), b.readTimeout)
	defer cancel()
	b.count(ctx, "get_local_exit_root")

	ler, err := b.rollupExitTree.GetLocalExitRoot(ctx, rollupIndex, rollupExitRoot)
	if err != nil {
		return zeroHex, newRPCError(err, "failed to get local exit root of rollup %d", rollupIndex)
	}
	return ler, nil
}
