package types

import (
	"math/big"

	bridgetypes "github.com/0xPolygon/cdk-bridge/bridge/types"
	tree "github.com/0xPolygon/cdk-bridge/tree/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// BridgeAssetArgs are the params of bridge_bridgeAsset. From is the depositor debited by the vault,
// it's not authenticated
type BridgeAssetArgs struct {
	From                      common.Address `json:"from"`
	DestinationNetwork        uint32         `json:"destination_network"`
	DestinationAddress        common.Address `json:"destination_address"`
	Amount                    *big.Int       `json:"amount"`
	Token                     common.Address `json:"token"`
	ForceUpdateGlobalExitRoot bool           `json:"force_update_global_exit_root"`
	PermitData                hexutil.Bytes  `json:"permit_data,omitempty"`
}

func (a BridgeAssetArgs) ToRequest() bridgetypes.BridgeRequest {
	return bridgetypes.BridgeRequest{
		From:                      a.From,
		DestinationNetwork:        a.DestinationNetwork,
		DestinationAddress:        a.DestinationAddress,
		Amount:                    a.Amount,
		Token:                     a.Token,
		ForceUpdateGlobalExitRoot: a.ForceUpdateGlobalExitRoot,
		PermitData:                a.PermitData,
	}
}

// ClaimAssetArgs are the params of bridge_claimAsset
type ClaimAssetArgs struct {
	SMTProofLocalExitRoot  tree.Proof     `json:"smt_proof_local_exit_root"`
	SMTProofRollupExitRoot tree.Proof     `json:"smt_proof_rollup_exit_root"`
	GlobalIndex            *big.Int       `json:"global_index"`
	MainnetExitRoot        common.Hash    `json:"mainnet_exit_root"`
	RollupExitRoot         common.Hash    `json:"rollup_exit_root"`
	OriginNetwork          uint32         `json:"origin_network"`
	OriginTokenAddress     common.Address `json:"origin_token_address"`
	DestinationNetwork     uint32         `json:"destination_network"`
	DestinationAddress     common.Address `json:"destination_address"`
	Amount                 *big.Int       `json:"amount"`
	Metadata               hexutil.Bytes  `json:"metadata"`
}

func (a ClaimAssetArgs) ToRequest() *bridgetypes.ClaimRequest {
	return &bridgetypes.ClaimRequest{
		SMTProofLocalExitRoot:  a.SMTProofLocalExitRoot,
		SMTProofRollupExitRoot: a.SMTProofRollupExitRoot,
		GlobalIndex:            a.GlobalIndex,
		MainnetExitRoot:        a.MainnetExitRoot,
		RollupExitRoot:         a.RollupExitRoot,
		OriginNetwork:          a.OriginNetwork,
		OriginTokenAddress:     a.OriginTokenAddress,
		DestinationNetwork:     a.DestinationNetwork,
		DestinationAddress:     a.DestinationAddress,
		Amount:                 a.Amount,
		Metadata:               a.Metadata,
	}
}

// NewClaimAssetArgs is the inverse of ToRequest
func NewClaimAssetArgs(req *bridgetypes.ClaimRequest) ClaimAssetArgs {
	return ClaimAssetArgs{
		SMTProofLocalExitRoot:  req.SMTProofLocalExitRoot,
		SMTProofRollupExitRoot: req.SMTProofRollupExitRoot,
		GlobalIndex:            req.GlobalIndex,
		MainnetExitRoot:        req.MainnetExitRoot,
		RollupExitRoot:         req.RollupExitRoot,
		OriginNetwork:          req.OriginNetwork,
		OriginTokenAddress:     req.OriginTokenAddress,
		DestinationNetwork:     req.DestinationNetwork,
		DestinationAddress:     req.DestinationAddress,
		Amount:                 req.Amount,
		Metadata:               req.Metadata,
	}
}

// GlobalExitRootInfo is the result of bridge_isKnownGlobalExitRoot
type GlobalExitRootInfo struct {
	Known           bool        `json:"known"`
	MainnetExitRoot common.Hash `json:"mainnet_exit_root"`
	RollupExitRoot  common.Hash `json:"rollup_exit_root"`
}
