package types

import (
	"fmt"
	"math/big"

	cdkcommon "github.com/0xPolygon/cdk-bridge/common"
	tree "github.com/0xPolygon/cdk-bridge/tree/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/iden3/go-iden3-crypto/keccak256"
)

const (
	LeafTypeAsset   uint8 = 0
	LeafTypeMessage uint8 = 1

	// MainnetNetworkID is the network whose exit root is the mainnet half of the global exit root
	MainnetNetworkID uint32 = 0
)

// Deposit holds the fields committed in a leaf of the local exit tree
type Deposit struct {
	LeafType           uint8          `meddler:"leaf_type" json:"leaf_type"`
	OriginNetwork      uint32         `meddler:"origin_network" json:"origin_network"`
	OriginAddress      common.Address `meddler:"origin_address,address" json:"origin_address"`
	DestinationNetwork uint32         `meddler:"destination_network" json:"destination_network"`
	DestinationAddress common.Address `meddler:"destination_address,address" json:"destination_address"`
	Amount             *big.Int       `meddler:"amount,bigint" json:"amount"`
	Metadata           []byte         `meddler:"metadata" json:"metadata"`
}

// Hash returns the leaf of the deposit:
// keccak(leafType | originNetwork | originAddress | destinationNetwork | destinationAddress | amount | keccak(metadata))
func (d *Deposit) Hash() common.Hash {
	var buf [32]byte
	amount := d.Amount
	if amount == nil {
		amount = big.NewInt(0)
	}
	return common.BytesToHash(keccak256.Hash(
		[]byte{d.LeafType},
		cdkcommon.Uint32ToBytes(d.OriginNetwork),
		d.OriginAddress[:],
		cdkcommon.Uint32ToBytes(d.DestinationNetwork),
		d.DestinationAddress[:],
		amount.FillBytes(buf[:]),
		d.MetadataHash().Bytes(),
	))
}

// MetadataHash is the hash of the metadata as it's committed in the leaf
func (d *Deposit) MetadataHash() common.Hash {
	return common.BytesToHash(keccak256.Hash(d.Metadata))
}

// maxAmountBits is the width of the amount field of the leaf
const maxAmountBits = 256

// ValidateAmount returns ErrAmountOrBalanceMismatch if amount can't be committed in a leaf
func ValidateAmount(amount *big.Int) error {
	if amount == nil || amount.Sign() < 0 || amount.BitLen() > maxAmountBits {
		return fmt.Errorf("%w: invalid amount %v", ErrAmountOrBalanceMismatch, amount)
	}
	return nil
}

// DepositRecord is an entry of the deposit log
type DepositRecord struct {
	DepositCount       uint32         `meddler:"deposit_count" json:"deposit_count"`
	LeafType           uint8          `meddler:"leaf_type" json:"leaf_type"`
	OriginNetwork      uint32         `meddler:"origin_network" json:"origin_network"`
	OriginAddress      common.Address `meddler:"origin_address,address" json:"origin_address"`
	DestinationNetwork uint32         `meddler:"destination_network" json:"destination_network"`
	DestinationAddress common.Address `meddler:"destination_address,address" json:"destination_address"`
	Amount             *big.Int       `meddler:"amount,bigint" json:"amount"`
	Metadata           []byte         `meddler:"metadata" json:"metadata"`
	LeafHash           common.Hash    `meddler:"leaf_hash,hash" json:"leaf_hash"`
	LocalExitRoot      common.Hash    `meddler:"local_exit_root,hash" json:"local_exit_root"`
	TokenAddress       common.Address `meddler:"token_address,address" json:"token_address"`
	FromAddress        common.Address `meddler:"from_address,address" json:"from_address"`
}

// Deposit returns the committed fields of the record
func (r *DepositRecord) Deposit() Deposit {
	return Deposit{
		LeafType:           r.LeafType,
		OriginNetwork:      r.OriginNetwork,
		OriginAddress:      r.OriginAddress,
		DestinationNetwork: r.DestinationNetwork,
		DestinationAddress: r.DestinationAddress,
		Amount:             r.Amount,
		Metadata:           r.Metadata,
	}
}

// Claim is a processed claim as stored in the claim log
type Claim struct {
	GlobalIndex         *big.Int       `meddler:"global_index,bigint" json:"global_index"`
	MainnetFlag         bool           `meddler:"mainnet_flag" json:"mainnet_flag"`
	RollupIndex         uint32         `meddler:"rollup_index" json:"rollup_index"`
	LocalExitRootIndex  uint32         `meddler:"local_exit_root_index" json:"local_exit_root_index"`
	OriginNetwork       uint32         `meddler:"origin_network" json:"origin_network"`
	OriginAddress       common.Address `meddler:"origin_address,address" json:"origin_address"`
	DestinationNetwork  uint32         `meddler:"destination_network" json:"destination_network"`
	DestinationAddress  common.Address `meddler:"destination_address,address" json:"destination_address"`
	Amount              *big.Int       `meddler:"amount,bigint" json:"amount"`
	Metadata            []byte         `meddler:"metadata" json:"metadata"`
	MainnetExitRoot     common.Hash    `meddler:"mainnet_exit_root,hash" json:"mainnet_exit_root"`
	RollupExitRoot      common.Hash    `meddler:"rollup_exit_root,hash" json:"rollup_exit_root"`
	GlobalExitRoot      common.Hash    `meddler:"global_exit_root,hash" json:"global_exit_root"`
	ProofLocalExitRoot  tree.Proof     `meddler:"proof_local_exit_root,merkleproof" json:"proof_local_exit_root"`
	ProofRollupExitRoot tree.Proof     `meddler:"proof_rollup_exit_root,merkleproof" json:"proof_rollup_exit_root"`
	TokenAddress        common.Address `meddler:"token_address,address" json:"token_address"`
}

// ClaimRequest holds the arguments of a claim
type ClaimRequest struct {
	SMTProofLocalExitRoot  tree.Proof
	SMTProofRollupExitRoot tree.Proof
	GlobalIndex            *big.Int
	MainnetExitRoot        common.Hash
	RollupExitRoot         common.Hash
	OriginNetwork          uint32
	OriginTokenAddress     common.Address
	DestinationNetwork     uint32
	DestinationAddress     common.Address
	Amount                 *big.Int
	Metadata               []byte
}

// Leaf returns the leaf that the claimed deposit must have
func (c *ClaimRequest) Leaf() common.Hash {
	d := Deposit{
		LeafType:           LeafTypeAsset,
		OriginNetwork:      c.OriginNetwork,
		OriginAddress:      c.OriginTokenAddress,
		DestinationNetwork: c.DestinationNetwork,
		DestinationAddress: c.DestinationAddress,
		Amount:             c.Amount,
		Metadata:           c.Metadata,
	}
	return d.Hash()
}

// BridgeRequest holds the arguments of a deposit
type BridgeRequest struct {
	From                      common.Address
	DestinationNetwork        uint32
	DestinationAddress        common.Address
	Amount                    *big.Int
	Token                     common.Address
	ForceUpdateGlobalExitRoot bool
	PermitData                []byte
}

// DepositReceipt is returned after a deposit is recorded
type DepositReceipt struct {
	DepositCount  uint32      `json:"deposit_count"`
	LeafHash      common.Hash `json:"leaf_hash"`
	LocalExitRoot common.Hash `json:"local_exit_root"`
	// GlobalExitRoot is only set if the global exit root was updated as part of the deposit
	GlobalExitRoot *common.Hash `json:"global_exit_root,omitempty"`
}

// ClaimReceipt is returned after a claim is processed
type ClaimReceipt struct {
	GlobalIndex    *big.Int       `json:"global_index"`
	TokenAddress   common.Address `json:"token_address"`
	GlobalExitRoot common.Hash    `json:"global_exit_root"`
	// WrappedTokenCreated is set when the claim deployed the wrapped token
	WrappedTokenCreated bool `json:"wrapped_token_created"`
}

// TokenInfo identifies a token on its origin network
type TokenInfo struct {
	OriginNetwork      uint32         `meddler:"origin_network" json:"origin_network"`
	OriginTokenAddress common.Address `meddler:"origin_token_address,address" json:"origin_token_address"`
}

// BridgeEvent is emitted for every deposit
type BridgeEvent struct {
	LeafType           uint8
	OriginNetwork      uint32
	OriginAddress      common.Address
	DestinationNetwork uint32
	DestinationAddress common.Address
	Amount             *big.Int
	MetadataHash       common.Hash
	DepositCount       uint32
}

// ClaimEvent is emitted for every claim
type ClaimEvent struct {
	GlobalIndex        *big.Int
	OriginNetwork      uint32
	OriginAddress      common.Address
	DestinationAddress common.Address
	Amount             *big.Int
}

// NewWrappedAssetEvent is emitted the first time a token from another network is claimed
type NewWrappedAssetEvent struct {
	OriginNetwork      uint32
	OriginTokenAddress common.Address
	WrappedAddress     common.Address
	Metadata           []byte
}

// UpdateGlobalExitRootEvent is emitted every time one of the halves of the global exit root changes
type UpdateGlobalExitRootEvent struct {
	MainnetExitRoot common.Hash
	RollupExitRoot  common.Hash
	GlobalExitRoot  common.Hash
}
